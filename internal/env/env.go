package env

import (
	"errors"
	"fmt"
	"os"
)

const (
	Present = "PRESENT"
	Missing = "MISSING"
)

var ErrNotFound = errors.New("environment variable with key not found")

func errNotFound(key string) error {
	return fmt.Errorf("key: %s: %w", key, ErrNotFound)
}

func GetString(key string) (string, error) {
	if val, found := os.LookupEnv(key); found {
		return val, nil
	}

	return "", errNotFound(key)
}

// Presence reports whether key is set in the process environment at call
// time. An empty value still counts as present.
func Presence(key string) string {
	if _, found := os.LookupEnv(key); found {
		return Present
	}

	return Missing
}

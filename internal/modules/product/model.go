package product

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/eskrenkovic/storefront-admin/internal/modules/core"
)

type Method string

const (
	MethodCreate Method = "CREATE"
	MethodUpdate Method = "UPDATE"
	MethodDelete Method = "DELETE"
)

// UpdatedAtField is injected into every update.
const UpdatedAtField = "updated_at"

// TimestampLayout matches ISO-8601 UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	ErrInvalidMethod     = errors.New("invalid method")
	ErrProductIDRequired = errors.New("productId is required")
)

func errInvalidMethod(method Method) error {
	return fmt.Errorf("%w: %q", ErrInvalidMethod, string(method))
}

func requireProductID(id string) error {
	if id == "" {
		return core.ValidationError{ValidationErrors: []error{ErrProductIDRequired}}
	}
	return nil
}

// Data is a product record as the table stores it. It is never validated
// here; the database decides what it accepts.
type Data map[string]interface{}

// Row is a product record as returned by the database.
type Row = json.RawMessage

// Envelope is the request body of the product proxy.
type Envelope struct {
	Method      Method `json:"method"`
	ProductData Data   `json:"productData,omitempty"`
	ProductID   string `json:"productId,omitempty"`
}

type DeleteResult struct {
	Success bool `json:"success"`
}

func timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

package env

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Presence_Reports_Present_For_Empty_Value(t *testing.T) {
	t.Setenv("STOREFRONT_TEST_EMPTY", "")

	require.Equal(t, Present, Presence("STOREFRONT_TEST_EMPTY"))
}

func Test_Presence_Reports_Missing_When_Unset(t *testing.T) {
	t.Setenv("STOREFRONT_TEST_UNSET", "x")
	require.NoError(t, os.Unsetenv("STOREFRONT_TEST_UNSET"))

	require.Equal(t, Missing, Presence("STOREFRONT_TEST_UNSET"))
}

func Test_GetString_Wraps_Not_Found(t *testing.T) {
	_, err := GetString("STOREFRONT_TEST_DOES_NOT_EXIST")

	require.True(t, errors.Is(err, ErrNotFound))
}

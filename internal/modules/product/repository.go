package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("product not found")

// Repository is the product table as seen through whichever database client
// is configured.
type Repository interface {
	Insert(ctx context.Context, data Data) (Row, error)
	Update(ctx context.Context, id string, data Data) (Row, error)
	Delete(ctx context.Context, id string) error
	Load(ctx context.Context, id string) (Row, error)
}

// singleRow unwraps a JSON array that must hold exactly one row.
func singleRow(body []byte) (Row, error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode rows: %w", err)
	}

	switch len(rows) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return rows[0], nil
	default:
		return nil, fmt.Errorf("expected a single row, got %d", len(rows))
	}
}

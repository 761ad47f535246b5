package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ Repository = (*MemoryRepository)(nil)

var errNullID = errors.New(`null value in column "id" violates not-null constraint`)

// MemoryRepository keeps the product table in process. It fills in id and
// created_at the way the table defaults would.
type MemoryRepository struct {
	mu   sync.RWMutex
	rows map[string]Data
	now  func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		rows: make(map[string]Data),
		now:  time.Now,
	}
}

func (r *MemoryRepository) Insert(_ context.Context, data Data) (Row, error) {
	if data == nil {
		return nil, errors.New("null value in product data violates not-null constraint")
	}

	row := make(Data, len(data)+2)
	for k, v := range data {
		row[k] = v
	}

	id, ok := row["id"]
	if !ok || id == nil {
		id = uuid.NewString()
		row["id"] = id
	}
	if _, ok := row["created_at"]; !ok {
		row["created_at"] = timestamp(r.now())
	}

	key := fmt.Sprint(id)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rows[key]; exists {
		return nil, fmt.Errorf("duplicate key value violates unique constraint: id=%s", key)
	}
	r.rows[key] = row

	return json.Marshal(row)
}

func (r *MemoryRepository) Update(_ context.Context, id string, data Data) (Row, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, ErrNotFound
	}

	updated := make(Data, len(row)+len(data))
	for k, v := range row {
		updated[k] = v
	}
	for k, v := range data {
		updated[k] = v
	}

	if updated["id"] == nil {
		return nil, errNullID
	}

	newID := fmt.Sprint(updated["id"])
	if newID != id {
		if _, exists := r.rows[newID]; exists {
			return nil, fmt.Errorf("duplicate key value violates unique constraint: id=%s", newID)
		}
		delete(r.rows, id)
	}
	r.rows[newID] = updated

	return json.Marshal(updated)
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.rows, id)
	return nil
}

func (r *MemoryRepository) Load(_ context.Context, id string) (Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, ErrNotFound
	}

	return json.Marshal(row)
}

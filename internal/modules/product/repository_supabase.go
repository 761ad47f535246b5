package product

import (
	"context"
	"fmt"

	"github.com/supabase-community/postgrest-go"
)

var _ Repository = (*SupabaseRepository)(nil)

// TableClient is satisfied by both *supabase.Client and *postgrest.Client.
type TableClient interface {
	From(table string) *postgrest.QueryBuilder
}

// SupabaseRepository goes through PostgREST with the service-role key, so
// row-level security does not apply.
type SupabaseRepository struct {
	client TableClient
	table  string
}

func NewSupabaseRepository(client TableClient, table string) *SupabaseRepository {
	return &SupabaseRepository{client: client, table: table}
}

// postgrest-go takes no context; cancellation is left to the HTTP client.

func (r *SupabaseRepository) Insert(_ context.Context, data Data) (Row, error) {
	body, _, err := r.client.From(r.table).
		Insert(data, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, err
	}

	return singleRow(body)
}

func (r *SupabaseRepository) Update(_ context.Context, id string, data Data) (Row, error) {
	body, _, err := r.client.From(r.table).
		Update(data, "representation", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, err
	}

	return singleRow(body)
}

func (r *SupabaseRepository) Delete(_ context.Context, id string) error {
	if _, _, err := r.client.From(r.table).Delete("", "").Eq("id", id).Execute(); err != nil {
		return err
	}

	return nil
}

func (r *SupabaseRepository) Load(_ context.Context, id string) (Row, error) {
	body, _, err := r.client.From(r.table).
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s: %w", id, err)
	}

	return singleRow(body)
}

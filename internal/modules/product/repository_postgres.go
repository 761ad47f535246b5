package product

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/eskrenkovic/tql"
	"github.com/lib/pq"
)

var _ Repository = (*PostgresRepository)(nil)

// PostgresRepository talks to the product table directly. Product data is
// bound as a single jsonb parameter and expanded with jsonb_populate_record,
// so only column names ever reach the SQL text, and those are quoted.
type PostgresRepository struct {
	db    *sql.DB
	table string
}

func NewPostgresRepository(db *sql.DB, table string) *PostgresRepository {
	return &PostgresRepository{db: db, table: pq.QuoteIdentifier(table)}
}

func (r *PostgresRepository) Insert(ctx context.Context, data Data) (Row, error) {
	if data == nil {
		return nil, errors.New("product data is null")
	}

	columns := quotedColumns(data)
	if len(columns) == 0 {
		stmt := fmt.Sprintf(`
			INSERT INTO %s AS p
			DEFAULT VALUES
			RETURNING row_to_json(p)::text;`, r.table)
		return r.queryRow(ctx, stmt)
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	stmt := fmt.Sprintf(`
		INSERT INTO %[1]s AS p (%[2]s)
		SELECT %[3]s
		FROM jsonb_populate_record(NULL::%[1]s, $1::jsonb) AS r
		RETURNING row_to_json(p)::text;`,
		r.table,
		strings.Join(columns, ", "),
		prefixed("r", columns),
	)

	return r.queryRow(ctx, stmt, string(payload))
}

func (r *PostgresRepository) Update(ctx context.Context, id string, data Data) (Row, error) {
	columns := quotedColumns(data)
	if len(columns) == 0 {
		return r.Load(ctx, id)
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	stmt := fmt.Sprintf(`
		UPDATE %[1]s AS p
		SET (%[2]s) = (
			SELECT %[3]s
			FROM jsonb_populate_record(NULL::%[1]s, $1::jsonb) AS r
		)
		WHERE p.id::text = $2
		RETURNING row_to_json(p)::text;`,
		r.table,
		strings.Join(columns, ", "),
		prefixed("r", columns),
	)

	return r.queryRow(ctx, stmt, string(payload), id)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	stmt := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id::text = $1;`, r.table)

	_, err := tql.Exec(ctx, r.db, stmt, id)
	return err
}

func (r *PostgresRepository) Load(ctx context.Context, id string) (Row, error) {
	query := fmt.Sprintf(`
		SELECT
			row_to_json(p)::text
		FROM
			%s AS p
		WHERE
			p.id::text = $1;`, r.table)

	return r.queryRow(ctx, query, id)
}

func (r *PostgresRepository) queryRow(ctx context.Context, query string, args ...interface{}) (Row, error) {
	row, err := tql.QueryFirst[string](ctx, r.db, query, args...)
	switch {
	case err != nil && errors.Is(err, sql.ErrNoRows):
		return nil, ErrNotFound
	case err != nil:
		return nil, err
	case row == "":
		return nil, ErrNotFound
	}

	return Row(row), nil
}

// quotedColumns returns the keys of data as quoted identifiers, sorted so the
// generated statement is stable.
func quotedColumns(data Data) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	columns := make([]string, 0, len(keys))
	for _, k := range keys {
		columns = append(columns, pq.QuoteIdentifier(k))
	}
	return columns
}

func prefixed(alias string, columns []string) string {
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		out = append(out, alias+"."+c)
	}
	return strings.Join(out, ", ")
}

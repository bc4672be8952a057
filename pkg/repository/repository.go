// Package repository provides query helpers and error mapping for
// database/sql over the pgx driver.
package repository

import (
	"context"
	"database/sql"
)

// Querier is implemented by *sql.DB, *sql.Tx, and *sql.Conn.
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Scanner abstracts row scanning for use with query helpers.
type Scanner interface {
	Scan(dest ...any) error
}

// ScanFunc converts a Scanner into a typed value.
type ScanFunc[T any] func(Scanner) (T, error)

// QueryOne executes a query expected to return a single row.
// Returns sql.ErrNoRows when the query matches nothing.
func QueryOne[T any](ctx context.Context, q Querier, query string, args []any, scan ScanFunc[T]) (T, error) {
	var zero T
	result, err := scan(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		return zero, err
	}
	return result, nil
}

// QueryOptional is QueryOne where a missing row yields the zero value and
// found=false instead of an error.
func QueryOptional[T any](ctx context.Context, q Querier, query string, args []any, scan ScanFunc[T]) (result T, found bool, err error) {
	result, err = QueryOne(ctx, q, query, args, scan)
	switch {
	case err == nil:
		return result, true, nil
	case IsNoRows(err):
		return result, false, nil
	default:
		return result, false, err
	}
}

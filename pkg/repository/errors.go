package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgDuplicateKeyCode = "23505"
	pgConnectionClass  = "08"
)

// IsNoRows reports whether err is sql.ErrNoRows.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// MapError translates database errors to domain errors.
// sql.ErrNoRows maps to notFoundErr, a unique violation to duplicateErr, and
// connection failures or cancelled contexts to unavailableErr. Nil targets
// leave the original error in place. Other errors are returned unchanged.
func MapError(err error, notFoundErr, duplicateErr, unavailableErr error) error {
	if err == nil {
		return nil
	}

	if IsNoRows(err) && notFoundErr != nil {
		return notFoundErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgDuplicateKeyCode && duplicateErr != nil:
			return duplicateErr
		case strings.HasPrefix(pgErr.Code, pgConnectionClass) && unavailableErr != nil:
			return errors.Join(unavailableErr, err)
		}
		return err
	}

	if unavailableErr != nil {
		var connErr *pgconn.ConnectError
		if errors.As(err, &connErr) ||
			errors.Is(err, context.DeadlineExceeded) ||
			errors.Is(err, sql.ErrConnDone) {
			return errors.Join(unavailableErr, err)
		}
	}

	return err
}

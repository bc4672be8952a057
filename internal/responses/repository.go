package responses

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/rizzorrisk/rizz/pkg/repository"
)

// System appends to and reads per-user response logs.
type System interface {
	// Append adds rec to the owner's log, creating the log on first use.
	// Returns the log length after the append.
	Append(ctx context.Context, owner Owner, rec Record) (int, error)
	// List returns the owner's log in insertion order. A user with no log
	// gets an empty slice.
	List(ctx context.Context, userID string) ([]Record, error)
}

type repo struct {
	db     repository.Querier
	logger *slog.Logger
}

// New creates a Postgres-backed response log.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "responses"),
	}
}

// Legacy rows store the array as a JSON string; the CASE unwraps them so the
// append is a single atomic statement in either shape.
const appendSQL = `
INSERT INTO user_responses (user_id, email, responses)
VALUES ($1, NULLIF($2, ''), jsonb_build_array($3::jsonb))
ON CONFLICT (user_id) DO UPDATE SET
	email = COALESCE(EXCLUDED.email, user_responses.email),
	responses = (
		CASE WHEN jsonb_typeof(user_responses.responses) = 'string'
			THEN (user_responses.responses #>> '{}')::jsonb
			ELSE COALESCE(user_responses.responses, '[]'::jsonb)
		END
	) || EXCLUDED.responses,
	updated_at = NOW()
RETURNING jsonb_array_length(responses)`

const listSQL = `SELECT responses FROM user_responses WHERE user_id = $1`

func (r *repo) Append(ctx context.Context, owner Owner, rec Record) (int, error) {
	if owner.UserID == "" {
		return 0, ErrInvalidOwner
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEncodingRecord, err)
	}

	length, err := repository.QueryOne(ctx, r.db, appendSQL,
		[]any{owner.UserID, owner.Email, string(payload)},
		func(s repository.Scanner) (int, error) {
			var n int
			err := s.Scan(&n)
			return n, err
		},
	)
	if err != nil {
		return 0, fmt.Errorf("append response: %w", repository.MapError(err, nil, nil, ErrUnavailable))
	}

	r.logger.Info("response appended", "user_id", owner.UserID, "record_id", rec.ID, "length", length)
	return length, nil
}

func (r *repo) List(ctx context.Context, userID string) ([]Record, error) {
	if userID == "" {
		return nil, ErrInvalidOwner
	}

	raw, found, err := repository.QueryOptional(ctx, r.db, listSQL, []any{userID}, scanRaw)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", repository.MapError(err, nil, nil, ErrUnavailable))
	}
	if !found {
		return []Record{}, nil
	}

	records, err := Decode(raw)
	if err != nil {
		r.logger.Error("stored response log unreadable", "user_id", userID, "error", err)
		return nil, err
	}
	return records, nil
}

func scanRaw(s repository.Scanner) ([]byte, error) {
	var raw []byte
	err := s.Scan(&raw)
	return raw, err
}

// Decode parses a stored log. It accepts a JSON array of records, a JSON
// string containing such an array, and SQL NULL or JSON null as empty.
func Decode(raw []byte) ([]Record, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []Record{}, nil
	}

	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptLog, err)
		}
		return Decode([]byte(inner))
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptLog, err)
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

package responses_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/sync/errgroup"

	"github.com/rizzorrisk/rizz/internal/emotions"
	"github.com/rizzorrisk/rizz/internal/responses"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const createTable = `
CREATE TABLE IF NOT EXISTS user_responses (
    user_id    TEXT PRIMARY KEY,
    email      TEXT,
    responses  JSONB NOT NULL DEFAULT '[]'::jsonb,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// testDB connects to the database named by RIZZ_TEST_DB_URL and skips the
// test when it is unset.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv("RIZZ_TEST_DB_URL")
	if url == "" {
		t.Skip("RIZZ_TEST_DB_URL not set")
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.PingContext(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if _, err := db.Exec(createTable); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

// testUser returns a fresh user id whose row is removed after the test.
func testUser(t *testing.T, db *sql.DB) string {
	t.Helper()
	id := "test-" + uuid.NewString()
	t.Cleanup(func() {
		db.Exec(`DELETE FROM user_responses WHERE user_id = $1`, id)
	})
	return id
}

func record(n int) responses.Record {
	return responses.Record{
		ID:             fmt.Sprintf("rec-%d", n),
		Scenario:       fmt.Sprintf("scenario %d", n),
		Classification: "✅ Green Flag! Looks good.",
		Message:        "go for it",
		Emotions:       []emotions.Score{{Label: "joy", Score: 0.9}},
		Timestamp:      fmt.Sprintf("2024-05-0%dT10:00:00.000Z", n),
	}
}

func TestRepositoryAppendInOrder(t *testing.T) {
	db := testDB(t)
	store := responses.New(db, discard())
	ctx := context.Background()
	owner := responses.Owner{UserID: testUser(t, db), Email: "a@example.com"}

	for i := 1; i <= 3; i++ {
		n, err := store.Append(ctx, owner, record(i))
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		if n != i {
			t.Errorf("append %d returned length %d", i, n)
		}
	}

	got, err := store.List(ctx, owner.UserID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("records: got %d, want 3", len(got))
	}
	for i, rec := range got {
		if want := fmt.Sprintf("rec-%d", i+1); rec.ID != want {
			t.Errorf("record %d id = %q, want %q", i, rec.ID, want)
		}
	}
}

func TestRepositoryMissingRowIsEmpty(t *testing.T) {
	db := testDB(t)
	store := responses.New(db, discard())

	got, err := store.List(context.Background(), testUser(t, db))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("records = %v, want empty non-nil slice", got)
	}
}

func TestRepositoryUnwrapsStringEncodedLog(t *testing.T) {
	db := testDB(t)
	store := responses.New(db, discard())
	ctx := context.Background()
	id := testUser(t, db)

	legacy := `[{"scenario":"legacy","classification":"c","message":"m","emotions":[],"timestamp":"2024-01-01T00:00:00.000Z"}]`
	if _, err := db.Exec(
		`INSERT INTO user_responses (user_id, responses) VALUES ($1, to_jsonb($2::text))`,
		id, legacy,
	); err != nil {
		t.Fatalf("seed legacy row: %v", err)
	}

	n, err := store.Append(ctx, responses.Owner{UserID: id}, record(1))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if n != 2 {
		t.Errorf("length = %d, want 2", n)
	}

	var kind string
	if err := db.QueryRow(`SELECT jsonb_typeof(responses) FROM user_responses WHERE user_id = $1`, id).Scan(&kind); err != nil {
		t.Fatalf("typeof: %v", err)
	}
	if kind != "array" {
		t.Errorf("stored log type = %q, want array", kind)
	}

	got, err := store.List(ctx, id)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].Scenario != "legacy" || got[1].ID != "rec-1" {
		t.Errorf("records = %+v", got)
	}
}

func TestRepositoryKeepsEmailWhenOmitted(t *testing.T) {
	db := testDB(t)
	store := responses.New(db, discard())
	ctx := context.Background()
	id := testUser(t, db)

	if _, err := store.Append(ctx, responses.Owner{UserID: id, Email: "a@example.com"}, record(1)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := store.Append(ctx, responses.Owner{UserID: id}, record(2)); err != nil {
		t.Fatalf("append: %v", err)
	}

	var email string
	if err := db.QueryRow(`SELECT email FROM user_responses WHERE user_id = $1`, id).Scan(&email); err != nil {
		t.Fatalf("email: %v", err)
	}
	if email != "a@example.com" {
		t.Errorf("email = %q, want a@example.com", email)
	}
}

func TestRepositoryConcurrentAppends(t *testing.T) {
	db := testDB(t)
	store := responses.New(db, discard())
	ctx := context.Background()
	owner := responses.Owner{UserID: testUser(t, db)}

	const writers = 10
	var g errgroup.Group
	for i := range writers {
		g.Go(func() error {
			_, err := store.Append(ctx, owner, record(i))
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := store.List(ctx, owner.UserID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != writers {
		t.Errorf("records: got %d, want %d", len(got), writers)
	}
}

func TestRepositoryRejectsEmptyOwner(t *testing.T) {
	db := testDB(t)
	store := responses.New(db, discard())

	if _, err := store.Append(context.Background(), responses.Owner{}, record(1)); !errors.Is(err, responses.ErrInvalidOwner) {
		t.Errorf("append error = %v, want ErrInvalidOwner", err)
	}
	if _, err := store.List(context.Background(), ""); !errors.Is(err, responses.ErrInvalidOwner) {
		t.Errorf("list error = %v, want ErrInvalidOwner", err)
	}
}

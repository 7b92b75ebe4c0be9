// Package testutil provides shared helpers for integration tests.
// SQLite helpers always run against a fresh file in the test's temp dir.
// PostgreSQL helpers skip automatically when TEST_DATABASE_URL is not set, so
// the suite never needs a running database server.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkordes/travel-journal/internal/repo"
)

// Backend names a store flavour for table-driven integration tests.
type Backend struct {
	Name string
	Open func(t *testing.T) *repo.Store
}

// Backends returns every store flavour the repo supports. The Postgres entry
// skips its subtest when TEST_DATABASE_URL is unset.
func Backends() []Backend {
	return []Backend{
		{Name: "sqlite", Open: NewSQLiteStore},
		{Name: "postgres", Open: NewPostgresStore},
	}
}

// NewSQLiteStore opens a migrated SQLite store backed by a new file in
// t.TempDir(). The store is closed automatically when the test finishes.
func NewSQLiteStore(t *testing.T) *repo.Store {
	t.Helper()
	return OpenSQLiteStore(t, filepath.Join(t.TempDir(), "journal.db"))
}

// OpenSQLiteStore opens (and migrates) the SQLite file at path. Opening the
// same path twice in one test simulates a process restart.
func OpenSQLiteStore(t *testing.T, path string) *repo.Store {
	t.Helper()
	return open(t, repo.DialectSQLite, path)
}

// NewPostgresStore opens a migrated store on the database named by
// TEST_DATABASE_URL, skipping the test if it is not set.
// Tests should isolate their writes with NewTxRepos.
func NewPostgresStore(t *testing.T) *repo.Store {
	t.Helper()
	return open(t, repo.DialectPostgres, RequireDSN(t))
}

// NewTxRepos opens a transaction on store and returns repositories bound to
// it. The transaction is rolled back when the test finishes, giving free
// per-test isolation without any manual cleanup.
func NewTxRepos(t *testing.T, store *repo.Store) repo.Repos {
	t.Helper()

	tx, err := store.DB().BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("testutil.NewTxRepos: begin: %v", err)
	}
	t.Cleanup(func() {
		// Rollback discards all changes made during the test; no cleanup SQL needed.
		_ = tx.Rollback()
	})
	return repo.NewRepos(tx)
}

// RequireDSN returns the TEST_DATABASE_URL environment variable value,
// skipping the test if it is not set.
func RequireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}
	return dsn
}

func open(t *testing.T, dialect repo.Dialect, dsn string) *repo.Store {
	t.Helper()
	ctx := context.Background()

	store, err := repo.Open(ctx, dialect, dsn)
	if err != nil {
		t.Fatalf("testutil: open %s store: %v", dialect, err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("testutil: migrate %s store: %v", dialect, err)
	}
	return store
}

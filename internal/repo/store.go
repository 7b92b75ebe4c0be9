// Package repo contains all database access logic for the Travel Journal.
// Each resource has its own file with an interface and a SQL implementation
// that runs unchanged on SQLite and PostgreSQL.
// No business logic lives here: only SQL and ownership sweeps.
package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers "sqlite" driver, pure go

	"github.com/pkordes/travel-journal/migrations"
)

// Dialect names the backing database engine.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// db is the minimal interface satisfied by *sql.DB, *sql.Conn, and *sql.Tx.
// Accepting this interface instead of *sql.DB directly lets the same repo run
// inside a transaction opened by Store.InTx, or inside a test transaction that
// is rolled back afterwards.
type db interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// txStarter is satisfied by *sql.DB. Multi-statement writes use it to open
// their own transaction when they are not already running inside one.
type txStarter interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Repos bundles one repository per entity kind, all bound to the same db handle.
type Repos struct {
	Trips        TripRepo
	Destinations DestinationRepo
	Activities   ActivityRepo
	Categories   CategoryRepo
	Tags         TagRepo
}

// NewRepos constructs every repository on top of the given handle.
// In production this is the Store's *sql.DB or a *sql.Tx from Store.InTx.
func NewRepos(db db) Repos {
	return Repos{
		Trips:        NewTripRepo(db),
		Destinations: NewDestinationRepo(db),
		Activities:   NewActivityRepo(db),
		Categories:   NewCategoryRepo(db),
		Tags:         NewTagRepo(db),
	}
}

// Store owns the database handle. It is the only thing callers pass around;
// there is no package-level connection.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// Open connects to the database named by dsn and verifies it is reachable.
// For SQLite, dsn is a file path; foreign keys are enabled and the pool is
// limited to a single connection so there is exactly one writer at a time.
func Open(ctx context.Context, dialect Dialect, dsn string) (*Store, error) {
	var (
		sqlDB *sql.DB
		err   error
	)
	switch dialect {
	case DialectSQLite:
		sqlDB, err = sql.Open("sqlite", sqliteDSN(dsn))
		if err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	case DialectPostgres:
		sqlDB, err = sql.Open("pgx", dsn)
	default:
		return nil, fmt.Errorf("repo.Open: unsupported dialect %q", dialect)
	}
	if err != nil {
		return nil, fmt.Errorf("repo.Open: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("repo.Open: ping: %w", err)
	}
	return NewStore(sqlDB, dialect), nil
}

// NewStore wraps an already-open *sql.DB.
func NewStore(sqlDB *sql.DB, dialect Dialect) *Store {
	return &Store{db: sqlDB, dialect: dialect}
}

// sqliteDSN turns a bare file path into a modernc DSN with the pragmas the
// schema relies on. DSNs that already carry options are used as given.
func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") || strings.Contains(path, "?") {
		return path
	}
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Migrate applies all pending schema migrations for the store's dialect.
func (s *Store) Migrate(ctx context.Context) error {
	provider, err := s.migrationProvider()
	if err != nil {
		return fmt.Errorf("repo.Store.Migrate: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("repo.Store.Migrate: up: %w", err)
	}
	return nil
}

func (s *Store) migrationProvider() (*goose.Provider, error) {
	var (
		dialect goose.Dialect
		fsys    fs.FS
	)
	switch s.dialect {
	case DialectSQLite:
		dialect, fsys = goose.DialectSQLite3, migrations.SQLite()
	case DialectPostgres:
		dialect, fsys = goose.DialectPostgres, migrations.Postgres()
	default:
		return nil, fmt.Errorf("unsupported dialect %q", s.dialect)
	}
	return goose.NewProvider(dialect, s.db, fsys)
}

// Repos returns repositories bound directly to the connection pool.
// Single-statement reads are fine here; multi-statement writes still open
// their own transaction.
func (s *Store) Repos() Repos {
	return NewRepos(s.db)
}

// InTx runs fn with repositories bound to one transaction. The transaction
// commits when fn returns nil and rolls back otherwise, so a caller never
// observes a half-written entity or a partially applied cascade.
func (s *Store) InTx(ctx context.Context, fn func(Repos) error) error {
	return runInTx(ctx, s.db, func(tx db) error {
		return fn(NewRepos(tx))
	})
}

// DB exposes the underlying *sql.DB for integration testing hooks.
func (s *Store) DB() *sql.DB { return s.db }

// Dialect reports which engine the store is connected to.
func (s *Store) Dialect() Dialect { return s.dialect }

// Close releases the connection pool.
func (s *Store) Close() error { return s.db.Close() }

// runInTx runs fn in a transaction on s, committing only if fn succeeds.
func runInTx(ctx context.Context, s txStarter, fn func(db) error) (retErr error) {
	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				retErr = errors.Join(retErr, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// atomic runs fn inside a transaction unless d already is one.
func atomic(ctx context.Context, d db, fn func(db) error) error {
	if s, ok := d.(txStarter); ok {
		return runInTx(ctx, s, fn)
	}
	return fn(d)
}

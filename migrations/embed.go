// Package migrations embeds the SQL migration files so they can be used
// by the goose programmatic API in tests and at store startup.
// Each supported database has its own directory because column types differ.
package migrations

import (
	"embed"
	"io/fs"
)

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS

// SQLite returns the migrations for the SQLite schema.
func SQLite() fs.FS { return sub("sqlite") }

// Postgres returns the migrations for the PostgreSQL schema.
func Postgres() fs.FS { return sub("postgres") }

func sub(dir string) fs.FS {
	f, err := fs.Sub(FS, dir)
	if err != nil {
		// fs.Sub only fails on an invalid path, and dir is a constant.
		panic("migrations: " + err.Error())
	}
	return f
}

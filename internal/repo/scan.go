package repo

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/travel-journal/internal/domain"
)

// scanner is satisfied by both *sql.Row and *sql.Rows, allowing the scan
// helpers to be reused for both QueryRowContext and QueryContext calls.
type scanner interface {
	Scan(dest ...any) error
}

// nullDate scans a nullable date column. PostgreSQL DATE values arrive as
// time.Time through the pgx driver; SQLite stores them as YYYY-MM-DD text.
type nullDate struct {
	Time *time.Time
}

func (d *nullDate) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		d.Time = nil
		return nil
	case time.Time:
		t := domain.CivilDate(v)
		d.Time = &t
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("scan date: unsupported type %T", src)
	}
}

func (d *nullDate) parse(s string) error {
	if len(s) > len(domain.DateLayout) {
		s = s[:len(domain.DateLayout)]
	}
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return fmt.Errorf("scan date: %w", err)
	}
	d.Time = &t
	return nil
}

// dateArg converts an optional date into a query argument; nil becomes NULL.
func dateArg(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(domain.DateLayout)
}

// newID returns a time-ordered UUIDv7, so ORDER BY id lists rows in creation order.
func newID() (uuid.UUID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate id: %w", err)
	}
	return id, nil
}

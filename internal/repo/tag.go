package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/travel-journal/internal/domain"
)

// TagRepo defines the persistence operations for Tags.
// Trip membership lives in the trip_tags join table and is written by TripRepo.
type TagRepo interface {
	// GetOrCreate returns the tag with exactly this name (case-sensitive),
	// inserting it first if it does not exist. Lookup and insert run in one
	// transaction.
	GetOrCreate(ctx context.Context, name string) (domain.Tag, error)

	// GetByID retrieves a tag by primary key.
	// Returns domain.ErrNotFound if no tag with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Tag, error)

	// List returns all tags ordered by name.
	List(ctx context.Context) ([]domain.Tag, error)

	// ListByTrip returns the tags linked to a trip in the order they were attached.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Tag, error)
}

// sqlTagRepo is the SQL implementation of TagRepo.
type sqlTagRepo struct {
	db db
}

// NewTagRepo constructs a TagRepo backed by the provided db handle.
func NewTagRepo(db db) TagRepo {
	return &sqlTagRepo{db: db}
}

// GetOrCreate looks the name up and inserts it on a miss, inside one transaction.
func (r *sqlTagRepo) GetOrCreate(ctx context.Context, name string) (domain.Tag, error) {
	var result domain.Tag
	err := atomic(ctx, r.db, func(tx db) error {
		found, err := getTagByName(ctx, tx, name)
		if err == nil {
			result = found
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		id, err := newID()
		if err != nil {
			return err
		}
		const q = `
			INSERT INTO tags (id, name)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING`
		if _, err := tx.ExecContext(ctx, q, id, name); err != nil {
			return err
		}

		result, err = getTagByName(ctx, tx, name)
		return err
	})
	if err != nil {
		return domain.Tag{}, fmt.Errorf("repo.TagRepo.GetOrCreate: %w", err)
	}
	return result, nil
}

// GetByID retrieves a tag by primary key.
func (r *sqlTagRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Tag, error) {
	const q = `SELECT id, name FROM tags WHERE id = $1`

	result, err := scanTag(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return domain.Tag{}, fmt.Errorf("repo.TagRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all tags ordered by name.
func (r *sqlTagRepo) List(ctx context.Context) ([]domain.Tag, error) {
	const q = `SELECT id, name FROM tags ORDER BY name`

	tags, err := queryTags(ctx, r.db, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TagRepo.List: %w", err)
	}
	return tags, nil
}

// ListByTrip returns the tags linked to a trip, ordered by attach position.
func (r *sqlTagRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Tag, error) {
	tags, err := listTagsByTrip(ctx, r.db, tripID)
	if err != nil {
		return nil, fmt.Errorf("repo.TagRepo.ListByTrip: %w", err)
	}
	return tags, nil
}

func getTagByName(ctx context.Context, d db, name string) (domain.Tag, error) {
	const q = `SELECT id, name FROM tags WHERE name = $1`
	return scanTag(d.QueryRowContext(ctx, q, name))
}

func listTagsByTrip(ctx context.Context, d db, tripID uuid.UUID) ([]domain.Tag, error) {
	const q = `
		SELECT g.id, g.name
		FROM trip_tags tt
		JOIN tags g ON g.id = tt.tag_id
		WHERE tt.trip_id = $1
		ORDER BY tt.position`
	return queryTags(ctx, d, q, tripID)
}

// queryTags runs q and collects every row. Always returns a non-nil slice.
func queryTags(ctx context.Context, d db, q string, args ...any) ([]domain.Tag, error) {
	rows, err := d.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []domain.Tag{}
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return tags, nil
}

// scanTag maps a single database row into a domain.Tag.
func scanTag(s scanner) (domain.Tag, error) {
	var t domain.Tag
	if err := s.Scan(&t.ID, &t.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Tag{}, domain.ErrNotFound
		}
		return domain.Tag{}, err
	}
	return t, nil
}

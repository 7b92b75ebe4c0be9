package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/travel-journal/internal/domain"
)

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the SQL implementation,
// which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip together with its category reference and tag
	// links, and returns the persisted record with Category and Tags populated.
	// The referenced category and tags must already exist.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns all trips in creation order.
	List(ctx context.Context) ([]domain.Trip, error)

	// Update overwrites the scalar fields, category reference, and tag set of
	// an existing trip. Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip and its whole destination/activity subtree.
	// Categories and tags are left in place.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// sqlTripRepo is the SQL implementation of TripRepo.
type sqlTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db handle.
// In production pass the Store's *sql.DB or a *sql.Tx; in tests pass a *sql.Tx
// for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &sqlTripRepo{db: db}
}

const selectTrip = `
	SELECT t.id, t.name, t.start_date, t.end_date, t.notes, c.id, c.name
	FROM trips t
	LEFT JOIN categories c ON c.id = t.category_id`

// Create inserts the trip row and its tag links in one transaction.
func (r *sqlTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if trip.ID == uuid.Nil {
		id, err := newID()
		if err != nil {
			return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
		}
		trip.ID = id
	}

	var result domain.Trip
	err := atomic(ctx, r.db, func(tx db) error {
		const q = `
			INSERT INTO trips (id, name, start_date, end_date, notes, category_id)
			VALUES ($1, $2, $3, $4, $5, $6)`

		_, err := tx.ExecContext(ctx, q,
			trip.ID,
			trip.Name,
			dateArg(trip.StartDate), // nil becomes NULL
			dateArg(trip.EndDate),
			trip.Notes,
			categoryArg(trip),
		)
		if err != nil {
			return err
		}
		if err := linkTags(ctx, tx, trip.ID, trip.Tags); err != nil {
			return err
		}

		result, err = getTrip(ctx, tx, trip.ID)
		return err
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key, with its category and tags.
func (r *sqlTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := getTrip(ctx, r.db, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips in creation order. Tags for every trip are loaded
// with a single extra query rather than one per trip.
func (r *sqlTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	rows, err := r.db.QueryContext(ctx, selectTrip+` ORDER BY t.id`)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}
	// Close before the next query: a transaction has only one connection.
	rows.Close()

	tagsByTrip, err := listAllTripTags(ctx, r.db)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: tags: %w", err)
	}
	for i := range trips {
		if tags, ok := tagsByTrip[trips[i].ID]; ok {
			trips[i].Tags = tags
		}
	}
	return trips, nil
}

// Update overwrites a trip's fields and replaces its tag set.
func (r *sqlTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	var result domain.Trip
	err := atomic(ctx, r.db, func(tx db) error {
		const q = `
			UPDATE trips
			SET name        = $2,
			    start_date  = $3,
			    end_date    = $4,
			    notes       = $5,
			    category_id = $6
			WHERE id = $1`

		res, err := tx.ExecContext(ctx, q,
			trip.ID,
			trip.Name,
			dateArg(trip.StartDate),
			dateArg(trip.EndDate),
			trip.Notes,
			categoryArg(trip),
		)
		if err != nil {
			return err
		}
		if err := requireAffected(res); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM trip_tags WHERE trip_id = $1`, trip.ID); err != nil {
			return err
		}
		if err := linkTags(ctx, tx, trip.ID, trip.Tags); err != nil {
			return err
		}

		result, err = getTrip(ctx, tx, trip.ID)
		return err
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

// Delete sweeps the ownership tree bottom-up: activities, destinations, tag
// links, then the trip itself. All statements share one transaction, so a
// failure part way leaves the tree untouched.
func (r *sqlTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := atomic(ctx, r.db, func(tx db) error {
		sweep := []string{
			`DELETE FROM activities
			 WHERE destination_id IN (SELECT id FROM destinations WHERE trip_id = $1)`,
			`DELETE FROM destinations WHERE trip_id = $1`,
			`DELETE FROM trip_tags WHERE trip_id = $1`,
		}
		for _, q := range sweep {
			if _, err := tx.ExecContext(ctx, q, id); err != nil {
				return err
			}
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM trips WHERE id = $1`, id)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	return nil
}

// getTrip loads one trip row plus its tags.
func getTrip(ctx context.Context, d db, id uuid.UUID) (domain.Trip, error) {
	t, err := scanTrip(d.QueryRowContext(ctx, selectTrip+` WHERE t.id = $1`, id))
	if err != nil {
		return domain.Trip{}, err
	}
	tags, err := listTagsByTrip(ctx, d, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("tags: %w", err)
	}
	t.Tags = tags
	return t, nil
}

// linkTags writes one trip_tags row per distinct tag, keeping first-seen order.
func linkTags(ctx context.Context, d db, tripID uuid.UUID, tags []domain.Tag) error {
	const q = `
		INSERT INTO trip_tags (trip_id, tag_id, position)
		VALUES ($1, $2, $3)`

	seen := make(map[uuid.UUID]bool, len(tags))
	position := 0
	for _, tag := range tags {
		if seen[tag.ID] {
			continue
		}
		seen[tag.ID] = true
		if _, err := d.ExecContext(ctx, q, tripID, tag.ID, position); err != nil {
			return fmt.Errorf("link tag %s: %w", tag.ID, err)
		}
		position++
	}
	return nil
}

// listAllTripTags returns every trip's tags keyed by trip ID, each list in
// attach order.
func listAllTripTags(ctx context.Context, d db) (map[uuid.UUID][]domain.Tag, error) {
	const q = `
		SELECT tt.trip_id, g.id, g.name
		FROM trip_tags tt
		JOIN tags g ON g.id = tt.tag_id
		ORDER BY tt.trip_id, tt.position`

	rows, err := d.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]domain.Tag)
	for rows.Next() {
		var (
			tripID uuid.UUID
			tag    domain.Tag
		)
		if err := rows.Scan(&tripID, &tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out[tripID] = append(out[tripID], tag)
	}
	return out, rows.Err()
}

// categoryArg picks the category reference to store. An attached Category
// wins over a bare CategoryID.
func categoryArg(trip domain.Trip) uuid.NullUUID {
	switch {
	case trip.Category != nil:
		return uuid.NullUUID{UUID: trip.Category.ID, Valid: true}
	case trip.CategoryID != nil:
		return uuid.NullUUID{UUID: *trip.CategoryID, Valid: true}
	default:
		return uuid.NullUUID{}
	}
}

// requireAffected maps "zero rows touched" to domain.ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the nullable dates and the optional joined category.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t            domain.Trip
		start, end   nullDate
		categoryID   uuid.NullUUID
		categoryName sql.NullString
	)

	err := s.Scan(&t.ID, &t.Name, &start, &end, &t.Notes, &categoryID, &categoryName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.StartDate = start.Time
	t.EndDate = end.Time
	t.Tags = []domain.Tag{}
	if categoryID.Valid {
		id := categoryID.UUID
		t.CategoryID = &id
		t.Category = &domain.Category{ID: id, Name: categoryName.String}
	}
	return t, nil
}

package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/travel-journal/internal/domain"
)

// DestinationRepo defines the persistence operations for Destinations.
// Every destination belongs to exactly one trip; the repo does not check that
// the trip exists (the service does), but the foreign key rejects orphans.
type DestinationRepo interface {
	// Create inserts a new destination and returns the persisted record.
	Create(ctx context.Context, dest domain.Destination) (domain.Destination, error)

	// GetByID retrieves a single destination by its UUID.
	// Returns domain.ErrNotFound if no destination with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error)

	// List returns all destinations in creation order.
	List(ctx context.Context) ([]domain.Destination, error)

	// ListByTripID returns a trip's destinations in creation order.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error)

	// Update overwrites the mutable fields of a destination. The owning trip
	// never changes. Returns domain.ErrNotFound if the destination does not exist.
	Update(ctx context.Context, dest domain.Destination) (domain.Destination, error)

	// Delete removes a destination and its activities.
	// Returns domain.ErrNotFound if the destination does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// sqlDestinationRepo is the SQL implementation of DestinationRepo.
type sqlDestinationRepo struct {
	db db
}

// NewDestinationRepo constructs a DestinationRepo backed by the provided db handle.
func NewDestinationRepo(db db) DestinationRepo {
	return &sqlDestinationRepo{db: db}
}

const selectDestination = `
	SELECT id, trip_id, name, country, arrival_date, departure_date
	FROM destinations`

func (r *sqlDestinationRepo) Create(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	if dest.ID == uuid.Nil {
		id, err := newID()
		if err != nil {
			return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Create: %w", err)
		}
		dest.ID = id
	}

	const q = `
		INSERT INTO destinations (id, trip_id, name, country, arrival_date, departure_date)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, q,
		dest.ID,
		dest.TripID,
		dest.Name,
		dest.Country,
		dateArg(dest.ArrivalDate),
		dateArg(dest.DepartureDate),
	)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Create: %w", err)
	}

	result, err := r.GetByID(ctx, dest.ID)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Create: %w", err)
	}
	return result, nil
}

func (r *sqlDestinationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	row := r.db.QueryRowContext(ctx, selectDestination+` WHERE id = $1`, id)
	result, err := scanDestination(row)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *sqlDestinationRepo) List(ctx context.Context) ([]domain.Destination, error) {
	dests, err := r.query(ctx, selectDestination+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.List: %w", err)
	}
	return dests, nil
}

func (r *sqlDestinationRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error) {
	dests, err := r.query(ctx, selectDestination+` WHERE trip_id = $1 ORDER BY id`, tripID)
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.ListByTripID: %w", err)
	}
	return dests, nil
}

func (r *sqlDestinationRepo) Update(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	const q = `
		UPDATE destinations
		SET name           = $2,
		    country        = $3,
		    arrival_date   = $4,
		    departure_date = $5
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, q,
		dest.ID,
		dest.Name,
		dest.Country,
		dateArg(dest.ArrivalDate),
		dateArg(dest.DepartureDate),
	)
	if err == nil {
		err = requireAffected(res)
	}
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Update: %w", err)
	}

	result, err := r.GetByID(ctx, dest.ID)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes the destination's activities and then the destination, in
// one transaction.
func (r *sqlDestinationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := atomic(ctx, r.db, func(tx db) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM activities WHERE destination_id = $1`, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM destinations WHERE id = $1`, id)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
	if err != nil {
		return fmt.Errorf("repo.DestinationRepo.Delete: %w", err)
	}
	return nil
}

func (r *sqlDestinationRepo) query(ctx context.Context, q string, args ...any) ([]domain.Destination, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dests := []domain.Destination{}
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		dests = append(dests, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return dests, nil
}

// scanDestination maps a single database row into a domain.Destination.
func scanDestination(s scanner) (domain.Destination, error) {
	var (
		d                  domain.Destination
		arrival, departure nullDate
	)
	err := s.Scan(&d.ID, &d.TripID, &d.Name, &d.Country, &arrival, &departure)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Destination{}, domain.ErrNotFound
		}
		return domain.Destination{}, err
	}
	d.ArrivalDate = arrival.Time
	d.DepartureDate = departure.Time
	return d, nil
}

package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/travel-journal/internal/domain"
)

// ActivityRepo defines the persistence operations for Activities.
type ActivityRepo interface {
	// Create inserts a new activity and returns the persisted record.
	Create(ctx context.Context, act domain.Activity) (domain.Activity, error)

	// GetByID retrieves a single activity by its UUID.
	// Returns domain.ErrNotFound if no activity with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error)

	// List returns all activities in creation order.
	List(ctx context.Context) ([]domain.Activity, error)

	// ListByDestinationID returns a destination's activities in creation order.
	ListByDestinationID(ctx context.Context, destinationID uuid.UUID) ([]domain.Activity, error)

	// ListByTripID returns the activities of every destination of a trip,
	// grouped by destination and in creation order within each.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)

	// Update overwrites the mutable fields of an activity. The owning
	// destination never changes. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, act domain.Activity) (domain.Activity, error)

	// Delete removes an activity by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// sqlActivityRepo is the SQL implementation of ActivityRepo.
type sqlActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db handle.
func NewActivityRepo(db db) ActivityRepo {
	return &sqlActivityRepo{db: db}
}

const selectActivity = `
	SELECT a.id, a.destination_id, a.name, a.description, a.activity_date, a.cost
	FROM activities a`

func (r *sqlActivityRepo) Create(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	if act.ID == uuid.Nil {
		id, err := newID()
		if err != nil {
			return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
		}
		act.ID = id
	}

	const q = `
		INSERT INTO activities (id, destination_id, name, description, activity_date, cost)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, q,
		act.ID,
		act.DestinationID,
		act.Name,
		act.Description,
		dateArg(act.ActivityDate),
		act.Cost,
	)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}

	result, err := r.GetByID(ctx, act.ID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return result, nil
}

func (r *sqlActivityRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	row := r.db.QueryRowContext(ctx, selectActivity+` WHERE a.id = $1`, id)
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *sqlActivityRepo) List(ctx context.Context) ([]domain.Activity, error) {
	acts, err := r.query(ctx, selectActivity+` ORDER BY a.id`)
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.List: %w", err)
	}
	return acts, nil
}

func (r *sqlActivityRepo) ListByDestinationID(ctx context.Context, destinationID uuid.UUID) ([]domain.Activity, error) {
	acts, err := r.query(ctx, selectActivity+` WHERE a.destination_id = $1 ORDER BY a.id`, destinationID)
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByDestinationID: %w", err)
	}
	return acts, nil
}

func (r *sqlActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	const q = selectActivity + `
		JOIN destinations d ON d.id = a.destination_id
		WHERE d.trip_id = $1
		ORDER BY d.id, a.id`

	acts, err := r.query(ctx, q, tripID)
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: %w", err)
	}
	return acts, nil
}

func (r *sqlActivityRepo) Update(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	const q = `
		UPDATE activities
		SET name          = $2,
		    description   = $3,
		    activity_date = $4,
		    cost          = $5
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, q,
		act.ID,
		act.Name,
		act.Description,
		dateArg(act.ActivityDate),
		act.Cost,
	)
	if err == nil {
		err = requireAffected(res)
	}
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", err)
	}

	result, err := r.GetByID(ctx, act.ID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", err)
	}
	return result, nil
}

func (r *sqlActivityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err == nil {
		err = requireAffected(res)
	}
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	return nil
}

func (r *sqlActivityRepo) query(ctx context.Context, q string, args ...any) ([]domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	acts := []domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		acts = append(acts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return acts, nil
}

// scanActivity maps a single database row into a domain.Activity.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a    domain.Activity
		date nullDate
	)
	err := s.Scan(&a.ID, &a.DestinationID, &a.Name, &a.Description, &date, &a.Cost)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}
	a.ActivityDate = date.Time
	return a, nil
}

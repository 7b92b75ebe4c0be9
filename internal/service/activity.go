package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/travel-journal/internal/domain"
	"github.com/pkordes/travel-journal/internal/query"
	"github.com/pkordes/travel-journal/internal/repo"
)

// ActivityService implements business logic for Activity operations.
type ActivityService struct {
	store Transactor
}

// NewActivityService constructs an ActivityService backed by the provided store.
func NewActivityService(store Transactor) *ActivityService {
	return &ActivityService{store: store}
}

// Create validates act and inserts it under its destination.
// A zero Cost is stored as 0.0; negative costs are accepted.
// Returns domain.ErrNotFound if act.DestinationID does not name an existing destination.
func (s *ActivityService) Create(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	if err := validateName(act.Name); err != nil {
		return domain.Activity{}, err
	}

	var created domain.Activity
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		if _, err := r.Destinations.GetByID(ctx, act.DestinationID); err != nil {
			return fmt.Errorf("destination %s: %w", act.DestinationID, err)
		}
		var err error
		created, err = r.Activities.Create(ctx, act)
		return err
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single activity by ID.
func (s *ActivityService) GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	var act domain.Activity
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		var err error
		act, err = r.Activities.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.GetByID: %w", err)
	}
	return act, nil
}

// List returns every activity, in creation order.
func (s *ActivityService) List(ctx context.Context) ([]domain.Activity, error) {
	var acts []domain.Activity
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		var err error
		acts, err = r.Activities.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.List: %w", err)
	}
	if acts == nil {
		return []domain.Activity{}, nil
	}
	return acts, nil
}

// ListByDestination returns the activities of one destination.
// Returns domain.ErrNotFound if the destination does not exist.
func (s *ActivityService) ListByDestination(ctx context.Context, destinationID uuid.UUID) ([]domain.Activity, error) {
	var acts []domain.Activity
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		if _, err := r.Destinations.GetByID(ctx, destinationID); err != nil {
			return err
		}
		var err error
		acts, err = r.Activities.ListByDestinationID(ctx, destinationID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByDestination: %w", err)
	}
	if acts == nil {
		return []domain.Activity{}, nil
	}
	return acts, nil
}

// Search returns the activities matching every predicate set in f.
func (s *ActivityService) Search(ctx context.Context, f query.ActivityFilter) ([]domain.Activity, error) {
	acts, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.Search: %w", err)
	}
	return query.FilterActivities(acts, f), nil
}

// Update validates act and overwrites its mutable fields.
// Returns domain.ErrNotFound if the activity does not exist.
func (s *ActivityService) Update(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	if err := validateName(act.Name); err != nil {
		return domain.Activity{}, err
	}

	var updated domain.Activity
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		var err error
		updated, err = r.Activities.Update(ctx, act)
		return err
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes an activity. Returns domain.ErrNotFound if it does not exist.
func (s *ActivityService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		return r.Activities.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}

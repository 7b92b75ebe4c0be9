package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/travel-journal/internal/domain"
	"github.com/pkordes/travel-journal/internal/query"
	"github.com/pkordes/travel-journal/internal/repo"
)

// DestinationService implements business logic for Destination operations.
type DestinationService struct {
	store Transactor
}

// NewDestinationService constructs a DestinationService backed by the provided store.
func NewDestinationService(store Transactor) *DestinationService {
	return &DestinationService{store: store}
}

// Create validates dest and inserts it under its trip.
// Returns domain.ErrNotFound if dest.TripID does not name an existing trip.
func (s *DestinationService) Create(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	if err := validateName(dest.Name); err != nil {
		return domain.Destination{}, err
	}

	var created domain.Destination
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		if _, err := r.Trips.GetByID(ctx, dest.TripID); err != nil {
			return fmt.Errorf("trip %s: %w", dest.TripID, err)
		}
		var err error
		created, err = r.Destinations.Create(ctx, dest)
		return err
	})
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single destination by ID.
func (s *DestinationService) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	var dest domain.Destination
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		var err error
		dest, err = r.Destinations.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.GetByID: %w", err)
	}
	return dest, nil
}

// List returns every destination across all trips, in creation order.
func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	var dests []domain.Destination
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		var err error
		dests, err = r.Destinations.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("service.DestinationService.List: %w", err)
	}
	if dests == nil {
		return []domain.Destination{}, nil
	}
	return dests, nil
}

// ListByTrip returns the destinations of one trip.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *DestinationService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error) {
	var dests []domain.Destination
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		if _, err := r.Trips.GetByID(ctx, tripID); err != nil {
			return err
		}
		var err error
		dests, err = r.Destinations.ListByTripID(ctx, tripID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("service.DestinationService.ListByTrip: %w", err)
	}
	if dests == nil {
		return []domain.Destination{}, nil
	}
	return dests, nil
}

// Search returns the destinations whose name or country contains keyword,
// ignoring case.
func (s *DestinationService) Search(ctx context.Context, keyword string) ([]domain.Destination, error) {
	dests, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.DestinationService.Search: %w", err)
	}
	return query.SearchDestinations(dests, keyword), nil
}

// Update validates dest and overwrites its mutable fields.
// Returns domain.ErrNotFound if the destination does not exist.
func (s *DestinationService) Update(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	if err := validateName(dest.Name); err != nil {
		return domain.Destination{}, err
	}

	var updated domain.Destination
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		var err error
		updated, err = r.Destinations.Update(ctx, dest)
		return err
	})
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a destination and its activities.
// Returns domain.ErrNotFound if the destination does not exist.
func (s *DestinationService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		return r.Destinations.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("service.DestinationService.Delete: %w", err)
	}
	return nil
}

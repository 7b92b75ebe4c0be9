package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/travel-journal/internal/domain"
	"github.com/pkordes/travel-journal/internal/query"
	"github.com/pkordes/travel-journal/internal/repo"
)

// TripInput carries the caller-supplied fields of a trip. Category and tags
// are given by name and resolved with get-or-create.
type TripInput struct {
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
	Notes     string

	// CategoryName is trimmed; blank means "no category".
	CategoryName string

	// TagNames are trimmed; blank entries are skipped and repeats collapse.
	TagNames []string
}

// TripService implements business logic for Trip operations.
type TripService struct {
	store Transactor
}

// NewTripService constructs a TripService backed by the provided store.
func NewTripService(store Transactor) *TripService {
	return &TripService{store: store}
}

// Create validates the input, then resolves the category and tags and inserts
// the trip. Resolution and insert share one transaction: if the insert fails, no
// category or tag it would have created is left behind.
// Duplicate trip names are allowed. End-before-start is not rejected.
func (s *TripService) Create(ctx context.Context, in TripInput) (domain.Trip, error) {
	if err := validateName(in.Name); err != nil {
		return domain.Trip{}, err
	}

	var created domain.Trip
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		trip, err := resolveTrip(ctx, r, in)
		if err != nil {
			return err
		}
		created, err = r.Trips.Create(ctx, trip)
		return err
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single trip by ID, with its category and tags.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	var trip domain.Trip
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		var err error
		trip, err = r.Trips.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// List returns all trips in creation order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	var trips []domain.Trip
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		var err error
		trips, err = r.Trips.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Search returns the trips whose name or notes contain keyword, ignoring case.
func (s *TripService) Search(ctx context.Context, keyword string) ([]domain.Trip, error) {
	trips, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Search: %w", err)
	}
	return query.SearchTrips(trips, keyword), nil
}

// Update validates the input and replaces the trip's fields, category, and
// tag set. Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Update(ctx context.Context, id uuid.UUID, in TripInput) (domain.Trip, error) {
	if err := validateName(in.Name); err != nil {
		return domain.Trip{}, err
	}

	var updated domain.Trip
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		if _, err := r.Trips.GetByID(ctx, id); err != nil {
			return err
		}
		trip, err := resolveTrip(ctx, r, in)
		if err != nil {
			return err
		}
		trip.ID = id
		updated, err = r.Trips.Update(ctx, trip)
		return err
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a trip with all its destinations and their activities.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		return r.Trips.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// Detail loads a trip with its whole destination/activity subtree from one
// consistent snapshot.
func (s *TripService) Detail(ctx context.Context, id uuid.UUID) (domain.TripDetail, error) {
	var detail domain.TripDetail
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		trip, err := r.Trips.GetByID(ctx, id)
		if err != nil {
			return err
		}
		dests, err := r.Destinations.ListByTripID(ctx, id)
		if err != nil {
			return err
		}
		acts, err := r.Activities.ListByTripID(ctx, id)
		if err != nil {
			return err
		}
		detail = query.Assemble(trip, dests, acts)
		return nil
	})
	if err != nil {
		return domain.TripDetail{}, fmt.Errorf("service.TripService.Detail: %w", err)
	}
	return detail, nil
}

// Summary returns the derived statistics for a trip.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Summary(ctx context.Context, id uuid.UUID) (domain.TripSummary, error) {
	detail, err := s.Detail(ctx, id)
	if err != nil {
		return domain.TripSummary{}, fmt.Errorf("service.TripService.Summary: %w", err)
	}
	return query.Summarize(detail), nil
}

// resolveTrip turns the input into a domain.Trip, getting or creating its
// category and tags through r.
func resolveTrip(ctx context.Context, r repo.Repos, in TripInput) (domain.Trip, error) {
	trip := domain.Trip{
		Name:      in.Name,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Notes:     in.Notes,
		Tags:      []domain.Tag{},
	}

	if name := strings.TrimSpace(in.CategoryName); name != "" {
		category, err := r.Categories.GetOrCreate(ctx, name)
		if err != nil {
			return domain.Trip{}, err
		}
		trip.Category = &category
	}

	for _, name := range uniqueNames(in.TagNames) {
		tag, err := r.Tags.GetOrCreate(ctx, name)
		if err != nil {
			return domain.Trip{}, err
		}
		trip.Tags = append(trip.Tags, tag)
	}
	return trip, nil
}

// uniqueNames trims each name and drops blanks and repeats, keeping
// first-seen order.
func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

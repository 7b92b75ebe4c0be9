package service

import (
	"context"
	"fmt"

	"github.com/pkordes/travel-journal/internal/domain"
	"github.com/pkordes/travel-journal/internal/repo"
)

// SeedTripName names the trip created by SeedService.Seed.
const SeedTripName = "Europe Summer 2025"

// seedDestinations is the sample data set, one entry per destination.
var seedDestinations = []struct {
	name       string
	country    string
	activities []string
}{
	{name: "Paris", country: "France", activities: []string{"Visited the Louvre", "Climbed the Eiffel Tower"}},
	{name: "Rome", country: "Italy", activities: []string{"Colosseum Tour"}},
}

// SeedService loads a small sample journal.
type SeedService struct {
	store Transactor
}

// NewSeedService constructs a SeedService backed by the provided store.
func NewSeedService(store Transactor) *SeedService {
	return &SeedService{store: store}
}

// Seed inserts the sample trip with its destinations and activities in one
// transaction and returns the created trip. Running it twice creates a
// second copy, since trip names are not unique.
func (s *SeedService) Seed(ctx context.Context) (domain.Trip, error) {
	var trip domain.Trip
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		var err error
		trip, err = r.Trips.Create(ctx, domain.Trip{Name: SeedTripName, Tags: []domain.Tag{}})
		if err != nil {
			return err
		}
		for _, sd := range seedDestinations {
			dest, err := r.Destinations.Create(ctx, domain.Destination{
				TripID:  trip.ID,
				Name:    sd.name,
				Country: sd.country,
			})
			if err != nil {
				return err
			}
			for _, name := range sd.activities {
				if _, err := r.Activities.Create(ctx, domain.Activity{DestinationID: dest.ID, Name: name}); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.SeedService.Seed: %w", err)
	}
	return trip, nil
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-journal/internal/domain"
	"github.com/pkordes/travel-journal/internal/repo"
	"github.com/pkordes/travel-journal/internal/service"
)

func TestSeedService_Seed(t *testing.T) {
	var dests []domain.Destination
	actsByDest := map[string][]string{}
	destNames := map[uuid.UUID]string{}

	store := newFakeStore(repo.Repos{
		Trips: echoTrips(),
		Destinations: &mockDestinationRepo{
			create: func(_ context.Context, d domain.Destination) (domain.Destination, error) {
				d.ID = uuid.New()
				dests = append(dests, d)
				destNames[d.ID] = d.Name
				return d, nil
			},
		},
		Activities: &mockActivityRepo{
			create: func(_ context.Context, a domain.Activity) (domain.Activity, error) {
				name := destNames[a.DestinationID]
				actsByDest[name] = append(actsByDest[name], a.Name)
				return a, nil
			},
		},
	})
	svc := service.NewSeedService(store)

	trip, err := svc.Seed(context.Background())

	require.NoError(t, err)
	assert.Equal(t, service.SeedTripName, trip.Name)
	require.Len(t, dests, 2)
	assert.Equal(t, "France", dests[0].Country)
	assert.Equal(t, trip.ID, dests[1].TripID)
	assert.Equal(t, []string{"Visited the Louvre", "Climbed the Eiffel Tower"}, actsByDest["Paris"])
	assert.Equal(t, []string{"Colosseum Tour"}, actsByDest["Rome"])
	assert.Equal(t, 1, store.txs)
}

func TestSeedService_Seed_StopsOnError(t *testing.T) {
	boom := errors.New("insert failed")
	svc := service.NewSeedService(newFakeStore(repo.Repos{
		Trips: echoTrips(),
		Destinations: &mockDestinationRepo{
			create: func(_ context.Context, _ domain.Destination) (domain.Destination, error) {
				return domain.Destination{}, boom
			},
		},
		Activities: &mockActivityRepo{}, // must not be reached
	}))

	_, err := svc.Seed(context.Background())

	assert.ErrorIs(t, err, boom)
}

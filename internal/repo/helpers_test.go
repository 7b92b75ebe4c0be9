package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-journal/internal/domain"
	"github.com/pkordes/travel-journal/internal/repo"
	"github.com/pkordes/travel-journal/testutil"
)

// forEachBackend runs fn once per supported store, each time with repos bound
// to a transaction that is rolled back when the subtest finishes.
// The postgres subtest is skipped unless TEST_DATABASE_URL is set.
func forEachBackend(t *testing.T, fn func(t *testing.T, r repo.Repos)) {
	t.Helper()
	for _, b := range testutil.Backends() {
		t.Run(b.Name, func(t *testing.T) {
			store := b.Open(t)
			fn(t, testutil.NewTxRepos(t, store))
		})
	}
}

// tripFixture returns a domain.Trip with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func tripFixture() domain.Trip {
	return domain.Trip{
		Name:      "Summer Tour",
		StartDate: domain.DatePtr(2025, 6, 1),
		EndDate:   domain.DatePtr(2025, 6, 15),
		Notes:     "Test notes",
	}
}

// mustCreateTrip is a test helper that inserts a trip and fails the test if
// the insert does not succeed.
func mustCreateTrip(t *testing.T, r repo.Repos, trip domain.Trip) domain.Trip {
	t.Helper()
	got, err := r.Trips.Create(context.Background(), trip)
	require.NoError(t, err, "create trip")
	return got
}

// mustCreateDestination inserts a destination under trip.
func mustCreateDestination(t *testing.T, r repo.Repos, trip domain.Trip, name string) domain.Destination {
	t.Helper()
	got, err := r.Destinations.Create(context.Background(), domain.Destination{
		TripID:  trip.ID,
		Name:    name,
		Country: "France",
	})
	require.NoError(t, err, "create destination")
	return got
}

// mustCreateActivity inserts an activity with the given cost under dest.
func mustCreateActivity(t *testing.T, r repo.Repos, dest domain.Destination, name string, cost float64) domain.Activity {
	t.Helper()
	got, err := r.Activities.Create(context.Background(), domain.Activity{
		DestinationID: dest.ID,
		Name:          name,
		Cost:          cost,
	})
	require.NoError(t, err, "create activity")
	return got
}

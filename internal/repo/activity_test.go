package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-journal/internal/domain"
	"github.com/pkordes/travel-journal/internal/repo"
)

func TestActivityRepo_Create(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		trip := mustCreateTrip(t, r, tripFixture())
		dest := mustCreateDestination(t, r, trip, "Paris")
		input := domain.Activity{
			DestinationID: dest.ID,
			Name:          "Visited the Louvre",
			Description:   "Mona Lisa",
			ActivityDate:  domain.DatePtr(2025, 6, 3),
			Cost:          17.5,
		}

		got, err := r.Activities.Create(context.Background(), input)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, got.ID)
		assert.Equal(t, dest.ID, got.DestinationID)
		assert.Equal(t, "Visited the Louvre", got.Name)
		assert.Equal(t, "Mona Lisa", got.Description)
		assert.Equal(t, "2025-06-03", domain.FormatDate(got.ActivityDate))
		assert.InDelta(t, 17.5, got.Cost, 1e-9)
	})
}

func TestActivityRepo_Create_DefaultsAndNegativeCost(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		trip := mustCreateTrip(t, r, tripFixture())
		dest := mustCreateDestination(t, r, trip, "Paris")

		free := mustCreateActivity(t, r, dest, "Walk", 0)
		refund := mustCreateActivity(t, r, dest, "Refund", -12.5)

		assert.Zero(t, free.Cost)
		assert.Nil(t, free.ActivityDate)
		assert.Equal(t, "", free.Description)
		assert.InDelta(t, -12.5, refund.Cost, 1e-9, "negative costs are stored as given")
	})
}

func TestActivityRepo_GetByID_NotFound(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		_, err := r.Activities.GetByID(context.Background(), uuid.New())

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestActivityRepo_Lists(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		ctx := context.Background()
		trip := mustCreateTrip(t, r, tripFixture())
		other := mustCreateTrip(t, r, tripFixture())
		paris := mustCreateDestination(t, r, trip, "Paris")
		rome := mustCreateDestination(t, r, trip, "Rome")
		oslo := mustCreateDestination(t, r, other, "Oslo")

		mustCreateActivity(t, r, paris, "Louvre", 20)
		mustCreateActivity(t, r, rome, "Colosseum", 18)
		mustCreateActivity(t, r, oslo, "Fjord", 90)
		mustCreateActivity(t, r, paris, "Eiffel Tower", 30)

		byDest, err := r.Activities.ListByDestinationID(ctx, paris.ID)
		require.NoError(t, err)
		require.Len(t, byDest, 2)
		assert.Equal(t, "Louvre", byDest[0].Name)
		assert.Equal(t, "Eiffel Tower", byDest[1].Name)

		byTrip, err := r.Activities.ListByTripID(ctx, trip.ID)
		require.NoError(t, err)
		var names []string
		for _, a := range byTrip {
			names = append(names, a.Name)
		}
		assert.Equal(t, []string{"Louvre", "Eiffel Tower", "Colosseum"}, names, "grouped by destination")

		all, err := r.Activities.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})
}

func TestActivityRepo_Update(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		trip := mustCreateTrip(t, r, tripFixture())
		dest := mustCreateDestination(t, r, trip, "Paris")
		act := mustCreateActivity(t, r, dest, "Louvre", 20)

		act.Cost = 25
		act.Description = "Skip-the-line ticket"

		got, err := r.Activities.Update(context.Background(), act)

		require.NoError(t, err)
		assert.InDelta(t, 25, got.Cost, 1e-9)
		assert.Equal(t, "Skip-the-line ticket", got.Description)
		assert.Equal(t, dest.ID, got.DestinationID)
	})
}

func TestActivityRepo_Update_NotFound(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		_, err := r.Activities.Update(context.Background(), domain.Activity{ID: uuid.New(), Name: "Ghost"})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestActivityRepo_Delete(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		ctx := context.Background()
		trip := mustCreateTrip(t, r, tripFixture())
		dest := mustCreateDestination(t, r, trip, "Paris")
		act := mustCreateActivity(t, r, dest, "Louvre", 20)

		require.NoError(t, r.Activities.Delete(ctx, act.ID))

		_, err := r.Activities.GetByID(ctx, act.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = r.Destinations.GetByID(ctx, dest.ID)
		assert.NoError(t, err, "deleting a child never touches its parent")
	})
}

func TestActivityRepo_Delete_NotFound(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		err := r.Activities.Delete(context.Background(), uuid.New())

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

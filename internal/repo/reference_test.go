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

// ---- Categories ------------------------------------------------------------

func TestCategoryRepo_GetOrCreate_Idempotent(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		ctx := context.Background()

		first, err := r.Categories.GetOrCreate(ctx, "Family")
		require.NoError(t, err)
		second, err := r.Categories.GetOrCreate(ctx, "Family")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID, "same name must return the same category")

		all, err := r.Categories.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1, "exactly one category named Family")
	})
}

func TestCategoryRepo_GetOrCreate_CaseSensitive(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		ctx := context.Background()

		upper, err := r.Categories.GetOrCreate(ctx, "Work")
		require.NoError(t, err)
		lower, err := r.Categories.GetOrCreate(ctx, "work")
		require.NoError(t, err)

		assert.NotEqual(t, upper.ID, lower.ID)
	})
}

func TestCategoryRepo_GetOrCreate_EmptyName(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		// Blank input is the caller's concern; the resolver accepts it.
		got, err := r.Categories.GetOrCreate(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, "", got.Name)
	})
}

func TestCategoryRepo_GetByName_NotFound(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		_, err := r.Categories.GetByName(context.Background(), "Nope")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCategoryRepo_List_OrderedByName(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		ctx := context.Background()
		for _, name := range []string{"Work", "Honeymoon", "Vacation"} {
			_, err := r.Categories.GetOrCreate(ctx, name)
			require.NoError(t, err)
		}

		got, err := r.Categories.List(ctx)

		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Honeymoon", got[0].Name)
		assert.Equal(t, "Vacation", got[1].Name)
		assert.Equal(t, "Work", got[2].Name)
	})
}

// ---- Tags ------------------------------------------------------------------

func TestTagRepo_GetOrCreate_Idempotent(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		ctx := context.Background()

		first, err := r.Tags.GetOrCreate(ctx, "Family")
		require.NoError(t, err)
		second, err := r.Tags.GetOrCreate(ctx, "Family")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID, "same name must return the same tag")
		assert.Equal(t, "Family", second.Name)

		all, err := r.Tags.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestTagRepo_GetByID_NotFound(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		_, err := r.Tags.GetByID(context.Background(), uuid.New())

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestTagRepo_ListByTrip(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repo.Repos) {
		ctx := context.Background()
		beach, err := r.Tags.GetOrCreate(ctx, "beach")
		require.NoError(t, err)
		adventure, err := r.Tags.GetOrCreate(ctx, "adventure")
		require.NoError(t, err)

		input := tripFixture()
		input.Tags = []domain.Tag{beach, adventure}
		trip := mustCreateTrip(t, r, input)

		got, err := r.Tags.ListByTrip(ctx, trip.ID)

		require.NoError(t, err)
		assert.Equal(t, []domain.Tag{beach, adventure}, got)
	})
}

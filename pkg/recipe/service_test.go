package recipe

import (
	"context"
	"testing"
	"time"

	"github.com/stashly/stashly/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = user.WithUser(context.Background(), user.User{Id: 1, Username: "test_user"})

var repoStub = NewStubRepository()

var service Service

func setup(t *testing.T) func() {
	service = NewService(repoStub)
	return func() {
		t.Log("Teardown after test")
		repoStub.Cleanup()
	}
}

func TestServiceImpl_Create(t *testing.T) {
	t.Run("should create a recipe", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Recipe{
			Name:        "Spaghetti bolognese",
			Ingredients: []string{"spaghetti", "beef mince", "passata"},
			Tags:        []string{"dinner", "family"},
		})

		assert.NoError(t, err)
		assert.NotZero(t, created.Id)
	})

	t.Run("should reject an unnamed recipe", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Create(ctx, Recipe{Ingredients: []string{"eggs"}})

		assert.Error(t, err)
	})
}

func TestServiceImpl_ReplaceWeekPlan(t *testing.T) {
	t.Run("should replace the plan for the week of the given date", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given a Wednesday
		date := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
		recipe, err := service.Create(ctx, Recipe{Name: "Spaghetti bolognese"})
		require.NoError(t, err)

		// when
		entries, err := service.ReplaceWeekPlan(ctx, date, []MealPlanEntry{
			{Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Slot: SlotDinner, RecipeId: recipe.Id},
			{Date: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), Slot: SlotLunch, RecipeId: recipe.Id},
		})

		// then
		assert.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, SlotDinner, entries[0].Slot)

		// and the same week is returned for any day inside it
		sunday := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
		week, err := service.WeekPlan(ctx, sunday)
		assert.NoError(t, err)
		assert.Len(t, week, 2)
	})

	t.Run("should reject an entry outside the week", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		date := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

		_, err := service.ReplaceWeekPlan(ctx, date, []MealPlanEntry{
			{Date: time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), Slot: SlotDinner, RecipeId: 1},
		})

		assert.Error(t, err)
	})

	t.Run("should reject an unknown slot", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		date := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

		_, err := service.ReplaceWeekPlan(ctx, date, []MealPlanEntry{
			{Date: date, Slot: Slot("brunch"), RecipeId: 1},
		})

		assert.Error(t, err)
	})
}

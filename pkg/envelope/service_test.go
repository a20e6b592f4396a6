package envelope

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stashly/stashly/internal/event_bus"
	"github.com/stashly/stashly/internal/utils"
	"github.com/stashly/stashly/pkg/paycycle"
	"github.com/stashly/stashly/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = user.WithUser(context.Background(), user.User{
	Id:       1,
	Username: "test_user",
	Settings: user.Settings{
		PayFrequency: paycycle.PayFortnightly,
	},
})

var repoStub = NewStubRepository()

var clock = &utils.MockClock{FixedNow: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}

var service Service

func setup(t *testing.T) func() {
	service = NewService(repoStub, event_bus.NewEventBus(), clock)
	return func() {
		t.Log("Teardown after test")
		repoStub.Cleanup()
	}
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestServiceImpl_Create(t *testing.T) {
	t.Run("should create an envelope at the end of the ordering", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		first, err := service.Create(ctx, Envelope{Name: "Groceries"})
		require.NoError(t, err)

		// when
		second, err := service.Create(ctx, Envelope{Name: "Rent"})

		// then
		assert.NoError(t, err)
		assert.NotZero(t, second.Id)
		assert.Equal(t, first.Position+100, second.Position)
	})

	t.Run("should reject an unnamed envelope", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Create(ctx, Envelope{TargetAmount: d("100")})

		assert.Error(t, err)
	})

	t.Run("should reject custom weeks frequency without a week count", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Create(ctx, Envelope{
			Name:         "Car insurance",
			TargetAmount: d("120"),
			Frequency:    paycycle.BillCustomWeeks,
		})

		assert.ErrorIs(t, err, paycycle.ErrCustomWeeksRequired)
	})

	t.Run("should return error when context has no user", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Create(context.Background(), Envelope{Name: "Groceries"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get current user")
	})
}

func TestServiceImpl_GetAll(t *testing.T) {
	t.Run("should enrich envelopes with pay cycle amount, status and due progress", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		due := time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC)
		_, err := service.Create(ctx, Envelope{
			Name:          "Electricity",
			TargetAmount:  d("120"),
			CurrentAmount: d("90"),
			Frequency:     paycycle.BillQuarterly,
			NextDueDate:   &due,
		})
		require.NoError(t, err)

		// when
		views, err := service.GetAll(ctx)

		// then
		assert.NoError(t, err)
		require.Len(t, views, 1)
		// 120 quarterly = 480/year, fortnightly pay = 480/26
		assert.True(t, d("18.46").Equal(views[0].PayCycleAmount), "got %s", views[0].PayCycleAmount)
		assert.Equal(t, paycycle.StatusNeedsAttention, views[0].Status)
		assert.Equal(t, "Needs attention", views[0].StatusLabel)
		assert.Equal(t, 14, views[0].DueProgress.RemainingDays)
		assert.Equal(t, "14 days left", views[0].DueProgress.Label)
	})

	t.Run("should bucket a fully funded envelope as surplus", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Create(ctx, Envelope{
			Name:          "Holiday",
			TargetAmount:  d("100"),
			CurrentAmount: d("105"),
		})
		require.NoError(t, err)

		views, err := service.GetAll(ctx)

		assert.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, paycycle.StatusSurplus, views[0].Status)
	})
}

func TestServiceImpl_Update(t *testing.T) {
	t.Run("should update an existing envelope", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Envelope{Name: "Groceries", TargetAmount: d("400")})
		require.NoError(t, err)

		created.TargetAmount = d("450")
		updated, err := service.Update(ctx, created)

		assert.NoError(t, err)
		assert.True(t, d("450").Equal(updated.TargetAmount))
	})

	t.Run("should fail when the envelope does not exist", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Update(ctx, Envelope{Id: 42, Name: "Ghost"})

		assert.ErrorIs(t, err, ErrEnvelopeNotFound)
	})
}

func TestServiceImpl_MoveAfter(t *testing.T) {
	t.Run("should move an envelope between two others", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given positions 100, 200, 300
		first, err := service.Create(ctx, Envelope{Name: "A"})
		require.NoError(t, err)
		_, err = service.Create(ctx, Envelope{Name: "B"})
		require.NoError(t, err)
		third, err := service.Create(ctx, Envelope{Name: "C"})
		require.NoError(t, err)

		// when C is moved right after A
		ok, err := service.MoveAfter(ctx, third.Id, first.Id)

		// then it lands between A and B
		assert.NoError(t, err)
		assert.True(t, ok)
		views, err := service.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Equal(t, "A", views[0].Name)
		assert.Equal(t, "C", views[1].Name)
		assert.Equal(t, "B", views[2].Name)
	})

	t.Run("should fail for an unknown envelope", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Create(ctx, Envelope{Name: "A"})
		require.NoError(t, err)

		_, err = service.MoveAfter(ctx, 42, 0)

		assert.ErrorIs(t, err, ErrEnvelopeNotFound)
	})
}

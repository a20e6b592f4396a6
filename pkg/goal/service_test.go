package goal

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

var service *ServiceImpl

func setup(t *testing.T) func() {
	service = NewService(repoStub, clock)
	return func() {
		t.Log("Teardown after test")
		repoStub.Cleanup()
	}
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestServiceImpl_Create(t *testing.T) {
	t.Run("should create a goal", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Goal{Name: "New car", TargetAmount: d("8000")})

		assert.NoError(t, err)
		assert.NotZero(t, created.Id)
	})

	t.Run("should reject an unnamed goal", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Create(ctx, Goal{TargetAmount: d("8000")})

		assert.Error(t, err)
	})
}

func TestServiceImpl_Get(t *testing.T) {
	t.Run("should spread the remainder over the pays before the target date", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given 56 days away, fortnightly pay = 4 pays left
		target := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
		created, err := service.Create(ctx, Goal{
			Name:          "Holiday",
			TargetAmount:  d("1000"),
			CurrentAmount: d("600"),
			TargetDate:    &target,
		})
		require.NoError(t, err)

		// when
		view, err := service.Get(ctx, created.Id)

		// then 400 remaining over 4 pays
		assert.NoError(t, err)
		assert.True(t, d("100").Equal(view.RequiredPerPay), "got %s", view.RequiredPerPay)
		assert.Equal(t, 56, view.DueProgress.RemainingDays)
	})

	t.Run("should ask for the whole remainder when the target date has passed", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		target := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		created, err := service.Create(ctx, Goal{
			Name:          "Overdue",
			TargetAmount:  d("500"),
			CurrentAmount: d("200"),
			TargetDate:    &target,
		})
		require.NoError(t, err)

		view, err := service.Get(ctx, created.Id)

		assert.NoError(t, err)
		assert.True(t, d("300").Equal(view.RequiredPerPay), "got %s", view.RequiredPerPay)
		assert.Equal(t, 100, view.DueProgress.Progress)
	})

	t.Run("should require nothing further once the target is reached", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Goal{
			Name:          "Done",
			TargetAmount:  d("500"),
			CurrentAmount: d("520"),
		})
		require.NoError(t, err)

		view, err := service.Get(ctx, created.Id)

		assert.NoError(t, err)
		assert.True(t, view.RequiredPerPay.IsZero())
		assert.Equal(t, paycycle.StatusSurplus, view.Status)
	})

	t.Run("should report a missing goal", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Get(ctx, 999)

		assert.ErrorIs(t, err, ErrGoalNotFound)
	})
}

func TestServiceImpl_SubscribeToTransactions(t *testing.T) {
	t.Run("should follow envelope movements on linked goals", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		bus := event_bus.NewEventBus()
		service.SubscribeToTransactions(bus)

		created, err := service.Create(ctx, Goal{
			Name:          "Emergency fund",
			EnvelopeId:    10,
			TargetAmount:  d("1000"),
			CurrentAmount: d("100"),
		})
		require.NoError(t, err)

		err = bus.Publish(event_bus.NewEvent(ctx, event_bus.TransactionCreatedType, event_bus.TransactionCreated{
			TransactionId: 1,
			EnvelopeId:    10,
			Amount:        d("50"),
		}))
		require.NoError(t, err)

		view, err := service.Get(ctx, created.Id)
		assert.NoError(t, err)
		assert.True(t, d("150").Equal(view.CurrentAmount), "got %s", view.CurrentAmount)
	})

	t.Run("should adjust both sides of a transfer", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		bus := event_bus.NewEventBus()
		service.SubscribeToTransactions(bus)

		source, err := service.Create(ctx, Goal{Name: "Source", EnvelopeId: 10, TargetAmount: d("100"), CurrentAmount: d("80")})
		require.NoError(t, err)
		destination, err := service.Create(ctx, Goal{Name: "Target", EnvelopeId: 20, TargetAmount: d("100"), CurrentAmount: d("10")})
		require.NoError(t, err)

		// transfer of 30 out of envelope 10 into envelope 20
		err = bus.Publish(event_bus.NewEvent(ctx, event_bus.TransactionCreatedType, event_bus.TransactionCreated{
			TransactionId:     2,
			EnvelopeId:        10,
			CounterEnvelopeId: 20,
			Amount:            d("-30"),
		}))
		require.NoError(t, err)

		sourceView, err := service.Get(ctx, source.Id)
		require.NoError(t, err)
		destinationView, err := service.Get(ctx, destination.Id)
		require.NoError(t, err)
		assert.True(t, d("50").Equal(sourceView.CurrentAmount), "got %s", sourceView.CurrentAmount)
		assert.True(t, d("40").Equal(destinationView.CurrentAmount), "got %s", destinationView.CurrentAmount)
	})
}

package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stashly/stashly/internal/event_bus"
	"github.com/stashly/stashly/internal/utils"
	"github.com/stashly/stashly/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = user.WithUser(context.Background(), user.User{Id: 1, Username: "test_user"})

var repoStub = NewStubRepository()

var clock = &utils.MockClock{FixedNow: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}

var service Service

func setup(t *testing.T) func() {
	repoStub.EnvelopeBalances[10] = d("100")
	repoStub.EnvelopeBalances[20] = d("50")
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
	t.Run("should credit the envelope on a deposit", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Transaction{EnvelopeId: 10, Amount: d("25.50"), Kind: KindDeposit})

		assert.NoError(t, err)
		assert.NotZero(t, created.Id)
		assert.Equal(t, clock.FixedNow, created.OccurredAt)
		assert.True(t, d("125.50").Equal(repoStub.EnvelopeBalances[10]))
	})

	t.Run("should debit the envelope on a withdrawal", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Create(ctx, Transaction{EnvelopeId: 10, Amount: d("30"), Kind: KindWithdrawal})

		assert.NoError(t, err)
		assert.True(t, d("70").Equal(repoStub.EnvelopeBalances[10]))
	})

	t.Run("should move money between envelopes on a transfer", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Create(ctx, Transaction{
			EnvelopeId:        10,
			CounterEnvelopeId: 20,
			Amount:            d("40"),
			Kind:              KindTransfer,
		})

		assert.NoError(t, err)
		assert.True(t, d("60").Equal(repoStub.EnvelopeBalances[10]))
		assert.True(t, d("90").Equal(repoStub.EnvelopeBalances[20]))
	})

	t.Run("should reject a non-positive amount", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Create(ctx, Transaction{EnvelopeId: 10, Amount: d("0"), Kind: KindDeposit})

		assert.Error(t, err)
	})

	t.Run("should reject a transfer onto itself", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Create(ctx, Transaction{
			EnvelopeId:        10,
			CounterEnvelopeId: 10,
			Amount:            d("5"),
			Kind:              KindTransfer,
		})

		assert.Error(t, err)
	})

	t.Run("should fail when the envelope does not exist", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Create(ctx, Transaction{EnvelopeId: 999, Amount: d("5"), Kind: KindDeposit})

		assert.ErrorIs(t, err, ErrEnvelopeMissing)
	})
}

func TestServiceImpl_Delete(t *testing.T) {
	t.Run("should reverse the balance effect", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Transaction{EnvelopeId: 10, Amount: d("25"), Kind: KindDeposit})
		require.NoError(t, err)
		require.True(t, d("125").Equal(repoStub.EnvelopeBalances[10]))

		ok, err := service.Delete(ctx, created.Id)

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, d("100").Equal(repoStub.EnvelopeBalances[10]))
	})

	t.Run("should report a missing transaction", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		ok, err := service.Delete(ctx, 999)

		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestServiceImpl_GetAll(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	// given
	_, err := service.Create(ctx, Transaction{EnvelopeId: 10, Amount: d("10"), Kind: KindDeposit,
		OccurredAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	_, err = service.Create(ctx, Transaction{EnvelopeId: 20, Amount: d("20"), Kind: KindDeposit,
		OccurredAt: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	_, err = service.Create(ctx, Transaction{EnvelopeId: 10, Amount: d("30"), Kind: KindWithdrawal,
		OccurredAt: time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	// when filtering by envelope
	transactions, err := service.GetAll(ctx, Filter{EnvelopeId: 10})

	// then newest first
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, KindWithdrawal, transactions[0].Kind)
	assert.Equal(t, KindDeposit, transactions[1].Kind)

	// when filtering by window
	from := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)
	transactions, err = service.GetAll(ctx, Filter{From: &from, To: &to})

	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, 20, transactions[0].EnvelopeId)
}

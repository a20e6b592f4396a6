package account

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
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
	t.Run("should create an account and stamp the balance time", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Account{Name: "Everyday", Kind: KindChecking, Balance: d("1250.55")})

		assert.NoError(t, err)
		assert.NotZero(t, created.Id)
		assert.Equal(t, clock.FixedNow, created.BalanceAsOf)
	})

	t.Run("should default the kind to checking", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Account{Name: "Everyday"})

		assert.NoError(t, err)
		assert.Equal(t, KindChecking, created.Kind)
	})

	t.Run("should reject an unknown kind", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Create(ctx, Account{Name: "Everyday", Kind: Kind("offshore")})

		assert.Error(t, err)
	})
}

func TestServiceImpl_TotalBalance(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	// given
	_, err := service.Create(ctx, Account{Name: "Everyday", Kind: KindChecking, Balance: d("1000")})
	require.NoError(t, err)
	_, err = service.Create(ctx, Account{Name: "Savings", Kind: KindSavings, Balance: d("5000")})
	require.NoError(t, err)
	_, err = service.Create(ctx, Account{Name: "Credit card", Kind: KindCredit, Balance: d("750")})
	require.NoError(t, err)

	// when
	total, err := service.TotalBalance(ctx)

	// then credit balances count against the total
	assert.NoError(t, err)
	assert.True(t, d("5250").Equal(total), "got %s", total)
}

package user

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stashly/stashly/pkg/paycycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRepoStub = NewStubUserRepo()

var service Service

func setup(t *testing.T) func() {
	service = NewUserService(userRepoStub)
	return func() {
		t.Log("Teardown after test")
		userRepoStub.Cleanup()
	}
}

func TestUserServiceImpl_CreateUser(t *testing.T) {
	t.Run("should create a user and assign a uid", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.CreateUser(context.Background(), User{
			Username:    "casey",
			DisplayName: "Casey",
			Settings: Settings{
				PayFrequency: paycycle.PayFortnightly,
				PayAmount:    decimal.RequireFromString("2500"),
			},
		})

		// then
		assert.NoError(t, err)
		assert.NotZero(t, created.Id)
		assert.NotEmpty(t, created.Uid)
		assert.Equal(t, paycycle.PayFortnightly, created.Settings.PayFrequency)
	})

	t.Run("should keep a uid provided by the caller", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.CreateUser(context.Background(), User{Username: "casey", Uid: "fixed-uid"})

		assert.NoError(t, err)
		assert.Equal(t, "fixed-uid", created.Uid)
	})
}

func TestUserServiceImpl_GetCurrentUser(t *testing.T) {
	t.Run("should return the user from the request context", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.CreateUser(context.Background(), User{Username: "casey"})
		require.NoError(t, err)
		ctx := WithUser(context.Background(), created)

		// when
		current, err := service.GetCurrentUser(ctx)

		// then
		assert.NoError(t, err)
		assert.Equal(t, created.Id, current.Id)
	})

	t.Run("should return error when context has no user", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.GetCurrentUser(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get current user")
	})
}

func TestUserServiceImpl_UpdateUser(t *testing.T) {
	t.Run("should update settings of the current user", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.CreateUser(context.Background(), User{Username: "casey"})
		require.NoError(t, err)
		ctx := WithUser(context.Background(), created)

		created.Settings.PayFrequency = paycycle.PayWeekly
		created.Settings.Currency = "AUD"
		updated, err := service.UpdateUser(ctx, created)

		assert.NoError(t, err)
		assert.Equal(t, paycycle.PayWeekly, updated.Settings.PayFrequency)
		assert.Equal(t, "AUD", updated.Settings.Currency)
	})
}

func TestUserServiceImpl_IsUsernameAvailable(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	_, err := service.CreateUser(context.Background(), User{Username: "taken"})
	require.NoError(t, err)

	available, err := service.IsUsernameAvailable(context.Background(), "taken")
	assert.NoError(t, err)
	assert.False(t, available)

	available, err = service.IsUsernameAvailable(context.Background(), "free")
	assert.NoError(t, err)
	assert.True(t, available)
}

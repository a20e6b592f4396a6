package kids

import (
	"context"
	"testing"

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

func TestServiceImpl_CompleteChore(t *testing.T) {
	t.Run("should award the chore points to the child", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		child, err := service.CreateChild(ctx, Child{Name: "Mia"})
		require.NoError(t, err)
		chore, err := service.CreateChore(ctx, Chore{ChildId: child.Id, Name: "Dishes", Points: 10})
		require.NoError(t, err)

		// when
		completed, err := service.CompleteChore(ctx, chore.Id)

		// then
		assert.NoError(t, err)
		assert.True(t, completed.Done)
		updated, err := repoStub.GetChild(ctx, 1, child.Id)
		require.NoError(t, err)
		assert.Equal(t, 10, updated.Points)
	})

	t.Run("should not award points twice", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		child, err := service.CreateChild(ctx, Child{Name: "Mia"})
		require.NoError(t, err)
		chore, err := service.CreateChore(ctx, Chore{ChildId: child.Id, Name: "Dishes", Points: 10})
		require.NoError(t, err)
		_, err = service.CompleteChore(ctx, chore.Id)
		require.NoError(t, err)

		_, err = service.CompleteChore(ctx, chore.Id)

		assert.ErrorIs(t, err, ErrChoreAlreadyDone)
		updated, err := repoStub.GetChild(ctx, 1, child.Id)
		require.NoError(t, err)
		assert.Equal(t, 10, updated.Points)
	})

	t.Run("should reject a chore for an unknown child", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.CreateChore(ctx, Chore{ChildId: 999, Name: "Dishes", Points: 10})

		assert.ErrorIs(t, err, ErrChildNotFound)
	})
}

func TestServiceImpl_RedeemReward(t *testing.T) {
	t.Run("should spend points on a reward", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		child, err := service.CreateChild(ctx, Child{Name: "Mia", Points: 50})
		require.NoError(t, err)
		reward, err := service.CreateReward(ctx, Reward{Name: "Movie night", Cost: 30})
		require.NoError(t, err)

		// when
		updated, err := service.RedeemReward(ctx, reward.Id, child.Id)

		// then
		assert.NoError(t, err)
		assert.Equal(t, 20, updated.Points)
	})

	t.Run("should refuse a reward the child cannot afford", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		child, err := service.CreateChild(ctx, Child{Name: "Mia", Points: 10})
		require.NoError(t, err)
		reward, err := service.CreateReward(ctx, Reward{Name: "Movie night", Cost: 30})
		require.NoError(t, err)

		_, err = service.RedeemReward(ctx, reward.Id, child.Id)

		assert.ErrorIs(t, err, ErrNotEnoughPoints)
		unchanged, err := repoStub.GetChild(ctx, 1, child.Id)
		require.NoError(t, err)
		assert.Equal(t, 10, unchanged.Points)
	})

	t.Run("should report an unknown reward", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		child, err := service.CreateChild(ctx, Child{Name: "Mia"})
		require.NoError(t, err)

		_, err = service.RedeemReward(ctx, 999, child.Id)

		assert.ErrorIs(t, err, ErrRewardNotFound)
	})
}

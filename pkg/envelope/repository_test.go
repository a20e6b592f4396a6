package envelope

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stashly/stashly/internal/test_utils"
	"github.com/stashly/stashly/pkg/paycycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var db *pgxpool.Pool

func TestMain(m *testing.M) {
	var cleanup func()
	db, cleanup = test_utils.TestWithDB()
	defer cleanup()
	code := m.Run()
	os.Exit(code)
}

func setupTestRepository(t *testing.T, username string) (context.Context, Repository, int) {
	ctx := context.Background()
	repository := NewRepository(db)
	userId := test_utils.CreateTestUser(t, db, username)
	return ctx, repository, userId
}

func TestRepositoryImpl_Store(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t, "envelope_store")
	due := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	envelope := Envelope{
		Name:          "Car insurance",
		Icon:          "car",
		Color:         "#fca311",
		TargetAmount:  decimal.NewFromInt(840),
		CurrentAmount: decimal.NewFromInt(120),
		Frequency:     paycycle.BillAnnually,
		NextDueDate:   &due,
		Position:      1,
	}

	// when
	id, err := repo.Store(ctx, userId, envelope)
	require.NoError(t, err)

	// then
	stored, err := repo.Get(ctx, userId, id)
	require.NoError(t, err)
	assert.Equal(t, "Car insurance", stored.Name)
	assert.Equal(t, "#fca311", stored.Color)
	assert.True(t, stored.TargetAmount.Equal(decimal.NewFromInt(840)))
	assert.True(t, stored.CurrentAmount.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, paycycle.BillAnnually, stored.Frequency)
	require.NotNil(t, stored.NextDueDate)
	assert.Equal(t, due, stored.NextDueDate.UTC())
	assert.Equal(t, 1, stored.Position)
}

func TestRepositoryImpl_GetAll_OrderedByPosition(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t, "envelope_get_all")
	_, err := repo.Store(ctx, userId, Envelope{Name: "Groceries", Frequency: paycycle.BillMonthly, Position: 2})
	require.NoError(t, err)
	_, err = repo.Store(ctx, userId, Envelope{Name: "Rent", Frequency: paycycle.BillMonthly, Position: 1})
	require.NoError(t, err)
	_, err = repo.Store(ctx, userId, Envelope{Name: "Holiday", Frequency: paycycle.BillAnnually, Position: 3})
	require.NoError(t, err)

	// when
	envelopes, err := repo.GetAll(ctx, userId)

	// then
	require.NoError(t, err)
	require.Len(t, envelopes, 3)
	assert.Equal(t, "Rent", envelopes[0].Name)
	assert.Equal(t, "Groceries", envelopes[1].Name)
	assert.Equal(t, "Holiday", envelopes[2].Name)
}

func TestRepositoryImpl_GetAll_DoesNotReturnOtherUsersEnvelopes(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t, "envelope_isolation_a")
	otherUserId := test_utils.CreateTestUser(t, db, "envelope_isolation_b")
	_, err := repo.Store(ctx, userId, Envelope{Name: "Mine", Frequency: paycycle.BillMonthly, Position: 1})
	require.NoError(t, err)
	_, err = repo.Store(ctx, otherUserId, Envelope{Name: "Theirs", Frequency: paycycle.BillMonthly, Position: 1})
	require.NoError(t, err)

	// when
	envelopes, err := repo.GetAll(ctx, userId)

	// then
	require.NoError(t, err)
	require.Len(t, envelopes, 1)
	assert.Equal(t, "Mine", envelopes[0].Name)
}

func TestRepositoryImpl_Get_NotFound(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t, "envelope_get_missing")

	// when
	_, err := repo.Get(ctx, userId, 99999)

	// then
	assert.ErrorIs(t, err, ErrEnvelopeNotFound)
}

func TestRepositoryImpl_Update(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t, "envelope_update")
	id, err := repo.Store(ctx, userId, Envelope{
		Name:          "Utilities",
		Frequency:     paycycle.BillMonthly,
		TargetAmount:  decimal.NewFromInt(200),
		CurrentAmount: decimal.NewFromInt(50),
		Position:      1,
	})
	require.NoError(t, err)

	// when
	ok, err := repo.Update(ctx, userId, Envelope{
		Id:           id,
		Name:         "Utilities & internet",
		Icon:         "bolt",
		Frequency:    paycycle.BillCustomWeeks,
		CustomWeeks:  6,
		TargetAmount: decimal.NewFromInt(260),
	})

	// then
	require.NoError(t, err)
	assert.True(t, ok)
	updated, err := repo.Get(ctx, userId, id)
	require.NoError(t, err)
	assert.Equal(t, "Utilities & internet", updated.Name)
	assert.Equal(t, paycycle.BillCustomWeeks, updated.Frequency)
	assert.Equal(t, 6, updated.CustomWeeks)
	assert.True(t, updated.TargetAmount.Equal(decimal.NewFromInt(260)))

	// current amount is owned by transactions and must survive an update
	assert.True(t, updated.CurrentAmount.Equal(decimal.NewFromInt(50)))
}

func TestRepositoryImpl_UpdatePosition(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t, "envelope_position")
	id, err := repo.Store(ctx, userId, Envelope{Name: "Gifts", Frequency: paycycle.BillAnnually, Position: 1})
	require.NoError(t, err)

	// when
	ok, err := repo.UpdatePosition(ctx, userId, Envelope{Id: id, Position: 7})

	// then
	require.NoError(t, err)
	assert.True(t, ok)
	moved, err := repo.Get(ctx, userId, id)
	require.NoError(t, err)
	assert.Equal(t, 7, moved.Position)
}

func TestRepositoryImpl_FindMaxPosition(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t, "envelope_max_position")

	// no envelopes yet
	max, err := repo.FindMaxPosition(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, 0, max)

	_, err = repo.Store(ctx, userId, Envelope{Name: "First", Frequency: paycycle.BillMonthly, Position: 4})
	require.NoError(t, err)
	_, err = repo.Store(ctx, userId, Envelope{Name: "Second", Frequency: paycycle.BillMonthly, Position: 9})
	require.NoError(t, err)

	// when
	max, err = repo.FindMaxPosition(ctx, userId)

	// then
	require.NoError(t, err)
	assert.Equal(t, 9, max)
}

func TestRepositoryImpl_Delete(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t, "envelope_delete")
	id, err := repo.Store(ctx, userId, Envelope{Name: "Old envelope", Frequency: paycycle.BillMonthly, Position: 1})
	require.NoError(t, err)

	// when
	ok, err := repo.Delete(ctx, userId, id)

	// then
	require.NoError(t, err)
	assert.True(t, ok)
	_, err = repo.Get(ctx, userId, id)
	assert.ErrorIs(t, err, ErrEnvelopeNotFound)

	// deleting again reports no rows affected
	ok, err = repo.Delete(ctx, userId, id)
	require.NoError(t, err)
	assert.False(t, ok)
}

package paycycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDueProgressAt(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	t.Run("nil due date", func(t *testing.T) {
		got := DueProgressAt(nil, now)
		assert.Equal(t, 0, got.Progress)
		assert.Equal(t, 0, got.RemainingDays)
		assert.Equal(t, "No due date", got.Label)
		assert.Empty(t, got.Formatted)
	})

	t.Run("due today", func(t *testing.T) {
		due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		got := DueProgressAt(&due, now)
		assert.Equal(t, 100, got.Progress)
		assert.Equal(t, 0, got.RemainingDays)
		assert.Equal(t, "Due today", got.Label)
		assert.Equal(t, "10/03/2025", got.Formatted)
	})

	t.Run("due in the future counts down from now", func(t *testing.T) {
		due := time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC)
		got := DueProgressAt(&due, now)
		assert.Equal(t, 14, got.RemainingDays)
		assert.Equal(t, "14 days left", got.Label)
		assert.Equal(t, 0, got.Progress)
		assert.Equal(t, "24/03/2025", got.Formatted)
	})

	t.Run("overdue clamps to due today", func(t *testing.T) {
		due := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)
		got := DueProgressAt(&due, now)
		assert.Equal(t, 100, got.Progress)
		assert.Equal(t, 0, got.RemainingDays)
		assert.Equal(t, "Due today", got.Label)
	})

	t.Run("time of day does not shift whole day counts", func(t *testing.T) {
		lateNow := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
		due := time.Date(2025, 3, 11, 0, 30, 0, 0, time.UTC)
		got := DueProgressAt(&due, lateNow)
		assert.Equal(t, 1, got.RemainingDays)
		assert.Equal(t, "1 days left", got.Label)
	})
}

package paycycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name     string
		snapshot FundingSnapshot
		want     StatusBucket
	}{
		{
			name:     "tracking flag wins over everything",
			snapshot: FundingSnapshot{IsTrackingOnly: true, IsSpending: true, TargetAmount: d("100"), CurrentAmount: d("0")},
			want:     StatusTracking,
		},
		{
			name:     "spending flag wins over ratio buckets",
			snapshot: FundingSnapshot{IsSpending: true, TargetAmount: d("100"), CurrentAmount: d("200")},
			want:     StatusSpending,
		},
		{
			name:     "no target",
			snapshot: FundingSnapshot{CurrentAmount: d("42")},
			want:     StatusNoTarget,
		},
		{
			name:     "ratio of exactly 1.05 is surplus",
			snapshot: FundingSnapshot{TargetAmount: d("100"), CurrentAmount: d("105")},
			want:     StatusSurplus,
		},
		{
			name:     "ratio just under 1.05 is on track",
			snapshot: FundingSnapshot{TargetAmount: d("100"), CurrentAmount: d("104.999")},
			want:     StatusOnTrack,
		},
		{
			name:     "ratio of exactly 0.80 is on track",
			snapshot: FundingSnapshot{TargetAmount: d("100"), CurrentAmount: d("80")},
			want:     StatusOnTrack,
		},
		{
			name:     "ratio just under 0.80 needs attention",
			snapshot: FundingSnapshot{TargetAmount: d("100"), CurrentAmount: d("79.999")},
			want:     StatusNeedsAttention,
		},
		{
			name:     "empty envelope with a target needs attention",
			snapshot: FundingSnapshot{TargetAmount: d("100")},
			want:     StatusNeedsAttention,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.snapshot))
		})
	}
}

func TestStatusBucket_DisplayLabel(t *testing.T) {
	assert.Equal(t, "Healthy", StatusOnTrack.DisplayLabel())
	assert.Equal(t, "Needs attention", StatusNeedsAttention.DisplayLabel())
	assert.Equal(t, "Surplus", StatusSurplus.DisplayLabel())
	assert.Equal(t, "No target", StatusNoTarget.DisplayLabel())
	assert.Equal(t, "Tracking", StatusTracking.DisplayLabel())
	assert.Equal(t, "Spending", StatusSpending.DisplayLabel())

	// Unknown buckets fall back to their raw value instead of an empty string.
	assert.Equal(t, "mystery", StatusBucket("mystery").DisplayLabel())
}

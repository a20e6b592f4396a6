package paycycle

import "github.com/shopspring/decimal"

// StatusBucket is the funding-health classification of an envelope. Exactly
// one bucket applies to a snapshot; the tracking and spending flags win over
// the ratio-based buckets.
type StatusBucket string

const (
	StatusTracking       StatusBucket = "tracking"
	StatusSpending       StatusBucket = "spending"
	StatusNoTarget       StatusBucket = "no-target"
	StatusSurplus        StatusBucket = "surplus"
	StatusOnTrack        StatusBucket = "on-track"
	StatusNeedsAttention StatusBucket = "needs-attention"
)

// Funding-ratio thresholds. Both boundaries are inclusive of the higher
// bucket: a ratio of exactly 1.05 is surplus, exactly 0.80 is on track.
var (
	surplusThreshold = decimal.RequireFromString("1.05")
	onTrackThreshold = decimal.RequireFromString("0.8")
)

// FundingSnapshot is the minimal view of an envelope needed to bucket it.
type FundingSnapshot struct {
	CurrentAmount  decimal.Decimal
	TargetAmount   decimal.Decimal
	IsTrackingOnly bool
	IsSpending     bool
}

// StatusOf classifies a funding snapshot. Missing amounts behave as zero, so
// an envelope with no target is "no-target" rather than an error.
func StatusOf(s FundingSnapshot) StatusBucket {
	if s.IsTrackingOnly {
		return StatusTracking
	}
	if s.IsSpending {
		return StatusSpending
	}
	if s.TargetAmount.Sign() == 0 {
		return StatusNoTarget
	}
	// Compare current against target * threshold instead of dividing, so the
	// boundaries stay exact.
	if s.CurrentAmount.Cmp(s.TargetAmount.Mul(surplusThreshold)) >= 0 {
		return StatusSurplus
	}
	if s.CurrentAmount.Cmp(s.TargetAmount.Mul(onTrackThreshold)) >= 0 {
		return StatusOnTrack
	}
	return StatusNeedsAttention
}

var statusLabels = map[StatusBucket]string{
	StatusTracking:       "Tracking",
	StatusSpending:       "Spending",
	StatusNoTarget:       "No target",
	StatusSurplus:        "Surplus",
	StatusOnTrack:        "Healthy",
	StatusNeedsAttention: "Needs attention",
}

// DisplayLabel returns the human wording for a bucket. The UI historically
// used "Healthy"/"Needs attention" for the on-track/needs-attention buckets;
// this table is the single source of that translation.
func (b StatusBucket) DisplayLabel() string {
	if label, ok := statusLabels[b]; ok {
		return label
	}
	return string(b)
}

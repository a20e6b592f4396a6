package envelope

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stashly/stashly/pkg/paycycle"
)

type Envelope struct {
	Id   int
	Name string
	Icon string
	// Color is the display colour used by the frontend, e.g. "#fca311".
	Color string
	// TargetAmount is the amount to accumulate per Frequency occurrence.
	// Zero means the envelope has no funding target.
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Frequency     paycycle.BillFrequency
	// CustomWeeks is the recurrence interval in weeks, only meaningful when
	// Frequency is BillCustomWeeks.
	CustomWeeks int
	NextDueDate *time.Time
	// IsSpending marks a day-to-day spending envelope that is refilled rather
	// than saved towards a target.
	IsSpending bool
	// IsTrackingOnly marks an envelope that only mirrors an external balance.
	IsTrackingOnly bool
	Position       int
}

// View is the read model served to clients: the stored envelope plus the
// figures derived from the user's pay settings.
type View struct {
	Envelope
	PayCycleAmount decimal.Decimal
	Status         paycycle.StatusBucket
	StatusLabel    string
	DueProgress    paycycle.DueProgress
}

// Snapshot returns the funding snapshot used for status bucketing.
func (e Envelope) Snapshot() paycycle.FundingSnapshot {
	return paycycle.FundingSnapshot{
		CurrentAmount:  e.CurrentAmount,
		TargetAmount:   e.TargetAmount,
		IsTrackingOnly: e.IsTrackingOnly,
		IsSpending:     e.IsSpending,
	}
}

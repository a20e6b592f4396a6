package goal

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stashly/stashly/pkg/paycycle"
)

// Goal is a savings target, optionally linked to an envelope. Linked goals
// track the envelope's movements automatically.
type Goal struct {
	Id            int
	Name          string
	Icon          string
	EnvelopeId    int
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *time.Time
}

// View is a Goal enriched with the read-model fields the client renders.
type View struct {
	Goal
	// RequiredPerPay is the contribution needed each pay to reach the
	// target by the target date. Zero when already reached or undated.
	RequiredPerPay decimal.Decimal
	Status         paycycle.StatusBucket
	StatusLabel    string
	DueProgress    paycycle.DueProgress
}

func (g Goal) Remaining() decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

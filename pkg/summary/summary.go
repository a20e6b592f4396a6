package summary

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stashly/stashly/pkg/envelope"
	"github.com/stashly/stashly/pkg/paycycle"
)

// Summary is the monthly budget overview: every envelope with its per-pay
// contribution and funding status, plus the aggregate income figures.
type Summary struct {
	GeneratedAt  time.Time
	PayFrequency paycycle.PayFrequency
	PayAmount    decimal.Decimal
	NextPayDate  *time.Time
	Envelopes    []envelope.View
	// TotalPerPay is the sum of all contributions due each pay cycle.
	// Tracking-only envelopes are excluded; they take no contributions.
	TotalPerPay     decimal.Decimal
	TotalMonthly    decimal.Decimal
	RemainingIncome decimal.Decimal
	BalanceStatus   paycycle.BalanceStatus
	// AccountsTotal is the net position across tracked accounts, with credit
	// balances counted as negative.
	AccountsTotal decimal.Decimal
}

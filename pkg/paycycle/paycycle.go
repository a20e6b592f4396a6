// Package paycycle converts bill and funding-target amounts between recurrence
// frequencies and the user's pay cycle, and classifies envelope funding health.
// All functions are pure: no I/O, no shared state, and "now" is always passed
// in by the caller.
package paycycle

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrCustomWeeksRequired is returned by ContributionPerPayChecked when the
// bill frequency is BillCustomWeeks but no positive number of weeks was given.
var ErrCustomWeeksRequired = errors.New("custom_weeks frequency requires a positive number of weeks")

// DefaultTolerance is the absolute amount band used by BalanceStatusOf when
// the caller does not care to pick one.
var DefaultTolerance = decimal.NewFromInt(5)

var (
	twelve   = decimal.NewFromInt(12)
	fiftyTwo = decimal.NewFromInt(52)
)

// ContributionPerPay returns the amount to set aside each pay cycle so that a
// year of contributions covers a year of the bill. Amounts of zero or less
// yield zero. A BillCustomWeeks bill with customWeeks <= 0 silently falls back
// to a monthly equivalent; use ContributionPerPayChecked to reject that input
// instead. The result is rounded to the cent, half up.
func ContributionPerPay(amount decimal.Decimal, billFreq BillFrequency, payFreq PayFrequency, customWeeks int) decimal.Decimal {
	if amount.Sign() <= 0 {
		return decimal.Zero
	}
	annual := annualize(amount, billFreq, customWeeks)
	return annual.DivRound(payFreq.CyclesPerYear(), 2)
}

// ContributionPerPayChecked is ContributionPerPay with the one input the loose
// variant cannot represent as a number: BillCustomWeeks without a positive
// week count is an error, not a monthly fallback.
func ContributionPerPayChecked(amount decimal.Decimal, billFreq BillFrequency, payFreq PayFrequency, customWeeks int) (decimal.Decimal, error) {
	if billFreq == BillCustomWeeks && customWeeks <= 0 {
		return decimal.Zero, ErrCustomWeeksRequired
	}
	return ContributionPerPay(amount, billFreq, payFreq, customWeeks), nil
}

func annualize(amount decimal.Decimal, billFreq BillFrequency, customWeeks int) decimal.Decimal {
	if billFreq == BillCustomWeeks && customWeeks > 0 {
		return amount.Mul(fiftyTwo).Div(decimal.NewFromInt(int64(customWeeks)))
	}
	return amount.Mul(billFreq.OccurrencesPerYear())
}

// TotalMonthlyAllocation converts a set of per-pay-cycle amounts into one
// monthly figure: sum * cyclesPerYear / 12, rounded to the cent.
func TotalMonthlyAllocation(perPayAmounts []decimal.Decimal, payFreq PayFrequency) decimal.Decimal {
	sum := decimal.Zero
	for _, amount := range perPayAmounts {
		sum = sum.Add(amount)
	}
	return sum.Mul(payFreq.CyclesPerYear()).DivRound(twelve, 2)
}

// RemainingIncome is income minus allocation, rounded to the cent. A negative
// result means the user has allocated more than they earn; that is a valid
// answer, not an error.
func RemainingIncome(totalIncome, totalAllocation decimal.Decimal) decimal.Decimal {
	return totalIncome.Sub(totalAllocation).Round(2)
}

// BalanceStatus classifies a balance against an expected value.
type BalanceStatus string

const (
	BalanceUnder   BalanceStatus = "under"
	BalanceOver    BalanceStatus = "over"
	BalanceOnTrack BalanceStatus = "on-track"
)

// BalanceStatusOf compares current against expected +/- tolerance. The
// tolerance is an absolute amount, not a percentage.
func BalanceStatusOf(current, expected, tolerance decimal.Decimal) BalanceStatus {
	if current.LessThan(expected.Sub(tolerance)) {
		return BalanceUnder
	}
	if current.GreaterThan(expected.Add(tolerance)) {
		return BalanceOver
	}
	return BalanceOnTrack
}

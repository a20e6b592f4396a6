package paycycle

import "github.com/shopspring/decimal"

// PayFrequency is how often the user gets paid. It is deliberately a separate
// type from BillFrequency: the two sets overlap in string values but are not
// interchangeable.
type PayFrequency string

const (
	PayWeekly       PayFrequency = "weekly"
	PayFortnightly  PayFrequency = "fortnightly"
	PayTwiceMonthly PayFrequency = "twice_monthly"
	PayMonthly      PayFrequency = "monthly"
)

// BillFrequency is how often a bill or funding target recurs.
type BillFrequency string

const (
	BillWeekly      BillFrequency = "weekly"
	BillFortnightly BillFrequency = "fortnightly"
	BillMonthly     BillFrequency = "monthly"
	BillQuarterly   BillFrequency = "quarterly"
	BillAnnually    BillFrequency = "annually"
	// BillAnnual is an accepted alias for BillAnnually, kept for older clients.
	BillAnnual      BillFrequency = "annual"
	BillCustom      BillFrequency = "custom"
	BillCustomWeeks BillFrequency = "custom_weeks"
	BillNone        BillFrequency = "none"
)

var payCyclesPerYear = map[PayFrequency]decimal.Decimal{
	PayWeekly:       decimal.NewFromInt(52),
	PayFortnightly:  decimal.NewFromInt(26),
	PayTwiceMonthly: decimal.NewFromInt(24),
	PayMonthly:      decimal.NewFromInt(12),
}

// Bill occurrences per year. Weekly and fortnightly use the 4.33 weeks/month
// approximation (12 * 4.33 and 12 * 2.17), so a weekly bill is not exactly 52
// occurrences. "custom" has no recurrence of its own and is treated as monthly.
var billOccurrencesPerYear = map[BillFrequency]decimal.Decimal{
	BillWeekly:      decimal.RequireFromString("51.96"),
	BillFortnightly: decimal.RequireFromString("26.04"),
	BillMonthly:     decimal.NewFromInt(12),
	BillQuarterly:   decimal.NewFromInt(4),
	BillAnnually:    decimal.NewFromInt(1),
	BillAnnual:      decimal.NewFromInt(1),
	BillCustom:      decimal.NewFromInt(12),
}

// CyclesPerYear returns the number of pay cycles in a year. Unknown values
// fall back to monthly rather than failing.
func (f PayFrequency) CyclesPerYear() decimal.Decimal {
	if cycles, ok := payCyclesPerYear[f]; ok {
		return cycles
	}
	return payCyclesPerYear[PayMonthly]
}

// OccurrencesPerYear returns how many times a bill with this frequency occurs
// in a year. Unknown values fall back to a monthly equivalent rather than
// failing. BillCustomWeeks is not in the table; its cadence depends on the
// number of weeks and is handled by ContributionPerPay.
func (f BillFrequency) OccurrencesPerYear() decimal.Decimal {
	if occurrences, ok := billOccurrencesPerYear[f]; ok {
		return occurrences
	}
	return billOccurrencesPerYear[BillMonthly]
}

// IsValid reports whether f is one of the known pay frequencies.
func (f PayFrequency) IsValid() bool {
	_, ok := payCyclesPerYear[f]
	return ok
}

// IsValid reports whether f is one of the known bill frequencies.
func (f BillFrequency) IsValid() bool {
	if f == BillCustomWeeks || f == BillNone {
		return true
	}
	_, ok := billOccurrencesPerYear[f]
	return ok
}

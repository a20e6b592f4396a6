package paycycle

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestContributionPerPay(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		billFreq    BillFrequency
		payFreq     PayFrequency
		customWeeks int
		want        string
	}{
		{
			name:     "monthly bill on monthly pay is the amount itself",
			amount:   "250", billFreq: BillMonthly, payFreq: PayMonthly,
			want: "250",
		},
		{
			name:     "annual bill spread over monthly pay",
			amount:   "1200", billFreq: BillAnnual, payFreq: PayMonthly,
			want: "100",
		},
		{
			name:     "annually alias behaves like annual",
			amount:   "1200", billFreq: BillAnnually, payFreq: PayMonthly,
			want: "100",
		},
		{
			name:     "quarterly bill on fortnightly pay rounds half up on the cent",
			amount:   "120", billFreq: BillQuarterly, payFreq: PayFortnightly,
			// annual 480, 480/26 = 18.4615...
			want: "18.46",
		},
		{
			name:     "custom weeks cadence",
			amount:   "100", billFreq: BillCustomWeeks, payFreq: PayWeekly, customWeeks: 8,
			// annual 100*52/8 = 650, 650/52 = 12.50
			want: "12.5",
		},
		{
			name:     "weekly bill uses the 4.33 weeks per month approximation",
			amount:   "100", billFreq: BillWeekly, payFreq: PayMonthly,
			// annual 100*51.96 = 5196, /12 = 433
			want: "433",
		},
		{
			name:     "fortnightly bill on fortnightly pay is slightly above the amount",
			amount:   "100", billFreq: BillFortnightly, payFreq: PayFortnightly,
			// annual 2604, /26 = 100.15...
			want: "100.15",
		},
		{
			name:     "twice monthly pay has 24 cycles",
			amount:   "1200", billFreq: BillAnnual, payFreq: PayTwiceMonthly,
			want: "50",
		},
		{
			name:     "zero amount is zero for any frequency pair",
			amount:   "0", billFreq: BillQuarterly, payFreq: PayWeekly,
			want: "0",
		},
		{
			name:     "negative amount fails closed to zero",
			amount:   "-50", billFreq: BillMonthly, payFreq: PayMonthly,
			want: "0",
		},
		{
			name:     "unknown bill frequency falls back to monthly equivalent",
			amount:   "100", billFreq: BillFrequency("biweekly"), payFreq: PayMonthly,
			want: "100",
		},
		{
			name:     "custom frequency is treated as monthly",
			amount:   "100", billFreq: BillCustom, payFreq: PayMonthly,
			want: "100",
		},
		{
			name:     "custom weeks without a week count falls back to monthly equivalent",
			amount:   "100", billFreq: BillCustomWeeks, payFreq: PayMonthly, customWeeks: 0,
			want: "100",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContributionPerPay(d(tt.amount), tt.billFreq, tt.payFreq, tt.customWeeks)
			assert.True(t, d(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestContributionPerPay_IsDeterministic(t *testing.T) {
	first := ContributionPerPay(d("123.45"), BillQuarterly, PayFortnightly, 0)
	second := ContributionPerPay(d("123.45"), BillQuarterly, PayFortnightly, 0)
	assert.True(t, first.Equal(second))
}

func TestContributionPerPayChecked(t *testing.T) {
	t.Run("rejects custom weeks without a positive week count", func(t *testing.T) {
		_, err := ContributionPerPayChecked(d("100"), BillCustomWeeks, PayWeekly, 0)
		assert.ErrorIs(t, err, ErrCustomWeeksRequired)
	})

	t.Run("matches the loose variant for valid input", func(t *testing.T) {
		got, err := ContributionPerPayChecked(d("100"), BillCustomWeeks, PayWeekly, 8)
		assert.NoError(t, err)
		assert.True(t, d("12.5").Equal(got))
	})
}

func TestTotalMonthlyAllocation(t *testing.T) {
	tests := []struct {
		name     string
		perPay   []string
		payFreq  PayFrequency
		want     string
	}{
		{
			name:    "fortnightly cycles to monthly",
			perPay:  []string{"50", "25"},
			payFreq: PayFortnightly,
			// 75 * 26 / 12 = 162.50
			want: "162.5",
		},
		{
			name:    "weekly cycles to monthly",
			perPay:  []string{"10"},
			payFreq: PayWeekly,
			// 10 * 52 / 12 = 43.33...
			want: "43.33",
		},
		{
			name:    "monthly is the plain sum",
			perPay:  []string{"10.10", "20.20"},
			payFreq: PayMonthly,
			want:    "30.3",
		},
		{
			name:    "no envelopes means no allocation",
			perPay:  nil,
			payFreq: PayMonthly,
			want:    "0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amounts := make([]decimal.Decimal, 0, len(tt.perPay))
			for _, a := range tt.perPay {
				amounts = append(amounts, d(a))
			}
			got := TotalMonthlyAllocation(amounts, tt.payFreq)
			assert.True(t, d(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestRemainingIncome(t *testing.T) {
	assert.True(t, d("150").Equal(RemainingIncome(d("500"), d("350"))))

	// Over-allocation is a meaningful signal, not an error.
	assert.True(t, d("-25.50").Equal(RemainingIncome(d("100"), d("125.50"))))
}

func TestBalanceStatusOf(t *testing.T) {
	tolerance := DefaultTolerance

	tests := []struct {
		name     string
		current  string
		expected string
		want     BalanceStatus
	}{
		{"well below the band", "80", "100", BalanceUnder},
		{"just inside the lower edge", "95", "100", BalanceOnTrack},
		{"just below the lower edge", "94.99", "100", BalanceUnder},
		{"exactly on expected", "100", "100", BalanceOnTrack},
		{"just inside the upper edge", "105", "100", BalanceOnTrack},
		{"just above the upper edge", "105.01", "100", BalanceOver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BalanceStatusOf(d(tt.current), d(tt.expected), tolerance))
		})
	}
}

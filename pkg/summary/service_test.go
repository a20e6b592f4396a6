package summary

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stashly/stashly/internal/utils"
	"github.com/stashly/stashly/pkg/envelope"
	"github.com/stashly/stashly/pkg/paycycle"
	"github.com/stashly/stashly/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = user.WithUser(context.Background(), user.User{
	Id:       1,
	Username: "test_user",
	Settings: user.Settings{
		PayFrequency: paycycle.PayFortnightly,
		PayAmount:    d("2000"),
	},
})

var clock = &utils.MockClock{FixedNow: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testViews() []envelope.View {
	return []envelope.View{
		{
			Envelope:       envelope.Envelope{Id: 1, Name: "Groceries", IsSpending: true},
			PayCycleAmount: d("100"),
			Status:         paycycle.StatusSpending,
			StatusLabel:    "Spending",
		},
		{
			Envelope:       envelope.Envelope{Id: 2, Name: "Electricity", TargetAmount: d("120"), CurrentAmount: d("90")},
			PayCycleAmount: d("18.46"),
			Status:         paycycle.StatusNeedsAttention,
			StatusLabel:    "Needs attention",
		},
		{
			Envelope:       envelope.Envelope{Id: 3, Name: "Mortgage offset", CurrentAmount: d("5000"), IsTrackingOnly: true},
			PayCycleAmount: decimal.Zero,
			Status:         paycycle.StatusTracking,
			StatusLabel:    "Tracking",
		},
	}
}

func TestSummaryServiceImpl_GetSummary(t *testing.T) {
	service := NewSummaryService(
		&envelopeServiceStub{views: testViews()},
		&accountServiceStub{total: d("5250")},
		clock,
	)

	summary, err := service.GetSummary(ctx)

	require.NoError(t, err)
	assert.Equal(t, clock.FixedNow, summary.GeneratedAt)
	assert.Len(t, summary.Envelopes, 3)

	// tracking-only envelope is excluded from the totals
	assert.True(t, d("118.46").Equal(summary.TotalPerPay), "got %s", summary.TotalPerPay)
	// 118.46 * 26 / 12
	assert.True(t, d("256.66").Equal(summary.TotalMonthly), "got %s", summary.TotalMonthly)
	assert.True(t, d("1881.54").Equal(summary.RemainingIncome), "got %s", summary.RemainingIncome)
	assert.Equal(t, paycycle.BalanceUnder, summary.BalanceStatus)
	assert.True(t, d("5250").Equal(summary.AccountsTotal))
}

func TestSummaryServiceImpl_GetSummary_noUser(t *testing.T) {
	service := NewSummaryService(
		&envelopeServiceStub{},
		&accountServiceStub{},
		clock,
	)

	_, err := service.GetSummary(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get current user")
}

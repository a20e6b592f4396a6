package summary

import (
	"testing"
	"time"

	"github.com/stashly/stashly/pkg/paycycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCsvSummaryRendererImpl_RenderSummary(t *testing.T) {
	renderer := NewCsvSummaryRenderer()
	summary := Summary{
		GeneratedAt:     time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		PayFrequency:    paycycle.PayFortnightly,
		PayAmount:       d("2000"),
		Envelopes:       testViews(),
		TotalPerPay:     d("118.46"),
		TotalMonthly:    d("256.66"),
		RemainingIncome: d("1881.54"),
		BalanceStatus:   paycycle.BalanceUnder,
	}

	csv, err := renderer.RenderSummary(summary)

	require.NoError(t, err)
	expected := "Envelope,Target,Current,Frequency,Per pay,Status,Due\n" +
		"Groceries,0.00,0.00,,100.00,Spending,\n" +
		"Electricity,120.00,90.00,,18.46,Needs attention,\n" +
		"Mortgage offset,0.00,5000.00,,0.00,Tracking,\n" +
		"Total per pay,,,,118.46,,\n" +
		"Total monthly,,,,256.66,,\n" +
		"Pay amount,,,,2000.00,,\n" +
		"Remaining income,,,,1881.54,under,\n"
	assert.Equal(t, expected, csv)
}

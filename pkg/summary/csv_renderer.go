package summary

import (
	"bytes"
	"encoding/csv"

	log "github.com/sirupsen/logrus"
)

// SummaryRenderer turns a Summary into an alternative representation.
type SummaryRenderer interface {
	RenderSummary(summary Summary) (string, error)
}

type CsvSummaryRendererImpl struct {
}

func NewCsvSummaryRenderer() *CsvSummaryRendererImpl {
	return &CsvSummaryRendererImpl{}
}

func (t *CsvSummaryRendererImpl) RenderSummary(summary Summary) (string, error) {
	data := make([][]string, 0, len(summary.Envelopes)+5)
	data = append(data, []string{"Envelope", "Target", "Current", "Frequency", "Per pay", "Status", "Due"})

	for _, view := range summary.Envelopes {
		data = append(data, []string{
			view.Name,
			view.TargetAmount.StringFixed(2),
			view.CurrentAmount.StringFixed(2),
			string(view.Frequency),
			view.PayCycleAmount.StringFixed(2),
			view.StatusLabel,
			view.DueProgress.Formatted,
		})
	}

	data = append(data,
		[]string{"Total per pay", "", "", "", summary.TotalPerPay.StringFixed(2), "", ""},
		[]string{"Total monthly", "", "", "", summary.TotalMonthly.StringFixed(2), "", ""},
		[]string{"Pay amount", "", "", "", summary.PayAmount.StringFixed(2), "", ""},
		[]string{"Remaining income", "", "", "", summary.RemainingIncome.StringFixed(2), string(summary.BalanceStatus), ""},
	)

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

package summary

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stashly/stashly/pkg/envelope"
)

type SummaryDTO struct {
	GeneratedAt     time.Time              `json:"generatedAt"`
	PayFrequency    string                 `json:"payFrequency"`
	PayAmount       decimal.Decimal        `json:"payAmount"`
	NextPayDate     *time.Time             `json:"nextPayDate,omitempty"`
	Envelopes       []envelope.EnvelopeDTO `json:"envelopes"`
	TotalPerPay     decimal.Decimal        `json:"totalPerPay"`
	TotalMonthly    decimal.Decimal        `json:"totalMonthly"`
	RemainingIncome decimal.Decimal        `json:"remainingIncome"`
	BalanceStatus   string                 `json:"balanceStatus"`
	AccountsTotal   decimal.Decimal        `json:"accountsTotal"`
}

type Handler struct {
	service  SummaryService
	renderer SummaryRenderer
}

func NewHandler(service SummaryService, renderer SummaryRenderer) *Handler {
	return &Handler{service, renderer}
}

// GetMonthly serves the monthly summary as JSON, or as CSV when the client
// asks for text/csv.
func (h *Handler) GetMonthly(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.GetSummary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.Header.Get("Accept") == "text/csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		csv, err := h.renderer.RenderSummary(summary)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if _, err := w.Write([]byte(csv)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(toDTO(summary)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toDTO(summary Summary) SummaryDTO {
	envelopes := make([]envelope.EnvelopeDTO, 0, len(summary.Envelopes))
	for _, view := range summary.Envelopes {
		envelopes = append(envelopes, envelope.ViewToDTO(view))
	}
	return SummaryDTO{
		GeneratedAt:     summary.GeneratedAt,
		PayFrequency:    string(summary.PayFrequency),
		PayAmount:       summary.PayAmount,
		NextPayDate:     summary.NextPayDate,
		Envelopes:       envelopes,
		TotalPerPay:     summary.TotalPerPay,
		TotalMonthly:    summary.TotalMonthly,
		RemainingIncome: summary.RemainingIncome,
		BalanceStatus:   string(summary.BalanceStatus),
		AccountsTotal:   summary.AccountsTotal,
	}
}

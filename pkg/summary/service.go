package summary

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/stashly/stashly/internal/utils"
	"github.com/stashly/stashly/pkg/account"
	"github.com/stashly/stashly/pkg/envelope"
	"github.com/stashly/stashly/pkg/paycycle"
	"github.com/stashly/stashly/pkg/user"
)

type SummaryService interface {
	GetSummary(ctx context.Context) (Summary, error)
}

type SummaryServiceImpl struct {
	envelopeService envelope.Service
	accountService  account.Service
	clock           utils.Clock
}

func NewSummaryService(
	envelopeService envelope.Service,
	accountService account.Service,
	clock utils.Clock,
) *SummaryServiceImpl {
	return &SummaryServiceImpl{
		envelopeService: envelopeService,
		accountService:  accountService,
		clock:           clock,
	}
}

func (s *SummaryServiceImpl) GetSummary(ctx context.Context) (Summary, error) {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to get current user: %w", err)
	}

	views, err := s.envelopeService.GetAll(ctx)
	if err != nil {
		return Summary{}, err
	}
	log.Tracef("Summarizing %d envelopes", len(views))

	perPayAmounts := make([]decimal.Decimal, 0, len(views))
	totalPerPay := decimal.Zero
	for _, view := range views {
		if view.IsTrackingOnly {
			continue
		}
		perPayAmounts = append(perPayAmounts, view.PayCycleAmount)
		totalPerPay = totalPerPay.Add(view.PayCycleAmount)
	}

	payFrequency := currentUser.Settings.PayFrequency
	payAmount := currentUser.Settings.PayAmount
	totalMonthly := paycycle.TotalMonthlyAllocation(perPayAmounts, payFrequency)
	remaining := paycycle.RemainingIncome(payAmount, totalPerPay)

	accountsTotal, err := s.accountService.TotalBalance(ctx)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		GeneratedAt:     s.clock.Now(),
		PayFrequency:    payFrequency,
		PayAmount:       payAmount,
		NextPayDate:     currentUser.Settings.NextPayDate,
		Envelopes:       views,
		TotalPerPay:     totalPerPay,
		TotalMonthly:    totalMonthly,
		RemainingIncome: remaining,
		BalanceStatus:   paycycle.BalanceStatusOf(totalPerPay, payAmount, paycycle.DefaultTolerance),
		AccountsTotal:   accountsTotal,
	}, nil
}

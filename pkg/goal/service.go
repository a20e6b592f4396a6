package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/stashly/stashly/internal/event_bus"
	"github.com/stashly/stashly/internal/utils"
	"github.com/stashly/stashly/pkg/paycycle"
	"github.com/stashly/stashly/pkg/user"
)

type Service interface {
	GetAll(ctx context.Context) ([]View, error)
	Get(ctx context.Context, id int) (View, error)
	Create(ctx context.Context, goal Goal) (Goal, error)
	Update(ctx context.Context, goal Goal) (Goal, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ServiceImpl struct {
	repo  Repository
	clock utils.Clock
}

func NewService(repo Repository, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, clock: clock}
}

// SubscribeToTransactions keeps linked goals in step with envelope movements.
// A transfer shows up once with the counter envelope set, so both sides are
// adjusted from the single event.
func (s *ServiceImpl) SubscribeToTransactions(bus *event_bus.EventBus) {
	event_bus.SubscribeTyped[event_bus.TransactionCreated](bus, event_bus.TransactionCreatedType,
		func(e event_bus.EventT[event_bus.TransactionCreated]) error {
			ctx := e.Context()
			userId, err := user.CurrentId(ctx)
			if err != nil {
				return fmt.Errorf("failed to get current user: %w", err)
			}
			if err := s.repo.AdjustAmountByEnvelope(ctx, userId, e.Data.EnvelopeId, e.Data.Amount); err != nil {
				return err
			}
			if e.Data.CounterEnvelopeId != 0 {
				return s.repo.AdjustAmountByEnvelope(ctx, userId, e.Data.CounterEnvelopeId, e.Data.Amount.Neg())
			}
			return nil
		})
	log.Debug("Goal service subscribed to transaction events")
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]View, error) {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	goals, err := s.repo.GetAll(ctx, currentUser.Id)
	if err != nil {
		return nil, err
	}
	views := make([]View, 0, len(goals))
	for _, goal := range goals {
		views = append(views, s.toView(goal, currentUser.Settings.PayFrequency))
	}
	return views, nil
}

func (s *ServiceImpl) Get(ctx context.Context, id int) (View, error) {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return View{}, fmt.Errorf("failed to get current user: %w", err)
	}
	goal, err := s.repo.Get(ctx, currentUser.Id, id)
	if err != nil {
		return View{}, err
	}
	return s.toView(goal, currentUser.Settings.PayFrequency), nil
}

func (s *ServiceImpl) Create(ctx context.Context, goal Goal) (Goal, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Goal{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validate(goal); err != nil {
		return Goal{}, err
	}
	id, err := s.repo.Store(ctx, userId, goal)
	if err != nil {
		return Goal{}, err
	}
	goal.Id = id
	return goal, nil
}

func (s *ServiceImpl) Update(ctx context.Context, goal Goal) (Goal, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Goal{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validate(goal); err != nil {
		return Goal{}, err
	}
	ok, err := s.repo.Update(ctx, userId, goal)
	if err != nil {
		return Goal{}, err
	}
	if !ok {
		return Goal{}, ErrGoalNotFound
	}
	return goal, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.Delete(ctx, userId, id)
}

func (s *ServiceImpl) toView(goal Goal, payFrequency paycycle.PayFrequency) View {
	status := paycycle.StatusOf(paycycle.FundingSnapshot{
		CurrentAmount: goal.CurrentAmount,
		TargetAmount:  goal.TargetAmount,
	})
	now := s.clock.Now()
	return View{
		Goal:           goal,
		RequiredPerPay: requiredPerPay(goal, payFrequency, now),
		Status:         status,
		StatusLabel:    status.DisplayLabel(),
		DueProgress:    paycycle.DueProgressAt(goal.TargetDate, now),
	}
}

// requiredPerPay spreads the remaining amount over the pays left before the
// target date. Overdue or undated goals get the whole remainder in one pay.
func requiredPerPay(goal Goal, payFrequency paycycle.PayFrequency, now time.Time) decimal.Decimal {
	remaining := goal.Remaining()
	if remaining.IsZero() || goal.TargetDate == nil {
		return remaining
	}
	days := int64(goal.TargetDate.Sub(now).Hours() / 24)
	if days <= 0 {
		return remaining
	}
	pays := decimal.NewFromInt(days).
		Mul(payFrequency.CyclesPerYear()).
		Div(decimal.NewFromInt(365)).
		Ceil()
	if pays.LessThan(decimal.NewFromInt(1)) {
		pays = decimal.NewFromInt(1)
	}
	return remaining.DivRound(pays, 2)
}

func validate(goal Goal) error {
	if goal.Name == "" {
		return fmt.Errorf("goal name is required")
	}
	if goal.TargetAmount.IsNegative() {
		return fmt.Errorf("goal target amount cannot be negative")
	}
	return nil
}

package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/stashly/stashly/internal/event_bus"
	"github.com/stashly/stashly/internal/utils"
	"github.com/stashly/stashly/pkg/user"
)

type Service interface {
	GetAll(ctx context.Context, filter Filter) ([]Transaction, error)
	Get(ctx context.Context, id int) (Transaction, error)
	Create(ctx context.Context, transaction Transaction) (Transaction, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ServiceImpl struct {
	repo     Repository
	eventBus *event_bus.EventBus
	clock    utils.Clock
}

func NewService(repo Repository, eventBus *event_bus.EventBus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, eventBus: eventBus, clock: clock}
}

func (s *ServiceImpl) GetAll(ctx context.Context, filter Filter) ([]Transaction, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId, filter)
}

func (s *ServiceImpl) Get(ctx context.Context, id int) (Transaction, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Transaction{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.Get(ctx, userId, id)
}

// Create stores the transaction and applies its balance effect to the
// involved envelopes in a single database transaction. A transfer debits
// the source envelope and credits the counter envelope.
func (s *ServiceImpl) Create(ctx context.Context, transaction Transaction) (Transaction, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Transaction{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validate(transaction); err != nil {
		return Transaction{}, err
	}
	transaction.Uid = uuid.New()
	if transaction.OccurredAt.IsZero() {
		transaction.OccurredAt = s.clock.Now()
	}

	err = s.repo.WithTransaction(ctx, func(repo Repository) error {
		id, err := repo.Store(ctx, userId, transaction)
		if err != nil {
			return err
		}
		transaction.Id = id
		if err := repo.AdjustEnvelopeBalance(ctx, userId, transaction.EnvelopeId, transaction.EnvelopeDelta()); err != nil {
			return err
		}
		if transaction.Kind == KindTransfer {
			return repo.AdjustEnvelopeBalance(ctx, userId, transaction.CounterEnvelopeId, transaction.Amount)
		}
		return nil
	})
	if err != nil {
		return Transaction{}, err
	}

	if err := s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.TransactionCreatedType, event_bus.TransactionCreated{
		TransactionId:     transaction.Id,
		EnvelopeId:        transaction.EnvelopeId,
		CounterEnvelopeId: transaction.CounterEnvelopeId,
		Amount:            transaction.EnvelopeDelta(),
		OccurredAt:        transaction.OccurredAt,
	})); err != nil {
		log.WithError(err).Error("Failed to notify transaction.created subscribers")
	}
	log.WithField("transactionId", transaction.Id).Debug("Transaction created")
	return transaction, nil
}

// Delete removes the transaction and reverses its effect on envelope
// balances so the books stay consistent.
func (s *ServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}

	transaction, err := s.repo.Get(ctx, userId, id)
	if err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			return false, nil
		}
		return false, err
	}

	deleted := false
	err = s.repo.WithTransaction(ctx, func(repo Repository) error {
		ok, err := repo.Delete(ctx, userId, id)
		if err != nil || !ok {
			return err
		}
		deleted = true
		if err := repo.AdjustEnvelopeBalance(ctx, userId, transaction.EnvelopeId, transaction.EnvelopeDelta().Neg()); err != nil {
			return err
		}
		if transaction.Kind == KindTransfer {
			return repo.AdjustEnvelopeBalance(ctx, userId, transaction.CounterEnvelopeId, transaction.Amount.Neg())
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func validate(transaction Transaction) error {
	if !transaction.Kind.IsValid() {
		return fmt.Errorf("unknown transaction kind: %s", transaction.Kind)
	}
	if !transaction.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive")
	}
	if transaction.EnvelopeId == 0 {
		return fmt.Errorf("transaction envelope is required")
	}
	if transaction.Kind == KindTransfer {
		if transaction.CounterEnvelopeId == 0 {
			return fmt.Errorf("transfer requires a destination envelope")
		}
		if transaction.CounterEnvelopeId == transaction.EnvelopeId {
			return fmt.Errorf("transfer source and destination must differ")
		}
	} else if transaction.CounterEnvelopeId != 0 {
		return fmt.Errorf("counter envelope is only allowed on transfers")
	}
	return nil
}

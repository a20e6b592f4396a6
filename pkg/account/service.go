package account

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stashly/stashly/internal/utils"
	"github.com/stashly/stashly/pkg/user"
)

type Service interface {
	GetAll(ctx context.Context) ([]Account, error)
	TotalBalance(ctx context.Context) (decimal.Decimal, error)
	Create(ctx context.Context, account Account) (Account, error)
	Update(ctx context.Context, account Account) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ServiceImpl struct {
	repo  Repository
	clock utils.Clock
}

func NewService(repo Repository, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, clock: clock}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Account, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
}

// TotalBalance sums all account balances. Credit accounts count as negative:
// their balance is money owed, not money held.
func (s *ServiceImpl) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	accounts, err := s.GetAll(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, a := range accounts {
		if a.Kind == KindCredit {
			total = total.Sub(a.Balance)
		} else {
			total = total.Add(a.Balance)
		}
	}
	return total, nil
}

func (s *ServiceImpl) Create(ctx context.Context, account Account) (Account, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Account{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if account.Name == "" {
		return Account{}, fmt.Errorf("account name is required")
	}
	if account.Kind == "" {
		account.Kind = KindChecking
	}
	if !account.Kind.IsValid() {
		return Account{}, fmt.Errorf("unknown account kind: %s", account.Kind)
	}
	account.BalanceAsOf = s.clock.Now()

	id, err := s.repo.Store(ctx, userId, account)
	if err != nil {
		return Account{}, err
	}
	account.Id = id
	return account, nil
}

func (s *ServiceImpl) Update(ctx context.Context, account Account) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	if account.Kind != "" && !account.Kind.IsValid() {
		return false, fmt.Errorf("unknown account kind: %s", account.Kind)
	}
	account.BalanceAsOf = s.clock.Now()
	return s.repo.Update(ctx, userId, account)
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.Delete(ctx, userId, id)
}

package transaction

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
)

type StubRepository struct {
	nextId           int
	data             map[int]Transaction
	EnvelopeBalances map[int]decimal.Decimal
}

func NewStubRepository() *StubRepository {
	return &StubRepository{
		data:             map[int]Transaction{},
		EnvelopeBalances: map[int]decimal.Decimal{},
	}
}

func (s *StubRepository) WithTransaction(ctx context.Context, fn func(repo Repository) error) error {
	return fn(s)
}

func (s *StubRepository) Store(ctx context.Context, userId int, transaction Transaction) (int, error) {
	s.nextId++
	transaction.Id = s.nextId
	s.data[transaction.Id] = transaction
	return transaction.Id, nil
}

func (s *StubRepository) GetAll(ctx context.Context, userId int, filter Filter) ([]Transaction, error) {
	var transactions []Transaction
	for _, transaction := range s.data {
		if filter.EnvelopeId != 0 &&
			transaction.EnvelopeId != filter.EnvelopeId &&
			transaction.CounterEnvelopeId != filter.EnvelopeId {
			continue
		}
		if filter.From != nil && transaction.OccurredAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !transaction.OccurredAt.Before(*filter.To) {
			continue
		}
		transactions = append(transactions, transaction)
	}
	sort.Slice(transactions, func(i, j int) bool {
		if transactions[i].OccurredAt.Equal(transactions[j].OccurredAt) {
			return transactions[i].Id > transactions[j].Id
		}
		return transactions[i].OccurredAt.After(transactions[j].OccurredAt)
	})
	return transactions, nil
}

func (s *StubRepository) Get(ctx context.Context, userId int, id int) (Transaction, error) {
	transaction, ok := s.data[id]
	if !ok {
		return Transaction{}, ErrTransactionNotFound
	}
	return transaction, nil
}

func (s *StubRepository) Delete(ctx context.Context, userId int, id int) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubRepository) AdjustEnvelopeBalance(ctx context.Context, userId int, envelopeId int, delta decimal.Decimal) error {
	balance, ok := s.EnvelopeBalances[envelopeId]
	if !ok {
		return ErrEnvelopeMissing
	}
	s.EnvelopeBalances[envelopeId] = balance.Add(delta)
	return nil
}

func (s *StubRepository) Cleanup() {
	s.data = map[int]Transaction{}
	s.EnvelopeBalances = map[int]decimal.Decimal{}
	s.nextId = 0
}

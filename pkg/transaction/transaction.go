package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
	KindTransfer   Kind = "transfer"
)

// Transaction records money moving into, out of, or between envelopes.
// Amount is always a positive magnitude; Kind decides the direction.
type Transaction struct {
	Id         int
	Uid        uuid.UUID
	EnvelopeId int
	// CounterEnvelopeId is the receiving envelope of a transfer, 0 otherwise.
	CounterEnvelopeId int
	// AccountId optionally links the movement to a tracked account.
	AccountId  int
	Amount     decimal.Decimal
	Kind       Kind
	Memo       string
	OccurredAt time.Time
}

func (k Kind) IsValid() bool {
	switch k {
	case KindDeposit, KindWithdrawal, KindTransfer:
		return true
	}
	return false
}

// EnvelopeDelta is the signed amount the transaction applies to its envelope.
func (t Transaction) EnvelopeDelta() decimal.Decimal {
	if t.Kind == KindDeposit {
		return t.Amount
	}
	return t.Amount.Neg()
}

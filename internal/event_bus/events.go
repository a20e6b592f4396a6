package event_bus

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionCreatedType EventType = "transaction.created"
	EnvelopeUpdatedType    EventType = "envelope.updated"
)

// TransactionCreated is published after a transaction has been committed and
// the envelope balance moved.
type TransactionCreated struct {
	TransactionId int
	EnvelopeId    int
	// CounterEnvelopeId is set for transfers, 0 otherwise.
	CounterEnvelopeId int
	// Amount is the signed delta applied to the envelope balance.
	Amount     decimal.Decimal
	OccurredAt time.Time
}

// EnvelopeUpdated is published after an envelope's definition changed.
type EnvelopeUpdated struct {
	EnvelopeId   int
	Name         string
	TargetAmount decimal.Decimal
}

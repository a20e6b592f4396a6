package account

import (
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindChecking Kind = "checking"
	KindSavings  Kind = "savings"
	KindCredit   Kind = "credit"
	KindCash     Kind = "cash"
)

// Account is a manually tracked bank account. Balances are updated by the
// user; there is no automatic feed from the institution.
type Account struct {
	Id          int
	Name        string
	Institution string
	Kind        Kind
	Balance     decimal.Decimal
	BalanceAsOf time.Time
}

func (k Kind) IsValid() bool {
	switch k {
	case KindChecking, KindSavings, KindCredit, KindCash:
		return true
	}
	return false
}

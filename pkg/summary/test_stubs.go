package summary

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stashly/stashly/pkg/account"
	"github.com/stashly/stashly/pkg/envelope"
)

type envelopeServiceStub struct {
	views []envelope.View
}

func (s *envelopeServiceStub) GetAll(ctx context.Context) ([]envelope.View, error) {
	return s.views, nil
}

func (s *envelopeServiceStub) Get(ctx context.Context, id int) (envelope.View, error) {
	for _, view := range s.views {
		if view.Id == id {
			return view, nil
		}
	}
	return envelope.View{}, envelope.ErrEnvelopeNotFound
}

func (s *envelopeServiceStub) Create(ctx context.Context, e envelope.Envelope) (envelope.Envelope, error) {
	panic("not implemented in stub")
}

func (s *envelopeServiceStub) Update(ctx context.Context, e envelope.Envelope) (envelope.Envelope, error) {
	panic("not implemented in stub")
}

func (s *envelopeServiceStub) Delete(ctx context.Context, id int) (bool, error) {
	panic("not implemented in stub")
}

func (s *envelopeServiceStub) MoveAfter(ctx context.Context, id, precedingId int) (bool, error) {
	panic("not implemented in stub")
}

type accountServiceStub struct {
	total decimal.Decimal
}

func (s *accountServiceStub) GetAll(ctx context.Context) ([]account.Account, error) {
	return nil, nil
}

func (s *accountServiceStub) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	return s.total, nil
}

func (s *accountServiceStub) Create(ctx context.Context, a account.Account) (account.Account, error) {
	panic("not implemented in stub")
}

func (s *accountServiceStub) Update(ctx context.Context, a account.Account) (bool, error) {
	panic("not implemented in stub")
}

func (s *accountServiceStub) Delete(ctx context.Context, id int) (bool, error) {
	panic("not implemented in stub")
}

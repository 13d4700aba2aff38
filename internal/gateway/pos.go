package gateway

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PosService is the external card terminal the ledger charges through.
// The call is fallible and not idempotent: the ledger invokes it at most
// once per debit attempt, before the balance is adjusted.
type PosService interface {
	Pay(ctx context.Context, cardNumber string, amount decimal.Decimal) (txRef string, err error)
}

// FakePos is a stand-in terminal that accepts every charge and hands back
// a generated transaction reference. Real gateway integration plugs in
// behind the same interface.
type FakePos struct{}

// NewFakePos creates a fake POS terminal.
func NewFakePos() *FakePos {
	return &FakePos{}
}

// Pay accepts the charge unconditionally.
func (p *FakePos) Pay(_ context.Context, _ string, _ decimal.Decimal) (string, error) {
	return uuid.NewString(), nil
}

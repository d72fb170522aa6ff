package method

import (
	"context"

	"github.com/payflow/core/payment"
)

// GiftCard is refundable and balance-tracked. It never reads the balance
// itself: Process emits a debit instruction and the Ledger enforces
// sufficiency atomically, so concurrent payments cannot jointly overdraw.
type GiftCard struct {
	ceiling int64
}

// GiftCardConfig holds gift card configuration.
type GiftCardConfig struct {
	Ceiling int64
}

// NewGiftCard creates the gift card behavior.
func NewGiftCard(cfg *GiftCardConfig) *GiftCard {
	if cfg == nil {
		cfg = &GiftCardConfig{}
	}
	return &GiftCard{ceiling: cfg.Ceiling}
}

// Kind returns the kind tag.
func (g *GiftCard) Kind() string {
	return "gift_card"
}

// Descriptor returns the kind's capability declaration.
func (g *GiftCard) Descriptor() payment.Descriptor {
	return payment.Descriptor{
		Capabilities: []payment.Capability{
			payment.CapabilityRefundable,
			payment.CapabilityBalanceTracked,
		},
		Ceiling: g.ceiling,
	}
}

func (g *GiftCard) Validate(amount int64) error {
	return payment.CheckAmount(amount, g.ceiling)
}

func (g *GiftCard) Process(ctx context.Context, amount int64) (payment.Instruction, error) {
	return payment.Instruction{Debit: amount}, nil
}

// Refund restores the refunded amount to the card balance.
func (g *GiftCard) Refund(ctx context.Context, tx *payment.Transaction, amount int64) (payment.Instruction, error) {
	return payment.Instruction{Credit: amount}, nil
}

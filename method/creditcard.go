package method

import (
	"context"

	"github.com/payflow/core/payment"
)

// CreditCard is fee-bearing and refundable. It carries no balance; settlement
// is the acquirer's problem, so Process never fails after validation.
type CreditCard struct {
	ceiling  int64
	feeBps   int64
	feeFixed int64
}

// CreditCardConfig holds credit card configuration.
type CreditCardConfig struct {
	Ceiling        int64
	FeeBasisPoints int64
	FeeFixed       int64
}

// NewCreditCard creates the credit card behavior.
func NewCreditCard(cfg *CreditCardConfig) *CreditCard {
	if cfg == nil {
		cfg = &CreditCardConfig{FeeBasisPoints: 290, FeeFixed: 30}
	}
	return &CreditCard{
		ceiling:  cfg.Ceiling,
		feeBps:   cfg.FeeBasisPoints,
		feeFixed: cfg.FeeFixed,
	}
}

// Kind returns the kind tag.
func (c *CreditCard) Kind() string {
	return "credit_card"
}

// Descriptor returns the kind's capability declaration.
func (c *CreditCard) Descriptor() payment.Descriptor {
	return payment.Descriptor{
		Capabilities: []payment.Capability{
			payment.CapabilityFeeBearing,
			payment.CapabilityRefundable,
		},
		Ceiling: c.ceiling,
	}
}

func (c *CreditCard) Validate(amount int64) error {
	return payment.CheckAmount(amount, c.ceiling)
}

func (c *CreditCard) Process(ctx context.Context, amount int64) (payment.Instruction, error) {
	return payment.Instruction{}, nil
}

// Fees returns the percentage fee plus the fixed component.
func (c *CreditCard) Fees(amount int64) int64 {
	return roundBasisPoints(amount, c.feeBps) + c.feeFixed
}

func (c *CreditCard) Refund(ctx context.Context, tx *payment.Transaction, amount int64) (payment.Instruction, error) {
	return payment.Instruction{}, nil
}

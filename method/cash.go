package method

import (
	"context"

	"github.com/payflow/core/payment"
)

// Cash declares no capabilities: no fees, no refunds, no balance. It exists
// to prove the Processor path is identical for the plainest possible kind.
type Cash struct {
	ceiling int64
}

// CashConfig holds cash configuration.
type CashConfig struct {
	Ceiling int64
}

// NewCash creates the cash behavior.
func NewCash(cfg *CashConfig) *Cash {
	if cfg == nil {
		cfg = &CashConfig{}
	}
	return &Cash{ceiling: cfg.Ceiling}
}

// Kind returns the kind tag.
func (c *Cash) Kind() string {
	return "cash"
}

// Descriptor returns the kind's capability declaration.
func (c *Cash) Descriptor() payment.Descriptor {
	return payment.Descriptor{Ceiling: c.ceiling}
}

func (c *Cash) Validate(amount int64) error {
	return payment.CheckAmount(amount, c.ceiling)
}

func (c *Cash) Process(ctx context.Context, amount int64) (payment.Instruction, error) {
	return payment.Instruction{}, nil
}

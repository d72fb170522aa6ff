package method

import (
	"context"

	"github.com/payflow/core/payment"
)

// UPI is fee-bearing and ceiling-limited: transfers above the configured
// per-transaction limit are rejected by the shared validation rule.
type UPI struct {
	ceiling int64
	feeFlat int64
}

// UPIConfig holds UPI configuration.
type UPIConfig struct {
	Ceiling int64
	FeeFlat int64
}

// NewUPI creates the UPI behavior.
func NewUPI(cfg *UPIConfig) *UPI {
	if cfg == nil {
		cfg = &UPIConfig{Ceiling: 10_000_000, FeeFlat: 5}
	}
	return &UPI{
		ceiling: cfg.Ceiling,
		feeFlat: cfg.FeeFlat,
	}
}

// Kind returns the kind tag.
func (u *UPI) Kind() string {
	return "upi"
}

// Descriptor returns the kind's capability declaration.
func (u *UPI) Descriptor() payment.Descriptor {
	return payment.Descriptor{
		Capabilities: []payment.Capability{payment.CapabilityFeeBearing},
		Ceiling:      u.ceiling,
	}
}

func (u *UPI) Validate(amount int64) error {
	return payment.CheckAmount(amount, u.ceiling)
}

func (u *UPI) Process(ctx context.Context, amount int64) (payment.Instruction, error) {
	return payment.Instruction{}, nil
}

// Fees returns the flat per-transaction fee.
func (u *UPI) Fees(amount int64) int64 {
	return u.feeFlat
}

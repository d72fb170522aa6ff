package method

import (
	"context"
	"sync/atomic"

	"github.com/payflow/core/payment"
)

// Bitcoin is fee-bearing. The fee is the network fee in satoshis converted
// to fiat through a rate supplied by the RateProvider collaborator. Process
// refreshes the cached rate opportunistically; a provider failure keeps the
// last known rate so the fee query stays a total function.
type Bitcoin struct {
	ceiling int64
	feeSats int64
	rates   payment.RateProvider

	// rate is fiat minor units per whole coin.
	rate atomic.Int64
}

// BitcoinConfig holds bitcoin configuration.
type BitcoinConfig struct {
	Ceiling        int64
	NetworkFeeSats int64

	// InitialRate seeds the cached rate until the provider supplies one.
	InitialRate int64
}

// NewBitcoin creates the bitcoin behavior. rates may be nil, in which case
// the initial rate is used for the lifetime of the behavior.
func NewBitcoin(cfg *BitcoinConfig, rates payment.RateProvider) *Bitcoin {
	if cfg == nil {
		cfg = &BitcoinConfig{NetworkFeeSats: 2000, InitialRate: 6_500_000_00}
	}
	b := &Bitcoin{
		ceiling: cfg.Ceiling,
		feeSats: cfg.NetworkFeeSats,
		rates:   rates,
	}
	b.rate.Store(cfg.InitialRate)
	return b
}

// Kind returns the kind tag.
func (b *Bitcoin) Kind() string {
	return "bitcoin"
}

// Descriptor returns the kind's capability declaration.
func (b *Bitcoin) Descriptor() payment.Descriptor {
	return payment.Descriptor{
		Capabilities: []payment.Capability{payment.CapabilityFeeBearing},
		Ceiling:      b.ceiling,
	}
}

func (b *Bitcoin) Validate(amount int64) error {
	return payment.CheckAmount(amount, b.ceiling)
}

func (b *Bitcoin) Process(ctx context.Context, amount int64) (payment.Instruction, error) {
	if b.rates != nil {
		if rate, err := b.rates.Rate(ctx); err == nil && rate > 0 {
			b.rate.Store(rate)
		}
	}
	return payment.Instruction{}, nil
}

// Fees converts the satoshi network fee to fiat minor units using the cached
// rate, rounding half up.
func (b *Bitcoin) Fees(amount int64) int64 {
	const satsPerCoin = 100_000_000
	return (b.feeSats*b.rate.Load() + satsPerCoin/2) / satsPerCoin
}

// CurrentRate returns the cached fiat-per-coin rate.
func (b *Bitcoin) CurrentRate() int64 {
	return b.rate.Load()
}

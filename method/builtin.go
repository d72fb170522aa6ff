// Package method is the built-in payment method catalog. Each kind declares
// its capabilities in a Descriptor and implements the uniform Behavior
// contract; optional operations live on the FeeCalculator and Refunder
// interfaces, resolved once at registration.
package method

import (
	"github.com/payflow/core/config"
	"github.com/payflow/core/payment"
)

// describer is implemented by all built-in behaviors.
type describer interface {
	payment.Behavior
	Descriptor() payment.Descriptor
}

// RegisterBuiltin registers the built-in catalog on the registry using the
// given configuration. rates feeds the bitcoin kind and may be nil.
func RegisterBuiltin(reg *payment.Registry, cfg *config.MethodsConfig, rates payment.RateProvider) error {
	behaviors := []describer{
		NewCreditCard(&CreditCardConfig{
			Ceiling:        cfg.CreditCard.Ceiling,
			FeeBasisPoints: cfg.CreditCard.FeeBasisPoints,
			FeeFixed:       cfg.CreditCard.FeeFixed,
		}),
		NewCash(&CashConfig{Ceiling: cfg.Cash.Ceiling}),
		NewUPI(&UPIConfig{Ceiling: cfg.UPI.Ceiling, FeeFlat: cfg.UPI.FeeFlat}),
		NewGiftCard(&GiftCardConfig{Ceiling: cfg.GiftCard.Ceiling}),
		NewBitcoin(&BitcoinConfig{
			Ceiling:        cfg.Bitcoin.Ceiling,
			NetworkFeeSats: cfg.Bitcoin.NetworkFeeSats,
			InitialRate:    cfg.Bitcoin.InitialRate,
		}, rates),
	}

	for _, b := range behaviors {
		if err := reg.Register(b.Descriptor(), b); err != nil {
			return err
		}
	}
	return nil
}

// roundBasisPoints computes a percentage fee in basis points on an amount in
// minor units, rounding half up.
func roundBasisPoints(amount, bps int64) int64 {
	return (amount*bps + 5_000) / 10_000
}

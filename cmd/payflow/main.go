// Command payflow runs the payment core against its built-in catalog: it
// enrolls one method per kind, processes a payment on each, and refunds
// where the kind allows it. Useful as a smoke check and a usage example.
package main

import (
	"context"
	"errors"
	"log"

	"go.uber.org/zap"

	"github.com/payflow/core/config"
	"github.com/payflow/core/ledger"
	"github.com/payflow/core/logger"
	"github.com/payflow/core/method"
	"github.com/payflow/core/metrics"
	"github.com/payflow/core/payment"
	"github.com/payflow/core/processor"
	"github.com/payflow/core/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(&cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	rates := rate.NewBreaker(rate.NewStatic(cfg.Methods.Bitcoin.InitialRate), &rate.BreakerConfig{
		FailureThreshold:    cfg.Rate.FailureThreshold,
		MaxHalfOpenRequests: cfg.Rate.MaxHalfOpenRequests,
		Interval:            cfg.Rate.Interval,
		Timeout:             cfg.Rate.Timeout,
	})

	registry := payment.NewRegistry()
	if err := method.RegisterBuiltin(registry, &cfg.Methods, rates); err != nil {
		log.Fatalf("Failed to register payment kinds: %v", err)
	}

	proc := processor.New(registry, ledger.New(zl), metrics.New("payflow", nil), zl)

	ctx := context.Background()
	amount := int64(10_000)

	for _, kind := range registry.Kinds() {
		var initial int64
		entry, err := registry.Lookup(kind)
		if err != nil {
			log.Fatalf("Failed to look up kind %s: %v", kind, err)
		}
		if entry.Descriptor.Has(payment.CapabilityBalanceTracked) {
			initial = 50_000
		}

		m, err := proc.Enroll(kind, initial)
		if err != nil {
			zl.Error("enroll failed", zap.String("kind", kind), zap.Error(err))
			continue
		}

		tx, err := proc.Process(ctx, m.ID, amount)
		if err != nil {
			zl.Error("payment failed", zap.String("kind", kind), zap.Error(err))
			continue
		}

		_, err = proc.Refund(ctx, tx.ID, amount)
		switch {
		case err == nil:
			zl.Info("refunded", zap.String("kind", kind))
		case errors.Is(err, payment.ErrCapabilityUnsupported):
			zl.Info("kind is not refundable", zap.String("kind", kind))
		default:
			zl.Error("refund failed", zap.String("kind", kind), zap.Error(err))
		}
	}
}

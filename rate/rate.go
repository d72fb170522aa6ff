// Package rate provides RateProvider implementations: a static rate and a
// circuit-breaker decorator for unreliable upstream sources.
package rate

import (
	"context"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/payflow/core/payment"
)

// Static is a RateProvider returning a fixed rate.
type Static struct {
	value int64
}

// NewStatic creates a static rate provider.
func NewStatic(value int64) *Static {
	return &Static{value: value}
}

// Rate returns the fixed rate.
func (s *Static) Rate(ctx context.Context) (int64, error) {
	return s.value, nil
}

// BreakerConfig holds circuit breaker settings.
type BreakerConfig struct {
	FailureThreshold    uint32
	MaxHalfOpenRequests uint32
	Interval            time.Duration
	Timeout             time.Duration
}

// DefaultBreakerConfig returns the default breaker configuration.
func DefaultBreakerConfig() *BreakerConfig {
	return &BreakerConfig{
		FailureThreshold:    5,
		MaxHalfOpenRequests: 1,
		Interval:            60 * time.Second,
		Timeout:             30 * time.Second,
	}
}

// Breaker wraps a RateProvider with a circuit breaker so a failing rate
// source degrades to an error the consumer can absorb (the bitcoin kind
// keeps its last known rate) instead of being hammered.
type Breaker struct {
	inner   payment.RateProvider
	breaker *gobreaker.CircuitBreaker[int64]
}

// NewBreaker creates a breaker-wrapped rate provider.
func NewBreaker(inner payment.RateProvider, cfg *BreakerConfig) *Breaker {
	if cfg == nil {
		cfg = DefaultBreakerConfig()
	}

	settings := gobreaker.Settings{
		Name:        "rate-provider",
		MaxRequests: cfg.MaxHalfOpenRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
	}

	return &Breaker{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[int64](settings),
	}
}

// Rate fetches the rate through the breaker.
func (b *Breaker) Rate(ctx context.Context) (int64, error) {
	return b.breaker.Execute(func() (int64, error) {
		return b.inner.Rate(ctx)
	})
}

// State returns the breaker state.
func (b *Breaker) State() gobreaker.State {
	return b.breaker.State()
}

package rate

import (
	"context"
	"errors"
	"testing"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyProvider struct {
	rate int64
	err  error
}

func (p *flakyProvider) Rate(ctx context.Context) (int64, error) {
	return p.rate, p.err
}

func TestStatic(t *testing.T) {
	s := NewStatic(6_500_000_00)

	rate, err := s.Rate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(6_500_000_00), rate)
}

func TestBreakerPassesThrough(t *testing.T) {
	b := NewBreaker(&flakyProvider{rate: 42}, nil)

	rate, err := b.Rate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), rate)
	assert.Equal(t, gobreaker.StateClosed, b.State())
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	upstream := &flakyProvider{err: errors.New("upstream down")}
	b := NewBreaker(upstream, &BreakerConfig{
		FailureThreshold:    3,
		MaxHalfOpenRequests: 1,
		Interval:            0,
		Timeout:             0,
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := b.Rate(ctx)
		assert.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, b.State())

	// While open the upstream is not called at all.
	_, err := b.Rate(ctx)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestBreakerStaysOpenUntilTimeout(t *testing.T) {
	upstream := &flakyProvider{err: errors.New("upstream down")}
	b := NewBreaker(upstream, &BreakerConfig{
		FailureThreshold:    1,
		MaxHalfOpenRequests: 1,
	})

	ctx := context.Background()
	_, err := b.Rate(ctx)
	require.Error(t, err)
	require.Equal(t, gobreaker.StateOpen, b.State())

	// The upstream healing does not matter while the breaker is open.
	upstream.err = nil
	upstream.rate = 99
	_, err = b.Rate(ctx)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

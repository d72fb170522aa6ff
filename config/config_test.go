package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	assert.Equal(t, int64(290), cfg.Methods.CreditCard.FeeBasisPoints)
	assert.Equal(t, int64(30), cfg.Methods.CreditCard.FeeFixed)
	assert.Zero(t, cfg.Methods.CreditCard.Ceiling)

	assert.Zero(t, cfg.Methods.Cash.Ceiling)

	assert.Equal(t, int64(10_000_000), cfg.Methods.UPI.Ceiling)
	assert.Equal(t, int64(5), cfg.Methods.UPI.FeeFlat)

	assert.Zero(t, cfg.Methods.GiftCard.Ceiling)

	assert.Equal(t, int64(2000), cfg.Methods.Bitcoin.NetworkFeeSats)
	assert.Equal(t, int64(6_500_000_00), cfg.Methods.Bitcoin.InitialRate)

	assert.Equal(t, uint32(5), cfg.Rate.FailureThreshold)
	assert.Equal(t, uint32(1), cfg.Rate.MaxHalfOpenRequests)
	assert.Equal(t, 60*time.Second, cfg.Rate.Interval)
	assert.Equal(t, 30*time.Second, cfg.Rate.Timeout)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	// No config file exists in the test working directory; Load must fall
	// back to defaults instead of failing.
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(290), cfg.Methods.CreditCard.FeeBasisPoints)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PAYFLOW_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

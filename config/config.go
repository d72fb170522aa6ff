// Package config loads processor configuration from file and environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all payflow configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Methods MethodsConfig `mapstructure:"methods"`
	Rate    RateConfig    `mapstructure:"rate"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MethodsConfig holds per-kind configuration for the built-in catalog.
// All monetary values are minor currency units; a zero ceiling means no
// per-transaction limit.
type MethodsConfig struct {
	CreditCard CreditCardConfig `mapstructure:"credit_card"`
	Cash       CashConfig       `mapstructure:"cash"`
	UPI        UPIConfig        `mapstructure:"upi"`
	GiftCard   GiftCardConfig   `mapstructure:"gift_card"`
	Bitcoin    BitcoinConfig    `mapstructure:"bitcoin"`
}

// CreditCardConfig holds credit card kind configuration.
type CreditCardConfig struct {
	Ceiling        int64 `mapstructure:"ceiling"`
	FeeBasisPoints int64 `mapstructure:"fee_basis_points"`
	FeeFixed       int64 `mapstructure:"fee_fixed"`
}

// CashConfig holds cash kind configuration.
type CashConfig struct {
	Ceiling int64 `mapstructure:"ceiling"`
}

// UPIConfig holds UPI kind configuration.
type UPIConfig struct {
	Ceiling int64 `mapstructure:"ceiling"`
	FeeFlat int64 `mapstructure:"fee_flat"`
}

// GiftCardConfig holds gift card kind configuration.
type GiftCardConfig struct {
	Ceiling int64 `mapstructure:"ceiling"`
}

// BitcoinConfig holds bitcoin kind configuration.
type BitcoinConfig struct {
	Ceiling int64 `mapstructure:"ceiling"`

	// NetworkFeeSats is the network fee in satoshis, converted to fiat
	// through the rate provider.
	NetworkFeeSats int64 `mapstructure:"network_fee_sats"`

	// InitialRate is the fiat-per-coin rate, in minor units per whole
	// coin, used until the rate provider supplies a fresher one.
	InitialRate int64 `mapstructure:"initial_rate"`
}

// RateConfig holds circuit breaker settings for the rate provider.
type RateConfig struct {
	FailureThreshold    uint32        `mapstructure:"failure_threshold"`
	MaxHalfOpenRequests uint32        `mapstructure:"max_half_open_requests"`
	Interval            time.Duration `mapstructure:"interval"`
	Timeout             time.Duration `mapstructure:"timeout"`
}

// Load loads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("/etc/payflow")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file not found, use defaults and env
	}

	v.SetEnvPrefix("PAYFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in defaults without consulting file or env.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Unmarshal of in-memory defaults cannot fail.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Credit card: 2.9% + 30 minor units, no ceiling
	v.SetDefault("methods.credit_card.ceiling", 0)
	v.SetDefault("methods.credit_card.fee_basis_points", 290)
	v.SetDefault("methods.credit_card.fee_fixed", 30)

	// Cash: no fees, no ceiling
	v.SetDefault("methods.cash.ceiling", 0)

	// UPI: flat fee, regulatory per-transaction ceiling
	v.SetDefault("methods.upi.ceiling", 10_000_000)
	v.SetDefault("methods.upi.fee_flat", 5)

	// Gift card: balance-limited rather than ceiling-limited
	v.SetDefault("methods.gift_card.ceiling", 0)

	// Bitcoin: network fee in sats, rate in minor units per coin
	v.SetDefault("methods.bitcoin.ceiling", 0)
	v.SetDefault("methods.bitcoin.network_fee_sats", 2000)
	v.SetDefault("methods.bitcoin.initial_rate", 6_500_000_00)

	// Rate provider breaker defaults
	v.SetDefault("rate.failure_threshold", 5)
	v.SetDefault("rate.max_half_open_requests", 1)
	v.SetDefault("rate.interval", 60*time.Second)
	v.SetDefault("rate.timeout", 30*time.Second)
}

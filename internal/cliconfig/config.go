package cliconfig

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Config holds CLI configuration for shopcart.
type Config struct {
	CatalogPath string

	DeliveryThreshold decimal.Decimal
	DeliveryFee       decimal.Decimal

	StateDir  string
	SessionID string

	FollowPath   string
	PollInterval time.Duration
	Once         bool

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		DeliveryThreshold: decimal.NewFromInt(30),
		DeliveryFee:       decimal.NewFromInt(25),
		PollInterval:      500 * time.Millisecond,
		LogLevel:          "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DeliveryThreshold.IsNegative() {
		return fmt.Errorf("delivery threshold must not be negative")
	}
	if c.DeliveryFee.IsNegative() {
		return fmt.Errorf("delivery fee must not be negative")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive")
	}
	if c.Once && c.FollowPath == "" {
		return fmt.Errorf("once requires follow")
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}

// setDecimal sets an amount from a TOML value, which may be an integer, a
// float or a decimal string. nil leaves dst alone.
func (s *configSetter) setDecimal(flag string, value any, dst *decimal.Decimal) error {
	if value == nil || s.changed[flag] {
		return nil
	}
	switch v := value.(type) {
	case int64:
		*dst = decimal.NewFromInt(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("parse %s: %v is not a finite number", flag, v)
		}
		*dst = decimal.NewFromFloat(v)
	case string:
		return s.setDecimalFromString(flag, v, dst)
	default:
		return fmt.Errorf("parse %s: unsupported type %T", flag, value)
	}
	return nil
}

// setDecimalFromString parses a decimal string and sets the destination.
func (s *configSetter) setDecimalFromString(flag, value string, dst *decimal.Decimal) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config in a TOML friendly shape. Amounts are decoded
// loosely so both `fee = 25` and `fee = "25.00"` work.
type FileConfig struct {
	Catalog           string `toml:"catalog"`
	DeliveryThreshold any    `toml:"delivery_threshold"`
	DeliveryFee       any    `toml:"delivery_fee"`
	StateDir          string `toml:"state_dir"`
	SessionID         string `toml:"session_id"`
	Follow            string `toml:"follow"`
	PollInterval      string `toml:"poll_interval"`
	Once              *bool  `toml:"once"`
	LogLevel          string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.shopcart/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".shopcart", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("catalog", fc.Catalog, &cfg.CatalogPath)
	s.setString("state-dir", fc.StateDir, &cfg.StateDir)
	s.setString("session-id", fc.SessionID, &cfg.SessionID)
	s.setString("follow", fc.Follow, &cfg.FollowPath)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	if err := s.setDecimal("threshold", fc.DeliveryThreshold, &cfg.DeliveryThreshold); err != nil {
		return err
	}
	if err := s.setDecimal("fee", fc.DeliveryFee, &cfg.DeliveryFee); err != nil {
		return err
	}
	if err := s.setDuration("poll", fc.PollInterval, &cfg.PollInterval); err != nil {
		return err
	}

	s.setBool("once", fc.Once, &cfg.Once)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

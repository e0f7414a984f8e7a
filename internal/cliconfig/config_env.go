package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (SHOPCART_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("catalog", os.Getenv("SHOPCART_CATALOG"), &cfg.CatalogPath)
	s.setString("state-dir", os.Getenv("SHOPCART_STATE_DIR"), &cfg.StateDir)
	s.setString("session-id", os.Getenv("SHOPCART_SESSION_ID"), &cfg.SessionID)
	s.setString("follow", os.Getenv("SHOPCART_FOLLOW"), &cfg.FollowPath)
	s.setString("log-level", os.Getenv("SHOPCART_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDecimalFromString("threshold", os.Getenv("SHOPCART_DELIVERY_THRESHOLD"), &cfg.DeliveryThreshold); err != nil {
		return err
	}
	if err := s.setDecimalFromString("fee", os.Getenv("SHOPCART_DELIVERY_FEE"), &cfg.DeliveryFee); err != nil {
		return err
	}
	if err := s.setDuration("poll", os.Getenv("SHOPCART_POLL_INTERVAL"), &cfg.PollInterval); err != nil {
		return err
	}

	s.setBoolFromString("once", os.Getenv("SHOPCART_ONCE"), &cfg.Once)

	return nil
}

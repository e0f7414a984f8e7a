// Package log provides the logging abstraction used by shopcart sessions.
//
// The session and CLI log through the Logger interface. A zerolog adapter
// is the default; NoopLogger discards everything and is what tests use.
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	logger.Info("item added", log.Int("index", 2), log.Decimal("total", c.TotalPrice()))
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package log

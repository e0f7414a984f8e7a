package cliconfig

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/bft-labs/shopcart/pkg/log"
)

// Logger returns the CLI logger writing to stderr at level.
func Logger(level string) zerolog.Logger {
	return log.NewConsoleLogger(os.Stderr, level)
}

package cliconfig

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

func TestDecimalVar(t *testing.T) {
	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	DecimalVar(fs, &cfg.DeliveryThreshold, "threshold", "")
	DecimalVar(fs, &cfg.DeliveryFee, "fee", "")

	if got := fs.Lookup("threshold").DefValue; got != "30" {
		t.Errorf("threshold default = %q, want 30", got)
	}

	if err := fs.Parse([]string{"--threshold", "19.90"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !cfg.DeliveryThreshold.Equal(decimal.RequireFromString("19.9")) {
		t.Errorf("DeliveryThreshold = %v, want 19.9", cfg.DeliveryThreshold)
	}
	if !fs.Changed("threshold") || fs.Changed("fee") {
		t.Error("unexpected changed state")
	}

	if err := fs.Parse([]string{"--fee", "lots"}); err == nil {
		t.Error("expected parse error for non-decimal fee")
	}
}

package cliconfig

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

// decimalValue adapts a decimal.Decimal to pflag.Value.
type decimalValue struct {
	d *decimal.Decimal
}

func (v decimalValue) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

func (decimalValue) Type() string { return "decimal" }

// DecimalVar defines a decimal flag whose value is stored in p, which also
// supplies the default.
func DecimalVar(fs *pflag.FlagSet, p *decimal.Decimal, name, usage string) {
	fs.Var(decimalValue{d: p}, name, usage)
}

// Package render draws a cart as plain text: one line per goods entry and
// a footer with the delivery and total summary. It only uses the cart's
// read accessors.
package render

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/bft-labs/shopcart/pkg/cart"
	"github.com/bft-labs/shopcart/pkg/log"
)

const currency = "¥"

// GoodsLine returns the display line for item i.
func GoodsLine(c *cart.Cart, i int) string {
	it := c.Item(i)
	e := it.Entry()
	mark := " "
	if it.IsSelected() {
		mark = "*"
	}
	return fmt.Sprintf("%s [%d] %-24s %s%-8s sold %d  liked %d%%  qty %d",
		mark, i, e.Title, currency, e.Price.StringFixed(2), e.SellNumber, e.FavorRate, it.Quantity())
}

// Goods writes every goods line.
func Goods(w io.Writer, c *cart.Cart) error {
	for i := 0; i < c.Len(); i++ {
		if _, err := fmt.Fprintln(w, GoodsLine(c, i)); err != nil {
			return err
		}
	}
	return nil
}

// FooterLines returns the footer: delivery fee, delivery status, total,
// item count and, when anything is selected, the cart-active marker.
func FooterLines(c *cart.Cart) []string {
	lines := []string{fmt.Sprintf("delivery fee %s%s", currency, c.DeliveryFee().String())}

	if c.MeetsDeliveryThreshold() {
		lines = append(lines, "ready to order")
	} else {
		lines = append(lines, fmt.Sprintf("%s%s short of delivery", currency, c.Shortfall().Round(0).String()))
	}

	lines = append(lines,
		fmt.Sprintf("total %s%s", currency, c.TotalPrice().StringFixed(2)),
		fmt.Sprintf("items %d", c.TotalQuantity()),
	)
	if c.HasSelection() {
		lines = append(lines, "cart active")
	}
	return lines
}

// Footer writes the footer lines.
func Footer(w io.Writer, c *cart.Cart) error {
	for _, l := range FooterLines(c) {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// Listener returns a cart.Listener that redraws the changed goods line and
// the footer after every change. Listeners cannot fail, so write errors are
// reported to logger; a nil logger discards them.
func Listener(w io.Writer, c *cart.Cart, logger log.Logger) cart.Listener {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return func(ch cart.Change) {
		if err := redraw(w, c, ch.Index); err != nil {
			logger.Error("render change",
				log.Int("index", ch.Index),
				log.String("op", ch.Op.String()),
				log.Err(err))
		}
	}
}

func redraw(w io.Writer, c *cart.Cart, i int) error {
	if _, err := fmt.Fprintln(w, GoodsLine(c, i)); err != nil {
		return err
	}
	if err := Footer(w, c); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// Money formats an amount the way totals are shown.
func Money(d decimal.Decimal) string {
	return currency + d.StringFixed(2)
}

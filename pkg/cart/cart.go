package cart

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bft-labs/shopcart/pkg/catalog"
)

var (
	// ErrQuantityCount is returned by Restore when the number of quantities
	// does not match the number of items.
	ErrQuantityCount = errors.New("cart: quantity count mismatch")

	// ErrNegativeQuantity is returned by Restore for a quantity below zero.
	ErrNegativeQuantity = errors.New("cart: negative quantity")
)

// Cart is the ordered set of item states for one session plus the delivery
// settings shown alongside it.
//
// A Cart is owned by a single goroutine; it does no locking.
type Cart struct {
	items     []*Item
	threshold decimal.Decimal
	fee       decimal.Decimal
	listeners []Listener
}

// New builds a cart with one unselected item per entry, in entry order.
// threshold is the minimum total required for delivery; fee is the flat
// delivery fee, which is informational and never added into totals.
func New(entries []catalog.Entry, threshold, fee decimal.Decimal) *Cart {
	items := make([]*Item, len(entries))
	for i, e := range entries {
		items[i] = NewItem(e)
	}
	return &Cart{
		items:     items,
		threshold: threshold,
		fee:       fee,
	}
}

// Len returns the number of items. It never changes.
func (c *Cart) Len() int {
	return len(c.items)
}

// Item returns the item at index i.
func (c *Cart) Item(i int) *Item {
	return c.items[i]
}

// Quantity returns the selected quantity of item i.
func (c *Cart) Quantity(i int) int {
	return c.items[i].Quantity()
}

// DeliveryThreshold returns the minimum total required for delivery.
func (c *Cart) DeliveryThreshold() decimal.Decimal {
	return c.threshold
}

// DeliveryFee returns the flat delivery fee.
func (c *Cart) DeliveryFee() decimal.Decimal {
	return c.fee
}

// TotalPrice returns the sum of price × quantity over all items.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.TotalPrice())
	}
	return total
}

// TotalQuantity returns the sum of quantities over all items.
func (c *Cart) TotalQuantity() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity()
	}
	return n
}

// HasSelection reports whether anything is in the cart.
func (c *Cart) HasSelection() bool {
	return c.TotalQuantity() > 0
}

// MeetsDeliveryThreshold reports whether TotalPrice reaches the delivery threshold.
func (c *Cart) MeetsDeliveryThreshold() bool {
	return c.TotalPrice().GreaterThanOrEqual(c.threshold)
}

// Shortfall returns how much more must be added to reach the delivery
// threshold, or zero once it is met.
func (c *Cart) Shortfall() decimal.Decimal {
	short := c.threshold.Sub(c.TotalPrice())
	if short.IsNegative() {
		return decimal.Zero
	}
	return short
}

// IsSelected reports whether item i has a non-zero quantity.
func (c *Cart) IsSelected(i int) bool {
	return c.items[i].IsSelected()
}

// Increment adds one unit of item i.
func (c *Cart) Increment(i int) {
	it := c.items[i]
	it.Increment()
	c.notify(Change{Index: i, Op: OpIncrement, Quantity: it.Quantity()})
}

// Decrement removes one unit of item i, saturating at zero.
func (c *Cart) Decrement(i int) {
	it := c.items[i]
	it.Decrement()
	c.notify(Change{Index: i, Op: OpDecrement, Quantity: it.Quantity()})
}

// Quantities returns a copy of the per-item quantities in item order.
func (c *Cart) Quantities() []int {
	qs := make([]int, len(c.items))
	for i, it := range c.items {
		qs[i] = it.quantity
	}
	return qs
}

// Restore sets every item's quantity from qs. The cart is left untouched
// when qs has the wrong length or holds a negative value. Listeners are not
// notified; callers redraw after a restore.
func (c *Cart) Restore(qs []int) error {
	if len(qs) != len(c.items) {
		return fmt.Errorf("%w: have %d items, got %d", ErrQuantityCount, len(c.items), len(qs))
	}
	for i, q := range qs {
		if q < 0 {
			return fmt.Errorf("%w: item %d has %d", ErrNegativeQuantity, i, q)
		}
	}
	for i, q := range qs {
		c.items[i].quantity = q
	}
	return nil
}

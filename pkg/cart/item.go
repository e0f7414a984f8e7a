package cart

import (
	"github.com/shopspring/decimal"

	"github.com/bft-labs/shopcart/pkg/catalog"
)

// Item is the selection state of one catalog entry.
// Its quantity never goes below zero.
type Item struct {
	entry    catalog.Entry
	quantity int
}

// NewItem returns an unselected item for entry.
func NewItem(entry catalog.Entry) *Item {
	return &Item{entry: entry}
}

// Entry returns the catalog entry this item wraps.
func (it *Item) Entry() catalog.Entry {
	return it.entry
}

// Quantity returns how many units are selected.
func (it *Item) Quantity() int {
	return it.quantity
}

// TotalPrice returns price × quantity.
func (it *Item) TotalPrice() decimal.Decimal {
	return it.entry.Price.Mul(decimal.NewFromInt(int64(it.quantity)))
}

// IsSelected reports whether at least one unit is selected.
func (it *Item) IsSelected() bool {
	return it.quantity > 0
}

// Increment adds one unit.
func (it *Item) Increment() {
	it.quantity++
}

// Decrement removes one unit. At zero it does nothing.
func (it *Item) Decrement() {
	if it.quantity == 0 {
		return
	}
	it.quantity--
}

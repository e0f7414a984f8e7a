// Package cart tracks selected quantities over a goods catalog and derives
// the totals a storefront footer needs.
//
// A [Cart] holds one [Item] per catalog entry, in catalog order. Items are
// addressed by index and are never added or removed after construction;
// only their quantities change. Every total is recomputed from the live
// quantities on each call, so nothing can go stale.
//
// # Usage
//
//	c := cart.New(entries, decimal.NewFromInt(30), decimal.NewFromInt(25))
//	c.Subscribe(func(ch cart.Change) { redraw(ch.Index) })
//
//	c.Increment(0)
//	if c.MeetsDeliveryThreshold() {
//	    // enable checkout
//	}
//
// # Indices
//
// Per-item operations expect 0 <= i < Len(). An out-of-range index is a
// programming error and panics with a runtime index fault, the same way a
// slice access would. Callers taking indices from user input must check
// them first.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package cart

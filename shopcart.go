// Package shopcart tracks selected quantities over a goods catalog and
// derives cart totals and delivery eligibility.
//
// Example usage:
//
//	goods, err := shopcart.LoadCatalog("goods.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c := shopcart.New(goods, decimal.NewFromInt(30), decimal.NewFromInt(25))
//	c.Increment(0)
//	fmt.Println(c.TotalPrice(), c.MeetsDeliveryThreshold())
package shopcart

import (
	"github.com/shopspring/decimal"

	"github.com/bft-labs/shopcart/pkg/cart"
	"github.com/bft-labs/shopcart/pkg/catalog"
)

// Cart is the per-session cart aggregate.
type Cart = cart.Cart

// Item is the selection state of one catalog entry.
type Item = cart.Item

// Change is delivered to listeners after every mutation.
type Change = cart.Change

// Listener observes cart changes.
type Listener = cart.Listener

// Entry is one catalog entry.
type Entry = catalog.Entry

// New builds a cart over entries. threshold is the minimum total for
// delivery; fee is the flat delivery fee shown to the shopper.
func New(entries []Entry, threshold, fee decimal.Decimal) *Cart {
	return cart.New(entries, threshold, fee)
}

// LoadCatalog reads a .toml or .json catalog file.
func LoadCatalog(path string) ([]Entry, error) {
	return catalog.Load(path)
}

// DefaultCatalog returns the built-in demo menu.
func DefaultCatalog() []Entry {
	return catalog.Default()
}

package catalog

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyCatalog is returned when a catalog has no entries.
	ErrEmptyCatalog = errors.New("catalog: no goods")

	// ErrNegativePrice is returned when an entry carries a price below zero.
	ErrNegativePrice = errors.New("catalog: negative price")
)

// Entry is one purchasable item.
type Entry struct {
	Title      string          `json:"title"`
	Desc       string          `json:"desc"`
	Pic        string          `json:"pic"`
	SellNumber int             `json:"sell_number"`
	FavorRate  int             `json:"favor_rate"` // percent
	Price      decimal.Decimal `json:"price"`
}

// Validate checks that the catalog is non-empty and every price is non-negative.
func Validate(entries []Entry) error {
	if len(entries) == 0 {
		return ErrEmptyCatalog
	}
	for i, e := range entries {
		if e.Price.IsNegative() {
			return fmt.Errorf("goods[%d] %q: %w", i, e.Title, ErrNegativePrice)
		}
	}
	return nil
}

// Default returns the demo menu used when no catalog file is configured.
func Default() []Entry {
	return []Entry{
		{Title: "Braised Pork Rice", Desc: "Slow cooked pork belly over steamed rice", Pic: "./assets/g1.png", SellNumber: 200, FavorRate: 95, Price: decimal.RequireFromString("12.5")},
		{Title: "Spicy Chicken Noodles", Desc: "Hand pulled noodles, chili oil, scallions", Pic: "./assets/g2.png", SellNumber: 148, FavorRate: 92, Price: decimal.RequireFromString("16")},
		{Title: "Tomato Egg Soup", Desc: "Light soup, serves one", Pic: "./assets/g3.png", SellNumber: 96, FavorRate: 89, Price: decimal.RequireFromString("6.8")},
		{Title: "Sweet and Sour Ribs", Desc: "Crispy ribs glazed in black vinegar", Pic: "./assets/g4.png", SellNumber: 310, FavorRate: 97, Price: decimal.RequireFromString("25")},
		{Title: "Iced Lemon Tea", Desc: "Fresh lemon, black tea, less sugar", Pic: "./assets/g5.png", SellNumber: 520, FavorRate: 90, Price: decimal.RequireFromString("5")},
	}
}

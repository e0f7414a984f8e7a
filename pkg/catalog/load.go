package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
)

// file mirrors the on-disk layout. Price is decoded loosely because TOML
// hands back int64, float64 or string depending on how it was written.
type file struct {
	Goods []fileEntry `toml:"goods" json:"goods"`
}

type fileEntry struct {
	Title      string `toml:"title" json:"title"`
	Desc       string `toml:"desc" json:"desc"`
	Pic        string `toml:"pic" json:"pic"`
	SellNumber int    `toml:"sell_number" json:"sell_number"`
	FavorRate  int    `toml:"favor_rate" json:"favor_rate"`
	Price      any    `toml:"price" json:"price"`
}

// Load reads a catalog from path. The format follows the file extension:
// .toml or .json.
func Load(path string) ([]Entry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f file
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(b, &f)
	case ".json":
		err = json.Unmarshal(b, &f)
	default:
		return nil, fmt.Errorf("catalog %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(f.Goods))
	for i, g := range f.Goods {
		price, err := parsePrice(g.Price)
		if err != nil {
			return nil, fmt.Errorf("goods[%d] %q: %w", i, g.Title, err)
		}
		entries = append(entries, Entry{
			Title:      g.Title,
			Desc:       g.Desc,
			Pic:        g.Pic,
			SellNumber: g.SellNumber,
			FavorRate:  g.FavorRate,
			Price:      price,
		})
	}

	if err := Validate(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func parsePrice(v any) (decimal.Decimal, error) {
	switch p := v.(type) {
	case nil:
		return decimal.Zero, fmt.Errorf("price is required")
	case int64:
		return decimal.NewFromInt(p), nil
	case float64:
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return decimal.Zero, fmt.Errorf("price %v is not a finite number", p)
		}
		return decimal.NewFromFloat(p), nil
	case string:
		d, err := decimal.NewFromString(p)
		if err != nil {
			return decimal.Zero, fmt.Errorf("parse price: %w", err)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("price has unsupported type %T", v)
	}
}

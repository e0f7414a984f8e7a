// Package catalog describes the goods a cart is built over and loads them
// from TOML or JSON files.
//
// Entries are read-only reference data. The cart core only interprets
// [Entry.Price]; the descriptive fields are carried for presentation.
//
// A catalog file is a list of goods tables:
//
//	[[goods]]
//	title = "Braised Pork Rice"
//	desc = "Slow cooked pork belly over rice"
//	pic = "./assets/g1.png"
//	sell_number = 200
//	favor_rate = 95
//	price = 12.5
//
// Prices may be written as numbers or as decimal strings ("12.50").
package catalog

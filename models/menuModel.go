package models

// MenuItem is a sellable product from the static catalog. Ingredients lists
// the inventory names the item depends on; an empty list means the item is
// always available.
type MenuItem struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Tag         string   `json:"tag,omitempty"`
	Ingredients []string `json:"ingredients"`
	SoldOut     bool     `json:"sold_out"`
}

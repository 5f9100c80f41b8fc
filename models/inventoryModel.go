package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InventoryItem is one raw ingredient or consumable tracked by the kitchen.
// Name is unique per canonical key (see CanonicalName).
type InventoryItem struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Item_id           string             `bson:"item_id" json:"item_id"`
	Name              string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	NameKey           string             `bson:"name_key" json:"-"`
	Category          string             `bson:"category" json:"category" validate:"required"`
	Stock             int                `bson:"stock" json:"stock" validate:"min=0"`
	Unit              string             `bson:"unit" json:"unit"`
	Price             float64            `bson:"price" json:"price"`
	LowStockThreshold int                `bson:"low_stock_threshold" json:"low_stock_threshold" validate:"min=0"`
	Created_at        time.Time          `bson:"created_at" json:"created_at"`
	Updated_at        time.Time          `bson:"updated_at" json:"updated_at"`
}

// CanonicalName is the single ingredient identity used everywhere names are
// compared: lowercased and trimmed. Catalog ingredient lists, keyword rules
// and inventory records all meet on this key.
func CanonicalName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Demand maps ingredient name to the total quantity an order requires.
type Demand map[string]int

// Shortage describes one ingredient whose stock cannot cover demand.
type Shortage struct {
	Name      string `json:"name"`
	Needed    int    `json:"needed"`
	Available int    `json:"available"`
	Short     int    `json:"short"`
}

// ShortageReport is the stock validation result. An empty report means the
// demand can be satisfied.
type ShortageReport struct {
	Missing      []string   `json:"missing"`
	Insufficient []Shortage `json:"insufficient"`
}

// OK reports whether validation passed.
func (r ShortageReport) OK() bool {
	return len(r.Missing) == 0 && len(r.Insufficient) == 0
}

// SeedInventory returns the starting stock for a fresh deployment.
func SeedInventory() []InventoryItem {
	return []InventoryItem{
		{Name: "Patty", Category: "INGREDIENTS", Stock: 150, Unit: "pcs", Price: 15, LowStockThreshold: 20},
		{Name: "Cheese", Category: "INGREDIENTS", Stock: 80, Unit: "slices", Price: 10, LowStockThreshold: 15},
		{Name: "Ham", Category: "INGREDIENTS", Stock: 60, Unit: "slices", Price: 12, LowStockThreshold: 15},
		{Name: "Egg", Category: "INGREDIENTS", Stock: 45, Unit: "pcs", Price: 8, LowStockThreshold: 10},
		{Name: "Bacon", Category: "INGREDIENTS", Stock: 35, Unit: "strips", Price: 15, LowStockThreshold: 10},
		{Name: "Bun", Category: "INGREDIENTS", Stock: 120, Unit: "pcs", Price: 5, LowStockThreshold: 20},
		{Name: "Hotdog", Category: "INGREDIENTS", Stock: 70, Unit: "pcs", Price: 12, LowStockThreshold: 15},
		{Name: "Footlong", Category: "INGREDIENTS", Stock: 40, Unit: "pcs", Price: 20, LowStockThreshold: 10},
		{Name: "Siomai", Category: "INGREDIENTS", Stock: 100, Unit: "pcs", Price: 6, LowStockThreshold: 20},
		{Name: "Softdrinks", Category: "BEVERAGES", Stock: 95, Unit: "bottles", Price: 15, LowStockThreshold: 20},
		{Name: "Rice", Category: "INGREDIENTS", Stock: 200, Unit: "cups", Price: 10, LowStockThreshold: 30},
	}
}

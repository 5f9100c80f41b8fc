package services

import (
	"sort"

	"github.com/Mad-mazz/grace-burger/models"
)

// ValidateStock checks a demand against an inventory snapshot. Ingredients
// absent from the snapshot land in Missing; present-but-short ones in
// Insufficient, with the exact shortfall. Lookups use the canonical name
// key, so casing and padding in stored names cannot split an ingredient's
// identity. Diagnostics are sorted by ingredient name.
func ValidateStock(demand models.Demand, snapshot []models.InventoryItem) models.ShortageReport {
	byKey := make(map[string]models.InventoryItem, len(snapshot))
	for _, item := range snapshot {
		byKey[models.CanonicalName(item.Name)] = item
	}

	names := make([]string, 0, len(demand))
	for name := range demand {
		names = append(names, name)
	}
	sort.Strings(names)

	report := models.ShortageReport{Missing: []string{}, Insufficient: []models.Shortage{}}
	for _, name := range names {
		needed := demand[name]
		item, ok := byKey[models.CanonicalName(name)]
		if !ok {
			report.Missing = append(report.Missing, name)
			continue
		}
		if item.Stock < needed {
			report.Insufficient = append(report.Insufficient, models.Shortage{
				Name:      name,
				Needed:    needed,
				Available: item.Stock,
				Short:     needed - item.Stock,
			})
		}
	}
	return report
}

// IsSoldOut decides whether a menu item is currently sellable. An item with
// no tracked ingredients is always available. With a non-empty ingredient
// list and no inventory data at all, the item is sold out: nothing is
// sellable until stock is known. Otherwise the item is sold out as soon as
// any required ingredient is absent or has no stock left.
func IsSoldOut(item models.MenuItem, snapshot []models.InventoryItem) bool {
	if len(item.Ingredients) == 0 {
		return false
	}
	if len(snapshot) == 0 {
		return true
	}

	byKey := make(map[string]models.InventoryItem, len(snapshot))
	for _, record := range snapshot {
		byKey[models.CanonicalName(record.Name)] = record
	}

	for _, ingredient := range item.Ingredients {
		record, ok := byKey[models.CanonicalName(ingredient)]
		if !ok || record.Stock <= 0 {
			return true
		}
	}
	return false
}

// MenuWithAvailability returns the catalog with each item's SoldOut flag
// computed from the snapshot.
func MenuWithAvailability(snapshot []models.InventoryItem) []models.MenuItem {
	menu := make([]models.MenuItem, len(models.MenuCatalog))
	copy(menu, models.MenuCatalog)
	for i := range menu {
		menu[i].SoldOut = IsSoldOut(menu[i], snapshot)
	}
	return menu
}

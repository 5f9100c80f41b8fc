package services

import (
	"strings"

	"github.com/Mad-mazz/grace-burger/models"
)

// grant is one ingredient contribution of a keyword rule: PerUnit is
// multiplied by the order line's quantity.
type grant struct {
	Ingredient string
	PerUnit    int
}

// keywordRule fires when an item's display name contains Keyword
// (case-insensitive). Rules are not mutually exclusive; a single name can
// trigger several of them.
type keywordRule struct {
	Keyword string
	Grants  []grant
}

// keywordRules maps menu naming conventions to raw-ingredient consumption.
// Siomai is sold four pieces per serving, hence the 4x grant.
var keywordRules = []keywordRule{
	{Keyword: "burger", Grants: []grant{{"Patty", 1}, {"Bun", 1}}},
	{Keyword: "cheese", Grants: []grant{{"Cheese", 1}}},
	{Keyword: "ham", Grants: []grant{{"Ham", 1}}},
	{Keyword: "egg", Grants: []grant{{"Egg", 1}}},
	{Keyword: "bacon", Grants: []grant{{"Bacon", 1}}},
	{Keyword: "1/2 long", Grants: []grant{{"Hotdog", 1}, {"Bun", 1}}},
	{Keyword: "footlong", Grants: []grant{{"Footlong", 1}, {"Bun", 1}}},
	{Keyword: "siomai", Grants: []grant{{"Siomai", 4}}},
	{Keyword: "rice", Grants: []grant{{"Rice", 1}}},
	{Keyword: "mountain dew", Grants: []grant{{"Softdrinks", 1}}},
	{Keyword: "pepsi", Grants: []grant{{"Softdrinks", 1}}},
	{Keyword: "rootbeer", Grants: []grant{{"Softdrinks", 1}}},
}

// ResolveIngredients aggregates the raw-ingredient demand of a cart.
// Contributions accumulate additively across lines; an item name matching
// no rule consumes nothing. Pure function of its input.
func ResolveIngredients(items []models.OrderItem) models.Demand {
	demand := models.Demand{}
	for _, item := range items {
		name := strings.ToLower(item.Name)
		for _, rule := range keywordRules {
			if !strings.Contains(name, rule.Keyword) {
				continue
			}
			for _, g := range rule.Grants {
				demand[g.Ingredient] += g.PerUnit * item.Quantity
			}
		}
	}
	return demand
}

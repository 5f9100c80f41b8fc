package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mad-mazz/grace-burger/models"
)

func line(name string, quantity int) models.OrderItem {
	return models.OrderItem{Name: name, Quantity: quantity}
}

func TestResolveIngredientsKeywordRules(t *testing.T) {
	tests := []struct {
		name string
		item models.OrderItem
		want models.Demand
	}{
		{
			name: "plain burger",
			item: line("CDO Burger", 1),
			want: models.Demand{"Patty": 1, "Bun": 1},
		},
		{
			name: "cheese burger fires burger and cheese rules",
			item: line("Cheese Burger", 2),
			want: models.Demand{"Patty": 2, "Bun": 2, "Cheese": 2},
		},
		{
			name: "stacked keywords all fire",
			item: line("Cheese Burger with Bacon", 1),
			want: models.Demand{"Patty": 1, "Bun": 1, "Cheese": 1, "Bacon": 1},
		},
		{
			name: "half long contributes hotdog and bun",
			item: line("1/2 Long Cheese", 3),
			want: models.Demand{"Hotdog": 3, "Bun": 3, "Cheese": 3},
		},
		{
			name: "footlong",
			item: line("Footlong Ham", 1),
			want: models.Demand{"Footlong": 1, "Bun": 1, "Ham": 1},
		},
		{
			name: "siomai counts four pieces per serving",
			item: line("Siomai Rice", 2),
			want: models.Demand{"Siomai": 8, "Rice": 2},
		},
		{
			name: "beverage brand maps to softdrinks",
			item: line("Mountain Dew", 2),
			want: models.Demand{"Softdrinks": 2},
		},
		{
			name: "matching is case-insensitive",
			item: line("FOOTLONG BACON", 1),
			want: models.Demand{"Footlong": 1, "Bun": 1, "Bacon": 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveIngredients([]models.OrderItem{tc.item})
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveIngredientsNoMatchProducesNoDemand(t *testing.T) {
	demand := ResolveIngredients([]models.OrderItem{line("Bottled Water", 5)})
	assert.Empty(t, demand)
}

func TestResolveIngredientsAccumulatesAcrossLines(t *testing.T) {
	cart := []models.OrderItem{
		line("Cheese Burger", 2),
		line("Egg Sandwich", 1),
		line("Pepsi", 3),
	}

	got := ResolveIngredients(cart)

	want := models.Demand{
		"Patty":      2,
		"Bun":        2, // only the burgers grant buns; no rule matches "sandwich"
		"Cheese":     2,
		"Egg":        1,
		"Softdrinks": 3,
	}
	assert.Equal(t, want, got)
}

// Resolving a cart equals the entrywise sum of resolving each line alone.
func TestResolveIngredientsAdditivity(t *testing.T) {
	first := line("Complete with Bacon", 1)
	second := line("Hotdog Rice", 2)

	combined := ResolveIngredients([]models.OrderItem{first, second})

	sum := models.Demand{}
	for name, qty := range ResolveIngredients([]models.OrderItem{first}) {
		sum[name] += qty
	}
	for name, qty := range ResolveIngredients([]models.OrderItem{second}) {
		sum[name] += qty
	}
	assert.Equal(t, sum, combined)
}

func TestResolveIngredientsEmptyCart(t *testing.T) {
	assert.Empty(t, ResolveIngredients(nil))
}

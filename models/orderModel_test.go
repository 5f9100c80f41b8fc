package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{StatusReceived, StatusPreparing},
		{StatusPreparing, StatusReady},
		{StatusReady, StatusCompleted},
		{StatusReceived, StatusCancelled},
		{StatusPreparing, StatusCancelled},
		{StatusReady, StatusCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, ValidTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	rejected := []struct{ from, to string }{
		{StatusReceived, StatusReady},
		{StatusReceived, StatusCompleted},
		{StatusPreparing, StatusCompleted},
		{StatusPreparing, StatusReceived},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusPreparing},
		{StatusCancelled, StatusCancelled},
		{StatusCompleted, StatusCompleted},
	}
	for _, tc := range rejected {
		assert.False(t, ValidTransition(tc.from, tc.to), "%s -> %s should be rejected", tc.from, tc.to)
	}
}

func TestCanonicalName(t *testing.T) {
	assert.Equal(t, "cheese", CanonicalName("  Cheese "))
	assert.Equal(t, "softdrinks", CanonicalName("SOFTDRINKS"))
	assert.Equal(t, "", CanonicalName("   "))
}

func TestMenuCatalogIntegrity(t *testing.T) {
	seen := map[int]bool{}
	for _, item := range MenuCatalog {
		assert.False(t, seen[item.ID], "duplicate menu id %d", item.ID)
		seen[item.ID] = true
		assert.NotEmpty(t, item.Name)
		assert.Greater(t, item.Price, 0.0, "%s needs a price", item.Name)
		assert.Contains(t, MenuCategories(), item.Category)
	}
}

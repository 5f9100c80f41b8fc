package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Mad-mazz/grace-burger/models"
	"github.com/gorilla/mux"
)

// Get all inventory items
func GetInventory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	items, err := inventoryService.List(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error retrieving inventory")
		return
	}

	respondSuccess(w, http.StatusOK, "Inventory retrieved successfully", items)
}

func GetInventoryItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]
	item, err := inventoryService.Get(ctx, itemId)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, "Inventory item retrieved successfully", item)
}

func CreateInventoryItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var item models.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErr := validate.Struct(item); validationErr != nil {
		respondError(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	created, err := inventoryService.Create(ctx, item)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, "Inventory item created successfully", created)
}

// UpdateInventoryItem applies a partial edit. Stock sent here is an
// absolute value; relative adjustments happen only through order flow.
func UpdateInventoryItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]

	var requestBody struct {
		Name              *string  `json:"name"`
		Category          *string  `json:"category"`
		Stock             *int     `json:"stock"`
		Unit              *string  `json:"unit"`
		Price             *float64 `json:"price"`
		LowStockThreshold *int     `json:"low_stock_threshold"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields := map[string]interface{}{}
	if requestBody.Name != nil {
		fields["name"] = *requestBody.Name
	}
	if requestBody.Category != nil {
		fields["category"] = *requestBody.Category
	}
	if requestBody.Stock != nil {
		if *requestBody.Stock < 0 {
			respondError(w, http.StatusBadRequest, "Stock cannot be negative")
			return
		}
		fields["stock"] = *requestBody.Stock
	}
	if requestBody.Unit != nil {
		fields["unit"] = *requestBody.Unit
	}
	if requestBody.Price != nil {
		fields["price"] = *requestBody.Price
	}
	if requestBody.LowStockThreshold != nil {
		fields["low_stock_threshold"] = *requestBody.LowStockThreshold
	}
	if len(fields) == 0 {
		respondError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	updated, err := inventoryService.Update(ctx, itemId, fields)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, "Inventory item updated successfully", updated)
}

func DeleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]
	if err := inventoryService.Delete(ctx, itemId); err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, "Inventory item deleted successfully", nil)
}

// InitializeInventory seeds the starting stock into an empty store.
func InitializeInventory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	seeded, err := inventoryService.Seed(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error seeding inventory")
		return
	}
	if seeded == 0 {
		respondSuccess(w, http.StatusOK, "Inventory already initialized", map[string]interface{}{"seeded": 0})
		return
	}

	respondSuccess(w, http.StatusCreated, "Inventory initialized", map[string]interface{}{"seeded": seeded})
}

// GetLowStock lists items at or below their restock threshold.
func GetLowStock(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	items, err := inventoryService.LowStock(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error retrieving low stock items")
		return
	}

	respondSuccess(w, http.StatusOK, "Low stock items retrieved successfully", items)
}

// StreamInventory pushes full inventory snapshots as Server-Sent Events
// whenever stock changes.
func StreamInventory(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	snapshots, cancel, err := inventoryRepo.Watch(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error opening inventory stream")
		return
	}
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case snapshot, open := <-snapshots:
			if !open {
				return
			}
			payload, err := json.Marshal(snapshot)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}

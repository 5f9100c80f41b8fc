package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Mad-mazz/grace-burger/models"
	"github.com/Mad-mazz/grace-burger/services"
)

// GetMenu serves the catalog with per-item availability computed against
// the live inventory snapshot. Items stay listed when sold out so the
// storefront can grey them out.
func GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	snapshot, err := inventoryService.List(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error retrieving inventory")
		return
	}

	category := r.URL.Query().Get("category")
	menu := services.MenuWithAvailability(snapshot)
	if category != "" {
		filtered := make([]models.MenuItem, 0, len(menu))
		for _, item := range menu {
			if item.Category == category {
				filtered = append(filtered, item)
			}
		}
		menu = filtered
	}

	respondSuccess(w, http.StatusOK, "Menu retrieved successfully", menu)
}

func GetMenuCategories(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, "Categories retrieved successfully", models.MenuCategories())
}

// StreamMenu pushes the availability-annotated menu as Server-Sent Events
// whenever inventory changes.
func StreamMenu(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	snapshots, cancel, err := inventoryRepo.Watch(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error opening menu stream")
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
			payload, err := json.Marshal(services.MenuWithAvailability(snapshot))
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}

package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

// GetTodayRevenue reports revenue since local midnight. Cancelled orders
// and approved returns are excluded.
func GetTodayRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	revenue, err := aggregationService.TodayRevenue(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error computing revenue")
		return
	}

	respondSuccess(w, http.StatusOK, "Revenue computed successfully", map[string]interface{}{
		"revenue": revenue,
		"date":    time.Now().Format("2006-01-02"),
	})
}

// GetTopProducts ranks products by quantity sold. Defaults to the top 5.
func GetTopProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = 5
	}

	ranked, err := aggregationService.TopProducts(ctx, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error computing top products")
		return
	}

	respondSuccess(w, http.StatusOK, "Top products computed successfully", ranked)
}

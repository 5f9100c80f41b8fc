package routes

import (
	"net/http"

	controllers "github.com/Mad-mazz/grace-burger/controllers"

	"github.com/gorilla/mux"
)

// AnalyticsStaffRoutes carries the dashboard reports; staff only.
func AnalyticsStaffRoutes(router *mux.Router) {

	router.HandleFunc("/analytics/revenue/today", controllers.GetTodayRevenue).Methods(http.MethodGet)
	router.HandleFunc("/analytics/top-products", controllers.GetTopProducts).Methods(http.MethodGet)
}

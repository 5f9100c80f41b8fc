package routes

import (
	"net/http"

	controllers "github.com/Mad-mazz/grace-burger/controllers"

	"github.com/gorilla/mux"
)

// InventoryStaffRoutes carries stock management; staff only.
func InventoryStaffRoutes(router *mux.Router) {

	router.HandleFunc("/inventory", controllers.GetInventory).Methods(http.MethodGet)
	router.HandleFunc("/inventory", controllers.CreateInventoryItem).Methods(http.MethodPost)
	router.HandleFunc("/inventory/initialize", controllers.InitializeInventory).Methods(http.MethodPost)
	router.HandleFunc("/inventory/low-stock", controllers.GetLowStock).Methods(http.MethodGet)
	router.HandleFunc("/inventory/stream", controllers.StreamInventory).Methods(http.MethodGet)

	router.HandleFunc("/inventory/{item_id}", controllers.GetInventoryItem).Methods(http.MethodGet)
	router.HandleFunc("/inventory/{item_id}", controllers.UpdateInventoryItem).Methods(http.MethodPatch)
	router.HandleFunc("/inventory/{item_id}", controllers.DeleteInventoryItem).Methods(http.MethodDelete)
}

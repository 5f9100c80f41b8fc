package routes

import (
	"net/http"

	controllers "github.com/Mad-mazz/grace-burger/controllers"

	"github.com/gorilla/mux"
)

// MenuPublicRoutes serves the catalog; no login needed to browse.
func MenuPublicRoutes(router *mux.Router) {

	router.HandleFunc("/menu", controllers.GetMenu).Methods(http.MethodGet)
	router.HandleFunc("/menu/categories", controllers.GetMenuCategories).Methods(http.MethodGet)
	router.HandleFunc("/menu/stream", controllers.StreamMenu).Methods(http.MethodGet)
}

package routes

import (
	controller "github.com/Mad-mazz/grace-burger/controllers"

	"github.com/gorilla/mux"
)

func PublicRoutes(router *mux.Router) {
	router.HandleFunc("/users/signup", controller.SignUp).Methods("POST")
	router.HandleFunc("/users/login", controller.Login).Methods("POST")
}

func ProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/users/logout", controller.Logout).Methods("POST")
	router.HandleFunc("/users/{user_id}", controller.GetUser).Methods("GET")
}

func StaffUserRoutes(router *mux.Router) {
	router.HandleFunc("/users", controller.GetUsers).Methods("GET")
}

package main

import (
	"log"
	"net/http"
	"os"

	middleware "github.com/Mad-mazz/grace-burger/middlewares"
	routes "github.com/Mad-mazz/grace-burger/routes"
	"github.com/joho/godotenv"

	"github.com/gorilla/mux"
)

// LoadEnv loads environment variables from the .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

func main() {
	// Load environment variables
	LoadEnv()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	router := mux.NewRouter()

	// Public Routes (No Authentication)
	routes.PublicRoutes(router)
	routes.MenuPublicRoutes(router)

	// Apply Authentication Middleware to Protected Routes
	securedRoutes := router.PathPrefix("/").Subrouter()
	securedRoutes.Use(middleware.Authentication)
	routes.ProtectedRoutes(securedRoutes)
	routes.OrderProtectedRoutes(securedRoutes)

	// Staff-only routes
	staffRoutes := securedRoutes.PathPrefix("/").Subrouter()
	staffRoutes.Use(middleware.RequireStaff)
	routes.StaffUserRoutes(staffRoutes)
	routes.OrderStaffRoutes(staffRoutes)
	routes.InventoryStaffRoutes(staffRoutes)
	routes.AnalyticsStaffRoutes(staffRoutes)

	log.Printf("Server running on port %s", port)
	http.ListenAndServe(":"+port, router)
}

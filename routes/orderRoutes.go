package routes

import (
	"net/http"

	controller "github.com/Mad-mazz/grace-burger/controllers"

	"github.com/gorilla/mux"
)

// OrderProtectedRoutes carries the customer-side order endpoints.
func OrderProtectedRoutes(router *mux.Router) {

	router.HandleFunc("/orders", controller.CreateOrder).Methods(http.MethodPost)

	router.HandleFunc("/orders/{order_id}", controller.GetOrderById).Methods(http.MethodGet)
	router.HandleFunc("/orders/{order_id}/return", controller.RequestReturn).Methods(http.MethodPost)

	router.HandleFunc("/orders/user/{user_id}", controller.GetOrdersByUserId).Methods(http.MethodGet)
}

// OrderStaffRoutes carries the kitchen-side lifecycle endpoints.
func OrderStaffRoutes(router *mux.Router) {

	router.HandleFunc("/orders", controller.GetOrders).Methods(http.MethodGet)
	// lives outside /orders/{order_id} so the id route cannot shadow it
	router.HandleFunc("/streams/orders", controller.StreamOrders).Methods(http.MethodGet)

	router.HandleFunc("/orders/{order_id}/accept", controller.AcceptOrder).Methods(http.MethodPost)
	router.HandleFunc("/orders/{order_id}/ready", controller.MarkOrderReady).Methods(http.MethodPost)
	router.HandleFunc("/orders/{order_id}/complete", controller.CompleteOrder).Methods(http.MethodPost)
	router.HandleFunc("/orders/{order_id}/cancel", controller.CancelOrder).Methods(http.MethodPost)

	router.HandleFunc("/orders/{order_id}/return/approve", controller.ApproveReturn).Methods(http.MethodPost)
	router.HandleFunc("/orders/{order_id}/return/reject", controller.RejectReturn).Methods(http.MethodPost)
}

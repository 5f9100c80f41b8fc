package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	middleware "github.com/Mad-mazz/grace-burger/middlewares"
	"github.com/Mad-mazz/grace-burger/repositories"
	"github.com/Mad-mazz/grace-burger/services"

	"github.com/gorilla/mux"
)

// CreateOrder places a new order in status received. Nothing is deducted
// here; deduction happens when the kitchen accepts.
func CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var req services.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErr := validate.Struct(req); validationErr != nil {
		respondError(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	// the authenticated identity wins over whatever the body claims
	email, firstName, lastName, uid := middleware.GetUserFromContext(r)
	if uid != "" {
		req.UserID = uid
		req.UserEmail = email
		req.UserName = firstName + " " + lastName
	}

	order, err := orderService.CreateOrder(ctx, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, "Order placed successfully", order)
}

// Get all orders
func GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	// Parse pagination parameters
	recordPerPage, err := strconv.Atoi(r.URL.Query().Get("recordPerPage"))
	if err != nil || recordPerPage < 1 {
		recordPerPage = 10
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	orders, total, err := orderRepo.GetAll(ctx, page, recordPerPage)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error retrieving orders")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Orders retrieved successfully",
		"data":    orders,
		"pagination": map[string]interface{}{
			"current_page":     page,
			"records_per_page": recordPerPage,
			"total_orders":     total,
			"total_pages":      (total + int64(recordPerPage) - 1) / int64(recordPerPage),
		},
	})
}

func GetOrderById(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]
	if orderId == "" {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := orderRepo.GetByID(ctx, orderId)
	if errors.Is(err, repositories.ErrNotFound) {
		respondServiceError(w, services.ErrOrderNotFound)
		return
	} else if err != nil {
		respondError(w, http.StatusInternalServerError, "Error retrieving order")
		return
	}

	respondSuccess(w, http.StatusOK, "Order retrieved successfully", order)
}

func GetOrdersByUserId(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	userId := mux.Vars(r)["user_id"]
	if userId == "" {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	recordPerPage, err := strconv.Atoi(r.URL.Query().Get("recordPerPage"))
	if err != nil || recordPerPage < 1 {
		recordPerPage = 10
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	orders, total, err := orderRepo.GetByUserID(ctx, userId, page, recordPerPage)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error retrieving orders")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Orders retrieved successfully",
		"data":    orders,
		"pagination": map[string]interface{}{
			"current_page":     page,
			"records_per_page": recordPerPage,
			"total_orders":     total,
			"total_pages":      (total + int64(recordPerPage) - 1) / int64(recordPerPage),
		},
	})
}

// AcceptOrder runs the deduction workflow. On stock shortage the order is
// left untouched and the 409 body carries the full shortage report.
func AcceptOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]
	if err := orderService.AcceptOrder(ctx, orderId); err != nil {
		respondServiceError(w, err)
		return
	}

	order, err := orderRepo.GetByID(ctx, orderId)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error retrieving updated order")
		return
	}
	respondSuccess(w, http.StatusOK, "Order accepted, inventory deducted", order)
}

func MarkOrderReady(w http.ResponseWriter, r *http.Request) {
	transitionHandler(w, r, orderService.MarkReady, "Order marked ready")
}

func CompleteOrder(w http.ResponseWriter, r *http.Request) {
	transitionHandler(w, r, orderService.MarkCompleted, "Order completed")
}

func CancelOrder(w http.ResponseWriter, r *http.Request) {
	transitionHandler(w, r, orderService.CancelOrder, "Order cancelled")
}

func transitionHandler(w http.ResponseWriter, r *http.Request, fn func(context.Context, string) error, message string) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]
	if err := fn(ctx, orderId); err != nil {
		respondServiceError(w, err)
		return
	}

	order, err := orderRepo.GetByID(ctx, orderId)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error retrieving updated order")
		return
	}
	respondSuccess(w, http.StatusOK, message, order)
}

// RequestReturn opens a return request on a fulfilled order.
func RequestReturn(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]

	var requestBody struct {
		Reason string `json:"reason" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, _, _, uid := middleware.GetUserFromContext(r)
	if err := orderService.RequestReturn(ctx, orderId, requestBody.Reason, uid); err != nil {
		respondServiceError(w, err)
		return
	}

	order, err := orderRepo.GetByID(ctx, orderId)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error retrieving updated order")
		return
	}
	respondSuccess(w, http.StatusOK, "Return requested", order)
}

func ApproveReturn(w http.ResponseWriter, r *http.Request) {
	transitionHandler(w, r, orderService.ApproveReturn, "Return approved")
}

func RejectReturn(w http.ResponseWriter, r *http.Request) {
	transitionHandler(w, r, orderService.RejectReturn, "Return rejected")
}

// StreamOrders pushes the full order list as Server-Sent Events whenever
// the underlying collection changes.
func StreamOrders(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	snapshots, cancel, err := orderRepo.Watch(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error opening order stream")
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

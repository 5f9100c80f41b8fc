package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	database "github.com/Mad-mazz/grace-burger/config"
	"github.com/Mad-mazz/grace-burger/repositories"
	"github.com/Mad-mazz/grace-burger/services"
)

var inventoryCollection *mongo.Collection = database.OpenCollection(database.Client, "inventory")
var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "order")

var validate = validator.New()

var logger = newLogger()

var inventoryRepo = repositories.NewMongoInventoryRepository(inventoryCollection, logger)
var orderRepo = repositories.NewMongoOrderRepository(orderCollection, logger)
var transactor = repositories.NewMongoTransactor(database.Client)

var inventoryService = services.NewInventoryService(inventoryRepo, logger)
var orderService = services.NewOrderService(orderRepo, inventoryRepo, transactor, services.LoadPolicy(), logger)
var aggregationService = services.NewAggregationService(orderRepo, logger)

func newLogger() *zap.SugaredLogger {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return l.Sugar()
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	respondJSON(w, status, map[string]interface{}{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// respondServiceError maps service failures onto HTTP statuses. The
// shortage report travels in the body so the storefront can show which
// ingredients ran out.
func respondServiceError(w http.ResponseWriter, err error) {
	var insufficient *services.InsufficientInventoryError
	var partial *services.PartialDeductionError

	switch {
	case errors.As(err, &insufficient):
		respondJSON(w, http.StatusConflict, map[string]interface{}{
			"success": false,
			"message": insufficient.Error(),
			"data": map[string]interface{}{
				"missing":      insufficient.Report.Missing,
				"insufficient": insufficient.Report.Insufficient,
			},
		})
	case errors.As(err, &partial):
		respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"message": partial.Error(),
			"data": map[string]interface{}{
				"unrestored": partial.Applied,
			},
		})
	case errors.Is(err, services.ErrOrderNotFound), errors.Is(err, services.ErrItemNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrReturnNotAllowed),
		errors.Is(err, services.ErrNoReturnRequest),
		errors.Is(err, services.ErrDuplicateItem):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

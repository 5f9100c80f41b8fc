package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. An order is created as StatusReceived and never deleted;
// cancellation is a status transition.
const (
	StatusReceived  = "received"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Return workflow states, orthogonal to the order status.
const (
	ReturnRequested = "requested"
	ReturnApproved  = "approved"
	ReturnRejected  = "rejected"
)

type OrderItem struct {
	Name     string  `bson:"name" json:"name" validate:"required"`
	Quantity int     `bson:"quantity" json:"quantity" validate:"required,gt=0"`
	Price    float64 `bson:"price" json:"price"`
	Total    float64 `bson:"total" json:"total"`
}

type Order struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Order_id         string             `bson:"order_id" json:"order_id"`
	OrderNumber      string             `bson:"order_number" json:"order_number"`
	User_id          string             `bson:"user_id" json:"user_id"`
	UserEmail        string             `bson:"user_email" json:"user_email"`
	UserName         string             `bson:"user_name" json:"user_name"`
	Items            []OrderItem        `bson:"items" json:"items" validate:"required,min=1,dive"`
	Subtotal         float64            `bson:"subtotal" json:"subtotal"`
	TotalAmount      float64            `bson:"total_amount" json:"total_amount"`
	PaymentMethod    string             `bson:"payment_method" json:"payment_method"`
	PaymentReference *string            `bson:"payment_reference" json:"payment_reference,omitempty"`
	PaymentConfirmed bool               `bson:"payment_confirmed" json:"payment_confirmed"`
	Status           string             `bson:"status" json:"status"`

	ReturnStatus      string     `bson:"return_status,omitempty" json:"return_status,omitempty"`
	ReturnReason      string     `bson:"return_reason,omitempty" json:"return_reason,omitempty"`
	ReturnRequestedBy string     `bson:"return_requested_by,omitempty" json:"return_requested_by,omitempty"`
	ReturnRequestedAt *time.Time `bson:"return_requested_at,omitempty" json:"return_requested_at,omitempty"`
	ReturnResolvedAt  *time.Time `bson:"return_resolved_at,omitempty" json:"return_resolved_at,omitempty"`
	Returned          bool       `bson:"returned" json:"returned"`

	Created_at time.Time `bson:"created_at" json:"created_at"`
	Updated_at time.Time `bson:"updated_at" json:"updated_at"`
}

// terminal statuses admit no further transitions
func terminal(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}

// ValidTransition reports whether an order may move from one status to
// another. The main line is received → preparing → ready → completed;
// cancelled is reachable from any non-terminal status.
func ValidTransition(from, to string) bool {
	if terminal(from) {
		return false
	}
	switch to {
	case StatusPreparing:
		return from == StatusReceived
	case StatusReady:
		return from == StatusPreparing
	case StatusCompleted:
		return from == StatusReady
	case StatusCancelled:
		return true
	}
	return false
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
)

// SignupRole resolves the role a self-service signup ends up with. The
// requested role is never honored: staff accounts are provisioned out of
// band, so public signup always yields a customer.
func SignupRole(requested string) string {
	return RoleCustomer
}

type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	User_id       string             `bson:"user_id" json:"user_id"`
	First_name    *string            `bson:"first_name" json:"first_name" validate:"required,min=2,max=100"`
	Last_name     *string            `bson:"last_name" json:"last_name" validate:"required,min=2,max=100"`
	Email         *string            `bson:"email" json:"email" validate:"required,email"`
	Password      *string            `bson:"password" json:"password" validate:"required,min=6"`
	Role          string             `bson:"role" json:"role" validate:"omitempty,eq=customer|eq=staff"`
	Token         *string            `bson:"token" json:"token,omitempty"`
	Refresh_Token *string            `bson:"refresh_token" json:"refresh_token,omitempty"`
	Created_at    time.Time          `bson:"created_at" json:"created_at"`
	Updated_at    time.Time          `bson:"updated_at" json:"updated_at"`
}

package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a point read matches no record.
var ErrNotFound = errors.New("record not found")

// ErrTransactionsUnsupported is returned when the deployment cannot serve
// multi-document transactions (standalone mongod without a replica set).
var ErrTransactionsUnsupported = errors.New("store transactions unsupported")

// Transactor runs a function inside a store transaction. Repository calls
// made with the callback's context join the transaction; if the callback
// returns an error, nothing it wrote is committed.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type MongoTransactor struct {
	client *mongo.Client
}

func NewMongoTransactor(client *mongo.Client) *MongoTransactor {
	return &MongoTransactor{client: client}
}

func (t *MongoTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil {
		// IllegalOperation (code 20) is what a standalone server answers
		// transaction commands with.
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) && cmdErr.Code == 20 {
			return ErrTransactionsUnsupported
		}
	}
	return err
}

package repositories

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/Mad-mazz/grace-burger/models"
)

// OrderRepositoryInterface is the store contract for orders. Orders are
// never deleted; status changes go through UpdateFields.
type OrderRepositoryInterface interface {
	Create(ctx context.Context, order *models.Order) error
	GetAll(ctx context.Context, page, recordPerPage int) ([]models.Order, int64, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	GetByUserID(ctx context.Context, userID string, page, recordPerPage int) ([]models.Order, int64, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Watch(ctx context.Context) (<-chan []models.Order, func(), error)
}

type MongoOrderRepository struct {
	collection *mongo.Collection
	logger     *zap.SugaredLogger

	watchOnce sync.Once
	feed      *Broadcaster[[]models.Order]
}

func NewMongoOrderRepository(collection *mongo.Collection, logger *zap.SugaredLogger) *MongoOrderRepository {
	return &MongoOrderRepository{
		collection: collection,
		logger:     logger.Named("order_repository"),
		feed:       NewBroadcaster[[]models.Order](),
	}
}

func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) error {
	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		return err
	}
	r.logger.Infow("order created", "order_id", order.Order_id, "order_number", order.OrderNumber)
	return nil
}

func (r *MongoOrderRepository) GetAll(ctx context.Context, page, recordPerPage int) ([]models.Order, int64, error) {
	return r.paged(ctx, bson.D{}, page, recordPerPage)
}

func (r *MongoOrderRepository) GetByUserID(ctx context.Context, userID string, page, recordPerPage int) ([]models.Order, int64, error) {
	return r.paged(ctx, bson.D{{Key: "user_id", Value: userID}}, page, recordPerPage)
}

func (r *MongoOrderRepository) paged(ctx context.Context, match bson.D, page, recordPerPage int) ([]models.Order, int64, error) {
	if recordPerPage < 1 {
		recordPerPage = 10
	}
	if page < 1 {
		page = 1
	}
	startIndex := (page - 1) * recordPerPage

	matchStage := bson.D{{Key: "$match", Value: match}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}}
	skipStage := bson.D{{Key: "$skip", Value: startIndex}}
	limitStage := bson.D{{Key: "$limit", Value: int64(recordPerPage)}}

	cursor, err := r.collection.Aggregate(ctx, mongo.Pipeline{matchStage, sortStage, skipStage, limitStage})
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *MongoOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"order_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *MongoOrderRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	update := bson.M{}
	for key, value := range fields {
		update[key] = value
	}
	update["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"order_id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Watch subscribes to live order snapshots, newest first. Same semantics as
// the inventory watch: initial snapshot, then one per store change.
func (r *MongoOrderRepository) Watch(ctx context.Context) (<-chan []models.Order, func(), error) {
	r.watchOnce.Do(func() {
		go r.pump()
	})

	ch, cancel := r.feed.Subscribe()

	orders, _, err := r.GetAll(ctx, 1, 100)
	if err != nil {
		cancel()
		return nil, nil, err
	}

	out := make(chan []models.Order, 1)
	out <- orders
	go func() {
		defer close(out)
		for snapshot := range ch {
			select {
			case out <- snapshot:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, cancel, nil
}

func (r *MongoOrderRepository) pump() {
	ctx := context.Background()
	for {
		stream, err := r.collection.Watch(ctx, mongo.Pipeline{})
		if err != nil {
			r.logger.Errorw("change stream unavailable, retrying", "error", err)
			time.Sleep(5 * time.Second)
			continue
		}
		for stream.Next(ctx) {
			orders, _, err := r.GetAll(ctx, 1, 100)
			if err != nil {
				r.logger.Errorw("snapshot read failed", "error", err)
				continue
			}
			r.feed.Publish(orders)
		}
		if err := stream.Err(); err != nil {
			r.logger.Errorw("change stream closed, reopening", "error", err)
		}
		stream.Close(ctx)
		time.Sleep(time.Second)
	}
}

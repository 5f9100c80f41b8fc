package repositories

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Mad-mazz/grace-burger/models"
)

// InventoryRepositoryInterface is the store contract for ingredient stock.
// IncrementStock must be a relative update at the store, not read-modify-
// write, so concurrent decrements compose.
type InventoryRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.InventoryItem, error)
	GetByID(ctx context.Context, id string) (*models.InventoryItem, error)
	GetByNameKey(ctx context.Context, nameKey string) (*models.InventoryItem, error)
	Create(ctx context.Context, item *models.InventoryItem) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	IncrementStock(ctx context.Context, id string, delta int) error
	Watch(ctx context.Context) (<-chan []models.InventoryItem, func(), error)
}

type MongoInventoryRepository struct {
	collection *mongo.Collection
	logger     *zap.SugaredLogger

	watchOnce sync.Once
	feed      *Broadcaster[[]models.InventoryItem]
}

func NewMongoInventoryRepository(collection *mongo.Collection, logger *zap.SugaredLogger) *MongoInventoryRepository {
	return &MongoInventoryRepository{
		collection: collection,
		logger:     logger.Named("inventory_repository"),
		feed:       NewBroadcaster[[]models.InventoryItem](),
	}
}

func (r *MongoInventoryRepository) GetAll(ctx context.Context) ([]models.InventoryItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.InventoryItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoInventoryRepository) GetByID(ctx context.Context, id string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.collection.FindOne(ctx, bson.M{"item_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MongoInventoryRepository) GetByNameKey(ctx context.Context, nameKey string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.collection.FindOne(ctx, bson.M{"name_key": nameKey}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MongoInventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	if _, err := r.collection.InsertOne(ctx, item); err != nil {
		return err
	}
	r.logger.Infow("inventory item created", "item_id", item.Item_id, "name", item.Name)
	return nil
}

func (r *MongoInventoryRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	update := bson.M{}
	for key, value := range fields {
		update[key] = value
	}
	update["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"item_id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoInventoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"item_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoInventoryRepository) IncrementStock(ctx context.Context, id string, delta int) error {
	update := bson.M{
		"$inc": bson.M{"stock": delta},
		"$set": bson.M{"updated_at": time.Now()},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"item_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Watch subscribes to live inventory snapshots. The first snapshot arrives
// immediately; a fresh full snapshot follows every store change. The cancel
// func releases the subscription.
func (r *MongoInventoryRepository) Watch(ctx context.Context) (<-chan []models.InventoryItem, func(), error) {
	r.watchOnce.Do(func() {
		go r.pump()
	})

	ch, cancel := r.feed.Subscribe()

	items, err := r.GetAll(ctx)
	if err != nil {
		cancel()
		return nil, nil, err
	}

	out := make(chan []models.InventoryItem, 1)
	out <- items
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

// pump follows the collection's change stream and publishes a full snapshot
// on every event. Reopens the stream after errors.
func (r *MongoInventoryRepository) pump() {
	ctx := context.Background()
	for {
		stream, err := r.collection.Watch(ctx, mongo.Pipeline{})
		if err != nil {
			r.logger.Errorw("change stream unavailable, retrying", "error", err)
			time.Sleep(5 * time.Second)
			continue
		}
		for stream.Next(ctx) {
			items, err := r.GetAll(ctx)
			if err != nil {
				r.logger.Errorw("snapshot read failed", "error", err)
				continue
			}
			r.feed.Publish(items)
		}
		if err := stream.Err(); err != nil {
			r.logger.Errorw("change stream closed, reopening", "error", err)
		}
		stream.Close(ctx)
		time.Sleep(time.Second)
	}
}

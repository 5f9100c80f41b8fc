package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mad-mazz/grace-burger/models"
	"github.com/Mad-mazz/grace-burger/repositories"
)

// InventoryService covers staff-side stock management. Name uniqueness is
// enforced on the canonical key, so "Cheese" and " cheese " are the same
// record.
type InventoryService struct {
	inventory repositories.InventoryRepositoryInterface
	logger    *zap.SugaredLogger
}

func NewInventoryService(inventory repositories.InventoryRepositoryInterface, logger *zap.SugaredLogger) *InventoryService {
	return &InventoryService{
		inventory: inventory,
		logger:    logger.Named("inventory_service"),
	}
}

func (s *InventoryService) List(ctx context.Context) ([]models.InventoryItem, error) {
	return s.inventory.GetAll(ctx)
}

func (s *InventoryService) Get(ctx context.Context, id string) (*models.InventoryItem, error) {
	item, err := s.inventory.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	return item, err
}

func (s *InventoryService) Create(ctx context.Context, item models.InventoryItem) (*models.InventoryItem, error) {
	key := models.CanonicalName(item.Name)
	if key == "" {
		return nil, fmt.Errorf("ingredient name is required")
	}
	if item.Stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative")
	}

	if _, err := s.inventory.GetByNameKey(ctx, key); err == nil {
		return nil, ErrDuplicateItem
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("checking name uniqueness: %w", err)
	}

	now := time.Now()
	item.ID = primitive.NewObjectID()
	item.Item_id = item.ID.Hex()
	item.NameKey = key
	item.Created_at = now
	item.Updated_at = now

	if err := s.inventory.Create(ctx, &item); err != nil {
		return nil, fmt.Errorf("storing inventory item: %w", err)
	}
	return &item, nil
}

// Update applies a partial edit. Renames recompute the canonical key and
// re-check uniqueness.
func (s *InventoryService) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.InventoryItem, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	if name, ok := fields["name"].(string); ok {
		key := models.CanonicalName(name)
		if key == "" {
			return nil, fmt.Errorf("ingredient name is required")
		}
		existing, err := s.inventory.GetByNameKey(ctx, key)
		if err == nil && existing.Item_id != id {
			return nil, ErrDuplicateItem
		} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("checking name uniqueness: %w", err)
		}
		fields["name_key"] = key
	}

	if err := s.inventory.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("updating inventory item: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *InventoryService) Delete(ctx context.Context, id string) error {
	err := s.inventory.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrItemNotFound
	}
	return err
}

// Seed loads the starting stock into an empty inventory. A non-empty
// inventory is left untouched.
func (s *InventoryService) Seed(ctx context.Context) (int, error) {
	existing, err := s.inventory.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading inventory: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	seeded := 0
	for _, item := range models.SeedInventory() {
		if _, err := s.Create(ctx, item); err != nil {
			return seeded, err
		}
		seeded++
	}
	s.logger.Infow("inventory seeded", "count", seeded)
	return seeded, nil
}

// LowStock lists items at or below their restock threshold.
func (s *InventoryService) LowStock(ctx context.Context) ([]models.InventoryItem, error) {
	items, err := s.inventory.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	low := []models.InventoryItem{}
	for _, item := range items {
		if item.Stock <= item.LowStockThreshold {
			low = append(low, item)
		}
	}
	return low, nil
}

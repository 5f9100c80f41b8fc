package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Mad-mazz/grace-burger/models"
	"github.com/Mad-mazz/grace-burger/repositories"
)

// ProductSales is one row of the top-sellers report.
type ProductSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// AggregationService computes the dashboard numbers from order history.
// Cancelled orders never count; approved returns drop out of revenue.
type AggregationService struct {
	orders repositories.OrderRepositoryInterface
	logger *zap.SugaredLogger
}

func NewAggregationService(orders repositories.OrderRepositoryInterface, logger *zap.SugaredLogger) *AggregationService {
	return &AggregationService{
		orders: orders,
		logger: logger.Named("aggregation_service"),
	}
}

const aggregationWindow = 10_000

// TodayRevenue sums the amounts of today's counting orders.
func (s *AggregationService) TodayRevenue(ctx context.Context) (float64, error) {
	orders, _, err := s.orders.GetAll(ctx, 1, aggregationWindow)
	if err != nil {
		return 0, fmt.Errorf("reading orders: %w", err)
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var revenue float64
	for _, order := range orders {
		if order.Created_at.Before(midnight) {
			continue
		}
		if order.Status == models.StatusCancelled || order.Returned {
			continue
		}
		revenue += order.TotalAmount
	}
	return revenue, nil
}

// TopProducts ranks products by quantity sold across all non-cancelled
// orders.
func (s *AggregationService) TopProducts(ctx context.Context, limit int) ([]ProductSales, error) {
	if limit < 1 {
		limit = 5
	}

	orders, _, err := s.orders.GetAll(ctx, 1, aggregationWindow)
	if err != nil {
		return nil, fmt.Errorf("reading orders: %w", err)
	}

	counts := map[string]*ProductSales{}
	for _, order := range orders {
		if order.Status == models.StatusCancelled {
			continue
		}
		for _, item := range order.Items {
			row, ok := counts[item.Name]
			if !ok {
				row = &ProductSales{Name: item.Name}
				counts[item.Name] = row
			}
			row.Quantity += item.Quantity
			row.Revenue += item.Total
		}
	}

	ranked := make([]ProductSales, 0, len(counts))
	for _, row := range counts {
		ranked = append(ranked, *row)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

package services

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mad-mazz/grace-burger/models"
	"github.com/Mad-mazz/grace-burger/repositories"
)

type CreateOrderRequest struct {
	UserID           string             `json:"user_id"`
	UserEmail        string             `json:"user_email"`
	UserName         string             `json:"user_name"`
	Items            []models.OrderItem `json:"items" validate:"required,min=1,dive"`
	PaymentMethod    string             `json:"payment_method"`
	PaymentReference *string            `json:"payment_reference"`
}

// OrderService owns the order lifecycle: creation, the acceptance workflow
// with its inventory deduction, plain status transitions, and the return
// side-channel.
type OrderService struct {
	orders    repositories.OrderRepositoryInterface
	inventory repositories.InventoryRepositoryInterface
	tx        repositories.Transactor
	policy    Policy
	logger    *zap.SugaredLogger
}

func NewOrderService(
	orders repositories.OrderRepositoryInterface,
	inventory repositories.InventoryRepositoryInterface,
	tx repositories.Transactor,
	policy Policy,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		orders:    orders,
		inventory: inventory,
		tx:        tx,
		policy:    policy,
		logger:    logger.Named("order_service"),
	}
}

// CreateOrder stores a new order in status received. Prices come from the
// catalog when the item name matches a catalog entry; unlisted items keep
// the submitted price.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	byKey := make(map[string]models.MenuItem, len(models.MenuCatalog))
	for _, entry := range models.MenuCatalog {
		byKey[models.CanonicalName(entry.Name)] = entry
	}

	items := make([]models.OrderItem, len(req.Items))
	var subtotal float64
	for i, item := range req.Items {
		if item.Name == "" {
			return nil, fmt.Errorf("item %d: name is required", i+1)
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("item %d: quantity must be positive", i+1)
		}
		if entry, ok := byKey[models.CanonicalName(item.Name)]; ok {
			item.Price = entry.Price
		}
		item.Total = item.Price * float64(item.Quantity)
		subtotal += item.Total
		items[i] = item
	}

	now := time.Now()
	order := &models.Order{
		ID:               primitive.NewObjectID(),
		OrderNumber:      newOrderNumber(now),
		User_id:          req.UserID,
		UserEmail:        req.UserEmail,
		UserName:         req.UserName,
		Items:            items,
		Subtotal:         subtotal,
		TotalAmount:      subtotal,
		PaymentMethod:    req.PaymentMethod,
		PaymentReference: req.PaymentReference,
		PaymentConfirmed: req.PaymentMethod == "GCash" && req.PaymentReference != nil,
		Status:           models.StatusReceived,
		Created_at:       now,
		Updated_at:       now,
	}
	order.Order_id = order.ID.Hex()

	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Errorw("order create failed", "error", err)
		return nil, fmt.Errorf("storing order: %w", err)
	}
	s.logger.Infow("order placed", "order_id", order.Order_id, "order_number", order.OrderNumber, "total", order.TotalAmount)
	return order, nil
}

// newOrderNumber yields "#GB-<year>-<nnnn>" with a zero-padded 4-digit
// decimal suffix.
func newOrderNumber(now time.Time) string {
	id := uuid.New()
	suffix := binary.BigEndian.Uint32(id[:4]) % 10000
	return fmt.Sprintf("#GB-%d-%04d", now.Year(), suffix)
}

// AcceptOrder runs the deduction transaction: resolve the order's demand,
// validate it against current stock, decrement every required ingredient
// and move the order to preparing. The whole sequence runs inside a store
// transaction; if validation fails nothing is written and the caller gets
// the full shortage report. On deployments without transaction support the
// sequence falls back to compensating decrements.
func (s *OrderService) AcceptOrder(ctx context.Context, orderID string) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrOrderNotFound
	} else if err != nil {
		return fmt.Errorf("reading order: %w", err)
	}

	if !models.ValidTransition(order.Status, models.StatusPreparing) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, models.StatusPreparing)
	}
	if len(order.Items) == 0 {
		return ErrEmptyOrder
	}

	demand := ResolveIngredients(order.Items)

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		return s.deduct(ctx, order, demand)
	})
	if errors.Is(err, repositories.ErrTransactionsUnsupported) {
		s.logger.Warnw("store transactions unavailable, using compensating path", "order_id", orderID)
		err = s.deductWithCompensation(ctx, order, demand)
	}
	if err != nil {
		return err
	}

	s.logger.Infow("order accepted", "order_id", orderID, "demand", demand)
	return nil
}

// deduct performs validate-then-decrement-then-transition. Runs inside a
// transaction; any error aborts the whole batch.
func (s *OrderService) deduct(ctx context.Context, order *models.Order, demand models.Demand) error {
	snapshot, err := s.inventory.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("reading inventory snapshot: %w", err)
	}

	report := ValidateStock(demand, snapshot)
	if !report.OK() {
		return &InsufficientInventoryError{Report: report}
	}

	for _, d := range plannedDecrements(demand, snapshot) {
		if err := s.inventory.IncrementStock(ctx, d.ItemID, -d.Quantity); err != nil {
			return fmt.Errorf("decrementing %s: %w", d.Ingredient, err)
		}
	}

	return s.orders.UpdateFields(ctx, order.Order_id, map[string]interface{}{
		"status": models.StatusPreparing,
	})
}

// deductWithCompensation is the non-transactional fallback. A failure
// mid-sequence re-increments what was already taken; if compensation itself
// fails the surviving decrements are reported for manual reconciliation.
func (s *OrderService) deductWithCompensation(ctx context.Context, order *models.Order, demand models.Demand) error {
	snapshot, err := s.inventory.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("reading inventory snapshot: %w", err)
	}

	report := ValidateStock(demand, snapshot)
	if !report.OK() {
		return &InsufficientInventoryError{Report: report}
	}

	applied := []AppliedDecrement{}
	for _, d := range plannedDecrements(demand, snapshot) {
		if err := s.inventory.IncrementStock(ctx, d.ItemID, -d.Quantity); err != nil {
			return s.compensate(ctx, applied, fmt.Errorf("decrementing %s: %w", d.Ingredient, err))
		}
		applied = append(applied, d)
	}

	if err := s.orders.UpdateFields(ctx, order.Order_id, map[string]interface{}{
		"status": models.StatusPreparing,
	}); err != nil {
		return s.compensate(ctx, applied, fmt.Errorf("updating order status: %w", err))
	}
	return nil
}

// compensate re-increments every applied decrement. Whatever cannot be
// restored is surfaced as a PartialDeductionError.
func (s *OrderService) compensate(ctx context.Context, applied []AppliedDecrement, cause error) error {
	stuck := []AppliedDecrement{}
	for i := len(applied) - 1; i >= 0; i-- {
		d := applied[i]
		if err := s.inventory.IncrementStock(ctx, d.ItemID, d.Quantity); err != nil {
			s.logger.Errorw("compensation failed", "ingredient", d.Ingredient, "quantity", d.Quantity, "error", err)
			stuck = append(stuck, d)
		}
	}
	if len(stuck) > 0 {
		return &PartialDeductionError{Applied: stuck, Cause: cause}
	}
	return cause
}

// plannedDecrements resolves demand entries to concrete store decrements
// in a stable order. Call only after validation passed.
func plannedDecrements(demand models.Demand, snapshot []models.InventoryItem) []AppliedDecrement {
	byKey := make(map[string]models.InventoryItem, len(snapshot))
	for _, item := range snapshot {
		byKey[models.CanonicalName(item.Name)] = item
	}

	names := make([]string, 0, len(demand))
	for name := range demand {
		names = append(names, name)
	}
	sort.Strings(names)

	plan := make([]AppliedDecrement, 0, len(names))
	for _, name := range names {
		item := byKey[models.CanonicalName(name)]
		plan = append(plan, AppliedDecrement{Ingredient: name, ItemID: item.Item_id, Quantity: demand[name]})
	}
	return plan
}

// MarkReady moves an accepted order to ready.
func (s *OrderService) MarkReady(ctx context.Context, orderID string) error {
	return s.transition(ctx, orderID, models.StatusReady)
}

// MarkCompleted closes out a ready order.
func (s *OrderService) MarkCompleted(ctx context.Context, orderID string) error {
	return s.transition(ctx, orderID, models.StatusCompleted)
}

// CancelOrder cancels any non-terminal order. The order record is kept for
// reporting. Stock already deducted stays deducted unless the
// restock-on-cancel policy is enabled.
func (s *OrderService) CancelOrder(ctx context.Context, orderID string) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrOrderNotFound
	} else if err != nil {
		return fmt.Errorf("reading order: %w", err)
	}

	if !models.ValidTransition(order.Status, models.StatusCancelled) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, models.StatusCancelled)
	}
	deducted := order.Status == models.StatusPreparing || order.Status == models.StatusReady

	if err := s.orders.UpdateFields(ctx, orderID, map[string]interface{}{
		"status": models.StatusCancelled,
	}); err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	if deducted && s.policy.RestockOnCancel {
		demand := ResolveIngredients(order.Items)
		snapshot, err := s.inventory.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("reading inventory snapshot: %w", err)
		}
		for _, d := range plannedDecrements(demand, snapshot) {
			if d.ItemID == "" {
				continue
			}
			if err := s.inventory.IncrementStock(ctx, d.ItemID, d.Quantity); err != nil {
				s.logger.Errorw("restock on cancel failed", "ingredient", d.Ingredient, "error", err)
			}
		}
		s.logger.Infow("cancelled order restocked", "order_id", orderID, "demand", demand)
	}

	s.logger.Infow("order cancelled", "order_id", orderID)
	return nil
}

func (s *OrderService) transition(ctx context.Context, orderID, to string) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrOrderNotFound
	} else if err != nil {
		return fmt.Errorf("reading order: %w", err)
	}

	if !models.ValidTransition(order.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, to)
	}

	if err := s.orders.UpdateFields(ctx, orderID, map[string]interface{}{"status": to}); err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}
	s.logger.Infow("order status updated", "order_id", orderID, "status", to)
	return nil
}

// RequestReturn opens a return request on a fulfilled order. One request
// per order.
func (s *OrderService) RequestReturn(ctx context.Context, orderID, reason, requestedBy string) error {
	if reason == "" {
		return fmt.Errorf("%w: reason is required", ErrReturnNotAllowed)
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrOrderNotFound
	} else if err != nil {
		return fmt.Errorf("reading order: %w", err)
	}

	if order.Status != models.StatusReady && order.Status != models.StatusCompleted {
		return ErrReturnNotAllowed
	}
	if order.ReturnStatus != "" {
		return fmt.Errorf("%w: return already %s", ErrReturnNotAllowed, order.ReturnStatus)
	}

	now := time.Now()
	if err := s.orders.UpdateFields(ctx, orderID, map[string]interface{}{
		"return_status":       models.ReturnRequested,
		"return_reason":       reason,
		"return_requested_by": requestedBy,
		"return_requested_at": now,
	}); err != nil {
		return fmt.Errorf("storing return request: %w", err)
	}
	s.logger.Infow("return requested", "order_id", orderID, "reason", reason)
	return nil
}

// ApproveReturn marks the pending return approved. The order's amount drops
// out of revenue aggregation from here on; inventory is not touched.
func (s *OrderService) ApproveReturn(ctx context.Context, orderID string) error {
	return s.resolveReturn(ctx, orderID, models.ReturnApproved)
}

// RejectReturn closes the pending return without effect on reporting.
func (s *OrderService) RejectReturn(ctx context.Context, orderID string) error {
	return s.resolveReturn(ctx, orderID, models.ReturnRejected)
}

func (s *OrderService) resolveReturn(ctx context.Context, orderID, resolution string) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrOrderNotFound
	} else if err != nil {
		return fmt.Errorf("reading order: %w", err)
	}

	if order.ReturnStatus != models.ReturnRequested {
		return ErrNoReturnRequest
	}

	now := time.Now()
	fields := map[string]interface{}{
		"return_status":      resolution,
		"return_resolved_at": now,
	}
	if resolution == models.ReturnApproved {
		fields["returned"] = true
	}

	if err := s.orders.UpdateFields(ctx, orderID, fields); err != nil {
		return fmt.Errorf("storing return resolution: %w", err)
	}
	s.logger.Infow("return resolved", "order_id", orderID, "resolution", resolution)
	return nil
}

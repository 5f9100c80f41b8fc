package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Mad-mazz/grace-burger/models"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func fullPantry(cheese int) *fakeInventoryRepo {
	return newFakeInventoryRepo(
		record("Patty", 10),
		record("Bun", 10),
		record("Cheese", cheese),
	)
}

func cheeseBurgerOrder(status string) models.Order {
	return models.Order{
		Order_id:    "ord-1",
		OrderNumber: "#GB-2026-0001",
		Status:      status,
		Items:       []models.OrderItem{{Name: "Cheese Burger", Quantity: 2, Price: 35, Total: 70}},
		TotalAmount: 70,
	}
}

func TestAcceptOrderInsufficientStock(t *testing.T) {
	inv := fullPantry(1)
	orders := newFakeOrderRepo(cheeseBurgerOrder(models.StatusReceived))
	svc := NewOrderService(orders, inv, &fakeTransactor{}, Policy{}, testLogger())

	err := svc.AcceptOrder(context.Background(), "ord-1")

	var insErr *InsufficientInventoryError
	require.ErrorAs(t, err, &insErr)
	assert.Empty(t, insErr.Report.Missing)
	require.Len(t, insErr.Report.Insufficient, 1)
	assert.Equal(t, models.Shortage{Name: "Cheese", Needed: 2, Available: 1, Short: 1}, insErr.Report.Insufficient[0])
	assert.Contains(t, insErr.Error(), "need 2, have 1, short by 1")

	// nothing was deducted and the order did not move
	assert.Equal(t, 10, inv.stockOf("Patty"))
	assert.Equal(t, 10, inv.stockOf("Bun"))
	assert.Equal(t, 1, inv.stockOf("Cheese"))
	stored, _ := orders.GetByID(context.Background(), "ord-1")
	assert.Equal(t, models.StatusReceived, stored.Status)
}

func TestAcceptOrderDeductsAndTransitions(t *testing.T) {
	inv := fullPantry(5)
	orders := newFakeOrderRepo(cheeseBurgerOrder(models.StatusReceived))
	tx := &fakeTransactor{}
	svc := NewOrderService(orders, inv, tx, Policy{}, testLogger())

	err := svc.AcceptOrder(context.Background(), "ord-1")

	require.NoError(t, err)
	assert.Equal(t, 8, inv.stockOf("Patty"))
	assert.Equal(t, 8, inv.stockOf("Bun"))
	assert.Equal(t, 3, inv.stockOf("Cheese"))
	stored, _ := orders.GetByID(context.Background(), "ord-1")
	assert.Equal(t, models.StatusPreparing, stored.Status)
	assert.Equal(t, 1, tx.calls)
}

func TestAcceptOrderMissingIngredient(t *testing.T) {
	inv := newFakeInventoryRepo(record("Patty", 10), record("Bun", 10))
	orders := newFakeOrderRepo(cheeseBurgerOrder(models.StatusReceived))
	svc := NewOrderService(orders, inv, &fakeTransactor{}, Policy{}, testLogger())

	err := svc.AcceptOrder(context.Background(), "ord-1")

	var insErr *InsufficientInventoryError
	require.ErrorAs(t, err, &insErr)
	assert.Equal(t, []string{"Cheese"}, insErr.Report.Missing)
	assert.Empty(t, insErr.Report.Insufficient)
	assert.Contains(t, insErr.Error(), "Missing ingredients in inventory: Cheese")
}

func TestAcceptOrderFallsBackWithoutTransactions(t *testing.T) {
	inv := fullPantry(5)
	orders := newFakeOrderRepo(cheeseBurgerOrder(models.StatusReceived))
	svc := NewOrderService(orders, inv, &fakeTransactor{unsupported: true}, Policy{}, testLogger())

	err := svc.AcceptOrder(context.Background(), "ord-1")

	require.NoError(t, err)
	assert.Equal(t, 3, inv.stockOf("Cheese"))
	stored, _ := orders.GetByID(context.Background(), "ord-1")
	assert.Equal(t, models.StatusPreparing, stored.Status)
}

func TestAcceptOrderCompensatesMidSequenceFailure(t *testing.T) {
	inv := fullPantry(5)
	// decrements run in sorted ingredient order: Bun, Cheese, Patty
	inv.failDecrement[inv.idOf("Cheese")] = true
	orders := newFakeOrderRepo(cheeseBurgerOrder(models.StatusReceived))
	svc := NewOrderService(orders, inv, &fakeTransactor{unsupported: true}, Policy{}, testLogger())

	err := svc.AcceptOrder(context.Background(), "ord-1")

	require.Error(t, err)
	var partial *PartialDeductionError
	assert.False(t, errors.As(err, &partial), "compensation succeeded, no partial state expected")
	assert.Equal(t, 10, inv.stockOf("Bun"))
	assert.Equal(t, 10, inv.stockOf("Patty"))
	assert.Equal(t, 5, inv.stockOf("Cheese"))
	stored, _ := orders.GetByID(context.Background(), "ord-1")
	assert.Equal(t, models.StatusReceived, stored.Status)
}

func TestAcceptOrderReportsUncompensatedDeductions(t *testing.T) {
	inv := fullPantry(5)
	inv.failDecrement[inv.idOf("Cheese")] = true
	inv.failIncrement[inv.idOf("Bun")] = true // compensation for Bun also fails
	orders := newFakeOrderRepo(cheeseBurgerOrder(models.StatusReceived))
	svc := NewOrderService(orders, inv, &fakeTransactor{unsupported: true}, Policy{}, testLogger())

	err := svc.AcceptOrder(context.Background(), "ord-1")

	var partial *PartialDeductionError
	require.ErrorAs(t, err, &partial)
	require.Len(t, partial.Applied, 1)
	assert.Equal(t, "Bun", partial.Applied[0].Ingredient)
	assert.Equal(t, 2, partial.Applied[0].Quantity)
	assert.Equal(t, 8, inv.stockOf("Bun"), "the uncompensated decrement stands")
}

func TestAcceptOrderPreconditions(t *testing.T) {
	inv := fullPantry(5)
	empty := models.Order{Order_id: "ord-empty", Status: models.StatusReceived}
	preparing := cheeseBurgerOrder(models.StatusPreparing)
	preparing.Order_id = "ord-2"
	orders := newFakeOrderRepo(empty, preparing)
	svc := NewOrderService(orders, inv, &fakeTransactor{}, Policy{}, testLogger())

	assert.ErrorIs(t, svc.AcceptOrder(context.Background(), "ord-empty"), ErrEmptyOrder)
	assert.ErrorIs(t, svc.AcceptOrder(context.Background(), "ord-2"), ErrInvalidTransition)
	assert.ErrorIs(t, svc.AcceptOrder(context.Background(), "no-such-order"), ErrOrderNotFound)
}

func TestOrderLifecycleTransitions(t *testing.T) {
	ctx := context.Background()
	inv := fullPantry(5)
	orders := newFakeOrderRepo(cheeseBurgerOrder(models.StatusReceived))
	svc := NewOrderService(orders, inv, &fakeTransactor{}, Policy{}, testLogger())

	// ready before acceptance is not a legal move
	assert.ErrorIs(t, svc.MarkReady(ctx, "ord-1"), ErrInvalidTransition)

	require.NoError(t, svc.AcceptOrder(ctx, "ord-1"))
	assert.ErrorIs(t, svc.MarkCompleted(ctx, "ord-1"), ErrInvalidTransition)
	require.NoError(t, svc.MarkReady(ctx, "ord-1"))
	require.NoError(t, svc.MarkCompleted(ctx, "ord-1"))

	// completed is terminal
	assert.ErrorIs(t, svc.CancelOrder(ctx, "ord-1"), ErrInvalidTransition)
}

func TestCancelAfterDeductionKeepsStock(t *testing.T) {
	ctx := context.Background()
	inv := fullPantry(5)
	orders := newFakeOrderRepo(cheeseBurgerOrder(models.StatusReceived))
	svc := NewOrderService(orders, inv, &fakeTransactor{}, Policy{}, testLogger())

	require.NoError(t, svc.AcceptOrder(ctx, "ord-1"))
	require.NoError(t, svc.CancelOrder(ctx, "ord-1"))

	stored, _ := orders.GetByID(ctx, "ord-1")
	assert.Equal(t, models.StatusCancelled, stored.Status)
	// default policy: deducted stock is committed to the kitchen
	assert.Equal(t, 8, inv.stockOf("Patty"))
	assert.Equal(t, 8, inv.stockOf("Bun"))
	assert.Equal(t, 3, inv.stockOf("Cheese"))
}

func TestCancelRestocksWhenPolicyEnabled(t *testing.T) {
	ctx := context.Background()
	inv := fullPantry(5)
	orders := newFakeOrderRepo(cheeseBurgerOrder(models.StatusReceived))
	svc := NewOrderService(orders, inv, &fakeTransactor{}, Policy{RestockOnCancel: true}, testLogger())

	require.NoError(t, svc.AcceptOrder(ctx, "ord-1"))
	require.NoError(t, svc.CancelOrder(ctx, "ord-1"))

	assert.Equal(t, 10, inv.stockOf("Patty"))
	assert.Equal(t, 10, inv.stockOf("Bun"))
	assert.Equal(t, 5, inv.stockOf("Cheese"))
}

func TestCancelBeforeDeductionNeverRestocks(t *testing.T) {
	ctx := context.Background()
	inv := fullPantry(5)
	orders := newFakeOrderRepo(cheeseBurgerOrder(models.StatusReceived))
	svc := NewOrderService(orders, inv, &fakeTransactor{}, Policy{RestockOnCancel: true}, testLogger())

	require.NoError(t, svc.CancelOrder(ctx, "ord-1"))

	// nothing was ever deducted, so nothing comes back
	assert.Equal(t, 10, inv.stockOf("Patty"))
	assert.Equal(t, 5, inv.stockOf("Cheese"))
}

func TestCreateOrderUsesCatalogPrices(t *testing.T) {
	ctx := context.Background()
	orders := newFakeOrderRepo()
	svc := NewOrderService(orders, newFakeInventoryRepo(), &fakeTransactor{}, Policy{}, testLogger())

	order, err := svc.CreateOrder(ctx, CreateOrderRequest{
		UserID:        "user-1",
		UserName:      "Juan",
		PaymentMethod: "Cash on Delivery",
		Items: []models.OrderItem{
			{Name: "Cheese Burger", Quantity: 2, Price: 1}, // submitted price is overridden
			{Name: "Off-menu Special", Quantity: 1, Price: 99},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusReceived, order.Status)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "#GB-"))
	assert.Equal(t, 35.0, order.Items[0].Price)
	assert.Equal(t, 70.0, order.Items[0].Total)
	assert.Equal(t, 99.0, order.Items[1].Total)
	assert.Equal(t, 169.0, order.TotalAmount)

	stored, err := orders.GetByID(ctx, order.Order_id)
	require.NoError(t, err)
	assert.Equal(t, order.OrderNumber, stored.OrderNumber)
}

func TestOrderNumberFormat(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 20; i++ {
		assert.Regexp(t, `^#GB-2026-\d{4}$`, newOrderNumber(now))
	}
}

func TestCreateOrderRejectsBadCarts(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(newFakeOrderRepo(), newFakeInventoryRepo(), &fakeTransactor{}, Policy{}, testLogger())

	_, err := svc.CreateOrder(ctx, CreateOrderRequest{})
	assert.ErrorIs(t, err, ErrEmptyOrder)

	_, err = svc.CreateOrder(ctx, CreateOrderRequest{Items: []models.OrderItem{{Name: "Pepsi", Quantity: 0}}})
	assert.Error(t, err)

	_, err = svc.CreateOrder(ctx, CreateOrderRequest{Items: []models.OrderItem{{Quantity: 1}}})
	assert.Error(t, err)
}

func TestReturnWorkflow(t *testing.T) {
	ctx := context.Background()
	orders := newFakeOrderRepo(cheeseBurgerOrder(models.StatusCompleted))
	svc := NewOrderService(orders, newFakeInventoryRepo(), &fakeTransactor{}, Policy{}, testLogger())

	require.NoError(t, svc.RequestReturn(ctx, "ord-1", "wrong order delivered", "user-1"))

	stored, _ := orders.GetByID(ctx, "ord-1")
	assert.Equal(t, models.ReturnRequested, stored.ReturnStatus)
	assert.Equal(t, "wrong order delivered", stored.ReturnReason)
	assert.NotNil(t, stored.ReturnRequestedAt)
	assert.False(t, stored.Returned)

	// duplicate request is rejected
	assert.ErrorIs(t, svc.RequestReturn(ctx, "ord-1", "again", "user-1"), ErrReturnNotAllowed)

	require.NoError(t, svc.ApproveReturn(ctx, "ord-1"))
	stored, _ = orders.GetByID(ctx, "ord-1")
	assert.Equal(t, models.ReturnApproved, stored.ReturnStatus)
	assert.True(t, stored.Returned)
	assert.NotNil(t, stored.ReturnResolvedAt)

	// already resolved
	assert.ErrorIs(t, svc.ApproveReturn(ctx, "ord-1"), ErrNoReturnRequest)
}

func TestRejectReturnLeavesRevenueCounting(t *testing.T) {
	ctx := context.Background()
	orders := newFakeOrderRepo(cheeseBurgerOrder(models.StatusCompleted))
	svc := NewOrderService(orders, newFakeInventoryRepo(), &fakeTransactor{}, Policy{}, testLogger())

	require.NoError(t, svc.RequestReturn(ctx, "ord-1", "cold food", "user-1"))
	require.NoError(t, svc.RejectReturn(ctx, "ord-1"))

	stored, _ := orders.GetByID(ctx, "ord-1")
	assert.Equal(t, models.ReturnRejected, stored.ReturnStatus)
	assert.False(t, stored.Returned)
}

func TestRequestReturnPreconditions(t *testing.T) {
	ctx := context.Background()
	received := cheeseBurgerOrder(models.StatusReceived)
	completed := cheeseBurgerOrder(models.StatusCompleted)
	completed.Order_id = "ord-2"
	orders := newFakeOrderRepo(received, completed)
	svc := NewOrderService(orders, newFakeInventoryRepo(), &fakeTransactor{}, Policy{}, testLogger())

	assert.ErrorIs(t, svc.RequestReturn(ctx, "ord-1", "changed my mind", "user-1"), ErrReturnNotAllowed)
	assert.ErrorIs(t, svc.RequestReturn(ctx, "ord-2", "", "user-1"), ErrReturnNotAllowed)
	assert.ErrorIs(t, svc.RequestReturn(ctx, "missing", "reason", "user-1"), ErrOrderNotFound)
}

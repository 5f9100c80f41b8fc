package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Mad-mazz/grace-burger/models"
)

var (
	ErrEmptyOrder        = errors.New("order has no items")
	ErrOrderNotFound     = errors.New("order not found")
	ErrItemNotFound      = errors.New("inventory item not found")
	ErrDuplicateItem     = errors.New("inventory item with this name already exists")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrReturnNotAllowed  = errors.New("order is not eligible for return")
	ErrNoReturnRequest   = errors.New("order has no pending return request")
)

// InsufficientInventoryError aborts order acceptance before any stock is
// touched. It carries the full shortage report so staff can see exactly
// which ingredients are missing and which are short, and by how much.
type InsufficientInventoryError struct {
	Report models.ShortageReport
}

func (e *InsufficientInventoryError) Error() string {
	var b strings.Builder
	if len(e.Report.Missing) > 0 {
		fmt.Fprintf(&b, "Missing ingredients in inventory: %s. ", strings.Join(e.Report.Missing, ", "))
	}
	if len(e.Report.Insufficient) > 0 {
		details := make([]string, len(e.Report.Insufficient))
		for i, s := range e.Report.Insufficient {
			details[i] = fmt.Sprintf("%s (need %d, have %d, short by %d)", s.Name, s.Needed, s.Available, s.Short)
		}
		fmt.Fprintf(&b, "Insufficient stock: %s", strings.Join(details, ", "))
	}
	return strings.TrimSpace(b.String())
}

// AppliedDecrement records one stock decrement that was committed.
type AppliedDecrement struct {
	Ingredient string `json:"ingredient"`
	ItemID     string `json:"item_id"`
	Quantity   int    `json:"quantity"`
}

// PartialDeductionError means the non-transactional deduction path failed
// mid-sequence and compensation could not restore every decrement. The
// Applied list is exactly what still stands in the store and needs manual
// reconciliation.
type PartialDeductionError struct {
	Applied []AppliedDecrement
	Cause   error
}

func (e *PartialDeductionError) Error() string {
	names := make([]string, len(e.Applied))
	for i, a := range e.Applied {
		names[i] = fmt.Sprintf("%s(-%d)", a.Ingredient, a.Quantity)
	}
	return fmt.Sprintf("partial inventory deduction left uncompensated: %s: %v", strings.Join(names, ", "), e.Cause)
}

func (e *PartialDeductionError) Unwrap() error { return e.Cause }

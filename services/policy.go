package services

import (
	"os"
	"strconv"
)

// Policy holds order-workflow policy switches.
type Policy struct {
	// RestockOnCancel controls whether cancelling an order that already
	// passed acceptance puts its deducted ingredients back into stock.
	// Default false: deducted stock is treated as committed to the kitchen.
	RestockOnCancel bool
}

// LoadPolicy reads policy switches from the environment.
func LoadPolicy() Policy {
	restock, _ := strconv.ParseBool(os.Getenv("RESTOCK_ON_CANCEL"))
	return Policy{RestockOnCancel: restock}
}

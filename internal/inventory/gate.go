package inventory

import (
	"fmt"

	"github.com/noah-isme/megamart-checkout/internal/domain"
)

// Record tracks the live stock position for one item.
type Record struct {
	Item  *domain.Item
	Stock int
	// Limit is the remaining purchase allowance for the item, or nil for
	// unlimited. Checkout decrements it per successful purchase, so across
	// repeated checkouts against the same Inventory it is a running
	// counter, not the originally configured limit.
	Limit *int
}

// Inventory maps item IDs to their stock records. It is owned by the
// caller and mutated in place by checkout; concurrent checkouts against
// the same Inventory must be serialized externally.
type Inventory map[string]*Record

// PurchaseLimit returns the remaining purchase allowance for the item, or
// nil when the item is unknown or carries no limit.
func PurchaseLimit(item *domain.Item, inv Inventory) (*int, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: item is required", domain.ErrInventory)
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: inventory is required", domain.ErrInventory)
	}
	rec, ok := inv[item.ID]
	if !ok || rec == nil {
		return nil, nil
	}
	return rec.Limit, nil
}

// SufficientlyStocked reports whether the requested quantity can be served
// from current stock. Unknown items are simply not stocked. A negative
// stored stock value means the inventory is corrupt and is rejected.
func SufficientlyStocked(item *domain.Item, quantity int, inv Inventory) (bool, error) {
	if item == nil {
		return false, fmt.Errorf("%w: item is required", domain.ErrInventory)
	}
	if inv == nil {
		return false, fmt.Errorf("%w: inventory is required", domain.ErrInventory)
	}
	if quantity < 1 {
		return false, fmt.Errorf("%w: purchase quantity must be at least 1, got %d", domain.ErrInventory, quantity)
	}
	rec, ok := inv[item.ID]
	if !ok || rec == nil {
		return false, nil
	}
	if rec.Stock < 0 {
		return false, fmt.Errorf("%w: negative stock %d for item %s", domain.ErrInventory, rec.Stock, item.ID)
	}
	return quantity <= rec.Stock, nil
}

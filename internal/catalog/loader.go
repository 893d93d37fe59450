package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/megamart-checkout/internal/domain"
	"github.com/noah-isme/megamart-checkout/internal/inventory"
	"github.com/noah-isme/megamart-checkout/internal/pricing"
)

type itemEntry struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	Categories    []string        `json:"categories"`
	Stock         int             `json:"stock"`
	PurchaseLimit *int            `json:"purchaseLimit,omitempty"`
}

type discountEntry struct {
	ItemID string          `json:"itemId"`
	Type   string          `json:"type"`
	Value  decimal.Decimal `json:"value"`
}

type catalogFile struct {
	Items     []itemEntry     `json:"items"`
	Discounts []discountEntry `json:"discounts"`
}

// Load reads a catalog file and builds the store the checkout engine runs
// against. The file carries items with stock positions and purchase
// limits, plus at most one discount per item.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	inv := make(inventory.Inventory, len(file.Items))
	for _, entry := range file.Items {
		if entry.ID == "" {
			return nil, fmt.Errorf("catalog item without id")
		}
		if _, exists := inv[entry.ID]; exists {
			return nil, fmt.Errorf("duplicate catalog item %s", entry.ID)
		}
		if entry.OriginalPrice.IsNegative() {
			return nil, fmt.Errorf("negative price for item %s", entry.ID)
		}
		if entry.Stock < 0 {
			return nil, fmt.Errorf("negative stock for item %s", entry.ID)
		}
		if entry.PurchaseLimit != nil && *entry.PurchaseLimit < 0 {
			return nil, fmt.Errorf("negative purchase limit for item %s", entry.ID)
		}
		item := &domain.Item{
			ID:            entry.ID,
			Name:          entry.Name,
			OriginalPrice: entry.OriginalPrice,
			Categories:    entry.Categories,
		}
		inv[entry.ID] = &inventory.Record{Item: item, Stock: entry.Stock, Limit: entry.PurchaseLimit}
	}

	discounts := make(pricing.Discounts, len(file.Discounts))
	for _, entry := range file.Discounts {
		if _, ok := inv[entry.ItemID]; !ok {
			return nil, fmt.Errorf("discount references unknown item %s", entry.ItemID)
		}
		if _, exists := discounts[entry.ItemID]; exists {
			return nil, fmt.Errorf("duplicate discount for item %s", entry.ItemID)
		}
		kind := domain.DiscountType(entry.Type)
		if kind != domain.DiscountPercentage && kind != domain.DiscountFlat {
			return nil, fmt.Errorf("unknown discount type %q for item %s", entry.Type, entry.ItemID)
		}
		discounts[entry.ItemID] = domain.Discount{ItemID: entry.ItemID, Type: kind, Value: entry.Value}
	}

	return NewStore(inv, discounts), nil
}

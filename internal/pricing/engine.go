package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/megamart-checkout/internal/domain"
)

// Discounts maps item IDs to their currently active discount. Items
// without an entry sell at their original price.
type Discounts map[string]domain.Discount

var (
	percentFloor = decimal.NewFromInt(1)
	percentCeil  = decimal.NewFromInt(100)
	hundred      = decimal.NewFromInt(100)
)

// FinalPrice resolves the unit price of an item under any applicable
// discount. The original price is rounded to two decimal places before the
// discount is applied, and the result is rounded again.
func FinalPrice(item *domain.Item, discounts Discounts) (decimal.Decimal, error) {
	if item == nil {
		return decimal.Zero, fmt.Errorf("%w: item is required", domain.ErrPricing)
	}
	if discounts == nil {
		return decimal.Zero, fmt.Errorf("%w: discounts are required", domain.ErrPricing)
	}
	original := item.OriginalPrice.Round(2)
	d, ok := discounts[item.ID]
	if !ok {
		return original, nil
	}
	switch d.Type {
	case domain.DiscountPercentage:
		if d.Value.LessThan(percentFloor) || d.Value.GreaterThan(percentCeil) {
			return decimal.Zero, fmt.Errorf("%w: percentage discount %s outside [1,100] for item %s", domain.ErrPricing, d.Value, item.ID)
		}
		return original.Sub(original.Mul(d.Value).Div(hundred)).Round(2), nil
	case domain.DiscountFlat:
		final := original.Sub(d.Value).Round(2)
		if final.GreaterThan(original) || final.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: flat discount %s leaves item %s outside [0, original price]", domain.ErrPricing, d.Value, item.ID)
		}
		return final, nil
	}
	return original, nil
}

// Savings derives the per-unit savings from the original and final unit
// prices, both rounded to two decimal places first.
func Savings(originalPrice, finalPrice decimal.Decimal) (decimal.Decimal, error) {
	if finalPrice.GreaterThan(originalPrice) {
		return decimal.Zero, fmt.Errorf("%w: final price %s exceeds original price %s", domain.ErrFulfilment, finalPrice, originalPrice)
	}
	return originalPrice.Round(2).Sub(finalPrice.Round(2)).Round(2), nil
}

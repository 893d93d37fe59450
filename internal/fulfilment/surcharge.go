package fulfilment

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/megamart-checkout/internal/domain"
)

var (
	minimumDeliverySurcharge = decimal.NewFromInt(5)
	ratePerKm                = decimal.NewFromFloat(0.5)
)

// Surcharge computes the fulfilment surcharge for a transaction. Only
// deliveries attract one: $5.00 or $0.50 per kilometre, whichever is
// greater, rounded to two decimal places. Delivery requires a linked
// customer with a positive delivery distance on file.
func Surcharge(fulfilment domain.FulfilmentType, customer *domain.Customer) (decimal.Decimal, error) {
	if fulfilment == "" {
		return decimal.Zero, fmt.Errorf("%w: fulfilment type is required", domain.ErrFulfilment)
	}
	if fulfilment != domain.FulfilmentDelivery {
		return decimal.Zero, nil
	}
	if customer == nil {
		return decimal.Zero, fmt.Errorf("%w: delivery requires a linked customer", domain.ErrFulfilment)
	}
	if customer.DeliveryDistanceKm == nil {
		return decimal.Zero, fmt.Errorf("%w: delivery distance not set for customer %s", domain.ErrFulfilment, customer.ID)
	}
	km := *customer.DeliveryDistanceKm
	if km <= 0 {
		return decimal.Zero, fmt.Errorf("%w: delivery distance must be positive, got %v", domain.ErrFulfilment, km)
	}
	charge := ratePerKm.Mul(decimal.NewFromFloat(km))
	if charge.LessThan(minimumDeliverySurcharge) {
		charge = minimumDeliverySurcharge
	}
	return charge.Round(2), nil
}

package payment

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/megamart-checkout/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// RoundForPayment rounds a subtotal according to the payment method.
// Non-cash methods only normalise to two decimal places. Cash rounds to
// the nearest 5-cent bucket: a cents ones-digit of 1, 2, 6 or 7 rounds
// down, 3, 4, 8 or 9 rounds up, 0 and 5 stay put. Ties cannot occur from
// whole cents, so nearest-bucket arithmetic reproduces that table exactly.
func RoundForPayment(subtotal decimal.Decimal, method domain.PaymentMethod) (decimal.Decimal, error) {
	if method == "" {
		return decimal.Zero, fmt.Errorf("%w: payment method is required", domain.ErrPayment)
	}
	rounded := subtotal.Round(2)
	if method != domain.PaymentCash {
		return rounded, nil
	}
	cents := rounded.Mul(oneHundred).IntPart()
	var bucket int64
	if cents >= 0 {
		bucket = (cents + 2) / 5 * 5
	} else {
		bucket = (cents - 2) / 5 * 5
	}
	return decimal.NewFromInt(bucket).Div(oneHundred).Round(2), nil
}

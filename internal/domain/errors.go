package domain

import "errors"

// One sentinel error per validation domain. Every checkout failure wraps
// exactly one of these so callers can tell business rejections apart from
// malformed input with errors.Is.
var (
	// ErrRestrictedItem is returned when a restricted-category purchase is
	// disallowed, or a date is malformed while checking the restriction.
	ErrRestrictedItem = errors.New("restricted item purchase not allowed")
	// ErrInventory is returned for missing inventory input, invalid
	// quantity or stock values, and insufficient stock.
	ErrInventory = errors.New("inventory check failed")
	// ErrPurchaseLimit is returned when the requested quantity exceeds the
	// item's remaining purchase allowance.
	ErrPurchaseLimit = errors.New("purchase quantity limit exceeded")
	// ErrPricing is returned for missing pricing input or a discount value
	// outside its valid range.
	ErrPricing = errors.New("pricing check failed")
	// ErrFulfilment is returned for missing or invalid fulfilment and
	// savings input.
	ErrFulfilment = errors.New("fulfilment check failed")
	// ErrPayment is returned when the payment method is missing.
	ErrPayment = errors.New("payment check failed")
	// ErrCheckout is returned when a top-level checkout input is missing.
	ErrCheckout = errors.New("checkout precondition failed")
)

package domain

import "github.com/shopspring/decimal"

// DiscountType discriminates how a discount value is applied to an item.
type DiscountType string

const (
	// DiscountPercentage takes a percentage in [1,100] off the original price.
	DiscountPercentage DiscountType = "PERCENTAGE"
	// DiscountFlat takes a fixed amount off the original price.
	DiscountFlat DiscountType = "FLAT"
)

// PaymentMethod identifies how a transaction is settled.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "CASH"
	PaymentCredit PaymentMethod = "CREDIT"
	PaymentDebit  PaymentMethod = "DEBIT"
)

// FulfilmentType identifies how purchased items reach the customer.
type FulfilmentType string

const (
	FulfilmentPickup   FulfilmentType = "PICKUP"
	FulfilmentDelivery FulfilmentType = "DELIVERY"
)

// Item is a sellable product. Immutable for the duration of a checkout.
type Item struct {
	ID            string
	Name          string
	OriginalPrice decimal.Decimal
	// Categories are matched case-insensitively against restricted categories.
	Categories []string
}

// Customer is a member account attached to a transaction. DateOfBirth and
// DeliveryDistanceKm are optional profile fields.
type Customer struct {
	ID                 string
	Name               string
	DateOfBirth        *string
	IDVerified         bool
	DeliveryDistanceKm *float64
}

// Discount associates a single discount with one item.
type Discount struct {
	ItemID string
	Type   DiscountType
	Value  decimal.Decimal
}

// TransactionLine is one item/quantity entry of a transaction.
type TransactionLine struct {
	Item     *Item
	Quantity int
}

// Transaction is the input and output of a checkout. The six computed
// fields are written only when every line processed successfully.
type Transaction struct {
	ID       string
	Date     string
	Time     string
	Customer *Customer

	Fulfilment FulfilmentType
	Payment    PaymentMethod
	Lines      []TransactionLine

	FinalTotal                decimal.Decimal
	TotalItemsPurchased       int
	AllItemsSubtotal          decimal.Decimal
	FulfilmentSurchargeAmount decimal.Decimal
	AmountSaved               decimal.Decimal
	RoundingAmountApplied     decimal.Decimal
}

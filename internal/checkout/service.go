package checkout

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/megamart-checkout/internal/domain"
	"github.com/noah-isme/megamart-checkout/internal/fulfilment"
	"github.com/noah-isme/megamart-checkout/internal/inventory"
	"github.com/noah-isme/megamart-checkout/internal/obs"
	"github.com/noah-isme/megamart-checkout/internal/payment"
	"github.com/noah-isme/megamart-checkout/internal/pricing"
	"github.com/noah-isme/megamart-checkout/internal/restriction"
)

// Service sequences restriction, stock, limit, pricing and savings checks
// over every line of a transaction and aggregates the final totals.
type Service struct {
	Log     zerolog.Logger
	Metrics *obs.CheckoutMetrics
}

// Checkout processes the transaction's lines strictly in order, mutating
// the inventory in place for every accepted line, then applies the
// fulfilment surcharge and payment rounding once at transaction level and
// writes the computed totals onto the transaction.
//
// A failing line aborts the call with a typed error. Inventory mutations
// from lines accepted earlier in the same call are not rolled back; callers
// wanting whole-transaction atomicity must snapshot the inventory first.
func (s *Service) Checkout(tx *domain.Transaction, inv inventory.Inventory, discounts pricing.Discounts) (*domain.Transaction, error) {
	if err := s.preconditions(tx, inv, discounts); err != nil {
		return nil, s.reject(tx, err)
	}

	var (
		totalItems int
		subtotal   = decimal.Zero
		savings    = decimal.Zero
	)
	for _, line := range tx.Lines {
		item, qty := line.Item, line.Quantity

		restricted, err := restriction.IsPurchaseRestricted(item, tx.Customer, tx.Date)
		if err != nil {
			return nil, s.reject(tx, err)
		}
		if restricted {
			return nil, s.reject(tx, fmt.Errorf("%w: item %s", domain.ErrRestrictedItem, itemID(item)))
		}

		stocked, err := inventory.SufficientlyStocked(item, qty, inv)
		if err != nil {
			return nil, s.reject(tx, err)
		}
		if !stocked {
			return nil, s.reject(tx, fmt.Errorf("%w: insufficient stock for item %s", domain.ErrInventory, itemID(item)))
		}

		limit, err := inventory.PurchaseLimit(item, inv)
		if err != nil {
			return nil, s.reject(tx, err)
		}
		if limit != nil && qty > *limit {
			return nil, s.reject(tx, fmt.Errorf("%w: item %s allows %d more, requested %d", domain.ErrPurchaseLimit, itemID(item), *limit, qty))
		}

		// The line is accepted: commit its inventory effects. The stored
		// limit doubles as the remaining allowance for later purchases.
		rec := inv[item.ID]
		rec.Stock -= qty
		if rec.Limit != nil {
			remaining := *rec.Limit - qty
			rec.Limit = &remaining
		}

		price, err := pricing.FinalPrice(item, discounts)
		if err != nil {
			return nil, s.reject(tx, err)
		}
		saved, err := pricing.Savings(item.OriginalPrice, price)
		if err != nil {
			return nil, s.reject(tx, err)
		}

		qtyDec := decimal.NewFromInt(int64(qty))
		totalItems += qty
		subtotal = subtotal.Add(price.Mul(qtyDec))
		savings = savings.Add(saved.Mul(qtyDec))
	}

	if tx.Fulfilment == "" {
		return nil, s.reject(tx, fmt.Errorf("%w: fulfilment type is required", domain.ErrInventory))
	}
	if tx.Payment == "" {
		return nil, s.reject(tx, fmt.Errorf("%w: payment method is required", domain.ErrInventory))
	}

	surcharge, err := fulfilment.Surcharge(tx.Fulfilment, tx.Customer)
	if err != nil {
		return nil, s.reject(tx, err)
	}
	preRound := subtotal.Add(surcharge)
	finalTotal, err := payment.RoundForPayment(preRound, tx.Payment)
	if err != nil {
		return nil, s.reject(tx, err)
	}

	tx.FinalTotal = finalTotal
	tx.TotalItemsPurchased = totalItems
	tx.AllItemsSubtotal = subtotal.Round(2)
	tx.FulfilmentSurchargeAmount = surcharge.Round(2)
	tx.AmountSaved = savings.Round(2)
	tx.RoundingAmountApplied = finalTotal.Sub(preRound).Round(2)

	s.Log.Info().
		Str("transaction_id", tx.ID).
		Int("items", totalItems).
		Str("subtotal", tx.AllItemsSubtotal.String()).
		Str("final_total", finalTotal.String()).
		Msg("checkout completed")
	if s.Metrics != nil {
		s.Metrics.Total.WithLabelValues("completed").Inc()
		s.Metrics.ItemsSold.Add(float64(totalItems))
		s.Metrics.Revenue.Add(finalTotal.InexactFloat64())
	}
	return tx, nil
}

func (s *Service) preconditions(tx *domain.Transaction, inv inventory.Inventory, discounts pricing.Discounts) error {
	switch {
	case tx == nil:
		return fmt.Errorf("%w: transaction is required", domain.ErrCheckout)
	case inv == nil:
		return fmt.Errorf("%w: inventory is required", domain.ErrCheckout)
	case discounts == nil:
		return fmt.Errorf("%w: discounts are required", domain.ErrCheckout)
	case tx.Customer == nil:
		return fmt.Errorf("%w: customer is required", domain.ErrCheckout)
	case tx.Date == "":
		return fmt.Errorf("%w: transaction date is required", domain.ErrCheckout)
	}
	return nil
}

func (s *Service) reject(tx *domain.Transaction, err error) error {
	evt := s.Log.Warn().Err(err)
	if tx != nil {
		evt = evt.Str("transaction_id", tx.ID)
	}
	evt.Msg("checkout rejected")
	if s.Metrics != nil {
		s.Metrics.Total.WithLabelValues(Outcome(err)).Inc()
	}
	return err
}

// Outcome maps a checkout error onto a stable label for metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "completed"
	case errors.Is(err, domain.ErrRestrictedItem):
		return "restricted"
	case errors.Is(err, domain.ErrPurchaseLimit):
		return "purchase_limit"
	case errors.Is(err, domain.ErrInventory):
		return "inventory"
	case errors.Is(err, domain.ErrPricing):
		return "pricing"
	case errors.Is(err, domain.ErrFulfilment):
		return "fulfilment"
	case errors.Is(err, domain.ErrPayment):
		return "payment"
	case errors.Is(err, domain.ErrCheckout):
		return "precondition"
	}
	return "error"
}

func itemID(item *domain.Item) string {
	if item == nil {
		return ""
	}
	return item.ID
}

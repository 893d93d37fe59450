package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/megamart-checkout/internal/catalog"
	"github.com/noah-isme/megamart-checkout/internal/common"
	"github.com/noah-isme/megamart-checkout/internal/domain"
	"github.com/noah-isme/megamart-checkout/internal/inventory"
	"github.com/noah-isme/megamart-checkout/internal/pricing"
)

// CustomerInput carries the member account attached to the transaction.
type CustomerInput struct {
	ID                 string   `json:"id" validate:"required"`
	Name               string   `json:"name"`
	DateOfBirth        *string  `json:"dateOfBirth,omitempty"`
	IDVerified         bool     `json:"idVerified"`
	DeliveryDistanceKm *float64 `json:"deliveryDistanceKm,omitempty"`
}

// LineInput is one item/quantity entry of a checkout request.
type LineInput struct {
	ItemID   string `json:"itemId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// Input is the checkout request payload.
type Input struct {
	Date           string         `json:"date" validate:"required"`
	Time           string         `json:"time"`
	Customer       *CustomerInput `json:"customer" validate:"required"`
	FulfilmentType string         `json:"fulfilmentType" validate:"required,oneof=PICKUP DELIVERY"`
	PaymentMethod  string         `json:"paymentMethod" validate:"required,oneof=CASH CREDIT DEBIT"`
	Lines          []LineInput    `json:"lines" validate:"required,min=1,dive"`
}

// Output is the computed transaction summary returned on success.
type Output struct {
	TransactionID             string          `json:"transactionId"`
	FinalTotal                decimal.Decimal `json:"finalTotal"`
	TotalItemsPurchased       int             `json:"totalItemsPurchased"`
	AllItemsSubtotal          decimal.Decimal `json:"allItemsSubtotal"`
	FulfilmentSurchargeAmount decimal.Decimal `json:"fulfilmentSurchargeAmount"`
	AmountSaved               decimal.Decimal `json:"amountSaved"`
	RoundingAmountApplied     decimal.Decimal `json:"roundingAmountApplied"`
}

// Handler exposes the checkout endpoint over the shared catalog.
type Handler struct {
	Svc      *Service
	Catalog  *catalog.Store
	Validate *validator.Validate
}

// Checkout decodes and validates the request, resolves its lines against
// the catalog and runs the checkout engine inside a catalog session.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil || h.Catalog == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "checkout service not configured", nil)
		return
	}
	var payload Input
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(payload); err != nil {
			common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", "invalid checkout request", validationDetails(err))
			return
		}
	}

	tx := &domain.Transaction{
		ID:   uuid.NewString(),
		Date: payload.Date,
		Time: payload.Time,
		Customer: &domain.Customer{
			ID:                 payload.Customer.ID,
			Name:               payload.Customer.Name,
			DateOfBirth:        payload.Customer.DateOfBirth,
			IDVerified:         payload.Customer.IDVerified,
			DeliveryDistanceKm: payload.Customer.DeliveryDistanceKm,
		},
		Fulfilment: domain.FulfilmentType(payload.FulfilmentType),
		Payment:    domain.PaymentMethod(payload.PaymentMethod),
	}
	for _, line := range payload.Lines {
		item, ok := h.Catalog.Item(line.ItemID)
		if !ok {
			common.JSONError(w, http.StatusUnprocessableEntity, "UNKNOWN_ITEM", "unknown item "+line.ItemID, nil)
			return
		}
		tx.Lines = append(tx.Lines, domain.TransactionLine{Item: item, Quantity: line.Quantity})
	}

	err := h.Catalog.Session(func(inv inventory.Inventory, discounts pricing.Discounts) error {
		_, err := h.Svc.Checkout(tx, inv, discounts)
		return err
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	common.JSON(w, http.StatusCreated, map[string]any{"data": Output{
		TransactionID:             tx.ID,
		FinalTotal:                tx.FinalTotal,
		TotalItemsPurchased:       tx.TotalItemsPurchased,
		AllItemsSubtotal:          tx.AllItemsSubtotal,
		FulfilmentSurchargeAmount: tx.FulfilmentSurchargeAmount,
		AmountSaved:               tx.AmountSaved,
		RoundingAmountApplied:     tx.RoundingAmountApplied,
	}})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	appErr := common.FromDomainError(err)
	if appErr == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unknown error", nil)
		return
	}
	common.JSONError(w, appErr.HTTPStatus, appErr.Code, err.Error(), appErr.Details)
}

func validationDetails(err error) any {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}
	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, fe.Namespace()+" failed "+fe.Tag())
	}
	return details
}

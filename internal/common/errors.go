package common

import (
	"errors"
	"net/http"

	"github.com/noah-isme/megamart-checkout/internal/domain"
)

// AppError represents an error with an attached code and HTTP status.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
	Details    any
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap allows errors.Is/As to inspect the underlying error.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewAppError constructs an AppError.
func NewAppError(code, message string, status int, err error) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Err: err}
}

// FromDomainError maps the checkout error taxonomy onto API error codes.
// Business rejections (restriction, limit, stock) become conflicts so
// clients can distinguish "the sale was refused" from malformed input.
func FromDomainError(err error) *AppError {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrRestrictedItem):
		return NewAppError("RESTRICTED_ITEM", "restricted item purchase not allowed", http.StatusConflict, err)
	case errors.Is(err, domain.ErrPurchaseLimit):
		return NewAppError("PURCHASE_LIMIT_EXCEEDED", "purchase quantity limit exceeded", http.StatusConflict, err)
	case errors.Is(err, domain.ErrInventory):
		return NewAppError("INVENTORY", "inventory check failed", http.StatusConflict, err)
	case errors.Is(err, domain.ErrPricing):
		return NewAppError("PRICING", "pricing check failed", http.StatusUnprocessableEntity, err)
	case errors.Is(err, domain.ErrFulfilment):
		return NewAppError("FULFILMENT", "fulfilment check failed", http.StatusUnprocessableEntity, err)
	case errors.Is(err, domain.ErrPayment):
		return NewAppError("PAYMENT", "payment check failed", http.StatusUnprocessableEntity, err)
	case errors.Is(err, domain.ErrCheckout):
		return NewAppError("BAD_REQUEST", "checkout precondition failed", http.StatusBadRequest, err)
	}
	return NewAppError("INTERNAL", "internal error", http.StatusInternalServerError, err)
}

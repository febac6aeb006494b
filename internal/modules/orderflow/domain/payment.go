package domain

import (
	"errors"
	"strings"
)

// PaymentMethod selects how the customer settles the pre-order.
type PaymentMethod string

const (
	PaymentCreditCard      PaymentMethod = "credit-card"
	PaymentPayAtRestaurant PaymentMethod = "pay-at-restaurant"
)

var (
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	// ErrMissingCardFields rejects card payments until all four fields are
	// populated. Pay-at-restaurant never triggers it.
	ErrMissingCardFields = errors.New("missing card fields")
)

// CardDetails carries the four card form fields. They are validated for
// presence only; the gateway is simulated and nothing is stored.
type CardDetails struct {
	CardName   string `json:"cardName"`
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

// ValidatePayment checks the method and, for card payments, field presence.
func ValidatePayment(method PaymentMethod, card CardDetails) error {
	switch method {
	case PaymentCreditCard:
		if strings.TrimSpace(card.CardName) == "" ||
			strings.TrimSpace(card.CardNumber) == "" ||
			strings.TrimSpace(card.ExpiryDate) == "" ||
			strings.TrimSpace(card.CVV) == "" {
			return ErrMissingCardFields
		}
		return nil
	case PaymentPayAtRestaurant:
		return nil
	default:
		return ErrUnknownPaymentMethod
	}
}

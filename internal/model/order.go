package model

import (
	"fmt"
	"math"
	"time"
)

// PaymentMethod identifies which confirmation path an order takes.
type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "cod"
	PaymentUPI    PaymentMethod = "upi"
	PaymentStripe PaymentMethod = "stripe"
)

// ParsePaymentMethod validates a client-supplied payment method string.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCOD, PaymentUPI, PaymentStripe:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

// DisplayName returns the customer-facing name of the payment method.
func (m PaymentMethod) DisplayName() string {
	switch m {
	case PaymentCOD:
		return "Cash on Delivery"
	case PaymentUPI:
		return "UPI Payment"
	case PaymentStripe:
		return "Credit/Debit Card"
	}
	return "Unknown"
}

// ShippingInfo is the shipping address collected at checkout.
type ShippingInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
}

// OrderTotals holds the derived currency amounts for an order.
type OrderTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Pricing rules for totals derivation.
const (
	FreeShippingThreshold = 1500.0
	ShippingFee           = 99.0
	TaxRate               = 0.08
)

// ComputeTotals derives shipping, tax and total from a cart subtotal.
// Shipping is free strictly above the threshold; tax is rounded to the
// nearest whole currency unit.
func ComputeTotals(subtotal float64) OrderTotals {
	shipping := ShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	tax := math.Round(subtotal * TaxRate)
	return OrderTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// OrderStatusConfirmed is the only status a snapshot ever carries; an
// order exists only once its payment has been confirmed.
const OrderStatusConfirmed = "confirmed"

// OrderSnapshot is the immutable copy of order data taken at payment
// confirmation. It is the single value kept in session-scoped storage and
// read back by the confirmation view.
type OrderSnapshot struct {
	OrderID       string        `json:"orderId"`
	Items         []CartItem    `json:"items"`
	Shipping      ShippingInfo  `json:"shipping"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Totals        OrderTotals   `json:"totals"`
	Status        string        `json:"status"`
	Timestamp     time.Time     `json:"timestamp"`
}

// UPIPaymentRequest is the ephemeral payload shown while a UPI payment is
// pending: the payment URI encoded as a QR image plus its identifiers.
type UPIPaymentRequest struct {
	UPIID            string  `json:"upiId"`
	Amount           float64 `json:"amount"`
	GeneratedOrderID string  `json:"generatedOrderId"`
	PaymentURI       string  `json:"paymentUri"`
	QRImageURL       string  `json:"qrImageUrl"`
}

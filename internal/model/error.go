package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// FieldErrors maps a form field name to its validation message. An empty
// map means the input passed validation.
type FieldErrors map[string]string

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidRating      = "INVALID_RATING"
	ErrCodeCartEmpty          = "CART_EMPTY"
	ErrCodeItemNotFound       = "ITEM_NOT_FOUND"
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodeCheckoutInProgress = "CHECKOUT_IN_PROGRESS"
	ErrCodeNoOrder            = "NO_ORDER"
	ErrCodePaymentFailed      = "PAYMENT_FAILED"
	ErrCodeInvalidAmount      = "INVALID_AMOUNT"
	ErrCodeConfiguration      = "CONFIGURATION_ERROR"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure carrying a stable code that
// handlers map to an HTTP status.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrInvalidRating      = NewDomainError(ErrCodeInvalidRating, "Rating must be between 1 and 5")
	ErrCartEmpty          = NewDomainError(ErrCodeCartEmpty, "Your cart is empty")
	ErrItemNotFound       = NewDomainError(ErrCodeItemNotFound, "Item not found in cart")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrCheckoutInProgress = NewDomainError(ErrCodeCheckoutInProgress, "A checkout is already in progress for this session")
	ErrNoOrder            = NewDomainError(ErrCodeNoOrder, "No order found for this session")
	ErrInvalidAmount      = NewDomainError(ErrCodeInvalidAmount, "Invalid amount. Minimum amount is 0.50")
	ErrMissingStripeKey   = NewDomainError(ErrCodeConfiguration, "Stripe configuration missing")
)

// PaymentError is a driver-level payment failure. It is non-fatal: the
// caller surfaces it and the user may retry or switch payment method.
type PaymentError struct {
	Reason string
	Err    error
}

func (e *PaymentError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

// NewPaymentError wraps an underlying failure as a payment error.
func NewPaymentError(reason string, err error) *PaymentError {
	return &PaymentError{Reason: reason, Err: err}
}

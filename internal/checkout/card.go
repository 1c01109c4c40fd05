package checkout

import (
	"context"
	"time"

	"stylehub/internal/model"
	"stylehub/internal/payment"

	"github.com/rs/zerolog"
)

// IntentCreator is the slice of the payment client the card driver needs.
type IntentCreator interface {
	CreateIntent(ctx context.Context, req payment.IntentRequest) (*payment.Intent, error)
}

// cardDriver confirms card payments by creating a payment intent with
// the external broker, then simulating completion. A real implementation
// would instead confirm the intent client-side and await its terminal
// state.
type cardDriver struct {
	intents IntentCreator
	delay   time.Duration
	logger  zerolog.Logger
}

// NewCardDriver creates the card payment driver.
func NewCardDriver(intents IntentCreator, delay time.Duration, logger zerolog.Logger) Driver {
	return &cardDriver{
		intents: intents,
		delay:   delay,
		logger:  logger.With().Str("driver", "card").Logger(),
	}
}

func (d *cardDriver) Method() model.PaymentMethod {
	return model.PaymentStripe
}

func (d *cardDriver) Attempt(ctx context.Context, order PendingOrder) (*Confirmation, error) {
	intent, err := d.intents.CreateIntent(ctx, payment.IntentRequest{
		Amount:   order.Totals.Total,
		Currency: payment.DefaultCurrency,
		OrderData: &payment.OrderData{
			Shipping: order.Shipping,
			Items:    order.Items,
		},
	})
	if err != nil {
		d.logger.Warn().
			Err(err).
			Str("session_id", order.SessionID).
			Msg("payment intent creation failed")
		return nil, model.NewPaymentError("Payment failed. Please try again.", err)
	}

	d.logger.Info().
		Str("session_id", order.SessionID).
		Str("payment_intent_id", intent.PaymentIntentID).
		Msg("awaiting card payment completion")

	if err := wait(ctx, d.delay); err != nil {
		return nil, err
	}

	return &Confirmation{
		Method:    model.PaymentStripe,
		Reference: intent.PaymentIntentID,
		Message:   "Payment successful!",
	}, nil
}

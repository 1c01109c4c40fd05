package checkout

import (
	"context"
	"time"

	"stylehub/internal/model"

	"github.com/rs/zerolog"
)

// codDriver confirms cash-on-delivery orders. Settlement happens at
// physical delivery, outside this system, so confirmation is implicit:
// a short simulated processing delay, then success.
type codDriver struct {
	delay  time.Duration
	logger zerolog.Logger
}

// NewCODDriver creates the cash-on-delivery payment driver.
func NewCODDriver(delay time.Duration, logger zerolog.Logger) Driver {
	return &codDriver{
		delay:  delay,
		logger: logger.With().Str("driver", "cod").Logger(),
	}
}

func (d *codDriver) Method() model.PaymentMethod {
	return model.PaymentCOD
}

func (d *codDriver) Attempt(ctx context.Context, order PendingOrder) (*Confirmation, error) {
	d.logger.Debug().
		Str("session_id", order.SessionID).
		Float64("total", order.Totals.Total).
		Msg("processing cash-on-delivery order")

	if err := wait(ctx, d.delay); err != nil {
		return nil, err
	}

	return &Confirmation{
		Method:  model.PaymentCOD,
		Message: "Order placed successfully! Cash on Delivery selected.",
	}, nil
}

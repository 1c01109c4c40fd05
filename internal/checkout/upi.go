package checkout

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"stylehub/internal/config"
	"stylehub/internal/model"

	"github.com/rs/zerolog"
)

// UPIDriver confirms UPI payments. It builds a upi:// payment request
// URI, derives a QR image URL for it from the configured rendering
// service, and then simulates the settlement callback with a fixed
// delay. There is no actual settlement verification; the pending request
// is never reconciled against a real payment.
type UPIDriver struct {
	cfg    config.UPIConfig
	delay  time.Duration
	logger zerolog.Logger
}

// NewUPIDriver creates the UPI payment driver.
func NewUPIDriver(cfg config.UPIConfig, delay time.Duration, logger zerolog.Logger) *UPIDriver {
	return &UPIDriver{
		cfg:    cfg,
		delay:  delay,
		logger: logger.With().Str("driver", "upi").Logger(),
	}
}

func (d *UPIDriver) Method() model.PaymentMethod {
	return model.PaymentUPI
}

// BuildRequest generates the ephemeral UPI payment request for the given
// amount: a synthetic order id, the payment URI, and the QR image URL
// encoding it. The request lives only for the duration of the QR display.
func (d *UPIDriver) BuildRequest(amount float64) *model.UPIPaymentRequest {
	orderID := newOrderID()

	uri := fmt.Sprintf(
		"upi://pay?pa=%s&pn=%s&am=%s&cu=INR&tn=Payment for Order %s",
		d.cfg.MerchantVPA,
		d.cfg.MerchantName,
		strconv.FormatFloat(amount, 'f', -1, 64),
		orderID,
	)

	qrURL := d.cfg.QRServiceURL + "?size=200x200&data=" + url.QueryEscape(uri)

	return &model.UPIPaymentRequest{
		UPIID:            d.cfg.MerchantVPA,
		Amount:           amount,
		GeneratedOrderID: orderID,
		PaymentURI:       uri,
		QRImageURL:       qrURL,
	}
}

func (d *UPIDriver) Attempt(ctx context.Context, order PendingOrder) (*Confirmation, error) {
	request := d.BuildRequest(order.Totals.Total)

	d.logger.Info().
		Str("session_id", order.SessionID).
		Str("payment_id", request.GeneratedOrderID).
		Float64("amount", request.Amount).
		Msg("waiting for UPI payment confirmation")

	// Placeholder for a real UPI callback or poll.
	if err := wait(ctx, d.delay); err != nil {
		return nil, err
	}

	return &Confirmation{
		Method:    model.PaymentUPI,
		Reference: request.GeneratedOrderID,
		Message:   "UPI payment verified!",
	}, nil
}

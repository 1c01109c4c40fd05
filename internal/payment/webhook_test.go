package payment

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookProcessor_Process(t *testing.T) {
	processor := NewWebhookProcessor(zerolog.Nop())

	tests := []struct {
		name string
		body string
	}{
		{
			name: "Payment succeeded",
			body: `{
				"type": "payment_intent.succeeded",
				"data": {"object": {
					"id": "pi_1",
					"amount": 117900,
					"currency": "inr",
					"metadata": {"order_id": "ORDER_1", "customer_email": "asha@example.com"}
				}}
			}`,
		},
		{
			name: "Payment failed with reason",
			body: `{
				"type": "payment_intent.payment_failed",
				"data": {"object": {
					"id": "pi_2",
					"metadata": {"order_id": "ORDER_2"},
					"last_payment_error": {"message": "Your card was declined."}
				}}
			}`,
		},
		{
			name: "Payment failed without reason",
			body: `{
				"type": "payment_intent.payment_failed",
				"data": {"object": {"id": "pi_3"}}
			}`,
		},
		{
			name: "Payment cancelled with reason",
			body: `{
				"type": "payment_intent.canceled",
				"data": {"object": {"id": "pi_4", "cancellation_reason": "abandoned"}}
			}`,
		},
		{
			name: "Payment cancelled without reason",
			body: `{
				"type": "payment_intent.canceled",
				"data": {"object": {"id": "pi_5"}}
			}`,
		},
		{
			name: "Unknown event type is acknowledged",
			body: `{"type": "charge.refunded", "data": {"object": {"id": "ch_1"}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, processor.Process([]byte(tt.body)))
		})
	}
}

func TestWebhookProcessor_Process_InvalidJSON(t *testing.T) {
	processor := NewWebhookProcessor(zerolog.Nop())

	err := processor.Process([]byte("not json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse webhook event")
}

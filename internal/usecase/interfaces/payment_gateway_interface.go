package interfaces

import (
	"context"
	"encoding/json"
)

// GatewayPayment is what the payment provider answered for one charge.
// Response is kept verbatim on the stored payment.
type GatewayPayment struct {
	ProviderID string
	Status     string
	Response   json.RawMessage
}

// IPaymentGateway charges the guest for the creators of a booking.
type IPaymentGateway interface {
	ChargeCreators(ctx context.Context, payload json.RawMessage) (GatewayPayment, error)
}

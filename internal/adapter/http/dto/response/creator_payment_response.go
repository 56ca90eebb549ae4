package response

import (
	"time"

	"shootbook/internal/domain/entities"
)

type CreatorPaymentResponse struct {
	PaymentID string    `json:"payment_id"`
	BookingID string    `json:"booking_id"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromCreatorPayment(p entities.CreatorPayment) CreatorPaymentResponse {
	return CreatorPaymentResponse{
		PaymentID:          p.ID,
		BookingID:          p.BookingID,
		Amount:             p.Amount,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

// CreatorPaymentListResponse carries every payment of a booking, newest
// first, plus the latest one for clients that only show a status.
type CreatorPaymentListResponse struct {
	Latest   CreatorPaymentResponse   `json:"latest"`
	Payments []CreatorPaymentResponse `json:"payments"`
}

// FromCreatorPayments expects items sorted newest first and non-empty.
func FromCreatorPayments(items []entities.CreatorPayment) CreatorPaymentListResponse {
	out := CreatorPaymentListResponse{Payments: make([]CreatorPaymentResponse, 0, len(items))}
	for _, p := range items {
		out.Payments = append(out.Payments, FromCreatorPayment(p))
	}
	if len(out.Payments) > 0 {
		out.Latest = out.Payments[0]
	}
	return out
}

package interfaces

import (
	"context"
	"shootbook/internal/domain/entities"
)

// IBookingGateway abstracts the external guest booking service.
type IBookingGateway interface {
	CreateGuestBooking(ctx context.Context, b entities.GuestBooking) (bookingID string, err error)
}

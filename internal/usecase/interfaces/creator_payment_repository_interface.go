package interfaces

import (
	"context"
	"shootbook/internal/domain/entities"
)

// ICreatorPaymentRepository abstracts DynamoDB persistence for CreatorPayment.
type ICreatorPaymentRepository interface {
	Create(ctx context.Context, p entities.CreatorPayment) (entities.CreatorPayment, error)
	GetByID(ctx context.Context, id string) (entities.CreatorPayment, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.CreatorPayment, error)
}

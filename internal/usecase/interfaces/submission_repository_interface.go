package interfaces

import (
	"context"
	"shootbook/internal/domain/entities"
)

// ISubmissionRepository abstracts DynamoDB persistence for Submission.
// GetByBookingID returns a zero Submission and nil error when absent.
type ISubmissionRepository interface {
	Create(ctx context.Context, s entities.Submission) (entities.Submission, error)
	GetByBookingID(ctx context.Context, bookingID string) (entities.Submission, error)
}

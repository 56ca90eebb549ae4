package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidSessionID      = errors.New("invalid wizard session id")
	ErrWizardSessionNotFound = errors.New("wizard session not found")
	ErrWizardLocked          = errors.New("wizard session can no longer be edited")
	ErrConcurrentUpdate      = errors.New("wizard session was updated concurrently")
	ErrSubmissionInProgress  = errors.New("booking submission already in progress")
	ErrNothingToQuote        = errors.New("no services selected")
	ErrQuoteUnavailable      = errors.New("live quote unavailable")
	ErrInvalidDraft          = errors.New("booking draft is incomplete")
	ErrBookingCreationFailed = errors.New("booking creation failed")
	ErrInvalidBookingID      = errors.New("invalid booking_id")
	ErrSubmissionNotFound    = errors.New("submission not found")
)

const (
	BookingCreatedMessage       = "Booking created! Finding the right creatives for you..."
	DefaultBookingFailedMessage = "Failed to create booking. Please try again."
)

// DraftValidationError lists the fields that keep the wizard from leaving
// Step. It is raised before any side effect.
type DraftValidationError struct {
	Step   int
	Fields map[string]string
}

func (e *DraftValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("step %d: %s", e.Step, strings.Join(parts, "; "))
}

func (e *DraftValidationError) Unwrap() error {
	return ErrInvalidDraft
}

// QuoteSaveError is a failed quote save during submission. It never reaches
// the caller; submission continues without a quote id.
type QuoteSaveError struct {
	Err error
}

func (e *QuoteSaveError) Error() string {
	return "save quote: " + e.Err.Error()
}

func (e *QuoteSaveError) Unwrap() error {
	return e.Err
}

// BookingCreationError is a failed guest booking. Message is safe to show
// to the guest.
type BookingCreationError struct {
	Message string
	Err     error
}

func (e *BookingCreationError) Error() string {
	return fmt.Sprintf("%v: %v", ErrBookingCreationFailed, e.Err)
}

func (e *BookingCreationError) Unwrap() error {
	return e.Err
}

func (e *BookingCreationError) Is(target error) bool {
	return target == ErrBookingCreationFailed
}

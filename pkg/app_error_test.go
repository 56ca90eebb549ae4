package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected error string %q", e.Error())
	}

	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" || body.Details != nil {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAppError_WithDetails(t *testing.T) {
	base := NewDomainErrorSimple("INVALID_DRAFT", "Invalid draft", http.StatusUnprocessableEntity)
	withDetails := base.WithDetails(map[string]string{"guest_email": "required"})

	if base.Details != nil {
		t.Fatalf("base error must not be mutated")
	}
	if withDetails.ToHTTPError().Details["guest_email"] != "required" {
		t.Fatalf("expected details on copy")
	}
	if withDetails.Error() != "INVALID_DRAFT: Invalid draft" {
		t.Fatalf("unexpected error string %q", withDetails.Error())
	}
}

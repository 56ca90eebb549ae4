package response

import (
	"time"

	"shootbook/internal/domain/entities"
	"shootbook/internal/usecase"
)

type WizardSessionResponse struct {
	ID            string                `json:"id"`
	State         string                `json:"state"`
	Step          int                   `json:"step"`
	TotalSteps    int                   `json:"total_steps"`
	Editable      bool                  `json:"editable"`
	Version       int64                 `json:"version"`
	Draft         entities.BookingDraft `json:"draft"`
	DurationHours int                   `json:"duration_hours"`
	LiveBudgetMax float64               `json:"live_budget_max"`
	LastError     string                `json:"last_error,omitempty"`
	BookingID     string                `json:"booking_id,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func FromWizardSession(s entities.WizardSession) WizardSessionResponse {
	return WizardSessionResponse{
		ID:            s.ID,
		State:         string(s.State),
		Step:          s.ActiveStep(),
		TotalSteps:    entities.WizardStepCount,
		Editable:      s.State.Editable(),
		Version:       s.Version,
		Draft:         s.Draft,
		DurationHours: s.Draft.DurationHours(),
		LiveBudgetMax: s.Draft.LiveBudgetMax(),
		LastError:     s.LastError,
		BookingID:     s.BookingID,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

type SubmitResponse struct {
	BookingID       string                `json:"booking_id"`
	QuoteID         string                `json:"quote_id,omitempty"`
	Message         string                `json:"message"`
	ResultsPath     string                `json:"results_path"`
	RedirectAfterMS int64                 `json:"redirect_after_ms"`
	Session         WizardSessionResponse `json:"session"`
}

func FromSubmitResult(r usecase.SubmitResult) SubmitResponse {
	return SubmitResponse{
		BookingID:       r.BookingID,
		QuoteID:         r.QuoteID,
		Message:         r.Message,
		ResultsPath:     r.ResultsPath,
		RedirectAfterMS: r.RedirectAfter.Milliseconds(),
		Session:         FromWizardSession(r.Session),
	}
}

type SubmissionResponse struct {
	BookingID     string    `json:"booking_id"`
	SessionID     string    `json:"session_id"`
	QuoteID       string    `json:"quote_id,omitempty"`
	GuestEmail    string    `json:"guest_email"`
	ContentTypes  []string  `json:"content_types"`
	Location      string    `json:"location"`
	BudgetMin     float64   `json:"budget_min"`
	BudgetMax     float64   `json:"budget_max"`
	Amount        float64   `json:"amount"`
	DurationHours int       `json:"duration_hours"`
	ResultsPath   string    `json:"results_path"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromSubmission(s entities.Submission) SubmissionResponse {
	cts := make([]string, 0, len(s.ContentTypes))
	for _, ct := range s.ContentTypes {
		cts = append(cts, string(ct))
	}
	return SubmissionResponse{
		BookingID:     s.BookingID,
		SessionID:     s.SessionID,
		QuoteID:       s.QuoteID,
		GuestEmail:    s.GuestEmail,
		ContentTypes:  cts,
		Location:      s.Location,
		BudgetMin:     s.BudgetMin,
		BudgetMax:     s.BudgetMax,
		Amount:        s.Amount,
		DurationHours: s.DurationHours,
		ResultsPath:   s.ResultsPath,
		CreatedAt:     s.CreatedAt,
	}
}

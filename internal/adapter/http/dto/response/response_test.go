package response

import (
	"encoding/json"
	"testing"
	"time"

	"shootbook/internal/domain/entities"
	"shootbook/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromWizardSession(t *testing.T) {
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	s := entities.NewWizardSession("s-1", now)
	s.State = entities.WizardStateLogistics
	s.Version = 3
	s.Draft.BudgetMax = 900
	s.Draft.QuoteTotal = 750

	got := FromWizardSession(s)
	assert.Equal(t, "s-1", got.ID)
	assert.Equal(t, "logistics", got.State)
	assert.Equal(t, 3, got.Step)
	assert.Equal(t, entities.WizardStepCount, got.TotalSteps)
	assert.True(t, got.Editable)
	assert.Equal(t, int64(3), got.Version)
	assert.Equal(t, 750.0, got.LiveBudgetMax)
	assert.Equal(t, 1, got.DurationHours)
}

func TestFromSubmitResult(t *testing.T) {
	s := entities.NewWizardSession("s-1", time.Now())
	s.State = entities.WizardStateCompleted

	got := FromSubmitResult(usecase.SubmitResult{
		BookingID:     "bk-1",
		Message:       usecase.BookingCreatedMessage,
		ResultsPath:   "/search-results?budget=100",
		RedirectAfter: 1500 * time.Millisecond,
		Session:       s,
	})

	assert.Equal(t, int64(1500), got.RedirectAfterMS)
	assert.False(t, got.Session.Editable)

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	_, hasQuote := body["quote_id"]
	assert.False(t, hasQuote)
}

func TestNewCatalogResponse(t *testing.T) {
	c := NewCatalogResponse()
	assert.Len(t, c.ServiceTypes, 3)
	assert.Contains(t, c.ContentTypes, "all")
	require.NotEmpty(t, c.ShootTypes)
	for _, s := range c.ShootTypes {
		assert.NotEmpty(t, c.EditTypes[s], s)
	}
	assert.Equal(t, entities.DefaultBudgetMax, c.BudgetMax)
}

func TestFromCreatorPayments(t *testing.T) {
	newer := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	got := FromCreatorPayments([]entities.CreatorPayment{
		{ID: "p-2", BookingID: "bk-1", Date: newer, Status: entities.PaymentStatusApproved},
		{ID: "p-1", BookingID: "bk-1", Date: newer.Add(-time.Hour), Status: entities.PaymentStatusDenied},
	})

	assert.Equal(t, "p-2", got.Latest.PaymentID)
	assert.Len(t, got.Payments, 2)
	assert.Equal(t, "denied", got.Payments[1].Status)
}

func TestFromCalculatedQuote_NonNilLines(t *testing.T) {
	raw, err := json.Marshal(FromCalculatedQuote(entities.CalculatedQuote{Total: 10}))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"line_items":[]`)
}

func TestFromSubmission(t *testing.T) {
	got := FromSubmission(entities.Submission{
		BookingID:    "bk-1",
		ContentTypes: []entities.ContentType{entities.ContentTypePhotographer},
		Amount:       300,
	})
	assert.Equal(t, []string{"photographer"}, got.ContentTypes)
	assert.Equal(t, 300.0, got.Amount)
}

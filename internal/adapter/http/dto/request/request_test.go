package request

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"shootbook/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateDraftRequest_ToPatch(t *testing.T) {
	t.Run("maps and trims fields", func(t *testing.T) {
		var req UpdateDraftRequest
		require.NoError(t, json.Unmarshal([]byte(`{
			"service_type": "shoot_only",
			"content_type": ["photographer", " videographer "],
			"shoot_type": " wedding ",
			"guest_email": " a@b.co ",
			"selected_services": [{"item_id": " drone ", "quantity": 2}],
			"start_date": "2026-05-01T10:00:00Z",
			"end_date": "2026-05-01T13:00:00Z",
			"addons": {"gimbal": 1}
		}`), &req))

		p, err := req.ToPatch()
		require.NoError(t, err)
		assert.Equal(t, entities.ServiceTypeShootOnly, *p.ServiceType)
		assert.Equal(t, []entities.ContentType{entities.ContentTypePhotographer, entities.ContentTypeVideographer}, *p.ContentType)
		assert.Equal(t, "wedding", *p.ShootType)
		assert.Equal(t, "a@b.co", *p.GuestEmail)
		assert.Equal(t, []entities.SelectedService{{ItemID: "drone", Quantity: 2}}, *p.SelectedServices)
		assert.Equal(t, 3*time.Hour, p.EndDate.Sub(*p.StartDate))
		assert.Equal(t, 1, (*p.Addons)["gimbal"])
		assert.Nil(t, p.BudgetMax)
		assert.Nil(t, p.Location)
	})

	t.Run("empty service type clears selection", func(t *testing.T) {
		empty := ""
		p, err := UpdateDraftRequest{ServiceType: &empty}.ToPatch()
		require.NoError(t, err)
		assert.Equal(t, entities.ServiceTypeUnset, *p.ServiceType)
	})

	t.Run("rejects unknown service type", func(t *testing.T) {
		bad := "full_service"
		_, err := UpdateDraftRequest{ServiceType: &bad}.ToPatch()
		assert.True(t, errors.Is(err, ErrInvalidServiceType))
	})

	t.Run("rejects unknown content type", func(t *testing.T) {
		cts := []string{"photographer", "dj"}
		_, err := UpdateDraftRequest{ContentType: &cts}.ToPatch()
		assert.True(t, errors.Is(err, ErrInvalidContentType))
	})

	t.Run("rejects inverted dates", func(t *testing.T) {
		start := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
		end := start.Add(-time.Hour)
		_, err := UpdateDraftRequest{StartDate: &start, EndDate: &end}.ToPatch()
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}

func TestQuotePreviewRequest_ToInput(t *testing.T) {
	in := QuotePreviewRequest{
		Items:      []SelectedServiceRequest{{ItemID: " lighting_kit ", Quantity: 1}},
		ShootHours: 4,
		EventType:  " music ",
	}.ToInput()

	assert.Equal(t, []entities.SelectedService{{ItemID: "lighting_kit", Quantity: 1}}, in.Items)
	assert.Equal(t, 4, in.ShootHours)
	assert.Equal(t, "music", in.EventType)
}

func TestPresignedVideoQuery_Expires(t *testing.T) {
	assert.Equal(t, 90*time.Second, PresignedVideoQuery{ExpiresInSeconds: 90}.Expires())
	assert.Zero(t, PresignedVideoQuery{}.Expires())
	assert.Equal(t, 12*time.Hour, PresignedVideoQuery{ExpiresInSeconds: math.MaxInt64}.Expires())
	assert.Zero(t, PresignedVideoQuery{ExpiresInSeconds: -5}.Expires())
}

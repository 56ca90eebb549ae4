package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestDurationHours(t *testing.T) {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		end  time.Time
		want int
	}{
		{"same instant floors to one", start, 1},
		{"end before start floors to one", start.Add(-3 * time.Hour), 1},
		{"twenty minutes floors to one", start.Add(20 * time.Minute), 1},
		{"exactly two hours", start.Add(2 * time.Hour), 2},
		{"two hours twenty nine rounds down", start.Add(2*time.Hour + 29*time.Minute), 2},
		{"half hour boundary rounds up", start.Add(2*time.Hour + 30*time.Minute), 3},
		{"one and a half hours rounds up", start.Add(90 * time.Minute), 2},
		{"full day", start.Add(24 * time.Hour), 24},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DurationHours(start, tc.end))
		})
	}
}

func TestBookingDraft_DurationHoursWithoutDates(t *testing.T) {
	d := NewBookingDraft()
	assert.Equal(t, 1, d.DurationHours())

	d.StartDate = ptr(time.Now())
	assert.Equal(t, 1, d.DurationHours())
}

func TestNewBookingDraft_Defaults(t *testing.T) {
	d := NewBookingDraft()
	assert.Equal(t, 100.0, d.BudgetMin)
	assert.Equal(t, 15000.0, d.BudgetMax)
	assert.Empty(t, d.ContentType)
	assert.Empty(t, d.SelectedServices)
	assert.Equal(t, ServiceTypeUnset, d.ServiceType)
}

func TestBookingDraft_ApplyMergesOnlyPresentFields(t *testing.T) {
	d := NewBookingDraft()
	d.ShootName = "Spring launch"
	d.GuestEmail = "a@b.com"

	next := d.Apply(DraftPatch{
		ServiceType: ptr(ServiceTypeShootOnly),
		ContentType: ptr([]ContentType{ContentTypeVideographer, ContentTypePhotographer, ContentTypeVideographer}),
		BudgetMax:   ptr(5000.0),
	})

	assert.Equal(t, ServiceTypeShootOnly, next.ServiceType)
	assert.Equal(t, []ContentType{ContentTypeVideographer, ContentTypePhotographer}, next.ContentType)
	assert.Equal(t, 5000.0, next.BudgetMax)
	assert.Equal(t, 100.0, next.BudgetMin)
	assert.Equal(t, "Spring launch", next.ShootName)
	assert.Equal(t, "a@b.com", next.GuestEmail)

	// the receiver is untouched
	assert.Equal(t, ServiceTypeUnset, d.ServiceType)
	assert.Equal(t, 15000.0, d.BudgetMax)
}

func TestBookingDraft_ApplyClearsIncompatibleEditType(t *testing.T) {
	d := NewBookingDraft().Apply(DraftPatch{ShootType: ptr("wedding"), EditType: ptr("highlight_reel")})
	require.Equal(t, "highlight_reel", d.EditType)

	switched := d.Apply(DraftPatch{ShootType: ptr("music")})
	assert.Equal(t, "music", switched.ShootType)
	assert.Empty(t, switched.EditType)

	// social_clips exists for both wedding and event
	d = NewBookingDraft().Apply(DraftPatch{ShootType: ptr("wedding"), EditType: ptr("social_clips")})
	kept := d.Apply(DraftPatch{ShootType: ptr("event")})
	assert.Equal(t, "social_clips", kept.EditType)

	// choosing shoot and edit together keeps a compatible pair
	both := NewBookingDraft().Apply(DraftPatch{ShootType: ptr("music"), EditType: ptr("lyric_video")})
	assert.Equal(t, "lyric_video", both.EditType)
}

func TestBookingDraft_ApplyDropsStaleQuote(t *testing.T) {
	d := NewBookingDraft()
	d.QuoteTotal = 1200
	d.CalculatedQuote = &CalculatedQuote{Total: 1200}

	unrelated := d.Apply(DraftPatch{ShootName: ptr("x")})
	assert.Equal(t, 1200.0, unrelated.QuoteTotal)
	assert.NotNil(t, unrelated.CalculatedQuote)

	changed := d.Apply(DraftPatch{SelectedServices: ptr([]SelectedService{{ItemID: "cam-op", Quantity: 2}})})
	assert.Zero(t, changed.QuoteTotal)
	assert.Nil(t, changed.CalculatedQuote)
	assert.Equal(t, 1200.0, d.QuoteTotal)
}

func TestBookingDraft_CloneIsDeep(t *testing.T) {
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	d := NewBookingDraft()
	d.ContentType = []ContentType{ContentTypeAll}
	d.SelectedServices = []SelectedService{{ItemID: "a", Quantity: 1}}
	d.Addons = map[string]int{"drone": 1}
	d.StartDate = &start
	d.CalculatedQuote = &CalculatedQuote{LineItems: []QuoteLineItem{{ItemID: "a"}}}

	cp := d.Clone()
	cp.ContentType[0] = ContentTypePhotographer
	cp.SelectedServices[0].Quantity = 9
	cp.Addons["drone"] = 3
	*cp.StartDate = start.Add(time.Hour)
	cp.CalculatedQuote.LineItems[0].ItemID = "b"

	assert.Equal(t, ContentTypeAll, d.ContentType[0])
	assert.Equal(t, 1, d.SelectedServices[0].Quantity)
	assert.Equal(t, 1, d.Addons["drone"])
	assert.True(t, d.StartDate.Equal(start))
	assert.Equal(t, "a", d.CalculatedQuote.LineItems[0].ItemID)
}

func TestBookingDraft_LiveBudgetMax(t *testing.T) {
	d := NewBookingDraft()
	assert.Equal(t, 15000.0, d.LiveBudgetMax())
	d.QuoteTotal = 2450.5
	assert.Equal(t, 2450.5, d.LiveBudgetMax())
}

func TestEnums(t *testing.T) {
	assert.True(t, ServiceTypeEditOnly.Valid())
	assert.False(t, ServiceTypeUnset.Valid())
	assert.False(t, ServiceType("shoot").Valid())
	assert.True(t, ContentTypeCinematographer.Valid())
	assert.False(t, ContentType("editor").Valid())
}

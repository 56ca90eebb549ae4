package entities

import (
	"math"
	"slices"
	"time"
)

// ServiceType is the kind of work the guest is booking.
type ServiceType string

const (
	ServiceTypeUnset        ServiceType = ""
	ServiceTypeShootAndEdit ServiceType = "shoot_and_edit"
	ServiceTypeShootOnly    ServiceType = "shoot_only"
	ServiceTypeEditOnly     ServiceType = "edit_only"
)

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceTypeShootAndEdit, ServiceTypeShootOnly, ServiceTypeEditOnly:
		return true
	}
	return false
}

// ContentType is a creator role tag.
type ContentType string

const (
	ContentTypeVideographer    ContentType = "videographer"
	ContentTypePhotographer    ContentType = "photographer"
	ContentTypeCinematographer ContentType = "cinematographer"
	ContentTypeAll             ContentType = "all"
)

func (c ContentType) Valid() bool {
	switch c {
	case ContentTypeVideographer, ContentTypePhotographer, ContentTypeCinematographer, ContentTypeAll:
		return true
	}
	return false
}

const (
	DefaultBudgetMin = 100.0
	DefaultBudgetMax = 15000.0
)

// SelectedService is one (item, quantity) pair the guest picked. The list
// order is kept because the pricing service renders line items in it.
type SelectedService struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// BookingDraft is the in-progress booking held by a wizard session.
//
// QuoteID, QuoteTotal and CalculatedQuote are owned by the pricing service;
// nothing in this package computes a price.
type BookingDraft struct {
	ServiceType   ServiceType   `json:"service_type"`
	ContentType   []ContentType `json:"content_type"`
	ShootType     string        `json:"shoot_type"`
	EditType      string        `json:"edit_type"`
	ShootName     string        `json:"shoot_name"`
	GuestEmail    string        `json:"guest_email"`
	CrewSize      string        `json:"crew_size"`
	ReferenceLink string        `json:"reference_link"`
	SpecialNote   string        `json:"special_note"`

	BudgetMin float64 `json:"budget_min"`
	BudgetMax float64 `json:"budget_max"`

	QuoteID         string           `json:"quote_id,omitempty"`
	QuoteTotal      float64          `json:"quote_total,omitempty"`
	CalculatedQuote *CalculatedQuote `json:"calculated_quote,omitempty"`

	SelectedServices []SelectedService `json:"selected_services"`

	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	Location           string `json:"location"`
	NeedStudio         bool   `json:"need_studio"`
	Studio             string `json:"studio"`
	StudioTimeDuration int    `json:"studio_time_duration"`

	WantsAddons bool           `json:"wants_addons"`
	Addons      map[string]int `json:"addons,omitempty"`
}

// NewBookingDraft returns the draft a freshly mounted wizard starts with.
func NewBookingDraft() BookingDraft {
	return BookingDraft{
		ContentType:      []ContentType{},
		SelectedServices: []SelectedService{},
		BudgetMin:        DefaultBudgetMin,
		BudgetMax:        DefaultBudgetMax,
	}
}

// DurationHours is the booked duration rounded to the nearest hour, never
// less than one.
func DurationHours(start, end time.Time) int {
	hours := int(math.Round(float64(end.Sub(start)) / float64(time.Hour)))
	if hours < 1 {
		return 1
	}
	return hours
}

// DurationHours of the draft; 1 while either date is missing.
func (d BookingDraft) DurationHours() int {
	if d.StartDate == nil || d.EndDate == nil {
		return 1
	}
	return DurationHours(*d.StartDate, *d.EndDate)
}

// LiveBudgetMax is the upper budget bound used for searches and bookings:
// the last remote quote total when there is one, else the manual bound.
func (d BookingDraft) LiveBudgetMax() float64 {
	if d.QuoteTotal > 0 {
		return d.QuoteTotal
	}
	return d.BudgetMax
}

// Clone returns a deep copy so a snapshot can be restored later.
func (d BookingDraft) Clone() BookingDraft {
	cp := d
	cp.ContentType = slices.Clone(d.ContentType)
	cp.SelectedServices = slices.Clone(d.SelectedServices)
	if d.Addons != nil {
		cp.Addons = make(map[string]int, len(d.Addons))
		for k, v := range d.Addons {
			cp.Addons[k] = v
		}
	}
	if d.StartDate != nil {
		t := *d.StartDate
		cp.StartDate = &t
	}
	if d.EndDate != nil {
		t := *d.EndDate
		cp.EndDate = &t
	}
	if d.CalculatedQuote != nil {
		q := d.CalculatedQuote.Clone()
		cp.CalculatedQuote = &q
	}
	return cp
}

// DraftPatch is a partial update. Nil members are left untouched.
type DraftPatch struct {
	ServiceType        *ServiceType       `json:"service_type,omitempty"`
	ContentType        *[]ContentType     `json:"content_type,omitempty"`
	ShootType          *string            `json:"shoot_type,omitempty"`
	EditType           *string            `json:"edit_type,omitempty"`
	ShootName          *string            `json:"shoot_name,omitempty"`
	GuestEmail         *string            `json:"guest_email,omitempty"`
	CrewSize           *string            `json:"crew_size,omitempty"`
	ReferenceLink      *string            `json:"reference_link,omitempty"`
	SpecialNote        *string            `json:"special_note,omitempty"`
	BudgetMin          *float64           `json:"budget_min,omitempty"`
	BudgetMax          *float64           `json:"budget_max,omitempty"`
	SelectedServices   *[]SelectedService `json:"selected_services,omitempty"`
	StartDate          *time.Time         `json:"start_date,omitempty"`
	EndDate            *time.Time         `json:"end_date,omitempty"`
	Location           *string            `json:"location,omitempty"`
	NeedStudio         *bool              `json:"need_studio,omitempty"`
	Studio             *string            `json:"studio,omitempty"`
	StudioTimeDuration *int               `json:"studio_time_duration,omitempty"`
	WantsAddons        *bool              `json:"wants_addons,omitempty"`
	Addons             *map[string]int    `json:"addons,omitempty"`
}

// TouchesQuoteInputs reports whether applying the patch can change what the
// pricing service would quote.
func (p DraftPatch) TouchesQuoteInputs() bool {
	return p.SelectedServices != nil || p.StartDate != nil || p.EndDate != nil || p.ShootType != nil
}

// Apply shallow-merges p into a copy of d.
//
// Two invariants hold on the result: an edit type that does not belong to a
// newly chosen shoot type is cleared, and a quote computed for inputs that
// changed is dropped.
func (d BookingDraft) Apply(p DraftPatch) BookingDraft {
	next := d.Clone()
	prevShoot := d.ShootType

	setIf(&next.ServiceType, p.ServiceType)
	if p.ContentType != nil {
		next.ContentType = dedupeContentTypes(*p.ContentType)
	}
	setIf(&next.ShootType, p.ShootType)
	setIf(&next.EditType, p.EditType)
	setIf(&next.ShootName, p.ShootName)
	setIf(&next.GuestEmail, p.GuestEmail)
	setIf(&next.CrewSize, p.CrewSize)
	setIf(&next.ReferenceLink, p.ReferenceLink)
	setIf(&next.SpecialNote, p.SpecialNote)
	setIf(&next.BudgetMin, p.BudgetMin)
	setIf(&next.BudgetMax, p.BudgetMax)
	if p.SelectedServices != nil {
		next.SelectedServices = slices.Clone(*p.SelectedServices)
	}
	if p.StartDate != nil {
		t := *p.StartDate
		next.StartDate = &t
	}
	if p.EndDate != nil {
		t := *p.EndDate
		next.EndDate = &t
	}
	setIf(&next.Location, p.Location)
	setIf(&next.NeedStudio, p.NeedStudio)
	setIf(&next.Studio, p.Studio)
	setIf(&next.StudioTimeDuration, p.StudioTimeDuration)
	setIf(&next.WantsAddons, p.WantsAddons)
	if p.Addons != nil {
		next.Addons = make(map[string]int, len(*p.Addons))
		for k, v := range *p.Addons {
			next.Addons[k] = v
		}
	}

	if next.ShootType != prevShoot && next.EditType != "" && !IsValidEditType(next.ShootType, next.EditType) {
		next.EditType = ""
	}
	if p.TouchesQuoteInputs() {
		next.CalculatedQuote = nil
		next.QuoteTotal = 0
	}
	return next
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func dedupeContentTypes(in []ContentType) []ContentType {
	out := make([]ContentType, 0, len(in))
	for _, c := range in {
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}

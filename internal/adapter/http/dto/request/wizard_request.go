package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shootbook/internal/domain/entities"
)

var (
	ErrInvalidServiceType = errors.New("invalid service_type")
	ErrInvalidContentType = errors.New("invalid content_type")
	ErrInvalidDateRange   = errors.New("end_date must not be before start_date")
)

type SelectedServiceRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// UpdateDraftRequest is a partial update of the booking draft. Omitted
// fields keep their current value.
type UpdateDraftRequest struct {
	ServiceType        *string                   `json:"service_type"`
	ContentType        *[]string                 `json:"content_type"`
	ShootType          *string                   `json:"shoot_type"`
	EditType           *string                   `json:"edit_type"`
	ShootName          *string                   `json:"shoot_name"`
	GuestEmail         *string                   `json:"guest_email"`
	CrewSize           *string                   `json:"crew_size"`
	ReferenceLink      *string                   `json:"reference_link"`
	SpecialNote        *string                   `json:"special_note"`
	BudgetMin          *float64                  `json:"budget_min"`
	BudgetMax          *float64                  `json:"budget_max"`
	SelectedServices   *[]SelectedServiceRequest `json:"selected_services" binding:"omitempty,dive"`
	StartDate          *time.Time                `json:"start_date"`
	EndDate            *time.Time                `json:"end_date"`
	Location           *string                   `json:"location"`
	NeedStudio         *bool                     `json:"need_studio"`
	Studio             *string                   `json:"studio"`
	StudioTimeDuration *int                      `json:"studio_time_duration"`
	WantsAddons        *bool                     `json:"wants_addons"`
	Addons             *map[string]int           `json:"addons"`
}

// ToPatch converts the request into a draft patch. Only enum values and a
// dates pair sent together are checked here; completeness is checked when
// the wizard advances.
func (r UpdateDraftRequest) ToPatch() (entities.DraftPatch, error) {
	var p entities.DraftPatch

	if r.ServiceType != nil {
		st := entities.ServiceType(strings.TrimSpace(*r.ServiceType))
		if st != entities.ServiceTypeUnset && !st.Valid() {
			return entities.DraftPatch{}, fmt.Errorf("%w: %q", ErrInvalidServiceType, *r.ServiceType)
		}
		p.ServiceType = &st
	}
	if r.ContentType != nil {
		cts := make([]entities.ContentType, 0, len(*r.ContentType))
		for _, raw := range *r.ContentType {
			ct := entities.ContentType(strings.TrimSpace(raw))
			if !ct.Valid() {
				return entities.DraftPatch{}, fmt.Errorf("%w: %q", ErrInvalidContentType, raw)
			}
			cts = append(cts, ct)
		}
		p.ContentType = &cts
	}
	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return entities.DraftPatch{}, ErrInvalidDateRange
	}
	if r.SelectedServices != nil {
		items := make([]entities.SelectedService, 0, len(*r.SelectedServices))
		for _, s := range *r.SelectedServices {
			items = append(items, entities.SelectedService{ItemID: strings.TrimSpace(s.ItemID), Quantity: s.Quantity})
		}
		p.SelectedServices = &items
	}

	p.ShootType = trimmed(r.ShootType)
	p.EditType = trimmed(r.EditType)
	p.ShootName = r.ShootName
	p.GuestEmail = trimmed(r.GuestEmail)
	p.CrewSize = trimmed(r.CrewSize)
	p.ReferenceLink = trimmed(r.ReferenceLink)
	p.SpecialNote = r.SpecialNote
	p.BudgetMin = r.BudgetMin
	p.BudgetMax = r.BudgetMax
	p.StartDate = r.StartDate
	p.EndDate = r.EndDate
	p.Location = r.Location
	p.NeedStudio = r.NeedStudio
	p.Studio = r.Studio
	p.StudioTimeDuration = r.StudioTimeDuration
	p.WantsAddons = r.WantsAddons
	p.Addons = r.Addons
	return p, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

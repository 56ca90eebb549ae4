package usecase

import (
	"fmt"
	"strings"

	"shootbook/internal/domain/entities"
)

// ValidateStep checks the part of the draft owned by step. It returns nil or
// a *DraftValidationError.
func ValidateStep(step int, d entities.BookingDraft) error {
	var fields map[string]string
	switch step {
	case 1:
		fields = validateServiceSelection(d)
	case 2:
		fields = validateShootDetails(d)
	case 3:
		fields = validateLogistics(d)
	case 4:
		fields = validateReview(d)
	}
	if len(fields) == 0 {
		return nil
	}
	return &DraftValidationError{Step: step, Fields: fields}
}

// ValidateDraft runs every step's checks in order and returns the first
// failure. The draft stays editable on review, so earlier steps are checked
// again before anything is sent.
func ValidateDraft(d entities.BookingDraft) error {
	for step := 1; step <= entities.WizardStepCount; step++ {
		if err := ValidateStep(step, d); err != nil {
			return err
		}
	}
	return nil
}

func validateServiceSelection(d entities.BookingDraft) map[string]string {
	fields := map[string]string{}
	if d.ServiceType != entities.ServiceTypeUnset && !d.ServiceType.Valid() {
		fields["service_type"] = fmt.Sprintf("unknown service type %q", d.ServiceType)
	}
	if len(d.ContentType) == 0 {
		fields["content_type"] = "select at least one content type"
	}
	for _, ct := range d.ContentType {
		if !ct.Valid() {
			fields["content_type"] = fmt.Sprintf("unknown content type %q", ct)
			break
		}
	}
	return fields
}

func validateShootDetails(d entities.BookingDraft) map[string]string {
	fields := map[string]string{}
	switch {
	case d.ShootType == "":
		fields["shoot_type"] = "choose a shoot type"
	case !entities.IsKnownShootType(d.ShootType):
		fields["shoot_type"] = fmt.Sprintf("unknown shoot type %q", d.ShootType)
	case d.EditType != "" && !entities.IsValidEditType(d.ShootType, d.EditType):
		fields["edit_type"] = fmt.Sprintf("%q is not offered for %s shoots", d.EditType, d.ShootType)
	}
	if d.EditType == "" && d.ServiceType != entities.ServiceTypeShootOnly {
		fields["edit_type"] = "choose an edit type"
	}

	if d.BudgetMin < 0 {
		fields["budget_min"] = "must not be negative"
	}
	if d.BudgetMax < d.BudgetMin {
		fields["budget_max"] = "must be at least budget_min"
	}
	return fields
}

func validateLogistics(d entities.BookingDraft) map[string]string {
	fields := map[string]string{}
	if d.StartDate == nil {
		fields["start_date"] = "required"
	}
	if d.EndDate == nil {
		fields["end_date"] = "required"
	}
	if d.StartDate != nil && d.EndDate != nil && d.EndDate.Before(*d.StartDate) {
		fields["end_date"] = "must not be before start_date"
	}
	if strings.TrimSpace(d.Location) == "" {
		fields["location"] = "required"
	}
	if d.NeedStudio && strings.TrimSpace(d.Studio) == "" {
		fields["studio"] = "choose a studio"
	}
	if d.StudioTimeDuration < 0 {
		fields["studio_time_duration"] = "must not be negative"
	}

	for i, s := range d.SelectedServices {
		if strings.TrimSpace(s.ItemID) == "" || s.Quantity < 1 {
			fields["selected_services"] = fmt.Sprintf("item %d needs an item_id and a quantity of at least 1", i)
			break
		}
	}

	if d.WantsAddons {
		if len(d.Addons) == 0 {
			fields["addons"] = "choose at least one add-on"
		}
		for id, qty := range d.Addons {
			switch {
			case !entities.IsKnownAddon(id):
				fields["addons."+id] = "unknown add-on"
			case qty < 1:
				fields["addons."+id] = "quantity must be at least 1"
			}
		}
	}
	return fields
}

func validateReview(d entities.BookingDraft) map[string]string {
	if !strings.Contains(strings.TrimSpace(d.GuestEmail), "@") {
		return map[string]string{"guest_email": "enter a valid email address"}
	}
	return nil
}

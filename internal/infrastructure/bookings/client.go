package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"shootbook/internal/domain/entities"
	"shootbook/internal/infrastructure/remote"
	"shootbook/internal/usecase/interfaces"
)

var ErrMissingBookingID = errors.New("booking service returned no booking_id")

// Client creates guest bookings in the external booking API.
type Client struct {
	rest *remote.Client
}

var _ interfaces.IBookingGateway = (*Client)(nil)

func NewClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{rest: remote.NewClient("bookings", baseURL, apiKey, timeout, logger)}
}

// guestBookingRequest is the flat payload the booking API expects.
// equipment is a JSON-encoded string, not a nested array.
type guestBookingRequest struct {
	ServiceType   string     `json:"service_type,omitempty"`
	ContentType   string     `json:"content_type"`
	ShootType     string     `json:"shoot_type,omitempty"`
	EditType      string     `json:"edit_type,omitempty"`
	ProjectTitle  string     `json:"project_title,omitempty"`
	GuestEmail    string     `json:"guest_email"`
	DurationHours int        `json:"duration_hours"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	BudgetMin     float64    `json:"budget_min"`
	BudgetMax     float64    `json:"budget_max"`
	CrewSize      string     `json:"crew_size,omitempty"`
	Location      string     `json:"location,omitempty"`
	NeedStudio    bool       `json:"need_studio"`
	Studio        string     `json:"studio,omitempty"`
	ReferenceLink string     `json:"reference_link,omitempty"`
	SpecialNote   string     `json:"special_note,omitempty"`
	SkillsNeeded  string     `json:"skills_needed"`
	Equipment     string     `json:"equipment,omitempty"`
	IsDraft       bool       `json:"is_draft"`
	QuoteID       string     `json:"quote_id,omitempty"`
}

type guestBookingResponse struct {
	BookingID string `json:"booking_id"`
	Data      *struct {
		BookingID string `json:"booking_id"`
	} `json:"data"`
}

func (c *Client) CreateGuestBooking(ctx context.Context, b entities.GuestBooking) (string, error) {
	req, err := toGuestBookingRequest(b)
	if err != nil {
		return "", err
	}

	var out guestBookingResponse
	if err := c.rest.PostJSON(ctx, "/bookings/guest", req, &out); err != nil {
		return "", err
	}

	id := out.BookingID
	if id == "" && out.Data != nil {
		id = out.Data.BookingID
	}
	if id == "" {
		return "", ErrMissingBookingID
	}
	return id, nil
}

func toGuestBookingRequest(b entities.GuestBooking) (guestBookingRequest, error) {
	tags := make([]string, 0, len(b.ContentTypes))
	for _, ct := range b.ContentTypes {
		tags = append(tags, string(ct))
	}
	joined := strings.Join(tags, ",")

	req := guestBookingRequest{
		ServiceType:   string(b.ServiceType),
		ContentType:   joined,
		ShootType:     b.ShootType,
		EditType:      b.EditType,
		ProjectTitle:  b.ShootName,
		GuestEmail:    b.GuestEmail,
		DurationHours: b.DurationHours,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		BudgetMin:     b.BudgetMin,
		BudgetMax:     b.BudgetMax,
		CrewSize:      b.CrewSize,
		Location:      b.Location,
		NeedStudio:    b.NeedStudio,
		Studio:        b.Studio,
		ReferenceLink: b.ReferenceLink,
		SpecialNote:   b.SpecialNote,
		SkillsNeeded:  joined,
		IsDraft:       b.IsDraft,
		QuoteID:       b.QuoteID,
	}
	if len(b.Equipment) > 0 {
		raw, err := json.Marshal(b.Equipment)
		if err != nil {
			return guestBookingRequest{}, err
		}
		req.Equipment = string(raw)
	}
	return req, nil
}

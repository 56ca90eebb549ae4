package entities

import "time"

// Submission is the ledger record of a wizard that created a guest booking.
//
// Storage model (DynamoDB):
//   - PK: booking_id
//
// Amount is what a later creator payment charges: the quote total when the
// quote was saved, otherwise the live budget bound at submission time.
type Submission struct {
	BookingID     string
	SessionID     string
	QuoteID       string
	GuestEmail    string
	ContentTypes  []ContentType
	Location      string
	BudgetMin     float64
	BudgetMax     float64
	Amount        float64
	DurationHours int
	ResultsPath   string
	CreatedAt     time.Time
}

// GuestBooking is the normalized payload sent to the booking service.
type GuestBooking struct {
	ServiceType   ServiceType
	ContentTypes  []ContentType
	ShootType     string
	EditType      string
	ShootName     string
	GuestEmail    string
	DurationHours int
	StartDate     *time.Time
	EndDate       *time.Time
	BudgetMin     float64
	BudgetMax     float64
	CrewSize      string
	Location      string
	NeedStudio    bool
	Studio        string
	ReferenceLink string
	SpecialNote   string
	Equipment     []EquipmentItem
	IsDraft       bool
	QuoteID       string
}

// EquipmentItem is one requested add-on in a booking.
type EquipmentItem struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

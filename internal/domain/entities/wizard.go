package entities

import (
	"errors"
	"fmt"
	"time"
)

// WizardState is a named state of the booking wizard.
//
// Transitions are only those listed in wizardTransitions; steps cannot be
// skipped and a finished wizard cannot be edited.
type WizardState string

const (
	WizardStateServiceSelection WizardState = "service_selection"
	WizardStateShootDetails     WizardState = "shoot_details"
	WizardStateLogistics        WizardState = "logistics"
	WizardStateReview           WizardState = "review"
	WizardStateSubmitting       WizardState = "submitting"
	WizardStateCompleted        WizardState = "completed"
)

// WizardEvent drives a transition.
type WizardEvent string

const (
	WizardEventNext            WizardEvent = "next"
	WizardEventBack            WizardEvent = "back"
	WizardEventSubmit          WizardEvent = "submit"
	WizardEventSubmitSucceeded WizardEvent = "submit_succeeded"
	WizardEventSubmitFailed    WizardEvent = "submit_failed"
)

// WizardStepCount is N, the number of user-facing steps.
const WizardStepCount = 4

var ErrIllegalTransition = errors.New("illegal wizard transition")

var wizardTransitions = map[WizardState]map[WizardEvent]WizardState{
	WizardStateServiceSelection: {
		WizardEventNext: WizardStateShootDetails,
	},
	WizardStateShootDetails: {
		WizardEventNext: WizardStateLogistics,
		WizardEventBack: WizardStateServiceSelection,
	},
	WizardStateLogistics: {
		WizardEventNext: WizardStateReview,
		WizardEventBack: WizardStateShootDetails,
	},
	WizardStateReview: {
		WizardEventBack:   WizardStateLogistics,
		WizardEventSubmit: WizardStateSubmitting,
	},
	WizardStateSubmitting: {
		WizardEventSubmitSucceeded: WizardStateCompleted,
		WizardEventSubmitFailed:    WizardStateReview,
	},
	WizardStateCompleted: {},
}

var wizardSteps = map[WizardState]int{
	WizardStateServiceSelection: 1,
	WizardStateShootDetails:     2,
	WizardStateLogistics:        3,
	WizardStateReview:           4,
	WizardStateSubmitting:       4,
	WizardStateCompleted:        4,
}

// Fire returns the state reached from s through ev.
func (s WizardState) Fire(ev WizardEvent) (WizardState, error) {
	next, ok := wizardTransitions[s][ev]
	if !ok {
		return s, fmt.Errorf("%w: %s --%s-->", ErrIllegalTransition, s, ev)
	}
	return next, nil
}

// Step is the 1-based step shown by the progress tracker.
func (s WizardState) Step() int {
	return wizardSteps[s]
}

func (s WizardState) Valid() bool {
	_, ok := wizardSteps[s]
	return ok
}

// Editable reports whether the draft may still be changed in s.
func (s WizardState) Editable() bool {
	switch s {
	case WizardStateSubmitting, WizardStateCompleted:
		return false
	}
	return s.Valid()
}

// WizardSession is one guest's wizard, persisted in the session store.
// Version increases on every successful save.
type WizardSession struct {
	ID        string       `json:"id"`
	State     WizardState  `json:"state"`
	Draft     BookingDraft `json:"draft"`
	Version   int64        `json:"version"`
	LastError string       `json:"last_error,omitempty"`
	BookingID string       `json:"booking_id,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func NewWizardSession(id string, now time.Time) WizardSession {
	return WizardSession{
		ID:        id,
		State:     WizardStateServiceSelection,
		Draft:     NewBookingDraft(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s WizardSession) ActiveStep() int {
	return s.State.Step()
}

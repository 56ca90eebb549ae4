package entities

import (
	"errors"
	"testing"
	"time"
)

func TestWizardState_Fire(t *testing.T) {
	cases := []struct {
		from WizardState
		ev   WizardEvent
		want WizardState
		err  bool
	}{
		{WizardStateServiceSelection, WizardEventNext, WizardStateShootDetails, false},
		{WizardStateServiceSelection, WizardEventBack, WizardStateServiceSelection, true},
		{WizardStateServiceSelection, WizardEventSubmit, WizardStateServiceSelection, true},
		{WizardStateShootDetails, WizardEventNext, WizardStateLogistics, false},
		{WizardStateShootDetails, WizardEventBack, WizardStateServiceSelection, false},
		{WizardStateLogistics, WizardEventNext, WizardStateReview, false},
		{WizardStateLogistics, WizardEventBack, WizardStateShootDetails, false},
		{WizardStateReview, WizardEventNext, WizardStateReview, true},
		{WizardStateReview, WizardEventBack, WizardStateLogistics, false},
		{WizardStateReview, WizardEventSubmit, WizardStateSubmitting, false},
		{WizardStateSubmitting, WizardEventSubmit, WizardStateSubmitting, true},
		{WizardStateSubmitting, WizardEventSubmitFailed, WizardStateReview, false},
		{WizardStateSubmitting, WizardEventSubmitSucceeded, WizardStateCompleted, false},
		{WizardStateCompleted, WizardEventBack, WizardStateCompleted, true},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"/"+string(tc.ev), func(t *testing.T) {
			got, err := tc.from.Fire(tc.ev)
			if tc.err {
				if !errors.Is(err, ErrIllegalTransition) {
					t.Fatalf("expected ErrIllegalTransition, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestWizardState_StepsStayInRange(t *testing.T) {
	for state := range wizardTransitions {
		step := state.Step()
		if step < 1 || step > WizardStepCount {
			t.Fatalf("state %s has step %d outside [1,%d]", state, step, WizardStepCount)
		}
	}
	if WizardState("bogus").Valid() {
		t.Fatalf("unknown state must be invalid")
	}
}

func TestWizardState_Editable(t *testing.T) {
	for _, s := range []WizardState{WizardStateServiceSelection, WizardStateShootDetails, WizardStateLogistics, WizardStateReview} {
		if !s.Editable() {
			t.Fatalf("%s must be editable", s)
		}
	}
	for _, s := range []WizardState{WizardStateSubmitting, WizardStateCompleted, WizardState("")} {
		if s.Editable() {
			t.Fatalf("%s must not be editable", s)
		}
	}
}

func TestNewWizardSession(t *testing.T) {
	now := time.Now().UTC()
	s := NewWizardSession("sess-1", now)
	if s.State != WizardStateServiceSelection || s.ActiveStep() != 1 {
		t.Fatalf("unexpected initial state: %+v", s)
	}
	if s.Version != 0 || !s.CreatedAt.Equal(now) || s.Draft.BudgetMax != DefaultBudgetMax {
		t.Fatalf("unexpected initial session: %+v", s)
	}
}

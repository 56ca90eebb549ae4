package usecase

import (
	"context"
	"errors"
	"net/url"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"shootbook/internal/adapter/persistence/session"
	"shootbook/internal/domain/entities"
	"shootbook/internal/infrastructure/remote"
	mock_interfaces "shootbook/internal/usecase/interfaces/mocks"
)

var shootStart = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

type wizardFixture struct {
	uc       *WizardUseCase
	store    *session.MemoryStore
	quotes   *mock_interfaces.MockIQuoteGateway
	bookings *mock_interfaces.MockIBookingGateway
	subs     *mock_interfaces.MockISubmissionRepository
}

func newWizardFixture(t *testing.T) wizardFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := wizardFixture{
		store:    session.NewMemoryStore(time.Hour),
		quotes:   mock_interfaces.NewMockIQuoteGateway(ctrl),
		bookings: mock_interfaces.NewMockIBookingGateway(ctrl),
		subs:     mock_interfaces.NewMockISubmissionRepository(ctrl),
	}
	f.uc = NewWizardUseCase(f.store, f.quotes, f.bookings, f.subs, WizardOptions{
		ResultsPath:   "/search-results",
		RedirectDelay: 1500 * time.Millisecond,
	}, nil)
	return f
}

func (f wizardFixture) seed(t *testing.T, state entities.WizardState, draft entities.BookingDraft) entities.WizardSession {
	t.Helper()
	s := entities.NewWizardSession("sess-1", shootStart)
	s.State = state
	s.Draft = draft
	saved, err := f.store.Save(context.Background(), s)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return saved
}

func reviewDraft() entities.BookingDraft {
	end := shootStart.Add(2 * time.Hour)
	d := entities.NewBookingDraft()
	d.ServiceType = entities.ServiceTypeShootAndEdit
	d.ContentType = []entities.ContentType{entities.ContentTypeVideographer, entities.ContentTypePhotographer}
	d.ShootType = "wedding"
	d.EditType = "highlight_reel"
	d.GuestEmail = "a@b.com"
	d.StartDate = ptr(shootStart)
	d.EndDate = &end
	d.Location = "Lisbon"
	return d
}

func TestWizardUseCase_StartAndGet(t *testing.T) {
	f := newWizardFixture(t)

	s, err := f.uc.Start(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ID == "" || s.Version != 1 || s.State != entities.WizardStateServiceSelection || s.ActiveStep() != 1 {
		t.Fatalf("unexpected session: %+v", s)
	}

	got, err := f.uc.Get(context.Background(), s.ID)
	if err != nil || got.ID != s.ID {
		t.Fatalf("expected stored session, got %+v err=%v", got, err)
	}

	t.Run("unknown id", func(t *testing.T) {
		_, err := f.uc.Get(context.Background(), "nope")
		if !errors.Is(err, ErrWizardSessionNotFound) {
			t.Fatalf("expected ErrWizardSessionNotFound, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		_, err := f.uc.Get(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})
}

func TestWizardUseCase_UpdateData(t *testing.T) {
	t.Run("merges without validation or quote", func(t *testing.T) {
		f := newWizardFixture(t)
		f.seed(t, entities.WizardStateServiceSelection, entities.NewBookingDraft())

		s, err := f.uc.UpdateData(context.Background(), "sess-1", entities.DraftPatch{
			GuestEmail: ptr("not-an-email"),
			BudgetMin:  ptr(-5.0),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Draft.GuestEmail != "not-an-email" || s.Draft.BudgetMin != -5 || s.Version != 2 {
			t.Fatalf("unexpected draft: %+v", s)
		}
	})

	t.Run("fetches a live quote when services change", func(t *testing.T) {
		f := newWizardFixture(t)
		f.seed(t, entities.WizardStateLogistics, reviewDraft())

		f.quotes.EXPECT().Calculate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in entities.QuoteInput) (entities.CalculatedQuote, error) {
				if in.ShootHours != 2 || in.EventType != "wedding" || len(in.Items) != 1 || in.Items[0].ItemID != "cam-op" {
					t.Fatalf("unexpected quote input: %+v", in)
				}
				return entities.CalculatedQuote{Subtotal: 1000, DiscountAmount: 100, Total: 900}, nil
			},
		)

		s, err := f.uc.UpdateData(context.Background(), "sess-1", entities.DraftPatch{
			SelectedServices: ptr([]entities.SelectedService{{ItemID: "cam-op", Quantity: 2}}),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Draft.QuoteTotal != 900 || s.Draft.CalculatedQuote == nil || s.Draft.CalculatedQuote.Total != 900 {
			t.Fatalf("expected live quote, got %+v", s.Draft)
		}
	})

	t.Run("preview failure is swallowed and stale quote dropped", func(t *testing.T) {
		f := newWizardFixture(t)
		d := reviewDraft()
		d.SelectedServices = []entities.SelectedService{{ItemID: "cam-op", Quantity: 1}}
		d.QuoteTotal = 500
		d.CalculatedQuote = &entities.CalculatedQuote{Total: 500}
		f.seed(t, entities.WizardStateLogistics, d)

		f.quotes.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(entities.CalculatedQuote{}, errors.New("pricing down"))

		s, err := f.uc.UpdateData(context.Background(), "sess-1", entities.DraftPatch{EndDate: ptr(shootStart.Add(5 * time.Hour))})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Draft.QuoteTotal != 0 || s.Draft.CalculatedQuote != nil {
			t.Fatalf("stale quote must be cleared, got %+v", s.Draft)
		}
	})

	t.Run("completed wizard is locked", func(t *testing.T) {
		f := newWizardFixture(t)
		f.seed(t, entities.WizardStateCompleted, reviewDraft())

		_, err := f.uc.UpdateData(context.Background(), "sess-1", entities.DraftPatch{ShootName: ptr("x")})
		if !errors.Is(err, ErrWizardLocked) {
			t.Fatalf("expected ErrWizardLocked, got %v", err)
		}
	})
}

func TestWizardUseCase_RefreshQuote(t *testing.T) {
	t.Run("no services", func(t *testing.T) {
		f := newWizardFixture(t)
		f.seed(t, entities.WizardStateReview, reviewDraft())

		_, err := f.uc.RefreshQuote(context.Background(), "sess-1")
		if !errors.Is(err, ErrNothingToQuote) {
			t.Fatalf("expected ErrNothingToQuote, got %v", err)
		}
	})

	t.Run("failure leaves draft unchanged", func(t *testing.T) {
		f := newWizardFixture(t)
		d := reviewDraft()
		d.SelectedServices = []entities.SelectedService{{ItemID: "cam-op", Quantity: 1}}
		d.QuoteTotal = 700
		seeded := f.seed(t, entities.WizardStateReview, d)

		f.quotes.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(entities.CalculatedQuote{}, errors.New("timeout"))

		_, err := f.uc.RefreshQuote(context.Background(), "sess-1")
		if !errors.Is(err, ErrQuoteUnavailable) {
			t.Fatalf("expected ErrQuoteUnavailable, got %v", err)
		}
		got, _ := f.uc.Get(context.Background(), "sess-1")
		if got.Version != seeded.Version || got.Draft.QuoteTotal != 700 {
			t.Fatalf("draft must be unchanged, got %+v", got)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newWizardFixture(t)
		d := reviewDraft()
		d.SelectedServices = []entities.SelectedService{{ItemID: "cam-op", Quantity: 1}}
		f.seed(t, entities.WizardStateReview, d)

		f.quotes.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(entities.CalculatedQuote{Total: 1234.5}, nil)

		s, err := f.uc.RefreshQuote(context.Background(), "sess-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Draft.QuoteTotal != 1234.5 {
			t.Fatalf("expected quote total, got %v", s.Draft.QuoteTotal)
		}
	})
}

func TestWizardUseCase_Navigation(t *testing.T) {
	t.Run("next blocked by validation", func(t *testing.T) {
		f := newWizardFixture(t)
		f.seed(t, entities.WizardStateServiceSelection, entities.NewBookingDraft())

		_, err := f.uc.NextStep(context.Background(), "sess-1")
		var verr *DraftValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected DraftValidationError, got %v", err)
		}
		if verr.Step != 1 || verr.Fields["content_type"] == "" || !errors.Is(err, ErrInvalidDraft) {
			t.Fatalf("unexpected validation error: %+v", verr)
		}
		got, _ := f.uc.Get(context.Background(), "sess-1")
		if got.State != entities.WizardStateServiceSelection {
			t.Fatalf("state must not change, got %s", got.State)
		}
	})

	t.Run("next through every step to review", func(t *testing.T) {
		f := newWizardFixture(t)
		f.seed(t, entities.WizardStateServiceSelection, reviewDraft())

		want := []entities.WizardState{entities.WizardStateShootDetails, entities.WizardStateLogistics, entities.WizardStateReview}
		for i, state := range want {
			s, err := f.uc.NextStep(context.Background(), "sess-1")
			if err != nil {
				t.Fatalf("step %d: unexpected error: %v", i+1, err)
			}
			if s.State != state || s.ActiveStep() != i+2 {
				t.Fatalf("expected %s, got %s", state, s.State)
			}
		}

		_, err := f.uc.NextStep(context.Background(), "sess-1")
		if !errors.Is(err, entities.ErrIllegalTransition) {
			t.Fatalf("next on review must be illegal, got %v", err)
		}
	})

	t.Run("back on first step is a no-op", func(t *testing.T) {
		f := newWizardFixture(t)
		seeded := f.seed(t, entities.WizardStateServiceSelection, entities.NewBookingDraft())

		s, err := f.uc.PrevStep(context.Background(), "sess-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.State != entities.WizardStateServiceSelection || s.Version != seeded.Version {
			t.Fatalf("expected unchanged session, got %+v", s)
		}
	})

	t.Run("back moves one step", func(t *testing.T) {
		f := newWizardFixture(t)
		f.seed(t, entities.WizardStateLogistics, entities.NewBookingDraft())

		s, err := f.uc.PrevStep(context.Background(), "sess-1")
		if err != nil || s.State != entities.WizardStateShootDetails {
			t.Fatalf("expected shoot_details, got %s err=%v", s.State, err)
		}
	})
}

func TestWizardUseCase_ExitToHome(t *testing.T) {
	t.Run("from first step", func(t *testing.T) {
		f := newWizardFixture(t)
		f.seed(t, entities.WizardStateServiceSelection, entities.NewBookingDraft())

		if err := f.uc.ExitToHome(context.Background(), "sess-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.uc.Get(context.Background(), "sess-1"); !errors.Is(err, ErrWizardSessionNotFound) {
			t.Fatalf("expected session removed, got %v", err)
		}
	})

	t.Run("from later step", func(t *testing.T) {
		f := newWizardFixture(t)
		f.seed(t, entities.WizardStateShootDetails, entities.NewBookingDraft())

		err := f.uc.ExitToHome(context.Background(), "sess-1")
		if !errors.Is(err, entities.ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})
}

func TestWizardUseCase_Submit_Validation(t *testing.T) {
	for _, email := range []string{"not-an-email", "guest.example.com", "   "} {
		t.Run("invalid email "+email+" blocks before any call", func(t *testing.T) {
			// no EXPECT on quotes, bookings or subs: any call fails the test
			f := newWizardFixture(t)
			d := reviewDraft()
			d.GuestEmail = email
			d.SelectedServices = []entities.SelectedService{{ItemID: "cam-op", Quantity: 1}}
			seeded := f.seed(t, entities.WizardStateReview, d)

			_, err := f.uc.Submit(context.Background(), "sess-1")
			var verr *DraftValidationError
			if !errors.As(err, &verr) || verr.Fields["guest_email"] == "" {
				t.Fatalf("expected guest_email validation error, got %v", err)
			}
			got, _ := f.uc.Get(context.Background(), "sess-1")
			if got.State != entities.WizardStateReview || got.Version != seeded.Version {
				t.Fatalf("session must be untouched, got %+v", got)
			}
		})
	}

	edits := []struct {
		name  string
		patch entities.DraftPatch
		step  int
		field string
	}{
		{"content type emptied", entities.DraftPatch{ContentType: &[]entities.ContentType{}}, 1, "content_type"},
		{"shoot type swapped", entities.DraftPatch{ShootType: ptr("sports")}, 2, "edit_type"},
		{"budget inverted", entities.DraftPatch{BudgetMin: ptr(20000.0), BudgetMax: ptr(15000.0)}, 2, "budget_max"},
		{"location cleared", entities.DraftPatch{Location: ptr("")}, 3, "location"},
	}
	for _, tc := range edits {
		t.Run("edit on review: "+tc.name, func(t *testing.T) {
			// no EXPECT on quotes, bookings or subs: any call fails the test
			f := newWizardFixture(t)
			f.seed(t, entities.WizardStateReview, reviewDraft())

			edited, err := f.uc.UpdateData(context.Background(), "sess-1", tc.patch)
			if err != nil {
				t.Fatalf("update on review must be accepted: %v", err)
			}

			_, err = f.uc.Submit(context.Background(), "sess-1")
			var verr *DraftValidationError
			if !errors.As(err, &verr) || verr.Step != tc.step || verr.Fields[tc.field] == "" {
				t.Fatalf("expected step %d %s error, got %v", tc.step, tc.field, err)
			}
			got, _ := f.uc.Get(context.Background(), "sess-1")
			if got.State != entities.WizardStateReview || got.Version != edited.Version {
				t.Fatalf("session must be untouched, got %+v", got)
			}
		})
	}

	t.Run("not on review", func(t *testing.T) {
		f := newWizardFixture(t)
		f.seed(t, entities.WizardStateLogistics, reviewDraft())

		_, err := f.uc.Submit(context.Background(), "sess-1")
		if !errors.Is(err, entities.ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("already submitting", func(t *testing.T) {
		f := newWizardFixture(t)
		f.seed(t, entities.WizardStateSubmitting, reviewDraft())

		_, err := f.uc.Submit(context.Background(), "sess-1")
		if !errors.Is(err, ErrSubmissionInProgress) {
			t.Fatalf("expected ErrSubmissionInProgress, got %v", err)
		}
	})
}

func TestWizardUseCase_Submit_WithoutServicesSkipsQuote(t *testing.T) {
	f := newWizardFixture(t)
	f.seed(t, entities.WizardStateReview, reviewDraft())

	f.bookings.EXPECT().CreateGuestBooking(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.GuestBooking) (string, error) {
			if b.DurationHours != 2 || !b.IsDraft || b.QuoteID != "" {
				t.Fatalf("unexpected booking: %+v", b)
			}
			if b.BudgetMin != 100 || b.BudgetMax != 15000 || b.ShootType != "wedding" || b.GuestEmail != "a@b.com" {
				t.Fatalf("unexpected booking budget/meta: %+v", b)
			}
			if len(b.Equipment) != 0 {
				t.Fatalf("no equipment expected: %+v", b.Equipment)
			}
			return "bk-1", nil
		},
	)
	f.subs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s entities.Submission) (entities.Submission, error) {
			if s.BookingID != "bk-1" || s.SessionID != "sess-1" || s.Amount != 15000 || s.DurationHours != 2 {
				t.Fatalf("unexpected submission: %+v", s)
			}
			return s, nil
		},
	)

	res, err := f.uc.Submit(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.BookingID != "bk-1" || res.QuoteID != "" || res.Message != BookingCreatedMessage || res.RedirectAfter != 1500*time.Millisecond {
		t.Fatalf("unexpected result: %+v", res)
	}

	u, err := url.Parse(res.ResultsPath)
	if err != nil {
		t.Fatalf("bad results path: %v", err)
	}
	q := u.Query()
	if u.Path != "/search-results" || q.Get("booking_id") != "bk-1" || q.Get("content_types") != "videographer,photographer" ||
		q.Get("location") != "Lisbon" || q.Get("min_budget") != "100" || q.Get("max_budget") != "15000" {
		t.Fatalf("unexpected results path: %s", res.ResultsPath)
	}

	got, _ := f.uc.Get(context.Background(), "sess-1")
	if got.State != entities.WizardStateCompleted || got.BookingID != "bk-1" {
		t.Fatalf("expected completed session, got %+v", got)
	}
}

func TestWizardUseCase_Submit_SavesQuoteFirst(t *testing.T) {
	f := newWizardFixture(t)
	d := reviewDraft()
	d.SelectedServices = []entities.SelectedService{{ItemID: "cam-op", Quantity: 2}}
	d.SpecialNote = "  golden hour please "
	d.WantsAddons = true
	d.Addons = map[string]int{"gimbal": 1, "drone": 2}
	f.seed(t, entities.WizardStateReview, d)

	gomock.InOrder(
		f.quotes.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in entities.QuoteInput) (entities.SavedQuote, error) {
				if in.GuestEmail != "a@b.com" || in.Notes != "golden hour please" || in.ShootHours != 2 || in.EventType != "wedding" {
					t.Fatalf("unexpected quote input: %+v", in)
				}
				return entities.SavedQuote{QuoteID: "q-1", Total: 2450}, nil
			},
		),
		f.bookings.EXPECT().CreateGuestBooking(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.GuestBooking) (string, error) {
				want := []entities.EquipmentItem{{ID: "drone", Quantity: 2}, {ID: "gimbal", Quantity: 1}}
				if b.QuoteID != "q-1" || b.BudgetMax != 2450 || b.BudgetMin != 100 || !reflect.DeepEqual(b.Equipment, want) {
					t.Fatalf("unexpected booking: %+v", b)
				}
				return "bk-2", nil
			},
		),
	)
	f.subs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Submission{}, nil)

	res, err := f.uc.Submit(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.QuoteID != "q-1" || !strings.Contains(res.ResultsPath, "max_budget=2450") {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Session.Draft.QuoteID != "q-1" || res.Session.Draft.QuoteTotal != 2450 {
		t.Fatalf("expected quote on draft, got %+v", res.Session.Draft)
	}
}

func TestWizardUseCase_Submit_QuoteSaveFailureIsSilent(t *testing.T) {
	f := newWizardFixture(t)
	d := reviewDraft()
	d.SelectedServices = []entities.SelectedService{{ItemID: "cam-op", Quantity: 1}}
	d.QuoteTotal = 800
	f.seed(t, entities.WizardStateReview, d)

	f.quotes.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.SavedQuote{}, errors.New("network down"))
	f.bookings.EXPECT().CreateGuestBooking(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.GuestBooking) (string, error) {
			if b.QuoteID != "" || b.BudgetMax != 800 {
				t.Fatalf("unexpected booking: %+v", b)
			}
			return "bk-3", nil
		},
	)
	f.subs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Submission{}, errors.New("ledger down"))

	res, err := f.uc.Submit(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("quote and ledger failures must not fail submission: %v", err)
	}
	if res.BookingID != "bk-3" || res.QuoteID != "" || res.Message != BookingCreatedMessage {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestWizardUseCase_Submit_BookingFailureRestoresDraft(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"server message", &remote.Error{Service: "bookings", StatusCode: 409, Message: "Email already has an open booking"}, "Email already has an open booking"},
		{"no message", errors.New("connection reset"), DefaultBookingFailedMessage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newWizardFixture(t)
			d := reviewDraft()
			d.SelectedServices = []entities.SelectedService{{ItemID: "cam-op", Quantity: 1}}
			d.QuoteTotal = 600
			seeded := f.seed(t, entities.WizardStateReview, d)

			f.quotes.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.SavedQuote{QuoteID: "q-9", Total: 650}, nil)
			f.bookings.EXPECT().CreateGuestBooking(gomock.Any(), gomock.Any()).Return("", tc.err)

			_, err := f.uc.Submit(context.Background(), "sess-1")
			var berr *BookingCreationError
			if !errors.As(err, &berr) || !errors.Is(err, ErrBookingCreationFailed) {
				t.Fatalf("expected BookingCreationError, got %v", err)
			}
			if berr.Message != tc.wantMsg {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, berr.Message)
			}

			got, _ := f.uc.Get(context.Background(), "sess-1")
			if got.State != entities.WizardStateReview || got.ActiveStep() != entities.WizardStepCount {
				t.Fatalf("expected review, got %s", got.State)
			}
			if !reflect.DeepEqual(got.Draft, seeded.Draft) {
				t.Fatalf("draft must be restored\n got: %+v\nwant: %+v", got.Draft, seeded.Draft)
			}
			if got.LastError != tc.wantMsg {
				t.Fatalf("expected last error %q, got %q", tc.wantMsg, got.LastError)
			}
		})
	}
}

func TestWizardUseCase_Submit_IsSingleFlight(t *testing.T) {
	f := newWizardFixture(t)
	f.seed(t, entities.WizardStateReview, reviewDraft())

	f.bookings.EXPECT().CreateGuestBooking(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ entities.GuestBooking) (string, error) {
			// a second click while the first submission is in flight
			if _, err := f.uc.Submit(ctx, "sess-1"); !errors.Is(err, ErrSubmissionInProgress) {
				t.Fatalf("expected ErrSubmissionInProgress, got %v", err)
			}
			return "bk-4", nil
		},
	).Times(1)
	f.subs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Submission{}, nil)

	if _, err := f.uc.Submit(context.Background(), "sess-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := f.uc.Submit(context.Background(), "sess-1")
	if !errors.Is(err, entities.ErrIllegalTransition) {
		t.Fatalf("completed wizard cannot submit again, got %v", err)
	}
}

func TestWizardUseCase_Watch(t *testing.T) {
	f := newWizardFixture(t)
	f.seed(t, entities.WizardStateServiceSelection, entities.NewBookingDraft())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	first, ch, stop, err := f.uc.Watch(ctx, "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer stop()
	if first.Version != 1 {
		t.Fatalf("expected current snapshot, got %+v", first)
	}

	if _, err := f.uc.UpdateData(ctx, "sess-1", entities.DraftPatch{ShootName: ptr("Launch")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case s := <-ch:
		if s.Draft.ShootName != "Launch" || s.Version != 2 {
			t.Fatalf("unexpected snapshot: %+v", s)
		}
	case <-ctx.Done():
		t.Fatalf("no snapshot received")
	}

	if _, _, _, err := f.uc.Watch(ctx, "missing"); !errors.Is(err, ErrWizardSessionNotFound) {
		t.Fatalf("expected ErrWizardSessionNotFound, got %v", err)
	}
}

func TestWizardUseCase_GetSubmission(t *testing.T) {
	f := newWizardFixture(t)

	if _, err := f.uc.GetSubmission(context.Background(), " "); !errors.Is(err, ErrInvalidBookingID) {
		t.Fatalf("expected ErrInvalidBookingID, got %v", err)
	}

	f.subs.EXPECT().GetByBookingID(gomock.Any(), "bk-0").Return(entities.Submission{}, nil)
	if _, err := f.uc.GetSubmission(context.Background(), "bk-0"); !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}

	f.subs.EXPECT().GetByBookingID(gomock.Any(), "bk-1").Return(entities.Submission{BookingID: "bk-1"}, nil)
	sub, err := f.uc.GetSubmission(context.Background(), "bk-1")
	if err != nil || sub.BookingID != "bk-1" {
		t.Fatalf("unexpected result %+v err=%v", sub, err)
	}
}

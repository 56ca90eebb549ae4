package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shootbook/internal/domain/entities"
	"shootbook/internal/infrastructure/remote"
	"shootbook/internal/usecase/interfaces"
)

const maxSaveAttempts = 3

var errUnchanged = errors.New("session unchanged")

// IWizardUseCase drives the "book a shoot" wizard.
//
//   - Start/Get/ExitToHome manage the session itself
//   - UpdateData merges a partial draft, NextStep/PrevStep move between steps
//   - RefreshQuote asks the pricing service for a live quote
//   - Submit saves the quote and creates the guest booking
type IWizardUseCase interface {
	Start(ctx context.Context) (entities.WizardSession, error)
	Get(ctx context.Context, id string) (entities.WizardSession, error)
	UpdateData(ctx context.Context, id string, patch entities.DraftPatch) (entities.WizardSession, error)
	RefreshQuote(ctx context.Context, id string) (entities.WizardSession, error)
	NextStep(ctx context.Context, id string) (entities.WizardSession, error)
	PrevStep(ctx context.Context, id string) (entities.WizardSession, error)
	ExitToHome(ctx context.Context, id string) error
	Submit(ctx context.Context, id string) (SubmitResult, error)
	Watch(ctx context.Context, id string) (entities.WizardSession, <-chan entities.WizardSession, func(), error)
	GetSubmission(ctx context.Context, bookingID string) (entities.Submission, error)
}

// SubmitResult tells the client where to go after a booking was created.
type SubmitResult struct {
	BookingID     string
	QuoteID       string
	Message       string
	ResultsPath   string
	RedirectAfter time.Duration
	Session       entities.WizardSession
}

// WizardOptions configures the post-submission navigation.
type WizardOptions struct {
	ResultsPath   string
	RedirectDelay time.Duration
}

type WizardUseCase struct {
	store       interfaces.ISessionStore
	quotes      interfaces.IQuoteGateway
	bookings    interfaces.IBookingGateway
	submissions interfaces.ISubmissionRepository
	opts        WizardOptions
	logger      *zap.Logger

	now   func() time.Time
	newID func() string
}

var _ IWizardUseCase = (*WizardUseCase)(nil)

func NewWizardUseCase(
	store interfaces.ISessionStore,
	quotes interfaces.IQuoteGateway,
	bookings interfaces.IBookingGateway,
	submissions interfaces.ISubmissionRepository,
	opts WizardOptions,
	logger *zap.Logger,
) *WizardUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WizardUseCase{
		store:       store,
		quotes:      quotes,
		bookings:    bookings,
		submissions: submissions,
		opts:        opts,
		logger:      logger.Named("wizard.usecase"),
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
	}
}

func (u *WizardUseCase) Start(ctx context.Context) (entities.WizardSession, error) {
	s := entities.NewWizardSession(u.newID(), u.now())
	saved, err := u.store.Save(ctx, s)
	if err != nil {
		return entities.WizardSession{}, err
	}
	u.logger.Info("wizard started", zap.String("session_id", saved.ID))
	return saved, nil
}

func (u *WizardUseCase) Get(ctx context.Context, id string) (entities.WizardSession, error) {
	return u.load(ctx, id)
}

// UpdateData merges patch into the draft without validating it. When the
// patch changes what would be priced, a live quote is fetched on a best
// effort basis.
func (u *WizardUseCase) UpdateData(ctx context.Context, id string, patch entities.DraftPatch) (entities.WizardSession, error) {
	return u.mutate(ctx, id, func(s *entities.WizardSession) error {
		if !s.State.Editable() {
			return ErrWizardLocked
		}
		s.Draft = s.Draft.Apply(patch)

		if patch.TouchesQuoteInputs() && len(s.Draft.SelectedServices) > 0 {
			q, err := u.quotes.Calculate(ctx, quoteInput(s.Draft))
			if err != nil {
				u.logger.Warn("live quote preview failed", zap.String("session_id", s.ID), zap.Error(err))
				return nil
			}
			setQuote(&s.Draft, q)
		}
		return nil
	})
}

func (u *WizardUseCase) RefreshQuote(ctx context.Context, id string) (entities.WizardSession, error) {
	return u.mutate(ctx, id, func(s *entities.WizardSession) error {
		if !s.State.Editable() {
			return ErrWizardLocked
		}
		if len(s.Draft.SelectedServices) == 0 {
			return ErrNothingToQuote
		}
		q, err := u.quotes.Calculate(ctx, quoteInput(s.Draft))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrQuoteUnavailable, err)
		}
		setQuote(&s.Draft, q)
		return nil
	})
}

func (u *WizardUseCase) NextStep(ctx context.Context, id string) (entities.WizardSession, error) {
	return u.mutate(ctx, id, func(s *entities.WizardSession) error {
		next, err := s.State.Fire(entities.WizardEventNext)
		if err != nil {
			return err
		}
		if err := ValidateStep(s.ActiveStep(), s.Draft); err != nil {
			return err
		}
		s.State = next
		return nil
	})
}

// PrevStep goes back one step. On the first step it is a no-op.
func (u *WizardUseCase) PrevStep(ctx context.Context, id string) (entities.WizardSession, error) {
	return u.mutate(ctx, id, func(s *entities.WizardSession) error {
		if s.State == entities.WizardStateServiceSelection {
			return errUnchanged
		}
		prev, err := s.State.Fire(entities.WizardEventBack)
		if err != nil {
			return err
		}
		s.State = prev
		return nil
	})
}

// ExitToHome discards the session. Only allowed from the first step; later
// steps go back instead.
func (u *WizardUseCase) ExitToHome(ctx context.Context, id string) error {
	s, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	if s.State != entities.WizardStateServiceSelection {
		return fmt.Errorf("%w: exit is only possible from step 1, session is in %s", entities.ErrIllegalTransition, s.State)
	}
	if err := u.store.Delete(ctx, s.ID); err != nil {
		return err
	}
	u.logger.Info("wizard exited", zap.String("session_id", s.ID))
	return nil
}

// Submit runs the terminal action of the wizard: save the quote when
// services were selected, then create the guest booking.
//
// Moving the session to submitting is a versioned save, so of two
// concurrent submits only one reaches the network. Once that save succeeds
// the remaining steps run to completion even if ctx is cancelled, so the
// session never stays stuck in submitting.
func (u *WizardUseCase) Submit(ctx context.Context, id string) (SubmitResult, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return SubmitResult{}, err
	}
	if s.State == entities.WizardStateSubmitting {
		return SubmitResult{}, ErrSubmissionInProgress
	}
	next, err := s.State.Fire(entities.WizardEventSubmit)
	if err != nil {
		return SubmitResult{}, err
	}
	if err := ValidateDraft(s.Draft); err != nil {
		return SubmitResult{}, err
	}

	before := s.Draft.Clone()
	s.State = next
	s.LastError = ""
	s.UpdatedAt = u.now()
	s, err = u.store.Save(ctx, s)
	if errors.Is(err, interfaces.ErrSessionVersionConflict) {
		return SubmitResult{}, ErrSubmissionInProgress
	}
	if err != nil {
		return SubmitResult{}, err
	}

	ctx = context.WithoutCancel(ctx)
	log := u.logger.With(zap.String("session_id", s.ID))
	draft := s.Draft.Clone()

	var quoteID string
	if len(draft.SelectedServices) > 0 {
		in := quoteInput(draft)
		saved, err := u.quotes.Save(ctx, in)
		if err != nil {
			log.Warn("quote not saved, booking continues without it", zap.Error(&QuoteSaveError{Err: err}))
		} else {
			quoteID = saved.QuoteID
			draft.QuoteID = saved.QuoteID
			if saved.Total > 0 {
				draft.QuoteTotal = saved.Total
			}
			if saved.Breakdown != nil {
				b := saved.Breakdown.Clone()
				draft.CalculatedQuote = &b
			}
		}
	}

	bookingID, err := u.bookings.CreateGuestBooking(ctx, guestBooking(draft, quoteID))
	if err != nil {
		msg := remote.UserMessage(err)
		if msg == "" {
			msg = DefaultBookingFailedMessage
		}
		log.Error("guest booking failed", zap.Error(err))

		s.Draft = before
		s.State, _ = s.State.Fire(entities.WizardEventSubmitFailed)
		s.LastError = msg
		s.UpdatedAt = u.now()
		if _, saveErr := u.store.Save(ctx, s); saveErr != nil {
			log.Error("restore session after failed booking", zap.Error(saveErr))
		}
		return SubmitResult{}, &BookingCreationError{Message: msg, Err: err}
	}

	s.Draft = draft
	s.State, _ = s.State.Fire(entities.WizardEventSubmitSucceeded)
	s.BookingID = bookingID
	s.UpdatedAt = u.now()
	if saved, saveErr := u.store.Save(ctx, s); saveErr != nil {
		log.Error("save completed session", zap.String("booking_id", bookingID), zap.Error(saveErr))
	} else {
		s = saved
	}

	results := u.resultsPath(bookingID, draft)
	u.recordSubmission(ctx, s, quoteID, results)

	log.Info("booking created", zap.String("booking_id", bookingID), zap.String("quote_id", quoteID))
	return SubmitResult{
		BookingID:     bookingID,
		QuoteID:       quoteID,
		Message:       BookingCreatedMessage,
		ResultsPath:   results,
		RedirectAfter: u.opts.RedirectDelay,
		Session:       s,
	}, nil
}

// Watch returns the current snapshot followed by every later one.
func (u *WizardUseCase) Watch(ctx context.Context, id string) (entities.WizardSession, <-chan entities.WizardSession, func(), error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.WizardSession{}, nil, nil, err
	}
	ch, cancel, err := u.store.Subscribe(ctx, s.ID)
	if err != nil {
		return entities.WizardSession{}, nil, nil, err
	}
	return s, ch, cancel, nil
}

func (u *WizardUseCase) GetSubmission(ctx context.Context, bookingID string) (entities.Submission, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.Submission{}, ErrInvalidBookingID
	}
	if u.submissions == nil {
		return entities.Submission{}, ErrSubmissionNotFound
	}

	sub, err := u.submissions.GetByBookingID(ctx, bookingID)
	if err != nil {
		return entities.Submission{}, err
	}
	if sub.BookingID == "" {
		return entities.Submission{}, ErrSubmissionNotFound
	}
	return sub, nil
}

func (u *WizardUseCase) load(ctx context.Context, id string) (entities.WizardSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WizardSession{}, ErrInvalidSessionID
	}
	s, err := u.store.Get(ctx, id)
	if err != nil {
		return entities.WizardSession{}, err
	}
	if s.ID == "" {
		return entities.WizardSession{}, ErrWizardSessionNotFound
	}
	return s, nil
}

// mutate applies fn to a fresh snapshot and saves it, retrying from a new
// snapshot when another writer got in first.
func (u *WizardUseCase) mutate(ctx context.Context, id string, fn func(*entities.WizardSession) error) (entities.WizardSession, error) {
	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		s, err := u.load(ctx, id)
		if err != nil {
			return entities.WizardSession{}, err
		}
		if err := fn(&s); err != nil {
			if errors.Is(err, errUnchanged) {
				return s, nil
			}
			return entities.WizardSession{}, err
		}
		s.UpdatedAt = u.now()

		saved, err := u.store.Save(ctx, s)
		if errors.Is(err, interfaces.ErrSessionVersionConflict) {
			u.logger.Debug("session save conflict, retrying", zap.String("session_id", s.ID), zap.Int("attempt", attempt+1))
			continue
		}
		if err != nil {
			return entities.WizardSession{}, err
		}
		return saved, nil
	}
	return entities.WizardSession{}, ErrConcurrentUpdate
}

func (u *WizardUseCase) recordSubmission(ctx context.Context, s entities.WizardSession, quoteID, results string) {
	if u.submissions == nil {
		return
	}
	d := s.Draft
	sub := entities.Submission{
		BookingID:     s.BookingID,
		SessionID:     s.ID,
		QuoteID:       quoteID,
		GuestEmail:    d.GuestEmail,
		ContentTypes:  slices.Clone(d.ContentType),
		Location:      d.Location,
		BudgetMin:     d.BudgetMin,
		BudgetMax:     d.LiveBudgetMax(),
		Amount:        d.LiveBudgetMax(),
		DurationHours: d.DurationHours(),
		ResultsPath:   results,
		CreatedAt:     u.now(),
	}
	if _, err := u.submissions.Create(ctx, sub); err != nil {
		u.logger.Warn("submission ledger write failed", zap.String("booking_id", s.BookingID), zap.Error(err))
	}
}

// resultsPath builds the creator search link for a new booking. max_budget
// prefers the live quote total over the manual bound.
func (u *WizardUseCase) resultsPath(bookingID string, d entities.BookingDraft) string {
	q := url.Values{}
	q.Set("booking_id", bookingID)
	q.Set("content_types", joinContentTypes(d.ContentType))
	q.Set("location", d.Location)
	q.Set("min_budget", formatAmount(d.BudgetMin))
	q.Set("max_budget", formatAmount(d.LiveBudgetMax()))
	return u.opts.ResultsPath + "?" + q.Encode()
}

func quoteInput(d entities.BookingDraft) entities.QuoteInput {
	return entities.QuoteInput{
		Items:      slices.Clone(d.SelectedServices),
		ShootHours: d.DurationHours(),
		EventType:  d.ShootType,
		GuestEmail: d.GuestEmail,
		Notes:      strings.TrimSpace(d.SpecialNote),
	}
}

func setQuote(d *entities.BookingDraft, q entities.CalculatedQuote) {
	cp := q.Clone()
	d.CalculatedQuote = &cp
	d.QuoteTotal = q.Total
}

func guestBooking(d entities.BookingDraft, quoteID string) entities.GuestBooking {
	gb := entities.GuestBooking{
		ServiceType:   d.ServiceType,
		ContentTypes:  slices.Clone(d.ContentType),
		ShootType:     d.ShootType,
		EditType:      d.EditType,
		ShootName:     d.ShootName,
		GuestEmail:    strings.TrimSpace(d.GuestEmail),
		DurationHours: d.DurationHours(),
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		BudgetMin:     d.BudgetMin,
		BudgetMax:     d.LiveBudgetMax(),
		CrewSize:      d.CrewSize,
		Location:      d.Location,
		NeedStudio:    d.NeedStudio,
		Studio:        d.Studio,
		ReferenceLink: d.ReferenceLink,
		SpecialNote:   d.SpecialNote,
		IsDraft:       true,
		QuoteID:       quoteID,
	}
	if d.WantsAddons {
		gb.Equipment = equipment(d.Addons)
	}
	return gb
}

// equipment lists add-ons sorted by id so the payload is stable.
func equipment(addons map[string]int) []entities.EquipmentItem {
	ids := make([]string, 0, len(addons))
	for id, qty := range addons {
		if qty > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	out := make([]entities.EquipmentItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, entities.EquipmentItem{ID: id, Quantity: addons[id]})
	}
	return out
}

func joinContentTypes(cts []entities.ContentType) string {
	tags := make([]string, 0, len(cts))
	for _, ct := range cts {
		tags = append(tags, string(ct))
	}
	return strings.Join(tags, ",")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"shootbook/internal/domain/entities"
	"shootbook/internal/usecase/interfaces"
)

var (
	ErrCreatorPaymentNotFound         = errors.New("creator payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrNothingToPay                   = errors.New("submission has no amount to pay")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// ICreatorPaymentUseCase pays the creatives found for a guest booking.
//
// The amount always comes from the submission ledger, never from the
// client payload.
type ICreatorPaymentUseCase interface {
	Pay(ctx context.Context, bookingID string, mpPayload json.RawMessage) (entities.CreatorPayment, error)
	GetByID(ctx context.Context, id string) (entities.CreatorPayment, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.CreatorPayment, error)
}

// PaymentOptions holds the Mercado Pago sandbox knobs.
type PaymentOptions struct {
	MockMode        bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (o PaymentOptions) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(o.AccessToken), "TEST-")
}

type CreatorPaymentUseCase struct {
	repo        interfaces.ICreatorPaymentRepository
	submissions interfaces.ISubmissionRepository
	gateway     interfaces.IPaymentGateway
	opts        PaymentOptions
	logger      *zap.Logger
}

var _ ICreatorPaymentUseCase = (*CreatorPaymentUseCase)(nil)

func NewCreatorPaymentUseCase(
	repo interfaces.ICreatorPaymentRepository,
	submissions interfaces.ISubmissionRepository,
	gateway interfaces.IPaymentGateway,
	opts PaymentOptions,
	logger *zap.Logger,
) *CreatorPaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CreatorPaymentUseCase{
		repo:        repo,
		submissions: submissions,
		gateway:     gateway,
		opts:        opts,
		logger:      logger.Named("payment.usecase"),
	}
}

func (u *CreatorPaymentUseCase) Pay(ctx context.Context, bookingID string, mpPayload json.RawMessage) (entities.CreatorPayment, error) {
	bookingID = strings.TrimSpace(bookingID)
	log := u.logger.With(zap.String("booking_id", bookingID))
	log.Info("pay start", zap.Int("payload_len", len(mpPayload)), zap.Bool("mock", u.opts.MockMode))

	if bookingID == "" {
		return entities.CreatorPayment{}, ErrInvalidBookingID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.MockMode {
			log.Warn("invalid payload")
			return entities.CreatorPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.CreatorPayment{}, ErrPaymentGatewayNotConfigured
	}
	if u.submissions == nil {
		return entities.CreatorPayment{}, errors.New("submission repository not configured")
	}

	sub, err := u.submissions.GetByBookingID(ctx, bookingID)
	if err != nil {
		log.Error("load submission failed", zap.Error(err))
		return entities.CreatorPayment{}, err
	}
	if sub.BookingID == "" {
		return entities.CreatorPayment{}, ErrSubmissionNotFound
	}
	if sub.Amount <= 0 {
		return entities.CreatorPayment{}, ErrNothingToPay
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		log.Warn("payload is not an object", zap.Error(err))
		return entities.CreatorPayment{}, ErrInvalidMPPayload
	}
	if !u.opts.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Warn("missing payment_method_id")
			return entities.CreatorPayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap, sub.GuestEmail)
		if !hasPayer(reqMap) {
			log.Warn("missing or invalid payer")
			return entities.CreatorPayment{}, ErrInvalidMPPayload
		}
	}

	// external_reference lets Mercado Pago events be reconciled with the booking.
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = bookingID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Creators for booking %s", bookingID)
	}
	reqMap["transaction_amount"] = sub.Amount
	if b, err := json.Marshal(reqMap); err == nil {
		mpPayload = b
	}

	charge, err := u.gateway.ChargeCreators(ctx, mpPayload)
	if err != nil {
		log.Error("payment gateway failed", zap.Error(err))
		return entities.CreatorPayment{}, classifyGatewayError(err)
	}
	log.Info("payment gateway success", zap.String("provider_payment_id", charge.ProviderID), zap.String("provider_status", charge.Status))

	var parsed map[string]interface{}
	if err := json.Unmarshal(charge.Response, &parsed); err != nil {
		log.Warn("provider response unmarshal failed", zap.Error(err))
	}

	p := entities.CreatorPayment{
		ID:                 charge.ProviderID,
		BookingID:          bookingID,
		Amount:             sub.Amount,
		Date:               time.Now().UTC(),
		Status:             paymentStatus(charge.Status),
		ProviderPayloadRaw: charge.Response,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.CreatorPayment{}, err
	}
	log.Info("pay success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

func (u *CreatorPaymentUseCase) GetByID(ctx context.Context, id string) (entities.CreatorPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CreatorPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CreatorPayment{}, err
	}
	if p.ID == "" {
		return entities.CreatorPayment{}, ErrCreatorPaymentNotFound
	}
	return p, nil
}

// ListByBookingID returns the booking's payments, newest first.
func (u *CreatorPaymentUseCase) ListByBookingID(ctx context.Context, bookingID string) ([]entities.CreatorPayment, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}
	items, err := u.repo.ListByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	return items, nil
}

func paymentStatus(provider string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills payer.type and, when neither id nor email was
// sent, the guest's email (or the sandbox test payer).
func (u *CreatorPaymentUseCase) ensurePayerDefaults(m map[string]any, guestEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	switch {
	case u.opts.sandbox() && u.opts.TestPayerEmail != "":
		payer["email"] = u.opts.TestPayerEmail
	case u.opts.sandbox():
		payer["email"] = "test_user_br@testuser.com"
	case strings.Contains(guestEmail, "@"):
		payer["email"] = strings.TrimSpace(guestEmail)
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email;
// the sandbox rejects payer ids of test users.
func (u *CreatorPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !u.opts.sandbox() || u.opts.TestPayerUserID == "" || u.opts.TestPayerEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.opts.TestPayerUserID {
		return
	}

	payer["email"] = u.opts.TestPayerEmail
	delete(payer, "id")
	u.logger.Debug("mapped sandbox payer user id to email")
}

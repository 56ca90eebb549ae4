package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "shootbook/internal/adapter/http/dto/response"
	"shootbook/internal/usecase"
	"shootbook/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreatorPaymentHandler handles payments for the creatives of a booking.
type CreatorPaymentHandler struct {
	usecase  usecase.ICreatorPaymentUseCase
	mockMode bool
}

func NewCreatorPaymentHandler(uc usecase.ICreatorPaymentUseCase, mockMode bool) *CreatorPaymentHandler {
	return &CreatorPaymentHandler{usecase: uc, mockMode: mockMode}
}

// Pay godoc
// @Summary  Pay the creatives of a booking through Mercado Pago
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    booking_id  path  string  true  "Booking ID"
// @Success  200 {object} response.CreatorPaymentResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /bookings/{booking_id}/payments [post]
func (h *CreatorPaymentHandler) Pay(c *gin.Context) {
	bookingID := c.Param("booking_id")
	log := requestLogger(c).With(zap.String("booking_id", bookingID))

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Info("invalid payment payload", zap.Error(err))
			writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
			return
		}
		log.Debug("invalid payload in mock mode, using empty payload", zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.Pay(c.Request.Context(), bookingID, mpPayload)
	if err != nil {
		writeError(c, mapCreatorPaymentError(err))
		return
	}
	log.Info("payment created", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	c.JSON(http.StatusOK, response.FromCreatorPayment(created))
}

// ListByBookingID godoc
// @Summary  List the payments of a booking, newest first
// @Tags     payments
// @Produce  json
// @Param    booking_id  path  string  true  "Booking ID"
// @Success  200 {object} response.CreatorPaymentListResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /bookings/{booking_id}/payments [get]
func (h *CreatorPaymentHandler) ListByBookingID(c *gin.Context) {
	payments, err := h.usecase.ListByBookingID(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		writeError(c, mapCreatorPaymentError(err))
		return
	}
	if len(payments) == 0 {
		writeError(c, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}
	c.JSON(http.StatusOK, response.FromCreatorPayments(payments))
}

// GetByID godoc
// @Summary  Get a payment
// @Tags     payments
// @Produce  json
// @Param    payment_id  path  string  true  "Payment ID"
// @Success  200 {object} response.CreatorPaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /payments/{payment_id} [get]
func (h *CreatorPaymentHandler) GetByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		writeError(c, mapCreatorPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCreatorPayment(p))
}

// readMPPayload accepts either the raw Mercado Pago payload or one wrapped
// in {"mp_payload": ...}. An empty body is an empty object.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if v := strings.TrimSpace(string(wrapped)); v == "" || v == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}

func mapCreatorPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payments are not available", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrSubmissionNotFound):
		return pkg.NewDomainErrorSimple("SUBMISSION_NOT_FOUND", "Submission not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNothingToPay):
		return pkg.NewDomainErrorSimple("NOTHING_TO_PAY", "Booking has no amount to pay", http.StatusConflict)
	case errors.Is(err, usecase.ErrCreatorPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	request "shootbook/internal/adapter/http/dto/request"
	response "shootbook/internal/adapter/http/dto/response"
	"shootbook/internal/domain/entities"
	"shootbook/internal/usecase"
	"shootbook/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultEventsHeartbeat = 15 * time.Second

var errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)

// WizardHandler exposes the booking wizard session over HTTP.
type WizardHandler struct {
	usecase   usecase.IWizardUseCase
	heartbeat time.Duration
}

func NewWizardHandler(uc usecase.IWizardUseCase) *WizardHandler {
	return &WizardHandler{usecase: uc, heartbeat: defaultEventsHeartbeat}
}

// StartSession godoc
// @Summary  Start a booking wizard
// @Tags     wizard
// @Produce  json
// @Success  201 {object} response.WizardSessionResponse
// @Router   /wizard/sessions [post]
func (h *WizardHandler) StartSession(c *gin.Context) {
	s, err := h.usecase.Start(c.Request.Context())
	if err != nil {
		writeError(c, mapWizardError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromWizardSession(s))
}

// GetSession godoc
// @Summary  Get a wizard session
// @Tags     wizard
// @Produce  json
// @Param    id  path  string  true  "Session ID"
// @Success  200 {object} response.WizardSessionResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /wizard/sessions/{id} [get]
func (h *WizardHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapWizardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWizardSession(s))
}

// UpdateDraft godoc
// @Summary  Merge a partial update into the draft
// @Tags     wizard
// @Accept   json
// @Produce  json
// @Param    id       path  string                      true  "Session ID"
// @Param    payload  body  request.UpdateDraftRequest  true  "Fields to change"
// @Success  200 {object} response.WizardSessionResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /wizard/sessions/{id}/draft [patch]
func (h *WizardHandler) UpdateDraft(c *gin.Context) {
	var payload request.UpdateDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidDraftPayload)
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		writeError(c, pkg.NewDomainError("INVALID_DRAFT_INPUT", err.Error(), err, http.StatusBadRequest))
		return
	}

	s, err := h.usecase.UpdateData(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, mapWizardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWizardSession(s))
}

// NextStep godoc
// @Summary  Validate the current step and advance
// @Tags     wizard
// @Produce  json
// @Param    id  path  string  true  "Session ID"
// @Success  200 {object} response.WizardSessionResponse
// @Failure  422 {object} pkg.HTTPError
// @Router   /wizard/sessions/{id}/next [post]
func (h *WizardHandler) NextStep(c *gin.Context) {
	s, err := h.usecase.NextStep(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapWizardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWizardSession(s))
}

// PrevStep godoc
// @Summary  Go back one step
// @Tags     wizard
// @Produce  json
// @Param    id  path  string  true  "Session ID"
// @Success  200 {object} response.WizardSessionResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /wizard/sessions/{id}/back [post]
func (h *WizardHandler) PrevStep(c *gin.Context) {
	s, err := h.usecase.PrevStep(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapWizardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWizardSession(s))
}

// ExitToHome godoc
// @Summary  Discard a session on the first step
// @Tags     wizard
// @Produce  json
// @Param    id  path  string  true  "Session ID"
// @Success  204
// @Failure  409 {object} pkg.HTTPError
// @Router   /wizard/sessions/{id} [delete]
func (h *WizardHandler) ExitToHome(c *gin.Context) {
	if err := h.usecase.ExitToHome(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapWizardError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// RefreshQuote godoc
// @Summary  Refresh the live quote
// @Tags     wizard
// @Produce  json
// @Param    id  path  string  true  "Session ID"
// @Success  200 {object} response.WizardSessionResponse
// @Failure  422 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /wizard/sessions/{id}/quote [post]
func (h *WizardHandler) RefreshQuote(c *gin.Context) {
	s, err := h.usecase.RefreshQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapWizardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWizardSession(s))
}

// Submit godoc
// @Summary  Save the quote and create the guest booking
// @Tags     wizard
// @Produce  json
// @Param    id  path  string  true  "Session ID"
// @Success  201 {object} response.SubmitResponse
// @Failure  409 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /wizard/sessions/{id}/submit [post]
func (h *WizardHandler) Submit(c *gin.Context) {
	res, err := h.usecase.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapWizardError(err))
		return
	}
	requestLogger(c).Info("booking submitted", zap.String("booking_id", res.BookingID))
	c.JSON(http.StatusCreated, response.FromSubmitResult(res))
}

// Events streams session snapshots as server-sent events: the current one
// first, then one per change, until the client leaves or the session is
// discarded.
//
// @Summary  Stream session snapshots
// @Tags     wizard
// @Produce  text/event-stream
// @Param    id  path  string  true  "Session ID"
// @Success  200
// @Failure  404 {object} pkg.HTTPError
// @Router   /wizard/sessions/{id}/events [get]
func (h *WizardHandler) Events(c *gin.Context) {
	ctx := c.Request.Context()
	snap, updates, cancel, err := h.usecase.Watch(ctx, c.Param("id"))
	if err != nil {
		writeError(c, mapWizardError(err))
		return
	}
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	c.SSEvent("session", response.FromWizardSession(snap))
	c.Writer.Flush()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case s, ok := <-updates:
			if !ok {
				c.SSEvent("closed", gin.H{"id": snap.ID})
				c.Writer.Flush()
				return
			}
			c.SSEvent("session", response.FromWizardSession(s))
			c.Writer.Flush()
		case <-heartbeat.C:
			_, _ = fmt.Fprint(c.Writer, ": ping\n\n")
			c.Writer.Flush()
		}
	}
}

// GetSubmission godoc
// @Summary  Get the ledger entry of a submitted booking
// @Tags     bookings
// @Produce  json
// @Param    booking_id  path  string  true  "Booking ID"
// @Success  200 {object} response.SubmissionResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /bookings/{booking_id}/submission [get]
func (h *WizardHandler) GetSubmission(c *gin.Context) {
	sub, err := h.usecase.GetSubmission(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		writeError(c, mapWizardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSubmission(sub))
}

func mapWizardError(err error) *pkg.AppError {
	var validation *usecase.DraftValidationError
	var booking *usecase.BookingCreationError

	switch {
	case errors.As(err, &validation):
		return pkg.NewDomainError("INVALID_DRAFT", fmt.Sprintf("Please complete step %d", validation.Step), err, http.StatusUnprocessableEntity).
			WithDetails(validation.Fields)
	case errors.As(err, &booking):
		return pkg.NewDomainError("BOOKING_FAILED", booking.Message, err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_SESSION_ID", "Invalid session id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWizardSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Wizard session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubmissionInProgress):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_PROGRESS", "Booking submission already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrWizardLocked):
		return pkg.NewDomainErrorSimple("WIZARD_LOCKED", "Wizard can no longer be edited", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Wizard was updated concurrently, retry", http.StatusConflict)
	case errors.Is(err, entities.ErrIllegalTransition):
		return pkg.NewDomainError("ILLEGAL_TRANSITION", "Step change not allowed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToQuote):
		return pkg.NewDomainErrorSimple("NOTHING_TO_QUOTE", "Select at least one service to get a quote", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuoteUnavailable):
		return pkg.NewDomainError("QUOTE_UNAVAILABLE", "Live quote is unavailable, try again", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrInvalidBookingID):
		return pkg.NewDomainErrorSimple("INVALID_BOOKING_ID", "Invalid booking id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmissionNotFound):
		return pkg.NewDomainErrorSimple("SUBMISSION_NOT_FOUND", "Submission not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

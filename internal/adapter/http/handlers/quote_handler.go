package handlers

import (
	"errors"
	"net/http"

	request "shootbook/internal/adapter/http/dto/request"
	response "shootbook/internal/adapter/http/dto/response"
	"shootbook/internal/usecase"
	"shootbook/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// Preview godoc
// @Summary  Price a set of services outside the wizard
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    payload  body  request.QuotePreviewRequest  true  "Services to price"
// @Success  200 {object} response.QuotePreviewResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /quotes/preview [post]
func (h *QuoteHandler) Preview(c *gin.Context) {
	var payload request.QuotePreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidQuotePayload)
		return
	}

	q, err := h.usecase.Preview(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCalculatedQuote(q))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteItems):
		return errInvalidQuotePayload
	case errors.Is(err, usecase.ErrInvalidShootType):
		return pkg.NewDomainErrorSimple("INVALID_SHOOT_TYPE", "Unknown shoot type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteUnavailable):
		return pkg.NewDomainError("QUOTE_UNAVAILABLE", "Live quote is unavailable, try again", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

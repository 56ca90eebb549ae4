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

var errInvalidVideoKey = pkg.NewDomainErrorSimple("INVALID_VIDEO_KEY", "Invalid video key", http.StatusBadRequest)

type VideoHandler struct {
	usecase usecase.IVideoUseCase
}

func NewVideoHandler(uc usecase.IVideoUseCase) *VideoHandler {
	return &VideoHandler{usecase: uc}
}

// PresignedURL godoc
// @Summary  Get a time-limited download URL for a portfolio video
// @Tags     videos
// @Produce  json
// @Param    key         query  string  true   "Object key"
// @Param    expires_in  query  int     false  "Lifetime in seconds"
// @Success  200 {object} response.PresignedVideoResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /videos/presigned-url [get]
func (h *VideoHandler) PresignedURL(c *gin.Context) {
	var q request.PresignedVideoQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidVideoKey)
		return
	}

	v, err := h.usecase.PresignedURL(c.Request.Context(), q.Key, q.Expires())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidVideoKey) {
			writeError(c, errInvalidVideoKey)
			return
		}
		writeError(c, pkg.NewDomainError("STORAGE_UNAVAILABLE", "Could not sign the video url", err, http.StatusBadGateway))
		return
	}
	c.JSON(http.StatusOK, response.FromPresignedVideo(v))
}

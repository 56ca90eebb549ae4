package handlers

import (
	"net/http"

	"shootbook/internal/infrastructure/health"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	monitor *health.Monitor
}

func NewHealthHandler(m *health.Monitor) *HealthHandler {
	return &HealthHandler{monitor: m}
}

// Ping godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200
// @Router   /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Health reports the latest dependency snapshot; 503 when any is down.
//
// @Summary  Dependency health snapshot
// @Tags     health
// @Produce  json
// @Success  200
// @Failure  503
// @Router   /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	st := h.monitor.Status()
	code := http.StatusOK
	if !st.Healthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, st)
}

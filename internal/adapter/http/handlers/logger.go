package handlers

import (
	"shootbook/internal/adapter/http/middleware"
	"shootbook/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// requestLogger returns the request-scoped logger set by the logging
// middleware, or the global one.
func requestLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get(middleware.LoggerKey); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.L()
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= 500 {
		requestLogger(c).Error("request failed", zap.String("code", appErr.Code), zap.Error(appErr))
	} else {
		requestLogger(c).Info("request rejected", zap.String("code", appErr.Code), zap.Error(appErr))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

package routes

import (
	"shootbook/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup, health *handlers.HealthHandler) {
	rg.GET("/ping", handlers.Ping)
	if health != nil {
		rg.GET("/health", health.Health)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog", handlers.GetCatalog)
}

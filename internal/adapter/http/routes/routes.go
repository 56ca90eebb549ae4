package routes

import (
	"fmt"
	"time"

	_ "shootbook/docs" // generated by swag init
	"shootbook/internal/adapter/http/handlers"
	"shootbook/internal/adapter/http/middleware"
	"shootbook/internal/infrastructure/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers is the set of HTTP handlers the router exposes.
type Handlers struct {
	Wizard  *handlers.WizardHandler
	Quote   *handlers.QuoteHandler
	Payment *handlers.CreatorPaymentHandler
	Video   *handlers.VideoHandler
	Health  *handlers.HealthHandler
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1
// routes.
func NewRouter(cfg config.Config, logger *zap.Logger, h Handlers) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	// client IPs come from forwarding headers only when set by these peers
	if err := router.SetTrustedProxies(cfg.TrustedProxyList()); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	setMiddlewares(router, cfg, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1, h.Health)
	addCatalogRoutes(v1)
	addWizardRoutes(v1, h.Wizard)
	addQuoteRoutes(v1, h.Quote)
	addBookingRoutes(v1, h.Wizard, h.Payment)
	addVideoRoutes(v1, h.Video)
	return router, nil
}

func setMiddlewares(router *gin.Engine, cfg config.Config, logger *zap.Logger) {
	router.Use(middleware.RequestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.FullPath()))
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: !allowsAnyOrigin(cfg.AllowedOrigins()),
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RateLimit(cfg.MaxRequestsPerMin, logger))
}

// cors rejects credentials together with a wildcard origin.
func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

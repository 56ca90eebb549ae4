package routes

import (
	"shootbook/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWizardSessions = "/wizard/sessions"
	PathQuotes         = "/quotes"
	PathBookings       = "/bookings"
	PathPayments       = "/payments"
	PathVideos         = "/videos"
)

func addWizardRoutes(rg *gin.RouterGroup, h *handlers.WizardHandler) {
	sessions := rg.Group(PathWizardSessions)
	{
		sessions.POST("", h.StartSession)
		sessions.GET("/:id", h.GetSession)
		sessions.DELETE("/:id", h.ExitToHome)
		sessions.PATCH("/:id/draft", h.UpdateDraft)
		sessions.POST("/:id/next", h.NextStep)
		sessions.POST("/:id/back", h.PrevStep)
		sessions.POST("/:id/quote", h.RefreshQuote)
		sessions.POST("/:id/submit", h.Submit)
		sessions.GET("/:id/events", h.Events)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	rg.POST(PathQuotes+"/preview", h.Preview)
}

func addBookingRoutes(rg *gin.RouterGroup, wizard *handlers.WizardHandler, payments *handlers.CreatorPaymentHandler) {
	bookings := rg.Group(PathBookings)
	{
		bookings.GET("/:booking_id/submission", wizard.GetSubmission)
		bookings.POST("/:booking_id/payments", payments.Pay)
		bookings.GET("/:booking_id/payments", payments.ListByBookingID)
	}
	rg.GET(PathPayments+"/:payment_id", payments.GetByID)
}

func addVideoRoutes(rg *gin.RouterGroup, h *handlers.VideoHandler) {
	rg.GET(PathVideos+"/presigned-url", h.PresignedURL)
}

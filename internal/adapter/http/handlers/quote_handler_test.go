package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"shootbook/internal/adapter/http/handlers/mocks"
	"shootbook/internal/domain/entities"
	"shootbook/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_Preview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIQuoteUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/quotes/preview", NewQuoteHandler(uc).Preview)
		return r, uc
	}

	t.Run("missing items", func(t *testing.T) {
		r, _ := newRouter(t)
		w := serve(r, http.MethodPost, "/v1/quotes/preview", `{"items":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero quantity", func(t *testing.T) {
		r, _ := newRouter(t)
		w := serve(r, http.MethodPost, "/v1/quotes/preview", `{"items":[{"item_id":"drone","quantity":0}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Preview(gomock.Any(), entities.QuoteInput{
			Items:      []entities.SelectedService{{ItemID: "drone", Quantity: 2}},
			ShootHours: 3,
			EventType:  "wedding",
		}).Return(entities.CalculatedQuote{Subtotal: 200, Total: 180}, nil)

		w := serve(r, http.MethodPost, "/v1/quotes/preview", `{"items":[{"item_id":"drone","quantity":2}],"shoot_hours":3,"event_type":"wedding"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		quote, _ := decodeBody(t, w)["quote"].(map[string]any)
		if quote["total"] != float64(180) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown shoot type", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Preview(gomock.Any(), gomock.Any()).Return(entities.CalculatedQuote{}, usecase.ErrInvalidShootType)

		w := serve(r, http.MethodPost, "/v1/quotes/preview", `{"items":[{"item_id":"drone","quantity":1}],"event_type":"rodeo"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("pricing unavailable", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Preview(gomock.Any(), gomock.Any()).Return(entities.CalculatedQuote{}, fmt.Errorf("%w: 503", usecase.ErrQuoteUnavailable))

		w := serve(r, http.MethodPost, "/v1/quotes/preview", `{"items":[{"item_id":"drone","quantity":1}]}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

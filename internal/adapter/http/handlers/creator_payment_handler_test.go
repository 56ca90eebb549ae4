package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shootbook/internal/adapter/http/handlers/mocks"
	"shootbook/internal/domain/entities"
	"shootbook/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newPaymentRouter(t *testing.T, mockMode bool) (*gin.Engine, *mocks.MockICreatorPaymentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICreatorPaymentUseCase(ctrl)
	h := NewCreatorPaymentHandler(uc, mockMode)

	r := gin.New()
	r.POST("/v1/bookings/:booking_id/payments", h.Pay)
	r.GET("/v1/bookings/:booking_id/payments", h.ListByBookingID)
	r.GET("/v1/payments/:payment_id", h.GetByID)
	return r, uc
}

func TestCreatorPaymentHandler_Pay(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newPaymentRouter(t, false)
		w := serve(r, http.MethodPost, "/v1/bookings/bk-1/payments", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode", func(t *testing.T) {
		r, uc := newPaymentRouter(t, true)
		uc.EXPECT().Pay(gomock.Any(), "bk-1", json.RawMessage("{}")).Return(entities.CreatorPayment{ID: "mock-1", BookingID: "bk-1", Status: entities.PaymentStatusApproved}, nil)

		w := serve(r, http.MethodPost, "/v1/bookings/bk-1/payments", "{")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unwraps mp_payload", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		uc.EXPECT().Pay(gomock.Any(), "bk-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, payload json.RawMessage) (entities.CreatorPayment, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil || m["payment_method_id"] != "pix" {
					t.Fatalf("unexpected payload: %s", payload)
				}
				return entities.CreatorPayment{ID: "pay-1", BookingID: "bk-1", Amount: 300, Date: time.Now().UTC(), Status: entities.PaymentStatusApproved}, nil
			})

		w := serve(r, http.MethodPost, "/v1/bookings/bk-1/payments", `{"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["payment_id"] != "pay-1" || body["status"] != "approved" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("empty mp_payload", func(t *testing.T) {
		r, _ := newPaymentRouter(t, false)
		w := serve(r, http.MethodPost, "/v1/bookings/bk-1/payments", `{"mp_payload":null}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("body read error", func(t *testing.T) {
		r, _ := newPaymentRouter(t, false)
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bk-1/payments", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"no submission", usecase.ErrSubmissionNotFound, http.StatusNotFound},
		{"nothing to pay", usecase.ErrNothingToPay, http.StatusConflict},
		{"provider unauthorized", usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{"invalid users", usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
		{"not configured", usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newPaymentRouter(t, false)
			uc.EXPECT().Pay(gomock.Any(), "bk-1", gomock.Any()).Return(entities.CreatorPayment{}, tc.err)

			w := serve(r, http.MethodPost, "/v1/bookings/bk-1/payments", `{"payment_method_id":"pix"}`)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestCreatorPaymentHandler_ListByBookingID(t *testing.T) {
	t.Run("list error", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		uc.EXPECT().ListByBookingID(gomock.Any(), "bk-1").Return(nil, usecase.ErrInvalidBookingID)

		w := serve(r, http.MethodGet, "/v1/bookings/bk-1/payments", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		uc.EXPECT().ListByBookingID(gomock.Any(), "bk-1").Return([]entities.CreatorPayment{}, nil)

		w := serve(r, http.MethodGet, "/v1/bookings/bk-1/payments", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("latest first", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		now := time.Now().UTC()
		uc.EXPECT().ListByBookingID(gomock.Any(), "bk-1").Return([]entities.CreatorPayment{
			{ID: "pay-2", BookingID: "bk-1", Date: now, Status: entities.PaymentStatusApproved},
			{ID: "pay-1", BookingID: "bk-1", Date: now.Add(-time.Hour), Status: entities.PaymentStatusDenied},
		}, nil)

		w := serve(r, http.MethodGet, "/v1/bookings/bk-1/payments", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		latest, _ := body["latest"].(map[string]any)
		payments, _ := body["payments"].([]any)
		if latest["payment_id"] != "pay-2" || len(payments) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCreatorPaymentHandler_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		uc.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.CreatorPayment{ID: "pay-1", BookingID: "bk-1"}, nil)

		w := serve(r, http.MethodGet, "/v1/payments/pay-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		uc.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.CreatorPayment{}, usecase.ErrCreatorPaymentNotFound)

		w := serve(r, http.MethodGet, "/v1/payments/pay-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

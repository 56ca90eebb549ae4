package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"

	"shootbook/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway creates payments through the Mercado Pago SDK. In mock
// mode no request leaves the process and every payment is approved.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	logger   *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mockMode bool, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("payment.gateway")

	if mockMode {
		logger.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, logger: logger}, nil
	}
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercado pago sdk config: %w", err)
	}
	logger.Info("Mercado Pago client initialized")
	return &MercadoPagoGateway{client: payment.NewClient(cfg), logger: logger}, nil
}

// ChargeCreators creates a Mercado Pago payment from payload. In mock mode the
// payload is echoed back as an approved payment.
func (g *MercadoPagoGateway) ChargeCreators(ctx context.Context, payload json.RawMessage) (interfaces.GatewayPayment, error) {
	if g != nil && g.mockMode {
		return g.mockPayment(payload)
	}
	if g == nil || g.client == nil {
		return interfaces.GatewayPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(payload, &req); err != nil {
		g.logger.Warn("payload unmarshal failed", zap.Error(err))
		return interfaces.GatewayPayment{}, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.logger.Error("sdk create failed", zap.Error(err))
		return interfaces.GatewayPayment{}, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return interfaces.GatewayPayment{}, err
	}
	g.logger.Info("payment created", zap.Any("provider_payment_id", resp.ID), zap.String("provider_status", resp.Status))
	return interfaces.GatewayPayment{ProviderID: fmt.Sprint(resp.ID), Status: resp.Status, Response: b}, nil
}

func (g *MercadoPagoGateway) mockPayment(payload json.RawMessage) (interfaces.GatewayPayment, error) {
	resp := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		if err := json.Unmarshal(payload, &resp); err != nil || resp == nil {
			resp = map[string]any{"request_payload_raw": string(payload)}
		}
	}

	id := "mock-" + uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return interfaces.GatewayPayment{}, err
	}
	g.logger.Info("mock payment approved", zap.String("provider_payment_id", id))
	return interfaces.GatewayPayment{ProviderID: id, Status: "approved", Response: b}, nil
}

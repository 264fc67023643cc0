package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"vaif_quotes/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges deposits through the Mercado Pago payments API.
// In mock mode no request leaves the process and every payment is approved.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	log      *zap.Logger
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mockMode bool, log *zap.Logger) (*MercadoPagoGateway, error) {
	if mockMode {
		log.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: log, now: time.Now}, nil
	}

	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: log, now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockPayment(requestPayload)
	}
	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.log.Warn("[payment][gateway] payload unmarshal failed", zap.Error(err))
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Warn("[payment][gateway] sdk create failed", zap.Error(err))
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	id := fmt.Sprintf("%d", resp.ID)
	g.log.Info("[payment][gateway] create success",
		zap.String("provider_payment_id", id),
		zap.String("provider_status", resp.Status))

	return id, resp.Status, b, nil
}

// mockPayment echoes the request back as an approved payment.
func (g *MercadoPagoGateway) mockPayment(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now.Format(time.RFC3339Nano)
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now.Format(time.RFC3339Nano)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	g.log.Info("[payment][gateway] mock create success", zap.String("provider_payment_id", id))
	return id, "approved", b, nil
}

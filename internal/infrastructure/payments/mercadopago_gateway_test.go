package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	if _, err := NewMercadoPagoGateway("", false, zap.NewNop()); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
	g, err := NewMercadoPagoGateway("", true, zap.NewNop())
	if err != nil || !g.mockMode {
		t.Fatalf("expected mock gateway, got %+v %v", g, err)
	}
}

func TestMercadoPagoGateway_MockPayment(t *testing.T) {
	g, _ := NewMercadoPagoGateway("", true, zap.NewNop())
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"external_reference":"q-1","transaction_amount":2500}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "approved" || id == "" {
		t.Fatalf("unexpected result: %s %s", id, status)
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if body["external_reference"] != "q-1" || body["transaction_amount"] != float64(2500) {
		t.Fatalf("expected request fields echoed, got %v", body)
	}
	if body["date_approved"] != fixed.Format(time.RFC3339Nano) {
		t.Fatalf("unexpected date_approved: %v", body["date_approved"])
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), nil); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}

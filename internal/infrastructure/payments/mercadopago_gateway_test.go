package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mercadopago/sdk-go/pkg/payment"
)

type fakeCreator struct {
	got  payment.Request
	resp *payment.Response
	err  error
}

func (f *fakeCreator) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		if _, err := NewMercadoPagoGateway(" "); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		g, err := NewMercadoPagoGateway("")
		if err != nil || !g.mockMode {
			t.Fatalf("expected mock gateway, got %+v %v", g, err)
		}
	})
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	payload := json.RawMessage(`{"transaction_amount":1300,"payment_method_id":"pix","external_reference":"inv-1","payer":{"email":"a@b.com"}}`)

	t.Run("nil gateway", func(t *testing.T) {
		var g *MercadoPagoGateway
		if _, _, _, err := g.CreatePayment(context.Background(), payload); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("amount required", func(t *testing.T) {
		g := &MercadoPagoGateway{mockMode: true, now: time.Now}
		_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrMissingTransactionAmount) {
			t.Fatalf("expected ErrMissingTransactionAmount, got %v", err)
		}
	})

	t.Run("mock approves", func(t *testing.T) {
		fixed := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		g := &MercadoPagoGateway{mockMode: true, now: func() time.Time { return fixed }}
		id, status, raw, err := g.CreatePayment(context.Background(), payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != "approved" || id == "" {
			t.Fatalf("unexpected result: %s %s", id, status)
		}
		var resp map[string]any
		if err := json.Unmarshal(raw, &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp["external_reference"] != "inv-1" || resp["status_detail"] != "accredited" {
			t.Fatalf("unexpected response: %s", raw)
		}
	})

	t.Run("sdk client", func(t *testing.T) {
		client := &fakeCreator{resp: &payment.Response{ID: 42, Status: "approved"}}
		g := &MercadoPagoGateway{client: client, now: time.Now}
		id, status, _, err := g.CreatePayment(context.Background(), payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "42" || status != "approved" {
			t.Fatalf("unexpected result: %s %s", id, status)
		}
		if client.got.ExternalReference != "inv-1" || client.got.TransactionAmount != 1300 {
			t.Fatalf("unexpected request: %+v", client.got)
		}
	})

	t.Run("sdk error", func(t *testing.T) {
		g := &MercadoPagoGateway{client: &fakeCreator{err: errors.New(`{"status":401}`)}, now: time.Now}
		if _, _, _, err := g.CreatePayment(context.Background(), payload); err == nil {
			t.Fatalf("expected error")
		}
	})
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"ikhaya/internal/adapter/http/handlers/mocks"
	"ikhaya/internal/domain/entities"
	"ikhaya/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_RecordPayment(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newAuthedRouter("landlord-1")
		r.POST("/v1/invoices/:id/payments", h.RecordPayment)

		w := doRequest(r, http.MethodPost, "/v1/invoices/inv-1/payments", "{")
		expectStatus(t, w, http.StatusBadRequest)
	})

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"amount", usecase.ErrInvalidPaymentAmount, http.StatusBadRequest},
		{"provider payload", usecase.ErrInvalidProviderPayload, http.StatusBadRequest},
		{"forbidden", usecase.ErrInvoiceForbidden, http.StatusForbidden},
		{"not found", usecase.ErrInvoiceNotFound, http.StatusNotFound},
		{"already paid", usecase.ErrInvoiceAlreadyPaid, http.StatusConflict},
		{"not approved", usecase.ErrPaymentNotApproved, http.StatusPaymentRequired},
		{"gateway not configured", usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{"gateway unauthorized", usecase.ErrPaymentGatewayUnauthorized, http.StatusBadGateway},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPaymentUseCase(ctrl)
			h := NewPaymentHandler(uc)

			r := newAuthedRouter("landlord-1")
			r.POST("/v1/invoices/:id/payments", h.RecordPayment)

			uc.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).Return(entities.Payment{}, tc.err)

			w := doRequest(r, http.MethodPost, "/v1/invoices/inv-1/payments", `{"amount":"1300","payment_method":"eft"}`)
			expectStatus(t, w, tc.want)
		})
	}

	t.Run("success forwards mp payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newAuthedRouter("landlord-1")
		r.POST("/v1/invoices/:id/payments", h.RecordPayment)

		now := time.Now().UTC()
		uc.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.RecordPaymentInput) (entities.Payment, error) {
			if in.InvoiceID != "inv-1" || in.LandlordID != "landlord-1" || in.PaymentMethod != "mercadopago" {
				t.Fatalf("unexpected input: %+v", in)
			}
			var payload map[string]any
			if err := json.Unmarshal(in.ProviderPayload, &payload); err != nil || payload["payment_method_id"] != "pix" {
				t.Fatalf("unexpected provider payload: %s", in.ProviderPayload)
			}
			return entities.Payment{ID: "pay-1", InvoiceID: "inv-1", Amount: in.Amount, PaymentMethod: in.PaymentMethod, Reference: "mp-42", PaymentDate: now}, nil
		})

		w := doRequest(r, http.MethodPost, "/v1/invoices/inv-1/payments", `{"amount":1300,"payment_method":"mercadopago","mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`)
		expectStatus(t, w, http.StatusCreated)
		body := decodeBody(t, w)
		if body["payment_id"] != "pay-1" || body["reference"] != "mp-42" || body["amount"] != "1300.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newAuthedRouter("landlord-1")
		r.GET("/v1/invoices/:id/payments", h.ListPayments)

		uc.EXPECT().ListPaymentsForInvoice(gomock.Any(), "inv-1", "landlord-1").Return(nil, usecase.ErrInvoiceForbidden)

		w := doRequest(r, http.MethodGet, "/v1/invoices/inv-1/payments", "")
		expectStatus(t, w, http.StatusForbidden)
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newAuthedRouter("landlord-1")
		r.GET("/v1/invoices/:id/payments", h.ListPayments)

		uc.EXPECT().ListPaymentsForInvoice(gomock.Any(), "inv-1", "landlord-1").Return([]entities.Payment{
			{ID: "pay-1", Amount: decimal.NewFromInt(500)},
			{ID: "pay-2", Amount: decimal.NewFromInt(800)},
		}, nil)

		w := doRequest(r, http.MethodGet, "/v1/invoices/inv-1/payments", "")
		expectStatus(t, w, http.StatusOK)
		var list []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || len(list) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

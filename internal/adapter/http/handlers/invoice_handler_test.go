package handlers

import (
	"net/http"
	"testing"

	"ikhaya/internal/adapter/http/handlers/mocks"
	"ikhaya/internal/domain/entities"
	"ikhaya/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestInvoiceHandler(t *testing.T) {
	t.Run("list for caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := newAuthedRouter("landlord-1")
		r.GET("/v1/invoices", h.ListInvoices)

		uc.EXPECT().ListInvoicesForLandlord(gomock.Any(), "landlord-1").Return([]entities.Invoice{{ID: "inv-1", Amount: decimal.NewFromInt(1300)}}, nil)

		w := doRequest(r, http.MethodGet, "/v1/invoices", "")
		expectStatus(t, w, http.StatusOK)
	})

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"forbidden", usecase.ErrInvoiceForbidden, http.StatusForbidden},
		{"not found", usecase.ErrInvoiceNotFound, http.StatusNotFound},
		{"invalid id", usecase.ErrInvalidInvoiceID, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIInvoiceUseCase(ctrl)
			h := NewInvoiceHandler(uc)

			r := newAuthedRouter("landlord-1")
			r.GET("/v1/invoices/:id", h.GetInvoice)

			uc.EXPECT().GetInvoice(gomock.Any(), "inv-1", "landlord-1").Return(entities.Invoice{}, tc.err)

			w := doRequest(r, http.MethodGet, "/v1/invoices/inv-1", "")
			expectStatus(t, w, tc.want)
		})
	}

	t.Run("get success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := newAuthedRouter("landlord-1")
		r.GET("/v1/invoices/:id", h.GetInvoice)

		uc.EXPECT().GetInvoice(gomock.Any(), "inv-1", "landlord-1").Return(entities.Invoice{ID: "inv-1", Amount: decimal.NewFromInt(1300), Status: entities.InvoiceStatusPending}, nil)

		w := doRequest(r, http.MethodGet, "/v1/invoices/inv-1", "")
		expectStatus(t, w, http.StatusOK)
		body := decodeBody(t, w)
		if body["amount"] != "1300.00" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

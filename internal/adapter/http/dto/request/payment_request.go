package request

import (
	"encoding/json"
	"strings"

	"ikhaya/internal/usecase"

	"github.com/shopspring/decimal"
)

// RecordPaymentRequest is the body of POST /v1/invoices/{id}/payments.
//
// `mp_payload` is forwarded as-is to Mercado Pago when payment_method is
// "mercadopago" and ignored otherwise.
type RecordPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"1300.00"`
	PaymentMethod string          `json:"payment_method" example:"eft"`
	Reference     string          `json:"reference"`
	PaymentDate   string          `json:"payment_date" example:"2025-03-12"`
	MPPayload     json.RawMessage `json:"mp_payload,omitempty" swaggertype:"object"`
}

func (r RecordPaymentRequest) ToInput(invoiceID, landlordID string) (usecase.RecordPaymentInput, error) {
	date, err := parseDate(r.PaymentDate)
	if err != nil {
		return usecase.RecordPaymentInput{}, err
	}
	in := usecase.RecordPaymentInput{
		InvoiceID:     invoiceID,
		LandlordID:    landlordID,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		Reference:     r.Reference,
		PaymentDate:   date,
	}
	if p := strings.TrimSpace(string(r.MPPayload)); p != "" && p != "null" {
		in.ProviderPayload = r.MPPayload
	}
	return in, nil
}

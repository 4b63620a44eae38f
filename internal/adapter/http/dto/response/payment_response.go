package response

import (
	"encoding/json"
	"time"

	"ikhaya/internal/domain/entities"
)

type PaymentResponse struct {
	PaymentID     string    `json:"payment_id"`
	InvoiceID     string    `json:"invoice_id"`
	LandlordID    string    `json:"landlord_id"`
	Amount        string    `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	Reference     string    `json:"reference"`
	PaymentDate   time.Time `json:"payment_date"`
	CreatedAt     time.Time `json:"created_at"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	res := PaymentResponse{
		PaymentID:     p.ID,
		InvoiceID:     p.InvoiceID,
		LandlordID:    p.LandlordID,
		Amount:        p.Amount.StringFixed(2),
		PaymentMethod: p.PaymentMethod,
		Reference:     p.Reference,
		PaymentDate:   p.PaymentDate,
		CreatedAt:     p.CreatedAt,
	}
	if len(p.ProviderPayloadRaw) > 0 {
		res.MPPayloadRaw = string(p.ProviderPayloadRaw)
		var decoded map[string]interface{}
		if err := json.Unmarshal(p.ProviderPayloadRaw, &decoded); err == nil {
			res.MPPayload = decoded
		}
	}
	return res
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}

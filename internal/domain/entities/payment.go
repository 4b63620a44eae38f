package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethodMercadoPago routes the payment through the Mercado Pago gateway
// before it is recorded. Any other method is recorded as reported.
const PaymentMethodMercadoPago = "mercadopago"

// Payment is a single payment applied against one invoice. Immutable once created.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (invoice_id-index): invoice_id
//
// ProviderPayloadRaw keeps the gateway response for traceability when the
// payment was captured through Mercado Pago.
type Payment struct {
	ID            string          `json:"id"`
	InvoiceID     string          `json:"invoice_id"`
	LandlordID    string          `json:"landlord_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Reference     string          `json:"reference"`
	PaymentDate   time.Time       `json:"payment_date"`
	CreatedAt     time.Time       `json:"created_at"`

	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}

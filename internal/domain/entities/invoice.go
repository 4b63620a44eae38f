package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle of a commission invoice.
//
// pending -> paid | overdue, overdue -> paid. Nothing ever returns to pending.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// InvoiceItem is one commission line, one per active lease.
type InvoiceItem struct {
	LeaseID     string          `json:"lease_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Invoice is a landlord's monthly commission bill.
//
// Storage model (DynamoDB):
//   - PK: id (UUIDv5 of landlord_id and period, one invoice per landlord per month)
//   - GSI (status-index): status
//   - GSI (landlord_id-index): landlord_id
type Invoice struct {
	ID         string          `json:"id"`
	LandlordID string          `json:"landlord_id"`
	Period     string          `json:"period"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    time.Time       `json:"due_date"`
	Status     InvoiceStatus   `json:"status"`
	LeaseIDs   []string        `json:"lease_ids"`
	Items      []InvoiceItem   `json:"items"`
	PaidAt     *time.Time      `json:"paid_at,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// BillingPeriod formats the year-month key used to deduplicate invoices.
func BillingPeriod(t time.Time) string {
	return t.UTC().Format("2006-01")
}

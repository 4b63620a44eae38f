package response

import (
	"time"

	"ikhaya/internal/domain/entities"
)

type InvoiceItemResponse struct {
	LeaseID     string `json:"lease_id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

type InvoiceResponse struct {
	ID         string                `json:"id"`
	LandlordID string                `json:"landlord_id"`
	Period     string                `json:"period"`
	Amount     string                `json:"amount"`
	DueDate    time.Time             `json:"due_date"`
	Status     string                `json:"status"`
	LeaseIDs   []string              `json:"lease_ids"`
	Items      []InvoiceItemResponse `json:"items"`
	PaidAt     *time.Time            `json:"paid_at,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, InvoiceItemResponse{LeaseID: it.LeaseID, Description: it.Description, Amount: it.Amount.StringFixed(2)})
	}
	leaseIDs := inv.LeaseIDs
	if leaseIDs == nil {
		leaseIDs = []string{}
	}
	return InvoiceResponse{
		ID:         inv.ID,
		LandlordID: inv.LandlordID,
		Period:     inv.Period,
		Amount:     inv.Amount.StringFixed(2),
		DueDate:    inv.DueDate,
		Status:     string(inv.Status),
		LeaseIDs:   leaseIDs,
		Items:      items,
		PaidAt:     inv.PaidAt,
		CreatedAt:  inv.CreatedAt,
		UpdatedAt:  inv.UpdatedAt,
	}
}

func FromInvoices(invs []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, FromInvoice(inv))
	}
	return out
}

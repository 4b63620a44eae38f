package response

import (
	"time"

	"ikhaya/internal/domain/entities"
)

type LeaseResponse struct {
	ID               string     `json:"id"`
	PropertyID       string     `json:"property_id"`
	LandlordID       string     `json:"landlord_id"`
	TenantID         string     `json:"tenant_id"`
	RentAmount       string     `json:"rent_amount"`
	Deposit          string     `json:"deposit"`
	StartDate        string     `json:"start_date"`
	EndDate          string     `json:"end_date"`
	Terms            string     `json:"terms"`
	Status           string     `json:"status"`
	LandlordSigned   bool       `json:"landlord_signed"`
	TenantSigned     bool       `json:"tenant_signed"`
	LandlordSignedAt *time.Time `json:"landlord_signed_at,omitempty"`
	TenantSignedAt   *time.Time `json:"tenant_signed_at,omitempty"`
	ActivatedAt      *time.Time `json:"activated_at,omitempty"`
	TerminatedAt     *time.Time `json:"terminated_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// FromLease renders a lease. Signature values stay server-side; callers only
// see whether each party signed.
func FromLease(l entities.Lease) LeaseResponse {
	return LeaseResponse{
		ID:               l.ID,
		PropertyID:       l.PropertyID,
		LandlordID:       l.LandlordID,
		TenantID:         l.TenantID,
		RentAmount:       l.RentAmount.StringFixed(2),
		Deposit:          l.Deposit.StringFixed(2),
		StartDate:        l.StartDate.UTC().Format(time.DateOnly),
		EndDate:          l.EndDate.UTC().Format(time.DateOnly),
		Terms:            l.Terms,
		Status:           string(l.Status),
		LandlordSigned:   l.LandlordSignature != "",
		TenantSigned:     l.TenantSignature != "",
		LandlordSignedAt: l.LandlordSignedAt,
		TenantSignedAt:   l.TenantSignedAt,
		ActivatedAt:      l.ActivatedAt,
		TerminatedAt:     l.TerminatedAt,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func FromLeases(ls []entities.Lease) []LeaseResponse {
	out := make([]LeaseResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, FromLease(l))
	}
	return out
}

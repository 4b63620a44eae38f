package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeaseStatus represents the lifecycle of a lease agreement.
//
// Transitions:
//   - draft -> pending_signatures (first signature)
//   - pending_signatures -> active (both parties signed)
//   - active -> terminated (landlord request)
//   - active -> expired (end date passed, expiry job)
type LeaseStatus string

const (
	LeaseStatusDraft             LeaseStatus = "draft"
	LeaseStatusPendingSignatures LeaseStatus = "pending_signatures"
	LeaseStatusActive            LeaseStatus = "active"
	LeaseStatusExpired           LeaseStatus = "expired"
	LeaseStatusTerminated        LeaseStatus = "terminated"
)

// LeaseParty identifies which side of the agreement a user is on.
type LeaseParty string

const (
	LeasePartyLandlord LeaseParty = "landlord"
	LeasePartyTenant   LeaseParty = "tenant"
)

// Lease is a tenancy agreement between one landlord and one tenant for one property.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (status-index): status
//   - GSI (landlord_id-index): landlord_id
//   - GSI (tenant_id-index): tenant_id
//
// Signatures are empty until signed and never overwritten afterwards.
type Lease struct {
	ID         string          `json:"id"`
	PropertyID string          `json:"property_id"`
	LandlordID string          `json:"landlord_id"`
	TenantID   string          `json:"tenant_id"`
	RentAmount decimal.Decimal `json:"rent_amount"`
	Deposit    decimal.Decimal `json:"deposit"`
	StartDate  time.Time       `json:"start_date"`
	EndDate    time.Time       `json:"end_date"`
	Terms      string          `json:"terms"`

	LandlordSignature string     `json:"landlord_signature,omitempty"`
	TenantSignature   string     `json:"tenant_signature,omitempty"`
	LandlordSignedAt  *time.Time `json:"landlord_signed_at,omitempty"`
	TenantSignedAt    *time.Time `json:"tenant_signed_at,omitempty"`

	Status       LeaseStatus `json:"status"`
	ActivatedAt  *time.Time  `json:"activated_at,omitempty"`
	TerminatedAt *time.Time  `json:"terminated_at,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// PartyOf reports which side userID is on, if any.
func (l Lease) PartyOf(userID string) (LeaseParty, bool) {
	switch userID {
	case "":
		return "", false
	case l.LandlordID:
		return LeasePartyLandlord, true
	case l.TenantID:
		return LeasePartyTenant, true
	}
	return "", false
}

// SignatureOf returns the signature recorded for the given party.
func (l Lease) SignatureOf(party LeaseParty) string {
	if party == LeasePartyLandlord {
		return l.LandlordSignature
	}
	return l.TenantSignature
}

// FullySigned reports whether both parties have signed.
func (l Lease) FullySigned() bool {
	return l.LandlordSignature != "" && l.TenantSignature != ""
}

// Occupies reports whether the lease currently binds its property.
func (l Lease) Occupies() bool {
	return l.Status == LeaseStatusActive
}

package interfaces

import (
	"context"
	"ikhaya/internal/domain/entities"
	"time"
)

// ILeaseRepository abstracts DynamoDB persistence for Lease.
//
// Lookups return a zero Lease (ID == "") when the document does not exist.
// Writes that depend on the current state are conditional and return
// ErrConditionFailed when the condition does not hold:
//   - RecordSignature: the party has not signed yet and status is draft or pending_signatures
//   - UpdateStatus: status still equals from
type ILeaseRepository interface {
	Create(ctx context.Context, l entities.Lease) (entities.Lease, error)
	GetByID(ctx context.Context, id string) (entities.Lease, error)
	ListByStatus(ctx context.Context, status entities.LeaseStatus) ([]entities.Lease, error)
	ListByLandlordID(ctx context.Context, landlordID string) ([]entities.Lease, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Lease, error)
	RecordSignature(ctx context.Context, id string, party entities.LeaseParty, signature string, signedAt time.Time) (entities.Lease, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.LeaseStatus, at time.Time) (entities.Lease, error)
}

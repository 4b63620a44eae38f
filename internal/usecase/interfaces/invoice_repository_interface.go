package interfaces

import (
	"context"
	"ikhaya/internal/domain/entities"
	"time"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
//   - Create fails with ErrConditionFailed when an invoice with the same id
//     (landlord + period) already exists.
//   - UpdateStatus only applies when the current status is one of from, and
//     fails with ErrConditionFailed otherwise.
type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByStatus(ctx context.Context, status entities.InvoiceStatus) ([]entities.Invoice, error)
	ListByLandlordID(ctx context.Context, landlordID string) ([]entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, to entities.InvoiceStatus, from []entities.InvoiceStatus, at time.Time) (entities.Invoice, error)
}

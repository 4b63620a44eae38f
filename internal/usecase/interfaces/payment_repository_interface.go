package interfaces

import (
	"context"
	"ikhaya/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error)
}

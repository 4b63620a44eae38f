package interfaces

import (
	"context"
	"ikhaya/internal/domain/entities"
)

// IPropertyRepository reads and writes the occupancy status of a property.
// UpdateStatus returns a zero Property when the property does not exist.
type IPropertyRepository interface {
	GetByID(ctx context.Context, id string) (entities.Property, error)
	UpdateStatus(ctx context.Context, id string, status entities.PropertyStatus) (entities.Property, error)
}

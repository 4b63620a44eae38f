package entities

import "time"

// PropertyStatus is the occupancy state of a listed property.
//
// Only available/occupied are driven by the lease workflow; the listing
// subsystem owns the rest.
type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusOccupied  PropertyStatus = "occupied"
)

// Property is the slice of a listing this service reads and writes.
// Only status and updated_at are ever written here.
type Property struct {
	ID        string         `json:"id"`
	Status    PropertyStatus `json:"status"`
	UpdatedAt time.Time      `json:"updated_at"`
}

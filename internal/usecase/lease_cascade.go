package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"ikhaya/internal/domain/entities"
	"ikhaya/internal/usecase/interfaces"
)

// leaseCascade holds the derived writes that follow a lease status change:
// the property occupancy flip and the notifications to both parties.
//
// The lease write is authoritative. Property and notification failures are
// logged and left to ReconcileOccupancy.
type leaseCascade struct {
	leases     interfaces.ILeaseRepository
	properties interfaces.IPropertyRepository
	sink       interfaces.INotificationSink
	now        func() time.Time
}

// activate moves a fully signed lease from pending_signatures to active.
// When another writer activated it first, the stored lease is returned and
// no cascade runs.
func (c *leaseCascade) activate(ctx context.Context, l entities.Lease) (entities.Lease, bool, error) {
	if !l.FullySigned() || l.Status != entities.LeaseStatusPendingSignatures {
		return l, false, nil
	}

	activated, err := c.leases.UpdateStatus(ctx, l.ID, entities.LeaseStatusPendingSignatures, entities.LeaseStatusActive, c.now().UTC())
	if errors.Is(err, interfaces.ErrConditionFailed) {
		log.Printf("[lease][cascade] activation lost race lease_id=%s", l.ID)
		current, gErr := c.leases.GetByID(ctx, l.ID)
		if gErr != nil {
			return l, false, gErr
		}
		return current, false, nil
	}
	if err != nil {
		return l, false, err
	}
	log.Printf("[lease][cascade] activated lease_id=%s property_id=%s", activated.ID, activated.PropertyID)

	c.setPropertyStatus(ctx, activated.PropertyID, entities.PropertyStatusOccupied)

	for _, userID := range []string{activated.LandlordID, activated.TenantID} {
		notifyBestEffort(ctx, c.sink, entities.Notification{
			UserID:   userID,
			Type:     entities.NotificationTypeLeaseActivated,
			Title:    "Lease Agreement Activated",
			Message:  fmt.Sprintf("Both parties have signed. The lease for property %s is now active.", activated.PropertyID),
			Link:     leaseLink(activated.ID),
			Priority: entities.NotificationPriorityHigh,
		})
	}
	return activated, true, nil
}

// release returns the property of an ended lease to the market unless another
// active lease, such as a renewal, still holds it. When that cannot be checked
// the property is left as is for ReconcileOccupancy.
func (c *leaseCascade) release(ctx context.Context, l entities.Lease) {
	held, err := c.heldByOtherLease(ctx, l)
	if err != nil {
		log.Printf("[lease][cascade] active lease lookup failed property_id=%s lease_id=%s err=%v", l.PropertyID, l.ID, err)
		return
	}
	if held != "" {
		log.Printf("[lease][cascade] property still leased property_id=%s lease_id=%s", l.PropertyID, held)
		return
	}
	c.setPropertyStatus(ctx, l.PropertyID, entities.PropertyStatusAvailable)
}

// heldByOtherLease returns the id of an active lease other than l bound to
// l's property, or "" when there is none.
func (c *leaseCascade) heldByOtherLease(ctx context.Context, l entities.Lease) (string, error) {
	active, err := c.leases.ListByStatus(ctx, entities.LeaseStatusActive)
	if err != nil {
		return "", err
	}
	for _, other := range active {
		if other.ID != l.ID && other.PropertyID == l.PropertyID && other.Occupies() {
			return other.ID, nil
		}
	}
	return "", nil
}

func (c *leaseCascade) setPropertyStatus(ctx context.Context, propertyID string, status entities.PropertyStatus) bool {
	if c.properties == nil {
		log.Printf("[lease][cascade] property repository not configured property_id=%s", propertyID)
		return false
	}
	updated, err := c.properties.UpdateStatus(ctx, propertyID, status)
	if err != nil {
		log.Printf("[lease][cascade] property status update failed property_id=%s status=%s err=%v", propertyID, status, err)
		return false
	}
	if updated.ID == "" {
		log.Printf("[lease][cascade] property not found property_id=%s status=%s", propertyID, status)
		return false
	}
	log.Printf("[lease][cascade] property status updated property_id=%s status=%s", propertyID, status)
	return true
}

func leaseLink(id string) string {
	return "/leases/" + id
}

package usecase

import (
	"context"
	"errors"
	"log"

	"ikhaya/internal/domain/entities"
)

// OccupancyReport summarizes one reconciliation sweep.
type OccupancyReport struct {
	LeasesActivated    int `json:"leases_activated"`
	PropertiesOccupied int `json:"properties_occupied"`
	PropertiesReleased int `json:"properties_released"`
}

// ReconcileOccupancy heals partial cascades:
//   - fully signed leases stuck in pending_signatures are activated
//   - properties bound to an active lease are set to occupied
//   - properties whose leases all ended are set back to available
//
// Per-item failures are logged and collected; the sweep always visits every lease.
func (u *LeaseUseCase) ReconcileOccupancy(ctx context.Context) (OccupancyReport, error) {
	log.Printf("[lease][occupancy] sweep start")
	var report OccupancyReport
	var errs []error

	pending, err := u.repo.ListByStatus(ctx, entities.LeaseStatusPendingSignatures)
	if err != nil {
		return report, err
	}
	for _, l := range pending {
		if !l.FullySigned() {
			continue
		}
		_, activated, err := u.cascade.activate(ctx, l)
		if err != nil {
			log.Printf("[lease][occupancy] activation retry failed lease_id=%s err=%v", l.ID, err)
			errs = append(errs, err)
			continue
		}
		if activated {
			report.LeasesActivated++
		}
	}

	active, err := u.repo.ListByStatus(ctx, entities.LeaseStatusActive)
	if err != nil {
		return report, err
	}
	occupied := make(map[string]struct{}, len(active))
	for _, l := range active {
		if l.Occupies() {
			occupied[l.PropertyID] = struct{}{}
		}
	}
	for propertyID := range occupied {
		changed, err := u.ensurePropertyStatus(ctx, propertyID, entities.PropertyStatusOccupied)
		if err != nil {
			errs = append(errs, err)
		}
		if changed {
			report.PropertiesOccupied++
		}
	}

	released := make(map[string]struct{})
	for _, status := range []entities.LeaseStatus{entities.LeaseStatusTerminated, entities.LeaseStatusExpired} {
		ended, err := u.repo.ListByStatus(ctx, status)
		if err != nil {
			return report, err
		}
		for _, l := range ended {
			if _, stillBound := occupied[l.PropertyID]; stillBound {
				continue
			}
			if _, done := released[l.PropertyID]; done {
				continue
			}
			released[l.PropertyID] = struct{}{}
			changed, err := u.ensurePropertyStatus(ctx, l.PropertyID, entities.PropertyStatusAvailable)
			if err != nil {
				errs = append(errs, err)
			}
			if changed {
				report.PropertiesReleased++
			}
		}
	}

	log.Printf("[lease][occupancy] sweep done activated=%d occupied=%d released=%d errors=%d", report.LeasesActivated, report.PropertiesOccupied, report.PropertiesReleased, len(errs))
	return report, errors.Join(errs...)
}

// ensurePropertyStatus only rewrites the property when it disagrees with want.
// Released properties are only touched while they are still occupied.
func (u *LeaseUseCase) ensurePropertyStatus(ctx context.Context, propertyID string, want entities.PropertyStatus) (bool, error) {
	if u.cascade.properties == nil {
		return false, nil
	}
	p, err := u.cascade.properties.GetByID(ctx, propertyID)
	if err != nil {
		log.Printf("[lease][occupancy] property load failed property_id=%s err=%v", propertyID, err)
		return false, err
	}
	if p.ID == "" || p.Status == want {
		return false, nil
	}
	if want == entities.PropertyStatusAvailable && p.Status != entities.PropertyStatusOccupied {
		return false, nil
	}
	log.Printf("[lease][occupancy] repairing property_id=%s from=%s to=%s", propertyID, p.Status, want)
	return u.cascade.setPropertyStatus(ctx, propertyID, want), nil
}

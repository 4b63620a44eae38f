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

// ILeaseExpiryUseCase holds the daily lease scans.
//
//   - CheckExpiringLeases only notifies; it never changes a lease.
//   - ExpireEndedLeases moves active leases past their end date to expired.
type ILeaseExpiryUseCase interface {
	CheckExpiringLeases(ctx context.Context) (int, error)
	ExpireEndedLeases(ctx context.Context) (int, error)
}

type LeaseExpiryUseCase struct {
	repo    interfaces.ILeaseRepository
	policy  BillingPolicy
	cascade *leaseCascade
	now     func() time.Time
}

var _ ILeaseExpiryUseCase = (*LeaseExpiryUseCase)(nil)

func NewLeaseExpiryUseCase(repo interfaces.ILeaseRepository, properties interfaces.IPropertyRepository, sink interfaces.INotificationSink, policy BillingPolicy) *LeaseExpiryUseCase {
	u := &LeaseExpiryUseCase{repo: repo, policy: policy, now: time.Now}
	u.cascade = &leaseCascade{leases: repo, properties: properties, sink: sink, now: func() time.Time { return u.now() }}
	return u
}

// CheckExpiringLeases notifies both parties of every active lease ending
// within the expiry window. It returns the number of leases notified.
func (u *LeaseExpiryUseCase) CheckExpiringLeases(ctx context.Context) (int, error) {
	now := u.now().UTC()
	limit := now.Add(u.policy.ExpiryWindow)
	log.Printf("[lease][expiry] check start window_end=%s", limit.Format(time.RFC3339))

	active, err := u.repo.ListByStatus(ctx, entities.LeaseStatusActive)
	if err != nil {
		log.Printf("[lease][expiry] list active failed err=%v", err)
		return 0, err
	}

	count := 0
	for _, l := range active {
		if l.EndDate.Before(now) || l.EndDate.After(limit) {
			continue
		}
		days := daysBetween(now, l.EndDate)
		for _, userID := range []string{l.LandlordID, l.TenantID} {
			notifyBestEffort(ctx, u.cascade.sink, entities.Notification{
				UserID:   userID,
				Type:     entities.NotificationTypeLeaseExpiring,
				Title:    "Lease Expiring Soon",
				Message:  fmt.Sprintf("The lease for property %s expires in %d day(s), on %s.", l.PropertyID, days, l.EndDate.Format("2006-01-02")),
				Link:     leaseLink(l.ID),
				Priority: expiryPriority(days),
			})
		}
		count++
	}
	log.Printf("[lease][expiry] check done notified_leases=%d", count)
	return count, nil
}

// ExpireEndedLeases marks active leases whose end date has passed as expired
// and releases their properties. It returns the number of leases expired.
func (u *LeaseExpiryUseCase) ExpireEndedLeases(ctx context.Context) (int, error) {
	now := u.now().UTC()
	log.Printf("[lease][expiry] expire start now=%s", now.Format(time.RFC3339))

	active, err := u.repo.ListByStatus(ctx, entities.LeaseStatusActive)
	if err != nil {
		return 0, err
	}

	var errs []error
	count := 0
	for _, l := range active {
		if !l.EndDate.Before(now) {
			continue
		}
		expired, err := u.repo.UpdateStatus(ctx, l.ID, entities.LeaseStatusActive, entities.LeaseStatusExpired, now)
		if errors.Is(err, interfaces.ErrConditionFailed) {
			log.Printf("[lease][expiry] lease changed concurrently lease_id=%s", l.ID)
			continue
		}
		if err != nil {
			log.Printf("[lease][expiry] expire failed lease_id=%s err=%v", l.ID, err)
			errs = append(errs, err)
			continue
		}
		count++
		u.cascade.release(ctx, expired)
		for _, userID := range []string{expired.LandlordID, expired.TenantID} {
			notifyBestEffort(ctx, u.cascade.sink, entities.Notification{
				UserID:   userID,
				Type:     entities.NotificationTypeLeaseExpired,
				Title:    "Lease Expired",
				Message:  fmt.Sprintf("The lease for property %s ended on %s.", expired.PropertyID, expired.EndDate.Format("2006-01-02")),
				Link:     leaseLink(expired.ID),
				Priority: entities.NotificationPriorityMedium,
			})
		}
	}
	log.Printf("[lease][expiry] expire done expired=%d errors=%d", count, len(errs))
	return count, errors.Join(errs...)
}

func expiryPriority(days int) entities.NotificationPriority {
	if days <= 7 {
		return entities.NotificationPriorityHigh
	}
	return entities.NotificationPriorityMedium
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"ikhaya/internal/domain/entities"
	"ikhaya/internal/usecase/interfaces"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidLeaseID        = errors.New("invalid lease id")
	ErrLeaseNotFound         = errors.New("lease not found")
	ErrLeasePropertyRequired = errors.New("Property is required")
	ErrLeaseLandlordRequired = errors.New("Landlord is required")
	ErrLeaseTenantRequired   = errors.New("Tenant is required")
	ErrLeaseInvalidRent      = errors.New("Rent amount must be greater than 0")
	ErrLeaseNegativeDeposit  = errors.New("Deposit cannot be negative")
	ErrLeaseDepositTooHigh   = errors.New("Deposit exceeds the maximum allowed amount")
	ErrLeaseDatesRequired    = errors.New("Start date and end date are required")
	ErrLeaseInvalidDates     = errors.New("End date must be after start date")
	ErrLeaseTermsRequired    = errors.New("Lease terms are required")

	ErrSignatureRequired     = errors.New("Signature is required")
	ErrNotLeaseParty         = errors.New("Only the landlord or tenant of this lease can perform this action")
	ErrLandlordAlreadySigned = errors.New("Landlord has already signed this lease")
	ErrTenantAlreadySigned   = errors.New("Tenant has already signed this lease")
	ErrLeaseNotSignable      = errors.New("Lease can no longer be signed")

	ErrLeaseNotActive   = errors.New("Only active leases can be terminated")
	ErrNotLeaseLandlord = errors.New("Only the landlord can terminate this lease")
)

// CreateLeaseInput carries the fields of a new lease.
type CreateLeaseInput struct {
	LandlordID string
	TenantID   string
	PropertyID string
	RentAmount decimal.Decimal
	Deposit    decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
	Terms      string
}

// ILeaseUseCase exposes the lease record and signature workflow.
//
//   - CreateLease validates and stores a draft lease.
//   - SignLease records one party's signature and activates the lease once both signed.
//   - TerminateLease ends an active lease on the landlord's request.
//   - ReconcileOccupancy re-derives property status from the leases bound to it.
type ILeaseUseCase interface {
	CreateLease(ctx context.Context, in CreateLeaseInput) (entities.Lease, error)
	GetLease(ctx context.Context, id, requesterID string) (entities.Lease, error)
	ListLeasesForUser(ctx context.Context, userID string) ([]entities.Lease, error)
	SignLease(ctx context.Context, id, signerID, signature string) (entities.Lease, error)
	TerminateLease(ctx context.Context, id, requesterID string) (entities.Lease, error)
	ReconcileOccupancy(ctx context.Context) (OccupancyReport, error)
}

type LeaseUseCase struct {
	repo    interfaces.ILeaseRepository
	policy  BillingPolicy
	cascade *leaseCascade
	now     func() time.Time
}

var _ ILeaseUseCase = (*LeaseUseCase)(nil)

func NewLeaseUseCase(repo interfaces.ILeaseRepository, properties interfaces.IPropertyRepository, sink interfaces.INotificationSink, policy BillingPolicy) *LeaseUseCase {
	u := &LeaseUseCase{repo: repo, policy: policy, now: time.Now}
	u.cascade = &leaseCascade{leases: repo, properties: properties, sink: sink, now: u.clock}
	return u
}

func (u *LeaseUseCase) clock() time.Time {
	return u.now()
}

func (u *LeaseUseCase) CreateLease(ctx context.Context, in CreateLeaseInput) (entities.Lease, error) {
	in.PropertyID = strings.TrimSpace(in.PropertyID)
	in.LandlordID = strings.TrimSpace(in.LandlordID)
	in.TenantID = strings.TrimSpace(in.TenantID)
	if err := u.validateCreate(in); err != nil {
		log.Printf("[lease][usecase] create rejected landlord_id=%s property_id=%s err=%v", in.LandlordID, in.PropertyID, err)
		return entities.Lease{}, err
	}

	now := u.now().UTC()
	l := entities.Lease{
		ID:         uuid.NewString(),
		PropertyID: in.PropertyID,
		LandlordID: in.LandlordID,
		TenantID:   in.TenantID,
		RentAmount: in.RentAmount,
		Deposit:    in.Deposit,
		StartDate:  in.StartDate.UTC(),
		EndDate:    in.EndDate.UTC(),
		Terms:      in.Terms,
		Status:     entities.LeaseStatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := u.repo.Create(ctx, l)
	if err != nil {
		log.Printf("[lease][usecase] create failed lease_id=%s err=%v", l.ID, err)
		return entities.Lease{}, err
	}
	log.Printf("[lease][usecase] create success lease_id=%s landlord_id=%s tenant_id=%s property_id=%s", created.ID, created.LandlordID, created.TenantID, created.PropertyID)
	return created, nil
}

// validateCreate checks preconditions in a fixed order; the first failure wins.
func (u *LeaseUseCase) validateCreate(in CreateLeaseInput) error {
	switch {
	case in.PropertyID == "":
		return ErrLeasePropertyRequired
	case in.LandlordID == "":
		return ErrLeaseLandlordRequired
	case in.TenantID == "":
		return ErrLeaseTenantRequired
	case !in.RentAmount.IsPositive():
		return ErrLeaseInvalidRent
	case in.Deposit.IsNegative():
		return ErrLeaseNegativeDeposit
	case u.policy.MaxDeposit.IsPositive() && in.Deposit.GreaterThan(u.policy.MaxDeposit):
		return fmt.Errorf("%w (%s)", ErrLeaseDepositTooHigh, u.policy.MaxDeposit.StringFixed(2))
	case in.StartDate.IsZero() || in.EndDate.IsZero():
		return ErrLeaseDatesRequired
	case !in.EndDate.After(in.StartDate):
		return ErrLeaseInvalidDates
	case strings.TrimSpace(in.Terms) == "":
		return ErrLeaseTermsRequired
	}
	return nil
}

func (u *LeaseUseCase) GetLease(ctx context.Context, id, requesterID string) (entities.Lease, error) {
	l, err := u.load(ctx, id)
	if err != nil {
		return entities.Lease{}, err
	}
	if _, ok := l.PartyOf(requesterID); !ok {
		return entities.Lease{}, ErrNotLeaseParty
	}
	return l, nil
}

// ListLeasesForUser returns every lease where userID is landlord or tenant, newest first.
func (u *LeaseUseCase) ListLeasesForUser(ctx context.Context, userID string) ([]entities.Lease, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrNotLeaseParty
	}

	asLandlord, err := u.repo.ListByLandlordID(ctx, userID)
	if err != nil {
		return nil, err
	}
	asTenant, err := u.repo.ListByTenantID(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(asLandlord)+len(asTenant))
	out := make([]entities.Lease, 0, len(asLandlord)+len(asTenant))
	for _, l := range append(asLandlord, asTenant...) {
		if _, dup := seen[l.ID]; dup {
			continue
		}
		seen[l.ID] = struct{}{}
		out = append(out, l)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// SignLease records the signer's signature. The signature write is a
// check-and-set on the party's field, so a double submit cannot overwrite it.
// When the write leaves both signatures present the lease is activated in
// the same call.
func (u *LeaseUseCase) SignLease(ctx context.Context, id, signerID, signature string) (entities.Lease, error) {
	log.Printf("[lease][usecase] sign start lease_id=%s signer_id=%s", id, signerID)
	l, err := u.load(ctx, id)
	if err != nil {
		return entities.Lease{}, err
	}
	signature = strings.TrimSpace(signature)
	if signature == "" {
		return entities.Lease{}, ErrSignatureRequired
	}
	party, ok := l.PartyOf(strings.TrimSpace(signerID))
	if !ok {
		log.Printf("[lease][usecase] sign rejected lease_id=%s signer_id=%s reason=not-a-party", l.ID, signerID)
		return entities.Lease{}, ErrNotLeaseParty
	}
	if l.SignatureOf(party) != "" {
		return entities.Lease{}, alreadySignedError(party)
	}
	if l.Status != entities.LeaseStatusDraft && l.Status != entities.LeaseStatusPendingSignatures {
		return entities.Lease{}, ErrLeaseNotSignable
	}

	signed, err := u.repo.RecordSignature(ctx, l.ID, party, signature, u.now().UTC())
	if errors.Is(err, interfaces.ErrConditionFailed) {
		log.Printf("[lease][usecase] sign condition failed lease_id=%s party=%s", l.ID, party)
		return entities.Lease{}, alreadySignedError(party)
	}
	if err != nil {
		log.Printf("[lease][usecase] sign failed lease_id=%s party=%s err=%v", l.ID, party, err)
		return entities.Lease{}, err
	}
	if signed.ID == "" {
		return entities.Lease{}, ErrLeaseNotFound
	}
	log.Printf("[lease][usecase] sign success lease_id=%s party=%s status=%s", signed.ID, party, signed.Status)

	activated, _, err := u.cascade.activate(ctx, signed)
	if err != nil {
		// The signature is stored; ReconcileOccupancy retries the activation.
		log.Printf("[lease][usecase] activation failed lease_id=%s err=%v", signed.ID, err)
		return signed, nil
	}
	return activated, nil
}

// TerminateLease ends an active lease. Only the landlord may terminate.
func (u *LeaseUseCase) TerminateLease(ctx context.Context, id, requesterID string) (entities.Lease, error) {
	log.Printf("[lease][usecase] terminate start lease_id=%s requester_id=%s", id, requesterID)
	l, err := u.load(ctx, id)
	if err != nil {
		return entities.Lease{}, err
	}
	if l.Status != entities.LeaseStatusActive {
		return entities.Lease{}, ErrLeaseNotActive
	}
	if strings.TrimSpace(requesterID) != l.LandlordID {
		return entities.Lease{}, ErrNotLeaseLandlord
	}

	terminated, err := u.repo.UpdateStatus(ctx, l.ID, entities.LeaseStatusActive, entities.LeaseStatusTerminated, u.now().UTC())
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.Lease{}, ErrLeaseNotActive
	}
	if err != nil {
		log.Printf("[lease][usecase] terminate failed lease_id=%s err=%v", l.ID, err)
		return entities.Lease{}, err
	}
	log.Printf("[lease][usecase] terminate success lease_id=%s property_id=%s", terminated.ID, terminated.PropertyID)

	u.cascade.release(ctx, terminated)
	notifyBestEffort(ctx, u.cascade.sink, entities.Notification{
		UserID:   terminated.TenantID,
		Type:     entities.NotificationTypeLeaseTerminated,
		Title:    "Lease Terminated",
		Message:  fmt.Sprintf("The landlord has terminated the lease for property %s.", terminated.PropertyID),
		Link:     leaseLink(terminated.ID),
		Priority: entities.NotificationPriorityHigh,
	})
	return terminated, nil
}

func (u *LeaseUseCase) load(ctx context.Context, id string) (entities.Lease, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lease{}, ErrInvalidLeaseID
	}
	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lease{}, err
	}
	if l.ID == "" {
		return entities.Lease{}, ErrLeaseNotFound
	}
	return l, nil
}

func alreadySignedError(party entities.LeaseParty) error {
	if party == entities.LeasePartyLandlord {
		return ErrLandlordAlreadySigned
	}
	return ErrTenantAlreadySigned
}

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
	ErrInvalidInvoiceID = errors.New("invalid invoice id")
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrInvoiceForbidden = errors.New("Only the landlord of this invoice can access it")
)

// invoiceIDNamespace seeds the deterministic invoice ids: one id per
// landlord and billing period.
var invoiceIDNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://ikhaya.app/invoices"))

// InvoiceID returns the id of the invoice billing landlordID for period.
func InvoiceID(landlordID, period string) string {
	return uuid.NewSHA1(invoiceIDNamespace, []byte(landlordID+"|"+period)).String()
}

// IInvoiceUseCase exposes the commission invoicing workflow.
//
//   - GenerateMonthlyInvoices bills every landlord with active leases once per period.
//   - SendOverduePaymentReminders flags pending invoices past the overdue threshold.
type IInvoiceUseCase interface {
	GenerateMonthlyInvoices(ctx context.Context) ([]string, error)
	SendOverduePaymentReminders(ctx context.Context) (int, error)
	GetInvoice(ctx context.Context, id, requesterID string) (entities.Invoice, error)
	ListInvoicesForLandlord(ctx context.Context, landlordID string) ([]entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo   interfaces.IInvoiceRepository
	leases interfaces.ILeaseRepository
	sink   interfaces.INotificationSink
	policy BillingPolicy
	now    func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, leases interfaces.ILeaseRepository, sink interfaces.INotificationSink, policy BillingPolicy) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, leases: leases, sink: sink, policy: policy, now: time.Now}
}

// GenerateMonthlyInvoices creates one pending invoice per landlord holding at
// least one active lease and returns the ids created by this run. Landlords
// already billed for the current period are skipped, so the job may be re-run.
func (u *InvoiceUseCase) GenerateMonthlyInvoices(ctx context.Context) ([]string, error) {
	now := u.now().UTC()
	period := entities.BillingPeriod(now)
	log.Printf("[invoice][usecase] generate start period=%s", period)

	active, err := u.leases.ListByStatus(ctx, entities.LeaseStatusActive)
	if err != nil {
		log.Printf("[invoice][usecase] list active leases failed err=%v", err)
		return nil, err
	}

	byLandlord := make(map[string][]entities.Lease)
	for _, l := range active {
		byLandlord[l.LandlordID] = append(byLandlord[l.LandlordID], l)
	}
	landlords := make([]string, 0, len(byLandlord))
	for id := range byLandlord {
		landlords = append(landlords, id)
	}
	sort.Strings(landlords)

	var created []string
	var errs []error
	for _, landlordID := range landlords {
		inv := u.buildInvoice(landlordID, period, byLandlord[landlordID], now)

		saved, err := u.repo.Create(ctx, inv)
		if errors.Is(err, interfaces.ErrConditionFailed) {
			log.Printf("[invoice][usecase] already billed landlord_id=%s period=%s invoice_id=%s", landlordID, period, inv.ID)
			continue
		}
		if err != nil {
			log.Printf("[invoice][usecase] create failed landlord_id=%s period=%s err=%v", landlordID, period, err)
			errs = append(errs, fmt.Errorf("landlord %s: %w", landlordID, err))
			continue
		}
		created = append(created, saved.ID)
		log.Printf("[invoice][usecase] created invoice_id=%s landlord_id=%s leases=%d amount=%s", saved.ID, landlordID, len(saved.Items), saved.Amount.StringFixed(2))

		notifyBestEffort(ctx, u.sink, entities.Notification{
			UserID: landlordID,
			Type:   entities.NotificationTypePaymentDue,
			Title:  "New Commission Invoice",
			Message: fmt.Sprintf("Your commission invoice for %s totals %s across %d lease(s). Payment is due by %s.",
				period, saved.Amount.StringFixed(2), len(saved.Items), saved.DueDate.Format("2006-01-02")),
			Link:     invoiceLink(saved.ID),
			Priority: entities.NotificationPriorityMedium,
		})
	}
	log.Printf("[invoice][usecase] generate done period=%s created=%d errors=%d", period, len(created), len(errs))
	return created, errors.Join(errs...)
}

func (u *InvoiceUseCase) buildInvoice(landlordID, period string, leases []entities.Lease, now time.Time) entities.Invoice {
	sort.SliceStable(leases, func(i, j int) bool {
		if leases[i].CreatedAt.Equal(leases[j].CreatedAt) {
			return leases[i].ID < leases[j].ID
		}
		return leases[i].CreatedAt.Before(leases[j].CreatedAt)
	})

	ratePct := u.policy.CommissionRate.Mul(decimal.NewFromInt(100))
	total := decimal.Zero
	items := make([]entities.InvoiceItem, 0, len(leases))
	leaseIDs := make([]string, 0, len(leases))
	for _, l := range leases {
		commission := Commission(l.RentAmount, u.policy.CommissionRate)
		total = total.Add(commission)
		leaseIDs = append(leaseIDs, l.ID)
		items = append(items, entities.InvoiceItem{
			LeaseID:     l.ID,
			Description: fmt.Sprintf("Commission for property %s (%s%% of rent %s)", l.PropertyID, ratePct.String(), l.RentAmount.StringFixed(2)),
			Amount:      commission,
		})
	}

	return entities.Invoice{
		ID:         InvoiceID(landlordID, period),
		LandlordID: landlordID,
		Period:     period,
		Amount:     total,
		DueDate:    now.Add(u.policy.InvoiceGracePeriod),
		Status:     entities.InvoiceStatusPending,
		LeaseIDs:   leaseIDs,
		Items:      items,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Commission is rent × rate rounded half away from zero to cents.
func Commission(rent, rate decimal.Decimal) decimal.Decimal {
	return rent.Mul(rate).Round(2)
}

// SendOverduePaymentReminders flips pending invoices whose due date lies at
// least OverdueThreshold in the past to overdue and reminds the landlord.
// Invoices paid in the meantime are left alone by the conditional write.
func (u *InvoiceUseCase) SendOverduePaymentReminders(ctx context.Context) (int, error) {
	now := u.now().UTC()
	log.Printf("[invoice][overdue] check start")

	pending, err := u.repo.ListByStatus(ctx, entities.InvoiceStatusPending)
	if err != nil {
		log.Printf("[invoice][overdue] list pending failed err=%v", err)
		return 0, err
	}

	var errs []error
	count := 0
	for _, inv := range pending {
		if now.Sub(inv.DueDate) < u.policy.OverdueThreshold {
			continue
		}
		updated, err := u.repo.UpdateStatus(ctx, inv.ID, entities.InvoiceStatusOverdue, []entities.InvoiceStatus{entities.InvoiceStatusPending}, now)
		if errors.Is(err, interfaces.ErrConditionFailed) {
			log.Printf("[invoice][overdue] invoice no longer pending invoice_id=%s", inv.ID)
			continue
		}
		if err != nil {
			log.Printf("[invoice][overdue] update failed invoice_id=%s err=%v", inv.ID, err)
			errs = append(errs, err)
			continue
		}
		count++

		days := daysBetween(updated.DueDate, now)
		notifyBestEffort(ctx, u.sink, entities.Notification{
			UserID:   updated.LandlordID,
			Type:     entities.NotificationTypePaymentDue,
			Title:    "Payment Overdue",
			Message:  fmt.Sprintf("Your commission invoice of %s is %d day(s) overdue. Please settle it as soon as possible.", updated.Amount.StringFixed(2), days),
			Link:     invoiceLink(updated.ID),
			Priority: entities.NotificationPriorityHigh,
		})
	}
	log.Printf("[invoice][overdue] check done flagged=%d errors=%d", count, len(errs))
	return count, errors.Join(errs...)
}

func (u *InvoiceUseCase) GetInvoice(ctx context.Context, id, requesterID string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	if inv.LandlordID != strings.TrimSpace(requesterID) {
		return entities.Invoice{}, ErrInvoiceForbidden
	}
	return inv, nil
}

// ListInvoicesForLandlord returns the landlord's invoices, newest first.
func (u *InvoiceUseCase) ListInvoicesForLandlord(ctx context.Context, landlordID string) ([]entities.Invoice, error) {
	landlordID = strings.TrimSpace(landlordID)
	if landlordID == "" {
		return nil, ErrInvoiceForbidden
	}
	invoices, err := u.repo.ListByLandlordID(ctx, landlordID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(invoices, func(i, j int) bool { return invoices[i].CreatedAt.After(invoices[j].CreatedAt) })
	return invoices, nil
}

func invoiceLink(id string) string {
	return "/invoices/" + id
}

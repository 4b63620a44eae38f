package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"ikhaya/internal/domain/entities"
	"ikhaya/internal/usecase/interfaces"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPaymentAmount           = errors.New("Payment amount must be greater than 0")
	ErrInvalidPaymentMethod           = errors.New("Payment method is required")
	ErrInvalidPaymentLandlord         = errors.New("Landlord is required")
	ErrInvoiceAlreadyPaid             = errors.New("Invoice is already paid")
	ErrInvalidProviderPayload         = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentNotApproved             = errors.New("payment was not approved by the provider")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// RecordPaymentInput carries a payment against one invoice.
//
// ProviderPayload is only used when PaymentMethod is "mercadopago": it is the
// request body forwarded to the gateway (payment_method_id, payer, token...).
type RecordPaymentInput struct {
	InvoiceID       string
	LandlordID      string
	Amount          decimal.Decimal
	PaymentMethod   string
	Reference       string
	PaymentDate     time.Time
	ProviderPayload json.RawMessage
}

// IPaymentUseCase encapsulates payment recording and invoice reconciliation.
//
//   - RecordPayment persists a payment, charging Mercado Pago first when asked to.
//   - OnPaymentCreated re-aggregates every payment of the invoice and marks it paid once covered.
type IPaymentUseCase interface {
	RecordPayment(ctx context.Context, in RecordPaymentInput) (entities.Payment, error)
	OnPaymentCreated(ctx context.Context, p entities.Payment) error
	ListPaymentsForInvoice(ctx context.Context, invoiceID, requesterID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo     interfaces.IPaymentRepository
	invoices interfaces.IInvoiceRepository
	gateway  interfaces.IPaymentGateway
	sink     interfaces.INotificationSink
	now      func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, invoices interfaces.IInvoiceRepository, gateway interfaces.IPaymentGateway, sink interfaces.INotificationSink) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, invoices: invoices, gateway: gateway, sink: sink, now: time.Now}
}

func (u *PaymentUseCase) RecordPayment(ctx context.Context, in RecordPaymentInput) (entities.Payment, error) {
	in.InvoiceID = strings.TrimSpace(in.InvoiceID)
	in.LandlordID = strings.TrimSpace(in.LandlordID)
	in.PaymentMethod = strings.ToLower(strings.TrimSpace(in.PaymentMethod))
	log.Printf("[payment][usecase] record start invoice_id=%q method=%s amount=%s", in.InvoiceID, in.PaymentMethod, in.Amount.String())

	switch {
	case in.InvoiceID == "":
		return entities.Payment{}, ErrInvalidInvoiceID
	case in.LandlordID == "":
		return entities.Payment{}, ErrInvalidPaymentLandlord
	case !in.Amount.IsPositive():
		return entities.Payment{}, ErrInvalidPaymentAmount
	case in.PaymentMethod == "":
		return entities.Payment{}, ErrInvalidPaymentMethod
	}

	inv, err := u.invoices.GetByID(ctx, in.InvoiceID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading invoice invoice_id=%s err=%v", in.InvoiceID, err)
		return entities.Payment{}, err
	}
	if inv.ID == "" {
		log.Printf("[payment][usecase] invoice not found invoice_id=%s", in.InvoiceID)
		return entities.Payment{}, ErrInvoiceNotFound
	}
	if inv.LandlordID != in.LandlordID {
		return entities.Payment{}, ErrInvoiceForbidden
	}
	if inv.Status == entities.InvoiceStatusPaid {
		return entities.Payment{}, ErrInvoiceAlreadyPaid
	}

	now := u.now().UTC()
	p := entities.Payment{
		ID:            uuid.NewString(),
		InvoiceID:     inv.ID,
		LandlordID:    inv.LandlordID,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		Reference:     strings.TrimSpace(in.Reference),
		PaymentDate:   in.PaymentDate.UTC(),
		CreatedAt:     now,
	}
	if in.PaymentDate.IsZero() {
		p.PaymentDate = now
	}

	if p.PaymentMethod == entities.PaymentMethodMercadoPago {
		providerID, providerResp, err := u.capture(ctx, inv, in.Amount, in.ProviderPayload)
		if err != nil {
			return entities.Payment{}, err
		}
		p.Reference = providerID
		p.ProviderPayloadRaw = providerResp
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed invoice_id=%s payment_id=%s err=%v", inv.ID, p.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] record success invoice_id=%s payment_id=%s amount=%s", inv.ID, created.ID, created.Amount.StringFixed(2))

	// The payment is durable at this point; reconciliation is best-effort.
	if err := u.OnPaymentCreated(ctx, created); err != nil {
		log.Printf("[payment][usecase] reconciliation failed invoice_id=%s payment_id=%s err=%v", inv.ID, created.ID, err)
	}
	return created, nil
}

// capture charges the landlord through the payment gateway. The invoice is
// the source of truth for the reference; the caller's amount is charged.
func (u *PaymentUseCase) capture(ctx context.Context, inv entities.Invoice, amount decimal.Decimal, payload json.RawMessage) (string, json.RawMessage, error) {
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured invoice_id=%s", inv.ID)
		return "", nil, ErrPaymentGatewayNotConfigured
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		log.Printf("[payment][usecase] invalid provider payload invoice_id=%s err=%v", inv.ID, err)
		return "", nil, ErrInvalidProviderPayload
	}
	if !hasNonEmptyString(reqMap, "payment_method_id") || !hasPayer(reqMap) {
		log.Printf("[payment][usecase] provider payload missing payment_method_id/payer invoice_id=%s", inv.ID)
		return "", nil, ErrInvalidProviderPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = inv.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("IKHAYA commission invoice %s (%s)", inv.ID, inv.Period)
	}
	reqMap["transaction_amount"] = amount.InexactFloat64()

	body, err := json.Marshal(reqMap)
	if err != nil {
		return "", nil, err
	}

	log.Printf("[payment][usecase] calling payment gateway invoice_id=%s", inv.ID)
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed invoice_id=%s err=%v", inv.ID, err)
		return "", nil, classifyGatewayError(err)
	}
	if providerStatus != "approved" {
		log.Printf("[payment][usecase] payment not approved invoice_id=%s provider_payment_id=%s provider_status=%s", inv.ID, providerID, providerStatus)
		return "", nil, ErrPaymentNotApproved
	}
	log.Printf("[payment][usecase] payment gateway success invoice_id=%s provider_payment_id=%s", inv.ID, providerID)
	return providerID, providerResp, nil
}

// OnPaymentCreated recomputes the amount paid towards the payment's invoice
// from every stored payment and marks the invoice paid once it is covered.
// A missing invoice is logged and ignored: the payment itself is already stored.
func (u *PaymentUseCase) OnPaymentCreated(ctx context.Context, p entities.Payment) error {
	inv, err := u.invoices.GetByID(ctx, p.InvoiceID)
	if err != nil {
		return err
	}
	if inv.ID == "" {
		log.Printf("[payment][reconcile] invoice not found invoice_id=%s payment_id=%s", p.InvoiceID, p.ID)
		return nil
	}

	payments, err := u.repo.ListByInvoiceID(ctx, inv.ID)
	if err != nil {
		return err
	}
	payments = withPayment(payments, p)
	totalPaid := decimal.Zero
	for _, paid := range payments {
		totalPaid = totalPaid.Add(paid.Amount)
	}
	covered := totalPaid.GreaterThanOrEqual(inv.Amount)
	log.Printf("[payment][reconcile] invoice_id=%s total_paid=%s amount=%s covered=%t", inv.ID, totalPaid.StringFixed(2), inv.Amount.StringFixed(2), covered)

	if covered && inv.Status != entities.InvoiceStatusPaid {
		from := []entities.InvoiceStatus{entities.InvoiceStatusPending, entities.InvoiceStatusOverdue}
		_, err := u.invoices.UpdateStatus(ctx, inv.ID, entities.InvoiceStatusPaid, from, u.now().UTC())
		switch {
		case errors.Is(err, interfaces.ErrConditionFailed):
			log.Printf("[payment][reconcile] invoice already paid invoice_id=%s", inv.ID)
		case err != nil:
			return err
		default:
			log.Printf("[payment][reconcile] invoice paid invoice_id=%s", inv.ID)
		}
	}

	var message string
	if covered {
		message = fmt.Sprintf("We received your payment of %s. Invoice %s is now fully paid.", p.Amount.StringFixed(2), inv.Period)
	} else {
		message = fmt.Sprintf("We received your payment of %s. Remaining balance on invoice %s: %s.", p.Amount.StringFixed(2), inv.Period, inv.Amount.Sub(totalPaid).StringFixed(2))
	}
	notifyBestEffort(ctx, u.sink, entities.Notification{
		UserID:   inv.LandlordID,
		Type:     entities.NotificationTypePaymentReceived,
		Title:    "Payment Received",
		Message:  message,
		Link:     invoiceLink(inv.ID),
		Priority: entities.NotificationPriorityMedium,
	})
	return nil
}

// withPayment adds p to payments unless it is already listed. The invoice
// index is eventually consistent and may not return a payment written just before.
func withPayment(payments []entities.Payment, p entities.Payment) []entities.Payment {
	for _, existing := range payments {
		if existing.ID == p.ID {
			return payments
		}
	}
	return append(payments, p)
}

func (u *PaymentUseCase) ListPaymentsForInvoice(ctx context.Context, invoiceID, requesterID string) ([]entities.Payment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}
	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.ID == "" {
		return nil, ErrInvoiceNotFound
	}
	if inv.LandlordID != strings.TrimSpace(requesterID) {
		return nil, ErrInvoiceForbidden
	}
	return u.repo.ListByInvoiceID(ctx, invoiceID)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

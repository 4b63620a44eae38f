package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCreateLeaseRequest_ToInput(t *testing.T) {
	var r CreateLeaseRequest
	body := `{"property_id":" prop-1 ","tenant_id":"tenant-1","rent_amount":"5000","deposit":2500.5,"start_date":"2025-04-01","end_date":"2026-03-31T12:00:00+02:00","terms":"standard"}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}

	in, err := r.ToInput("landlord-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.LandlordID != "landlord-1" || in.PropertyID != "prop-1" || in.TenantID != "tenant-1" {
		t.Fatalf("unexpected ids: %+v", in)
	}
	if !in.RentAmount.Equal(decimal.NewFromInt(5000)) || !in.Deposit.Equal(decimal.RequireFromString("2500.5")) {
		t.Fatalf("unexpected amounts: rent=%s deposit=%s", in.RentAmount, in.Deposit)
	}
	if !in.StartDate.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start: %v", in.StartDate)
	}
	if !in.EndDate.Equal(time.Date(2026, 3, 31, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end: %v", in.EndDate)
	}
}

func TestCreateLeaseRequest_ToInputDates(t *testing.T) {
	in, err := CreateLeaseRequest{}.ToInput("landlord-1")
	if err != nil {
		t.Fatalf("empty dates should be left to the usecase, got %v", err)
	}
	if !in.StartDate.IsZero() || !in.EndDate.IsZero() {
		t.Fatalf("expected zero dates, got %+v", in)
	}

	_, err = CreateLeaseRequest{StartDate: "01/04/2025"}.ToInput("landlord-1")
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestRecordPaymentRequest_ToInput(t *testing.T) {
	r := RecordPaymentRequest{
		Amount:        decimal.NewFromInt(1300),
		PaymentMethod: "mercadopago",
		PaymentDate:   "2025-03-12",
		MPPayload:     json.RawMessage(`{"payment_method_id":"pix"}`),
	}
	in, err := r.ToInput("inv-1", "landlord-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.InvoiceID != "inv-1" || in.LandlordID != "landlord-1" || in.PaymentMethod != "mercadopago" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if string(in.ProviderPayload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("unexpected payload: %s", in.ProviderPayload)
	}

	r.MPPayload = json.RawMessage("null")
	in, err = r.ToInput("inv-1", "landlord-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.ProviderPayload != nil {
		t.Fatalf("expected null payload to be dropped, got %s", in.ProviderPayload)
	}

	r.PaymentDate = "yesterday"
	if _, err := r.ToInput("inv-1", "landlord-1"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestSendEmailRequest_ToInput(t *testing.T) {
	in := SendEmailRequest{UserID: "u-2", Type: "payment_due", Subject: "s", Text: "t"}.ToInput("u-1")
	if in.CallerID != "u-1" || in.UserID != "u-2" || in.Subject != "s" || in.Text != "t" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

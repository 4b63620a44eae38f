package usecase

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// BillingPolicy holds the tunable constants of the lease and billing workflow.
type BillingPolicy struct {
	CommissionRate        decimal.Decimal
	InvoiceGracePeriod    time.Duration
	OverdueThreshold      time.Duration
	ExpiryWindow          time.Duration
	NotificationRetention time.Duration
	CleanupBatchSize      int
	// MaxDeposit caps lease deposits. Zero disables the check.
	MaxDeposit decimal.Decimal
}

func DefaultBillingPolicy() BillingPolicy {
	return BillingPolicy{
		CommissionRate:        decimal.RequireFromString("0.10"),
		InvoiceGracePeriod:    15 * day,
		OverdueThreshold:      15 * day,
		ExpiryWindow:          30 * day,
		NotificationRetention: 90 * day,
		CleanupBatchSize:      500,
		MaxDeposit:            decimal.NewFromInt(5000),
	}
}

// BillingPolicyFromEnv starts from DefaultBillingPolicy and applies overrides:
//   - COMMISSION_RATE (decimal, e.g. 0.10)
//   - INVOICE_GRACE_DAYS, OVERDUE_THRESHOLD_DAYS, LEASE_EXPIRY_WINDOW_DAYS,
//     NOTIFICATION_RETENTION_DAYS (whole days)
//   - MAX_LEASE_DEPOSIT (decimal, 0 disables)
//
// Invalid values are logged and ignored.
func BillingPolicyFromEnv() BillingPolicy {
	p := DefaultBillingPolicy()
	if v, ok := decimalEnv("COMMISSION_RATE"); ok && v.IsPositive() && v.LessThan(decimal.NewFromInt(1)) {
		p.CommissionRate = v
	}
	if v, ok := decimalEnv("MAX_LEASE_DEPOSIT"); ok && !v.IsNegative() {
		p.MaxDeposit = v
	}
	if v, ok := daysEnv("INVOICE_GRACE_DAYS"); ok {
		p.InvoiceGracePeriod = v
	}
	if v, ok := daysEnv("OVERDUE_THRESHOLD_DAYS"); ok {
		p.OverdueThreshold = v
	}
	if v, ok := daysEnv("LEASE_EXPIRY_WINDOW_DAYS"); ok {
		p.ExpiryWindow = v
	}
	if v, ok := daysEnv("NOTIFICATION_RETENTION_DAYS"); ok {
		p.NotificationRetention = v
	}
	return p
}

func decimalEnv(key string) (decimal.Decimal, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("[config][policy] ignoring invalid %s=%q err=%v", key, raw, err)
		return decimal.Zero, false
	}
	return v, true
}

func daysEnv(key string) (time.Duration, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("[config][policy] ignoring invalid %s=%q", key, raw)
		return 0, false
	}
	return time.Duration(n) * day, true
}

// daysBetween rounds the distance from a to b up to whole days.
func daysBetween(a, b time.Time) int {
	d := b.Sub(a)
	days := int(d / day)
	if d%day != 0 {
		days++
	}
	return days
}

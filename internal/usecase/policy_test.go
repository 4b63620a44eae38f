package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBillingPolicyFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := BillingPolicyFromEnv()
		assert.True(t, p.CommissionRate.Equal(decimal.RequireFromString("0.10")))
		assert.Equal(t, 15*day, p.InvoiceGracePeriod)
		assert.Equal(t, 15*day, p.OverdueThreshold)
		assert.Equal(t, 30*day, p.ExpiryWindow)
		assert.Equal(t, 90*day, p.NotificationRetention)
		assert.True(t, p.MaxDeposit.Equal(decimal.NewFromInt(5000)))
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("COMMISSION_RATE", "0.08")
		t.Setenv("INVOICE_GRACE_DAYS", "10")
		t.Setenv("LEASE_EXPIRY_WINDOW_DAYS", "60")
		t.Setenv("MAX_LEASE_DEPOSIT", "0")

		p := BillingPolicyFromEnv()
		assert.True(t, p.CommissionRate.Equal(decimal.RequireFromString("0.08")))
		assert.Equal(t, 10*day, p.InvoiceGracePeriod)
		assert.Equal(t, 60*day, p.ExpiryWindow)
		assert.True(t, p.MaxDeposit.IsZero())
	})

	t.Run("invalid values are ignored", func(t *testing.T) {
		t.Setenv("COMMISSION_RATE", "1.5")
		t.Setenv("OVERDUE_THRESHOLD_DAYS", "-3")
		t.Setenv("NOTIFICATION_RETENTION_DAYS", "ninety")
		t.Setenv("MAX_LEASE_DEPOSIT", "lots")

		p := BillingPolicyFromEnv()
		assert.True(t, p.CommissionRate.Equal(decimal.RequireFromString("0.10")))
		assert.Equal(t, 15*day, p.OverdueThreshold)
		assert.Equal(t, 90*day, p.NotificationRetention)
		assert.True(t, p.MaxDeposit.Equal(decimal.NewFromInt(5000)))
	})
}

func TestDaysBetween(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, daysBetween(base, base))
	assert.Equal(t, 1, daysBetween(base, base.Add(time.Hour)))
	assert.Equal(t, 7, daysBetween(base, base.Add(7*day)))
	assert.Equal(t, 8, daysBetween(base, base.Add(7*day+time.Minute)))
}

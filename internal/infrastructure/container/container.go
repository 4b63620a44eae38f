// Package container assembles repositories, adapters and use cases from the
// environment. Both binaries (api and jobs) build the same graph.
package container

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"ikhaya/internal/adapter/persistence/cache"
	"ikhaya/internal/adapter/persistence/repository"
	"ikhaya/internal/infrastructure/database"
	"ikhaya/internal/infrastructure/email"
	"ikhaya/internal/infrastructure/messaging"
	"ikhaya/internal/infrastructure/payments"
	"ikhaya/internal/infrastructure/scheduler"
	"ikhaya/internal/usecase"
	"ikhaya/internal/usecase/interfaces"
)

const (
	JobCheckExpiringLeases     = "check-expiring-leases"
	JobExpireEndedLeases       = "expire-ended-leases"
	JobGenerateMonthlyInvoices = "generate-monthly-invoices"
	JobSendOverdueReminders    = "send-overdue-reminders"
	JobCleanupNotifications    = "cleanup-notifications"
	JobReconcileOccupancy      = "reconcile-occupancy"

	jobTimeout = 15 * time.Minute
)

// Dependencies are the external collaborators of the graph.
// Gateway and Email may be nil.
type Dependencies struct {
	DB      repository.DynamoDBAPI
	Gateway interfaces.IPaymentGateway
	Email   interfaces.IEmailSender
	Policy  usecase.BillingPolicy
}

type Container struct {
	Leases        *usecase.LeaseUseCase
	LeaseExpiry   *usecase.LeaseExpiryUseCase
	Invoices      *usecase.InvoiceUseCase
	Payments      *usecase.PaymentUseCase
	Notifications *usecase.NotificationUseCase

	closers []func()
}

// Build connects to DynamoDB, NATS (when NATS_URL is set) and Mercado Pago and
// returns the wired container. The payment gateway is optional: without it,
// "mercadopago" payments fail with ErrPaymentGatewayNotConfigured.
func Build(ctx context.Context) (*Container, error) {
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return nil, fmt.Errorf("dynamodb: %w", err)
	}

	deps := Dependencies{DB: ddb, Policy: usecase.BillingPolicyFromEnv()}
	var closers []func()

	if mp, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")); err != nil {
		log.Printf("[container] Mercado Pago gateway not configured: %v", err)
	} else {
		deps.Gateway = mp
	}

	if url := strings.TrimSpace(os.Getenv("NATS_URL")); url != "" {
		q, err := messaging.ConnectEmailQueue(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("email queue: %w", err)
		}
		deps.Email = q
		closers = append(closers, q.Close)
	} else {
		log.Printf("[container] NATS_URL not set, emails are logged only")
		deps.Email = email.LogSender{}
	}

	c, err := New(deps)
	if err != nil {
		for _, fn := range closers {
			fn()
		}
		return nil, err
	}
	c.closers = append(c.closers, closers...)
	return c, nil
}

// New wires the use cases on top of deps without touching the network.
func New(deps Dependencies) (*Container, error) {
	leases := repository.NewLeaseDynamoRepository(deps.DB)
	properties := repository.NewPropertyDynamoRepository(deps.DB)
	invoices := repository.NewInvoiceDynamoRepository(deps.DB)
	paymentsRepo := repository.NewPaymentDynamoRepository(deps.DB)
	notifications := repository.NewNotificationDynamoRepository(deps.DB)
	users := repository.NewUserDynamoRepository(deps.DB)

	prefs, err := cache.NewPreferencesCache(repository.NewNotificationPreferencesDynamoRepository(deps.DB), 0, 0)
	if err != nil {
		return nil, fmt.Errorf("preferences cache: %w", err)
	}

	notificationUC := usecase.NewNotificationUseCase(notifications, prefs, users, deps.Email, deps.Policy)

	return &Container{
		Leases:        usecase.NewLeaseUseCase(leases, properties, notificationUC, deps.Policy),
		LeaseExpiry:   usecase.NewLeaseExpiryUseCase(leases, properties, notificationUC, deps.Policy),
		Invoices:      usecase.NewInvoiceUseCase(invoices, leases, notificationUC, deps.Policy),
		Payments:      usecase.NewPaymentUseCase(paymentsRepo, invoices, deps.Gateway, notificationUC),
		Notifications: notificationUC,
		closers:       []func(){prefs.Close},
	}, nil
}

// Jobs returns the periodic jobs with their UTC cron schedules.
func (c *Container) Jobs() []scheduler.Job {
	return []scheduler.Job{
		{Name: JobCheckExpiringLeases, Schedule: "0 9 * * *", Timeout: jobTimeout, Run: func(ctx context.Context) (string, error) {
			n, err := c.LeaseExpiry.CheckExpiringLeases(ctx)
			return fmt.Sprintf("notified=%d", n), err
		}},
		{Name: JobExpireEndedLeases, Schedule: "30 9 * * *", Timeout: jobTimeout, Run: func(ctx context.Context) (string, error) {
			n, err := c.LeaseExpiry.ExpireEndedLeases(ctx)
			return fmt.Sprintf("expired=%d", n), err
		}},
		{Name: JobGenerateMonthlyInvoices, Schedule: "0 9 1 * *", Timeout: jobTimeout, Run: func(ctx context.Context) (string, error) {
			ids, err := c.Invoices.GenerateMonthlyInvoices(ctx)
			return fmt.Sprintf("invoices=%d", len(ids)), err
		}},
		{Name: JobSendOverdueReminders, Schedule: "0 10 * * *", Timeout: jobTimeout, Run: func(ctx context.Context) (string, error) {
			n, err := c.Invoices.SendOverduePaymentReminders(ctx)
			return fmt.Sprintf("reminders=%d", n), err
		}},
		{Name: JobCleanupNotifications, Schedule: "0 2 * * *", Timeout: jobTimeout, Run: func(ctx context.Context) (string, error) {
			n, err := c.Notifications.CleanupOldNotifications(ctx)
			return fmt.Sprintf("deleted=%d", n), err
		}},
		{Name: JobReconcileOccupancy, Schedule: "0 3 * * *", Timeout: jobTimeout, Run: func(ctx context.Context) (string, error) {
			r, err := c.Leases.ReconcileOccupancy(ctx)
			return fmt.Sprintf("activated=%d occupied=%d released=%d", r.LeasesActivated, r.PropertiesOccupied, r.PropertiesReleased), err
		}},
	}
}

// Close releases the cache and the queue connection, newest first.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

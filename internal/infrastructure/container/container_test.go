package container

import (
	"context"
	"testing"

	"ikhaya/internal/adapter/persistence/repository"
	"ikhaya/internal/infrastructure/scheduler"
	"ikhaya/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nopDynamo satisfies the client interface; the tests never reach DynamoDB.
type nopDynamo struct {
	repository.DynamoDBAPI
}

func TestNew_WiresUseCases(t *testing.T) {
	c, err := New(Dependencies{DB: nopDynamo{}, Policy: usecase.DefaultBillingPolicy()})
	require.NoError(t, err)
	defer c.Close()

	assert.NotNil(t, c.Leases)
	assert.NotNil(t, c.LeaseExpiry)
	assert.NotNil(t, c.Invoices)
	assert.NotNil(t, c.Payments)
	assert.NotNil(t, c.Notifications)
}

func TestJobs_Schedules(t *testing.T) {
	c, err := New(Dependencies{DB: nopDynamo{}, Policy: usecase.DefaultBillingPolicy()})
	require.NoError(t, err)
	defer c.Close()

	want := map[string]string{
		JobCheckExpiringLeases:     "0 9 * * *",
		JobExpireEndedLeases:       "30 9 * * *",
		JobGenerateMonthlyInvoices: "0 9 1 * *",
		JobSendOverdueReminders:    "0 10 * * *",
		JobCleanupNotifications:    "0 2 * * *",
		JobReconcileOccupancy:      "0 3 * * *",
	}
	jobs := c.Jobs()
	require.Len(t, jobs, len(want))
	for _, j := range jobs {
		assert.Equal(t, want[j.Name], j.Schedule, j.Name)
		assert.NotNil(t, j.Run, j.Name)
	}

	s, err := scheduler.New(context.Background(), jobs)
	require.NoError(t, err)
	assert.Len(t, s.Jobs(), len(want))
}

func TestClose_IsIdempotent(t *testing.T) {
	c, err := New(Dependencies{DB: nopDynamo{}, Policy: usecase.DefaultBillingPolicy()})
	require.NoError(t, err)
	c.Close()
	c.Close()
}

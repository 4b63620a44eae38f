package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsInvalidSchedule(t *testing.T) {
	_, err := New(context.Background(), []Job{{Name: "bad", Schedule: "every tuesday", Run: noop}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
}

func TestNew_RejectsDuplicateNames(t *testing.T) {
	_, err := New(context.Background(), []Job{
		{Name: "a", Schedule: "0 9 * * *", Run: noop},
		{Name: "a", Schedule: "0 10 * * *", Run: noop},
	})
	require.Error(t, err)
}

func TestRunNow(t *testing.T) {
	calls := 0
	s, err := New(context.Background(), []Job{
		{Name: "ok", Schedule: "0 9 * * *", Run: func(context.Context) (string, error) { calls++; return "done", nil }},
		{Name: "fails", Schedule: "0 9 1 * *", Run: func(context.Context) (string, error) { return "", errors.New("boom") }},
	})
	require.NoError(t, err)

	require.NoError(t, s.RunNow(context.Background(), "ok"))
	assert.Equal(t, 1, calls)
	assert.EqualError(t, s.RunNow(context.Background(), "fails"), "boom")
	assert.ErrorIs(t, s.RunNow(context.Background(), "missing"), ErrUnknownJob)
}

func TestRunNow_AppliesTimeout(t *testing.T) {
	s, err := New(context.Background(), []Job{{
		Name:     "slow",
		Schedule: "0 3 * * *",
		Timeout:  10 * time.Millisecond,
		Run: func(ctx context.Context) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}})
	require.NoError(t, err)
	assert.ErrorIs(t, s.RunNow(context.Background(), "slow"), context.DeadlineExceeded)
}

func TestJobsSortedAndNext(t *testing.T) {
	s, err := New(context.Background(), []Job{
		{Name: "b", Schedule: "0 9 * * *", Run: noop},
		{Name: "a", Schedule: "0 2 * * *", Run: noop},
	})
	require.NoError(t, err)

	jobs := s.Jobs()
	require.Len(t, jobs, 2)
	assert.Equal(t, "a", jobs[0].Name)
	assert.Equal(t, "b", jobs[1].Name)

	s.Start()
	defer s.Stop(context.Background())
	next := s.Next("a")
	require.False(t, next.IsZero())
	assert.Equal(t, 2, next.UTC().Hour())
	assert.True(t, s.Next("missing").IsZero())
}

func noop(context.Context) (string, error) { return "", nil }

func TestNextRun(t *testing.T) {
	from := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	next, err := NextRun("0 9 1 * *", from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC), next.UTC())

	next, err = NextRun("30 9 * * *", from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC), next.UTC())

	_, err = NextRun("bogus", from)
	assert.Error(t, err)
}

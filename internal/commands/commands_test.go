package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ikhaya/internal/infrastructure/scheduler"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	jobs   []scheduler.Job
	closed int
}

func (f *fakeSource) Jobs() []scheduler.Job { return f.jobs }
func (f *fakeSource) Close()                { f.closed++ }

func builderFor(src *fakeSource) Builder {
	return func(context.Context) (JobSource, error) { return src, nil }
}

func execute(t *testing.T, ctx context.Context, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestRunCmd(t *testing.T) {
	ran := 0
	src := &fakeSource{jobs: []scheduler.Job{
		{Name: "reconcile-occupancy", Schedule: "0 3 * * *", Run: func(context.Context) (string, error) { ran++; return "ok", nil }},
		{Name: "cleanup-notifications", Schedule: "0 2 * * *", Run: func(context.Context) (string, error) { return "", errors.New("throttled") }},
	}}

	out, err := execute(t, context.Background(), RunCmd(builderFor(src)), "reconcile-occupancy")
	require.NoError(t, err)
	assert.Equal(t, 1, ran)
	assert.Contains(t, out, "Job reconcile-occupancy completed.")

	_, err = execute(t, context.Background(), RunCmd(builderFor(src)), "cleanup-notifications")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")

	_, err = execute(t, context.Background(), RunCmd(builderFor(src)), "nope")
	assert.ErrorIs(t, err, scheduler.ErrUnknownJob)

	assert.Equal(t, 3, src.closed)
}

func TestRunCmd_BuildError(t *testing.T) {
	build := func(context.Context) (JobSource, error) { return nil, errors.New("no credentials") }
	_, err := execute(t, context.Background(), RunCmd(build), "reconcile-occupancy")
	assert.EqualError(t, err, "no credentials")
}

func TestListCmd(t *testing.T) {
	src := &fakeSource{jobs: []scheduler.Job{
		{Name: "send-overdue-reminders", Schedule: "0 10 * * *"},
		{Name: "cleanup-notifications", Schedule: "0 2 * * *"},
	}}

	out, err := execute(t, context.Background(), ListCmd(builderFor(src)))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "cleanup-notifications"))
	assert.True(t, strings.HasPrefix(lines[2], "send-overdue-reminders"))
	assert.Equal(t, 1, src.closed)
}

func TestScheduleCmd_StopsOnCancel(t *testing.T) {
	src := &fakeSource{jobs: []scheduler.Job{{Name: "a", Schedule: "0 3 * * *", Run: func(context.Context) (string, error) { return "", nil }}}}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := execute(t, ctx, ScheduleCmd(builderFor(src)), "--shutdown-grace", "1s")
	require.NoError(t, err)
	assert.Equal(t, 1, src.closed)
}

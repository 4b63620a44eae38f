// Package commands holds the subcommands of the jobs CLI.
package commands

import (
	"context"
	"fmt"
	"sort"
	"text/tabwriter"
	"time"

	"ikhaya/internal/infrastructure/scheduler"

	"github.com/spf13/cobra"
)

// JobSource provides the periodic jobs and releases their resources.
type JobSource interface {
	Jobs() []scheduler.Job
	Close()
}

// Builder creates the job source for one command invocation.
type Builder func(ctx context.Context) (JobSource, error)

func ListCmd(build Builder) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the periodic jobs and when they run next (UTC)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := build(cmd.Context())
			if err != nil {
				return err
			}
			defer src.Close()

			now := time.Now().UTC()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "JOB\tSCHEDULE\tNEXT RUN")
			for _, j := range sortedJobs(src.Jobs()) {
				next, err := scheduler.NextRun(j.Schedule, now)
				if err != nil {
					return fmt.Errorf("job %s: %w", j.Name, err)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", j.Name, j.Schedule, next.Format(time.RFC3339))
			}
			return w.Flush()
		},
	}
}

func RunCmd(build Builder) *cobra.Command {
	return &cobra.Command{
		Use:   "run <job>",
		Short: "Run one periodic job immediately",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := build(cmd.Context())
			if err != nil {
				return err
			}
			defer src.Close()

			s, err := scheduler.New(cmd.Context(), src.Jobs())
			if err != nil {
				return err
			}
			if err := s.RunNow(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("job %s failed: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Job %s completed.\n", args[0])
			return nil
		},
	}
}

func ScheduleCmd(build Builder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run every periodic job on its cron schedule until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grace, _ := cmd.Flags().GetDuration("shutdown-grace")

			src, err := build(cmd.Context())
			if err != nil {
				return err
			}
			defer src.Close()

			s, err := scheduler.New(cmd.Context(), src.Jobs())
			if err != nil {
				return err
			}
			s.Start()
			<-cmd.Context().Done()

			stopCtx, cancel := context.WithTimeout(context.Background(), grace)
			defer cancel()
			s.Stop(stopCtx)
			return nil
		},
	}
	cmd.Flags().Duration("shutdown-grace", time.Minute, "How long to wait for running jobs on shutdown")
	return cmd
}

func sortedJobs(jobs []scheduler.Job) []scheduler.Job {
	out := append([]scheduler.Job(nil), jobs...)
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out
}

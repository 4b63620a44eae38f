// Package scheduler runs the periodic lease and billing jobs on cron schedules (UTC).
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/robfig/cron/v3"
)

var ErrUnknownJob = errors.New("unknown job")

// Job is one named periodic task. Run returns a short human-readable summary.
type Job struct {
	Name     string
	Schedule string
	Timeout  time.Duration
	Run      func(ctx context.Context) (string, error)
}

// Scheduler owns the cron runner. Overlapping runs of the same job are
// skipped and panics are recovered, so one bad run never kills the process.
type Scheduler struct {
	cron    *cron.Cron
	jobs    map[string]Job
	entries map[string]cron.EntryID
	base    context.Context
}

func New(base context.Context, jobs []Job) (*Scheduler, error) {
	logger := cron.PrintfLogger(log.Default())
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		jobs:    make(map[string]Job, len(jobs)),
		entries: make(map[string]cron.EntryID, len(jobs)),
		base:    base,
	}
	for _, j := range jobs {
		if _, dup := s.jobs[j.Name]; dup {
			return nil, fmt.Errorf("job %s registered twice", j.Name)
		}
		j := j
		id, err := s.cron.AddFunc(j.Schedule, func() { _ = s.execute(s.base, j) })
		if err != nil {
			return nil, fmt.Errorf("job %s: invalid schedule %q: %w", j.Name, j.Schedule, err)
		}
		s.jobs[j.Name] = j
		s.entries[j.Name] = id
	}
	return s, nil
}

func (s *Scheduler) Start() {
	log.Printf("[scheduler] starting jobs=%d", len(s.jobs))
	s.cron.Start()
}

// Stop prevents new runs and waits for running jobs or ctx, whichever comes first.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		log.Printf("[scheduler] stopped")
	case <-ctx.Done():
		log.Printf("[scheduler] stop timed out err=%v", ctx.Err())
	}
}

// RunNow executes a job immediately, outside its schedule.
func (s *Scheduler) RunNow(ctx context.Context, name string) error {
	j, ok := s.jobs[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}
	return s.execute(ctx, j)
}

// Jobs lists the registered jobs by name.
func (s *Scheduler) Jobs() []Job {
	out := make([]Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, j)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out
}

// Next reports when a job fires next. It is zero until Start has been called.
func (s *Scheduler) Next(name string) time.Time {
	id, ok := s.entries[name]
	if !ok {
		return time.Time{}
	}
	return s.cron.Entry(id).Next
}

// NextRun reports the first activation of a cron expression after from, in UTC.
func NextRun(schedule string, from time.Time) (time.Time, error) {
	sched, err := cron.ParseStandard("CRON_TZ=UTC " + schedule)
	if err != nil {
		return time.Time{}, err
	}
	return sched.Next(from), nil
}

func (s *Scheduler) execute(ctx context.Context, j Job) error {
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}
	start := time.Now()
	log.Printf("[scheduler][%s] run start", j.Name)
	summary, err := j.Run(ctx)
	if err != nil {
		log.Printf("[scheduler][%s] run failed duration=%s summary=%q err=%v", j.Name, time.Since(start).Round(time.Millisecond), summary, err)
		return err
	}
	log.Printf("[scheduler][%s] run done duration=%s summary=%q", j.Name, time.Since(start).Round(time.Millisecond), summary)
	return nil
}

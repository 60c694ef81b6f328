// Package scheduler wires up the cron job that periodically re-runs the
// ingestion batch over the current megathread.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
)

// Scheduler wraps robfig/cron around a single recurring job.
type Scheduler struct {
	cron *cron.Cron
	spec string
}

// New creates a Scheduler firing on spec, e.g. "@monthly" or "@every 24h".
func New(spec string) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLogger(cron.DefaultLogger)),
		spec: spec,
	}
}

// Start registers job under the configured spec and launches the cron
// loop. The job also runs once immediately so a fresh deploy does not wait
// a full interval for its first batch.
func (s *Scheduler) Start(ctx context.Context, job func(context.Context)) error {
	if _, err := s.cron.AddFunc(s.spec, func() { job(ctx) }); err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", s.spec, err)
	}
	job(ctx)
	s.cron.Start()
	return nil
}

// Stop halts the cron loop; a running job finishes on its own.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

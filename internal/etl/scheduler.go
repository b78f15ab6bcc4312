package etl

import (
	"context"
	"log/slog"
	"time"
)

// Scheduler reruns the pipeline on a fixed interval over a trailing range of
// calendar days. Loads are upserts, so overlapping runs are idempotent.
type Scheduler struct {
	interval time.Duration
	pipeline *Pipeline
	template Job
	lookback int
	nowFn    func() time.Time
}

// NewScheduler creates a scheduler. Each tick covers the last lookbackDays
// full days plus the current one; template supplies fields and page size.
func NewScheduler(interval time.Duration, pipeline *Pipeline, template Job, lookbackDays int) *Scheduler {
	if lookbackDays < 0 {
		lookbackDays = 0
	}
	return &Scheduler{
		interval: interval,
		pipeline: pipeline,
		template: template,
		lookback: lookbackDays,
		nowFn:    time.Now,
	}
}

// jobAt returns the job for a tick at now. End is the next midnight so that
// today's rows are included.
func (s *Scheduler) jobAt(now time.Time) Job {
	today := midnight(now)
	job := s.template
	job.Start = today.AddDate(0, 0, -s.lookback)
	job.End = today.AddDate(0, 0, 1)
	return job
}

// Start runs one pipeline immediately and then once per interval.
// Runs until context is cancelled. A failed run is logged and retried on the next tick.
func (s *Scheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("[Scheduler] Starting ETL scheduler",
		"interval", s.interval,
		"lookback_days", s.lookback,
		"fields", s.template.Fields,
	)

	s.runOnce(ctx)

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			slog.Info("[Scheduler] Stopping (context cancelled)")
			return nil
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	res, err := s.pipeline.Run(ctx, s.jobAt(s.nowFn()))
	if err != nil {
		slog.Error("[Scheduler] Scheduled run failed", "run_id", res.RunID, "error", err)
	}
}

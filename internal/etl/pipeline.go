package etl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	coreagg "github.com/ventus-lab/ventus/internal/core/aggregation"
	"github.com/ventus-lab/ventus/internal/core/config"
	"github.com/ventus-lab/ventus/internal/core/fields"
	"github.com/ventus-lab/ventus/internal/metrics"
)

// Source is the data API as seen by the pipeline.
type Source interface {
	Fields(ctx context.Context) ([]string, error)
	Extract(ctx context.Context, start, end time.Time, fields []string, pageSize int) ([]Record, error)
}

// Job is one ETL invocation.
type Job struct {
	Start    time.Time
	End      time.Time
	Fields   []string
	PageSize int
}

// Result summarizes a finished run.
type Result struct {
	RunID    string
	Records  int
	Windows  int
	Points   int
	Duration time.Duration
}

// Pipeline runs extract, transform and load strictly in sequence.
type Pipeline struct {
	source      Source
	transformer Transformer
	loader      *Loader
	nowFn       func() time.Time
}

// NewPipeline creates a Pipeline resampling into windows of the given size.
func NewPipeline(source Source, window time.Duration, loader *Loader) *Pipeline {
	if window <= 0 {
		window = coreagg.DefaultWindow
	}
	return &Pipeline{
		source:      source,
		transformer: Transformer{Window: window},
		loader:      loader,
		nowFn:       time.Now,
	}
}

// Validate checks the job before any request is made.
func (j Job) Validate() error {
	if len(j.Fields) == 0 {
		return fmt.Errorf("at least one field is required")
	}
	if j.PageSize < 1 || j.PageSize > config.MaxPageSize {
		return fmt.Errorf("page size must be between 1 and %d, got %d", config.MaxPageSize, j.PageSize)
	}
	if j.End.Before(j.Start) {
		return fmt.Errorf("end %s is before start %s", j.End.Format(time.DateOnly), j.Start.Format(time.DateOnly))
	}
	return nil
}

// Run executes job. Nothing is written unless extraction and transformation
// both succeed; the load itself is a single transaction.
func (p *Pipeline) Run(ctx context.Context, job Job) (Result, error) {
	started := p.nowFn()
	res := Result{RunID: uuid.NewString()}
	log := slog.With("run_id", res.RunID)

	finish := func(status string, err error) (Result, error) {
		res.Duration = p.nowFn().Sub(started)
		metrics.RecordETLRun(status, res.Duration)
		if err != nil {
			log.Error("[ETL] Run failed", "error", err, "duration", res.Duration)
			return res, err
		}
		log.Info("[ETL] Run complete",
			"status", status,
			"records", res.Records,
			"windows", res.Windows,
			"points", res.Points,
			"duration", res.Duration,
		)
		return res, nil
	}

	if err := job.Validate(); err != nil {
		return finish("failed", fmt.Errorf("invalid job: %w", err))
	}

	log.Info("[ETL] Starting run",
		"start", job.Start.Format(time.DateOnly),
		"end", job.End.Format(time.DateOnly),
		"fields", job.Fields,
		"page_size", job.PageSize,
	)

	available, err := p.source.Fields(ctx)
	if err != nil {
		return finish("failed", fmt.Errorf("fetch available fields: %w", err))
	}
	if _, err := fields.Project(strings.Join(job.Fields, ","), available); err != nil {
		return finish("failed", err)
	}

	records, err := p.source.Extract(ctx, job.Start, job.End, job.Fields, job.PageSize)
	if err != nil {
		return finish("failed", fmt.Errorf("extract: %w", err))
	}
	res.Records = len(records)
	log.Info("[ETL] Extracted records", "records", res.Records)
	if res.Records == 0 {
		return finish("empty", nil)
	}

	table, err := p.transformer.Transform(records)
	if err != nil {
		return finish("failed", fmt.Errorf("transform: %w", err))
	}
	res.Windows = len(table.Rows)
	metrics.RecordWindows(res.Windows)

	res.Points, err = p.loader.Load(ctx, table)
	if err != nil {
		return finish("failed", err)
	}

	return finish("succeeded", nil)
}

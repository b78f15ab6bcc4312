package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	corecfg "github.com/ventus-lab/ventus/internal/core/config"
	"github.com/ventus-lab/ventus/internal/core/fields"
	"github.com/ventus-lab/ventus/internal/core/storage/postgres"
	"github.com/ventus-lab/ventus/internal/etl"
	"github.com/ventus-lab/ventus/internal/migrations"
)

// Accepted layouts for --start-ts and --end-ts.
var dateLayouts = []string{"2006-01-02", "2006-01-02T15:04:05"}

func main() {
	configPath := flag.String("config", corecfg.DefaultPath, "Path to configuration file")
	startTS := flag.String("start-ts", "", "Start date (YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS), required")
	endTS := flag.String("end-ts", "", "End date (YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS), required")
	fieldList := flag.String("fields", "", "Comma-separated fields to extract (default: etl.fields)")
	pageSize := flag.Int("page-size", 0, "Page size used when paginating the source API (default: etl.page_size)")
	every := flag.Duration("every", 0, "Rerun periodically at this interval instead of once (e.g. 1h)")
	lookbackDays := flag.Int("lookback-days", 1, "Full days before today covered by each periodic run")
	flag.Parse()

	opts := options{
		configPath:   *configPath,
		startTS:      *startTS,
		endTS:        *endTS,
		fields:       *fieldList,
		pageSize:     *pageSize,
		every:        *every,
		lookbackDays: *lookbackDays,
	}
	if err := run(opts); err != nil {
		slog.Error("ETL failed", "error", err)
		os.Exit(1)
	}
}

type options struct {
	configPath   string
	startTS      string
	endTS        string
	fields       string
	pageSize     int
	every        time.Duration
	lookbackDays int
}

func run(opts options) error {
	var start, end time.Time
	if opts.every <= 0 {
		var err error
		if start, err = parseDate("start-ts", opts.startTS); err != nil {
			return err
		}
		if end, err = parseDate("end-ts", opts.endTS); err != nil {
			return err
		}
	}

	// 1. Load Configuration
	cfg, err := corecfg.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.RequireTarget(); err != nil {
		return err
	}
	if err := cfg.RequireETL(); err != nil {
		return err
	}

	level, _ := cfg.Log.SlogLevel()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	fieldList, pageSize := opts.fields, opts.pageSize
	if fieldList == "" {
		fieldList = cfg.ETL.Fields
	}
	if pageSize == 0 {
		pageSize = cfg.ETL.PageSize
	}
	window, err := cfg.ETL.Window()
	if err != nil {
		return err
	}

	// 2. Initialize Storage (target PostgreSQL)
	dbAdapter, err := postgres.NewAdapter(cfg.Target.DSN, cfg.Target.MaxOpenConns, cfg.Target.MaxIdleConns)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer dbAdapter.Close()

	if err := migrations.RunMigrations(dbAdapter.DB(), migrations.Target, cfg.Target.AutoMigrate); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := dbAdapter.ValidateSchema(ctx, postgres.TargetTables...); err != nil {
		return fmt.Errorf("target database schema is incomplete: %w", err)
	}

	// 3. Wire extract, transform and load
	pipeline := etl.NewPipeline(
		etl.NewExtractor(cfg.ETL.APIBaseURL, cfg.ETL.APIKey, cfg.ETL.HTTPTimeout),
		window.Size,
		etl.NewLoader(postgres.NewAggregateAdapter(dbAdapter.DB())),
	)

	job := etl.Job{
		Start:    start,
		End:      end,
		Fields:   fields.Parse(fieldList),
		PageSize: pageSize,
	}

	if opts.every > 0 {
		return etl.NewScheduler(opts.every, pipeline, job, opts.lookbackDays).Start(ctx)
	}

	res, err := pipeline.Run(ctx, job)
	if err != nil {
		return fmt.Errorf("run %s: %w", res.RunID, err)
	}

	fmt.Printf("run %s: %d records, %d windows, %d points written in %s\n",
		res.RunID, res.Records, res.Windows, res.Points, res.Duration.Round(time.Millisecond))
	return nil
}

func parseDate(name, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("--%s is required", name)
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --%s %q: use YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS", name, raw)
}

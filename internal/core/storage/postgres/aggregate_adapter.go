package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/lib/pq"
	"github.com/ventus-lab/ventus/internal/core/storage"
)

// AggregateAdapter implements storage.AggregateStore over the target
// signal and data tables.
// Signal resolution and value upserts run in a single transaction, so a
// failed load leaves neither new signals nor partial values behind.
type AggregateAdapter struct {
	db    *sql.DB
	nowFn func() time.Time
}

// NewAggregateAdapter creates an AggregateAdapter sharing the given connection.
func NewAggregateAdapter(db *sql.DB) *AggregateAdapter {
	return &AggregateAdapter{
		db: db,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

type signalRow struct {
	id   int64
	name string
}

func scanSignal(row scanner) (signalRow, error) {
	var s signalRow
	if err := row.Scan(&s.id, &s.name); err != nil {
		return signalRow{}, fmt.Errorf("scan signal row: %w", err)
	}
	return s, nil
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

func querySignals(ctx context.Context, q querier, query string, args ...interface{}) ([]signalRow, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanSignal)
}

// SignalIDs returns the whole signal dictionary.
func (a *AggregateAdapter) SignalIDs(ctx context.Context) (map[string]int64, error) {
	signals, err := querySignals(ctx, a.db, querySelectSignals)
	if err != nil {
		return nil, fmt.Errorf("load signals: %w", err)
	}
	ids := make(map[string]int64, len(signals))
	for _, s := range signals {
		ids[s.name] = s.id
	}
	return ids, nil
}

// EnsureSignals inserts the names that are missing and returns them sorted.
func (a *AggregateAdapter) EnsureSignals(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	created, err := querySignals(ctx, a.db, queryInsertSignals, pq.Array(names))
	if err != nil {
		return nil, fmt.Errorf("ensure signals: %w", err)
	}

	out := make([]string, 0, len(created))
	for _, s := range created {
		out = append(out, s.name)
	}
	sort.Strings(out)
	return out, nil
}

// UpsertPoints writes points in one transaction, creating unknown signals on
// the way. An existing (signal_id, ts) value is overwritten.
func (a *AggregateAdapter) UpsertPoints(ctx context.Context, points []storage.AggregatePoint) (int, error) {
	if len(points) == 0 {
		return 0, nil
	}

	names := distinctSignals(points)
	written := 0

	err := inTx(ctx, a.db, "upsert aggregates", func(tx *sql.Tx) error {
		ids, err := resolveSignals(ctx, tx, names)
		if err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, queryUpsertAggregate)
		if err != nil {
			return fmt.Errorf("upsert aggregates: prepare upsert: %w", err)
		}
		defer stmt.Close()

		createdAt := a.nowFn()
		for _, p := range points {
			if _, err := stmt.ExecContext(ctx, ids[p.Signal], p.TS.UTC(), p.Value, createdAt); err != nil {
				return fmt.Errorf("upsert aggregates: %s at %s: %w", p.Signal, p.TS.Format(time.RFC3339), err)
			}
			written++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("[AggregateAdapter] Upserted",
		"points", written,
		"signals", len(names),
	)
	return written, nil
}

// resolveSignals maps every name to its id, inserting the missing ones.
func resolveSignals(ctx context.Context, tx *sql.Tx, names []string) (map[string]int64, error) {
	existing, err := querySignals(ctx, tx, querySelectSignalsByName, pq.Array(names))
	if err != nil {
		return nil, fmt.Errorf("upsert aggregates: resolve signals: %w", err)
	}

	ids := make(map[string]int64, len(names))
	for _, s := range existing {
		ids[s.name] = s.id
	}

	var missing []string
	for _, n := range names {
		if _, ok := ids[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) == 0 {
		return ids, nil
	}

	created, err := querySignals(ctx, tx, queryInsertSignals, pq.Array(missing))
	if err != nil {
		return nil, fmt.Errorf("upsert aggregates: create signals: %w", err)
	}
	for _, s := range created {
		ids[s.name] = s.id
	}

	// Names another load committed between the select and the insert are
	// skipped by ON CONFLICT DO NOTHING; read them back.
	var raced []string
	for _, n := range missing {
		if _, ok := ids[n]; !ok {
			raced = append(raced, n)
		}
	}
	if len(raced) > 0 {
		concurrent, err := querySignals(ctx, tx, querySelectSignalsByName, pq.Array(raced))
		if err != nil {
			return nil, fmt.Errorf("upsert aggregates: reload signals: %w", err)
		}
		for _, s := range concurrent {
			ids[s.name] = s.id
		}
		for _, n := range raced {
			if _, ok := ids[n]; !ok {
				return nil, fmt.Errorf("upsert aggregates: signal %q was not created", n)
			}
		}
	}

	slog.Info("[AggregateAdapter] Created signals", "created", len(created), "names", missing)
	return ids, nil
}

func distinctSignals(points []storage.AggregatePoint) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, p := range points {
		if _, ok := seen[p.Signal]; ok {
			continue
		}
		seen[p.Signal] = struct{}{}
		names = append(names, p.Signal)
	}
	sort.Strings(names)
	return names
}

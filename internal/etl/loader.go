package etl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	coreagg "github.com/ventus-lab/ventus/internal/core/aggregation"
	"github.com/ventus-lab/ventus/internal/core/storage"
	"github.com/ventus-lab/ventus/internal/metrics"
)

// ErrMisalignedTimestamp is returned for a window label off the 10-minute grid.
// The target table rejects such rows with a check constraint.
var ErrMisalignedTimestamp = errors.New("window label is not aligned to 10 minutes")

// Loader writes resampled tables into the aggregate store.
type Loader struct {
	store storage.AggregateStore
}

func NewLoader(store storage.AggregateStore) *Loader {
	return &Loader{store: store}
}

// Load upserts every present cell of table as a (signal, ts, value) point in a
// single transaction and returns the number of points written.
func (l *Loader) Load(ctx context.Context, table *coreagg.Table) (int, error) {
	if table.Empty() {
		slog.Warn("[Loader] No aggregated data to save")
		return 0, nil
	}

	points := make([]storage.AggregatePoint, 0, len(table.Rows)*len(table.Columns))
	for _, row := range table.Rows {
		if !coreagg.Aligned(row.Label, coreagg.DefaultWindow) {
			return 0, fmt.Errorf("%w: %s", ErrMisalignedTimestamp, row.Label.Format("2006-01-02T15:04:05Z07:00"))
		}
		for _, col := range table.Columns {
			v, ok := row.Values[col]
			if !ok || !v.Valid || math.IsNaN(v.Float64) || math.IsInf(v.Float64, 0) {
				continue
			}
			points = append(points, storage.AggregatePoint{
				Signal: col,
				TS:     row.Label.UTC(),
				Value:  v.Float64,
			})
		}
	}

	if len(points) == 0 {
		slog.Warn("[Loader] Every aggregated value is missing, nothing to save", "windows", len(table.Rows))
		return 0, nil
	}

	written, err := l.store.UpsertPoints(ctx, points)
	if err != nil {
		return 0, fmt.Errorf("load aggregates: %w", err)
	}
	metrics.RecordPointsWritten(written)

	slog.Info("[Loader] Saved aggregated points", "points", written, "windows", len(table.Rows))
	return written, nil
}

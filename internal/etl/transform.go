package etl

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	coreagg "github.com/ventus-lab/ventus/internal/core/aggregation"
	"github.com/ventus-lab/ventus/internal/core/fields"
)

// Layouts accepted for a record's ts. Zone-less values are read as UTC.
var recordTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// Transformer resamples extracted records into fixed windows.
type Transformer struct {
	Window time.Duration
}

// Transform resamples records into the default 10-minute windows.
func Transform(records []Record) (*coreagg.Table, error) {
	return Transformer{Window: coreagg.DefaultWindow}.Transform(records)
}

// Transform computes mean, min, max and std of every numeric field per window.
// Fields are the union of the records' keys other than ts, sorted by name.
// Null values are skipped; any other non-numeric value fails the transform.
func (t Transformer) Transform(records []Record) (*coreagg.Table, error) {
	if len(records) == 0 {
		slog.Warn("[Transform] No records to aggregate")
		return &coreagg.Table{}, nil
	}

	seen := make(map[string]struct{})
	samples := make([]coreagg.Sample, 0, len(records))
	for i, rec := range records {
		ts, err := parseRecordTime(rec[fields.Timestamp])
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		sample := coreagg.Sample{TS: ts, Values: make(map[string]decimal.Decimal, len(rec))}
		for name, raw := range rec {
			if name == fields.Timestamp {
				continue
			}
			seen[name] = struct{}{}
			if raw == nil {
				continue
			}
			v, ok := coreagg.ExtractDecimal(rec, name)
			if !ok {
				return nil, fmt.Errorf("record %d: field %q is not numeric: %v", i, name, raw)
			}
			sample.Values[name] = v
		}
		samples = append(samples, sample)
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	table := coreagg.Resample(samples, names, t.Window)

	slog.Info("[Transform] Aggregation complete",
		"records", len(records),
		"windows", len(table.Rows),
		"window", t.Window,
		"fields", names,
	)
	return table, nil
}

func parseRecordTime(v interface{}) (time.Time, error) {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}, fmt.Errorf("missing or non-string %s: %v", fields.Timestamp, v)
	}
	for _, layout := range recordTimeLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %s %q", fields.Timestamp, s)
}

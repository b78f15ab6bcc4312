package aggregation

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Sample is one timestamped observation. Values holds only the fields that
// carried a numeric value.
type Sample struct {
	TS     time.Time
	Values map[string]decimal.Decimal
}

// Resample groups samples into right-closed, right-labelled windows of the
// given size and computes every statistic in Stats for each field.
//
// Windows run contiguously from the first to the last label; a window that
// received no samples for a field has all of that field's statistics missing.
// No samples yields an empty table.
func Resample(samples []Sample, fields []string, size time.Duration) *Table {
	if len(samples) == 0 {
		return &Table{}
	}

	columns := make([]string, 0, len(fields)*len(Stats))
	for _, f := range fields {
		for _, s := range Stats {
			columns = append(columns, ColumnName(f, s))
		}
	}

	buckets := make(map[time.Time]map[string][]decimal.Decimal)
	first, last := WindowLabel(samples[0].TS, size), WindowLabel(samples[0].TS, size)
	for _, s := range samples {
		label := WindowLabel(s.TS, size)
		if label.Before(first) {
			first = label
		}
		if label.After(last) {
			last = label
		}
		bucket, ok := buckets[label]
		if !ok {
			bucket = make(map[string][]decimal.Decimal)
			buckets[label] = bucket
		}
		for field, v := range s.Values {
			bucket[field] = append(bucket[field], v)
		}
	}

	var rows []Row
	for label := first; !label.After(last); label = label.Add(size) {
		row := Row{Label: label, Values: make(map[string]sql.NullFloat64, len(columns))}
		bucket := buckets[label]
		for _, f := range fields {
			vals := bucket[f]
			for _, stat := range Stats {
				v, ok := Operators[stat].Reduce(vals)
				row.Values[ColumnName(f, stat)] = sql.NullFloat64{Float64: v, Valid: ok}
			}
		}
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}
}

package aggregation

import (
	"database/sql"
	"time"
)

// Statistics computed for every numeric field of a window.
const (
	StatMean = "mean"
	StatMin  = "min"
	StatMax  = "max"
	StatStd  = "std"
)

// Stats lists the per-window statistics in column order.
var Stats = []string{StatMean, StatMin, StatMax, StatStd}

// ColumnName returns the aggregate column for field and stat, e.g. "power_mean".
func ColumnName(field, stat string) string {
	return field + "_" + stat
}

// Row is one aggregated window. Label is the window's right edge.
// Missing statistics are stored as invalid sql.NullFloat64 values.
type Row struct {
	Label  time.Time
	Values map[string]sql.NullFloat64
}

// Table is the resampled output: one Row per window, ordered by Label.
type Table struct {
	Columns []string
	Rows    []Row
}

// Empty reports whether the table holds no windows.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

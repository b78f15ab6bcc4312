package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	v1 "github.com/ventus-lab/ventus/internal/api/v1"
	"github.com/ventus-lab/ventus/internal/core/storage"
)

// DataAdapter implements storage.DataReader over the source data table.
type DataAdapter struct {
	db *sql.DB
}

// NewDataAdapter creates a DataAdapter sharing the given connection.
func NewDataAdapter(db *sql.DB) *DataAdapter {
	return &DataAdapter{db: db}
}

// buildDataFilter renders the ts bounds as a WHERE clause. The lower bound is
// exclusive and the upper bound inclusive.
func buildDataFilter(q storage.DataQuery) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)
	if q.Start != nil {
		args = append(args, q.Start.UTC())
		conds = append(conds, fmt.Sprintf("ts > $%d", len(args)))
	}
	if q.End != nil {
		args = append(args, q.End.UTC())
		conds = append(conds, fmt.Sprintf("ts <= $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// selectColumns validates the projection against the data schema and makes
// sure ts is selected first.
func selectColumns(fields []string) ([]string, error) {
	allowed := make(map[string]struct{}, len(v1.Fields))
	for _, f := range v1.Fields {
		allowed[f] = struct{}{}
	}

	cols := []string{v1.FieldTS}
	for _, f := range fields {
		if f == v1.FieldTS {
			continue
		}
		if _, ok := allowed[f]; !ok {
			return nil, fmt.Errorf("unknown data column %q", f)
		}
		cols = append(cols, f)
	}
	return cols, nil
}

func buildCountQuery(q storage.DataQuery) (string, []interface{}) {
	where, args := buildDataFilter(q)
	return queryCountData + where, args
}

func buildListQuery(q storage.DataQuery) (string, []string, []interface{}, error) {
	cols, err := selectColumns(q.Fields)
	if err != nil {
		return "", nil, nil, err
	}
	where, args := buildDataFilter(q)
	args = append(args, q.Limit, q.Offset)
	query := fmt.Sprintf(querySelectData, strings.Join(cols, ", ")) + where +
		fmt.Sprintf(" ORDER BY ts DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	return query, cols, args, nil
}

// CountData counts the rows inside the query bounds.
func (a *DataAdapter) CountData(ctx context.Context, q storage.DataQuery) (int64, error) {
	query, args := buildCountQuery(q)

	var total int64
	if err := a.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count data: %w", err)
	}
	return total, nil
}

// ListData returns one page of projected rows, newest first.
func (a *DataAdapter) ListData(ctx context.Context, q storage.DataQuery) ([]v1.DataPoint, error) {
	query, cols, args, err := buildListQuery(q)
	if err != nil {
		return nil, fmt.Errorf("list data: %w", err)
	}

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list data: %w", err)
	}

	points, err := collectRows(rows, func(row scanner) (v1.DataPoint, error) {
		return scanDataPoint(row, cols)
	})
	if err != nil {
		return nil, fmt.Errorf("list data: %w", err)
	}
	return points, nil
}

// scanDataPoint scans a row whose first column is ts followed by the given
// measurement columns. NULL measurements stay nil.
func scanDataPoint(row scanner, cols []string) (v1.DataPoint, error) {
	var dp v1.DataPoint
	measurements := make([]sql.NullFloat64, len(cols)-1)
	dest := make([]interface{}, 0, len(cols))
	dest = append(dest, &dp.TS)
	for i := range measurements {
		dest = append(dest, &measurements[i])
	}

	if err := row.Scan(dest...); err != nil {
		return v1.DataPoint{}, fmt.Errorf("scan data row: %w", err)
	}
	dp.TS = dp.TS.UTC()

	for i, m := range measurements {
		if !m.Valid {
			continue
		}
		v := m.Float64
		if err := dp.Set(cols[i+1], &v); err != nil {
			return v1.DataPoint{}, err
		}
	}
	return dp, nil
}

package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	v1 "github.com/ventus-lab/ventus/internal/api/v1"
	"github.com/ventus-lab/ventus/internal/core/storage"
)

func TestBuildListQuery(t *testing.T) {
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		q         storage.DataQuery
		wantQuery string
		wantArgs  []interface{}
		wantCols  []string
	}{
		{
			name:      "no bounds",
			q:         storage.DataQuery{Fields: []string{"ts", "power"}, Limit: 25, Offset: 0},
			wantQuery: "SELECT ts, power FROM data ORDER BY ts DESC LIMIT $1 OFFSET $2",
			wantArgs:  []interface{}{25, 0},
			wantCols:  []string{"ts", "power"},
		},
		{
			name:      "both bounds",
			q:         storage.DataQuery{Fields: v1.Fields, Start: &start, End: &end, Limit: 2, Offset: 2},
			wantQuery: "SELECT ts, wind_speed, power, ambient_temperature FROM data WHERE ts > $1 AND ts <= $2 ORDER BY ts DESC LIMIT $3 OFFSET $4",
			wantArgs:  []interface{}{start, end, 2, 2},
			wantCols:  v1.Fields,
		},
		{
			name:      "ts added when missing",
			q:         storage.DataQuery{Fields: []string{"wind_speed"}, End: &end, Limit: 10},
			wantQuery: "SELECT ts, wind_speed FROM data WHERE ts <= $1 ORDER BY ts DESC LIMIT $2 OFFSET $3",
			wantArgs:  []interface{}{end, 10, 0},
			wantCols:  []string{"ts", "wind_speed"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			query, cols, args, err := buildListQuery(tc.q)
			require.NoError(t, err)
			require.Equal(t, tc.wantQuery, query)
			require.Equal(t, tc.wantCols, cols)
			require.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestBuildListQuery_RejectsUnknownColumn(t *testing.T) {
	_, _, _, err := buildListQuery(storage.DataQuery{Fields: []string{"power; DROP TABLE data"}})
	require.ErrorContains(t, err, "unknown data column")
}

func TestDataAdapter_CountData(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM data WHERE ts > $1")).
		WithArgs(start).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(4)))

	total, err := NewDataAdapter(db).CountData(context.Background(), storage.DataQuery{Start: &start})
	require.NoError(t, err)
	require.Equal(t, int64(4), total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDataAdapter_CountDataError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryCountData)).WillReturnError(errors.New("db down"))

	_, err = NewDataAdapter(db).CountData(context.Background(), storage.DataQuery{})
	require.ErrorContains(t, err, "count data")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDataAdapter_ListData(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ts1 := time.Date(2026, 1, 5, 0, 20, 0, 0, time.UTC)
	ts2 := time.Date(2026, 1, 5, 0, 10, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ts, wind_speed, power FROM data ORDER BY ts DESC LIMIT $1 OFFSET $2")).
		WithArgs(2, 0).
		WillReturnRows(sqlmock.NewRows([]string{"ts", "wind_speed", "power"}).
			AddRow(ts1, 7.5, nil).
			AddRow(ts2, nil, 1200.0)).
		RowsWillBeClosed()

	points, err := NewDataAdapter(db).ListData(context.Background(), storage.DataQuery{
		Fields: []string{"ts", "wind_speed", "power"},
		Limit:  2,
	})
	require.NoError(t, err)
	require.Len(t, points, 2)

	require.Equal(t, ts1, points[0].TS)
	require.NotNil(t, points[0].WindSpeed)
	require.Equal(t, 7.5, *points[0].WindSpeed)
	require.Nil(t, points[0].Power)
	require.Nil(t, points[0].AmbientTemperature)

	require.Equal(t, ts2, points[1].TS)
	require.Nil(t, points[1].WindSpeed)
	require.Equal(t, 1200.0, *points[1].Power)
	require.NoError(t, mock.ExpectationsWereMet())
}

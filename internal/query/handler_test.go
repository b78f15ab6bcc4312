package query

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	v1 "github.com/ventus-lab/ventus/internal/api/v1"
	httperr "github.com/ventus-lab/ventus/internal/core/errors"
	"github.com/ventus-lab/ventus/internal/core/storage"
	storagemocks "github.com/ventus-lab/ventus/internal/mocks/storage"
)

func newTestRouter(reader storage.DataReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewService(reader).RegisterRoutes(r.Group("/api/v1/data"))
	return r
}

func serve(r http.Handler, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestHandleListData_Success(t *testing.T) {
	reader := storagemocks.NewDataReader(t)
	ts := time.Date(2024, 1, 1, 0, 30, 0, 0, time.UTC)

	reader.EXPECT().CountData(mock.Anything, mock.Anything).Return(int64(4), nil).Once()
	reader.EXPECT().
		ListData(mock.Anything, mock.MatchedBy(func(q storage.DataQuery) bool {
			return q.Limit == 2 && q.Offset == 0
		})).
		Return([]v1.DataPoint{{TS: ts, Power: ptr(12.5)}, {TS: ts.Add(-time.Minute), Power: ptr(11)}}, nil).
		Once()

	resp := serve(newTestRouter(reader), "/api/v1/data/?fields=power&page_size=2")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Data   []map[string]interface{} `json:"data"`
		Paging v1.Paging                `json:"paging"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	require.Equal(t, "2024-01-01T00:30:00Z", body.Data[0]["ts"])
	require.Equal(t, 12.5, body.Data[0]["power"])
	require.NotContains(t, body.Data[0], "wind_speed")
	require.Equal(t, v1.Paging{Page: 1, TotalPages: 2, ItemsPerPage: 2, TotalItems: 4, HasNext: true}, body.Paging)
}

func TestHandleListData_WithoutTrailingSlash(t *testing.T) {
	reader := storagemocks.NewDataReader(t)
	reader.EXPECT().CountData(mock.Anything, mock.Anything).Return(int64(0), nil).Once()

	resp := serve(newTestRouter(reader), "/api/v1/data")
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t,
		`{"data":[],"paging":{"page":1,"total_pages":0,"items_per_page":25,"total_items":0,"has_next":false}}`,
		resp.Body.String())
}

func TestHandleListData_ParsesTimestamps(t *testing.T) {
	reader := storagemocks.NewDataReader(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	reader.EXPECT().
		CountData(mock.Anything, mock.MatchedBy(func(q storage.DataQuery) bool {
			return q.Start != nil && q.Start.Equal(start) && q.End != nil && q.End.Equal(end)
		})).
		Return(int64(0), nil).
		Once()

	resp := serve(newTestRouter(reader), "/api/v1/data/?start_ts=2024-01-01&end_ts=2024-01-02T12:00:00")
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestHandleListData_InvalidFields(t *testing.T) {
	reader := storagemocks.NewDataReader(t)

	resp := serve(newTestRouter(reader), "/api/v1/data/?fields=invalid_field,power")
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var body struct {
		ErrorType string `json:"error_type"`
		Details   struct {
			InvalidFields []string `json:"invalid_fields"`
			ValidFields   []string `json:"valid_fields"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, httperr.HttpInvalidFieldsError, body.ErrorType)
	require.Equal(t, []string{"invalid_field"}, body.Details.InvalidFields)
	require.Equal(t, v1.Fields, body.Details.ValidFields)
}

func TestHandleListData_StatusMapping(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
		configure      func(reader *storagemocks.DataReader)
	}{
		{
			name:           "page zero returns 422",
			query:          "page=0",
			expectedStatus: http.StatusUnprocessableEntity,
			configure:      func(_ *storagemocks.DataReader) {},
		},
		{
			name:           "page size above limit returns 422",
			query:          "page_size=1001",
			expectedStatus: http.StatusUnprocessableEntity,
			configure:      func(_ *storagemocks.DataReader) {},
		},
		{
			name:           "non numeric page returns 422",
			query:          "page=abc",
			expectedStatus: http.StatusUnprocessableEntity,
			configure:      func(_ *storagemocks.DataReader) {},
		},
		{
			name:           "unparseable timestamp returns 422",
			query:          "start_ts=yesterday",
			expectedStatus: http.StatusUnprocessableEntity,
			configure:      func(_ *storagemocks.DataReader) {},
		},
		{
			name:           "store error returns 500",
			query:          "page=1",
			expectedStatus: http.StatusInternalServerError,
			configure: func(reader *storagemocks.DataReader) {
				reader.EXPECT().CountData(mock.Anything, mock.Anything).Return(int64(0), errors.New("db failure")).Once()
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reader := storagemocks.NewDataReader(t)
			tc.configure(reader)

			resp := serve(newTestRouter(reader), "/api/v1/data/?"+tc.query)
			if resp.Code != tc.expectedStatus {
				t.Logf("unexpected response body: %s", resp.Body.String())
			}
			require.Equal(t, tc.expectedStatus, resp.Code)
		})
	}
}

func TestHandleListData_InternalErrorHidesDetails(t *testing.T) {
	reader := storagemocks.NewDataReader(t)
	reader.EXPECT().CountData(mock.Anything, mock.Anything).Return(int64(0), errors.New("password=hunter2")).Once()

	resp := serve(newTestRouter(reader), "/api/v1/data/")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	require.NotContains(t, resp.Body.String(), "hunter2")
}

func TestHandleFields(t *testing.T) {
	resp := serve(newTestRouter(storagemocks.NewDataReader(t)), "/api/v1/data/fields")
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `["ts","wind_speed","power","ambient_temperature"]`, resp.Body.String())
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, 3, 1, 8, 15, 0, 0, time.UTC)
	for _, raw := range []string{
		"2024-03-01T08:15:00Z",
		"2024-03-01T09:15:00+01:00",
		"2024-03-01T08:15:00",
		"2024-03-01 08:15:00",
	} {
		got, err := parseTimestamp("start_ts", raw)
		require.NoError(t, err, raw)
		require.True(t, got.Equal(want), raw)
		require.Equal(t, time.UTC, got.Location())
	}

	got, err := parseTimestamp("start_ts", "  ")
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = parseTimestamp("end_ts", "03/01/2024")
	require.ErrorContains(t, err, "end_ts")
}

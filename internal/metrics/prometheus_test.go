package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// counterValue reads a counter from the default registry. Labels not listed
// in want are ignored.
func counterValue(t *testing.T, name string, want map[string]string) float64 {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			matched := 0
			for _, lp := range m.GetLabel() {
				if v, ok := want[lp.GetName()]; ok && v == lp.GetValue() {
					matched++
				}
			}
			if matched == len(want) {
				total += m.GetCounter().GetValue()
			}
		}
	}
	return total
}

func TestRecordHTTPRequest(t *testing.T) {
	labels := map[string]string{"method": http.MethodGet, "path": "/api/v1/data/", "status_code": "200"}
	before := counterValue(t, "ventus_http_requests_total", labels)

	RecordHTTPRequest(http.MethodGet, "/api/v1/data/", http.StatusOK, 15*time.Millisecond)

	require.Equal(t, before+1, counterValue(t, "ventus_http_requests_total", labels))
}

func TestRecordPageFetched(t *testing.T) {
	pages := counterValue(t, "ventus_etl_pages_fetched_total", nil)
	records := counterValue(t, "ventus_etl_records_extracted_total", nil)

	RecordPageFetched(25)

	require.Equal(t, pages+1, counterValue(t, "ventus_etl_pages_fetched_total", nil))
	require.Equal(t, records+25, counterValue(t, "ventus_etl_records_extracted_total", nil))
}

func TestRecordETLRun(t *testing.T) {
	labels := map[string]string{"status": "failed"}
	before := counterValue(t, "ventus_etl_runs_total", labels)

	RecordETLRun("failed", time.Second)

	require.Equal(t, before+1, counterValue(t, "ventus_etl_runs_total", labels))
}

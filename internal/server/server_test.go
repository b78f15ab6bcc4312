package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubHealth struct{ err error }

func (s stubHealth) Ping(context.Context) error { return s.err }

func do(h http.Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	return resp
}

func TestServer_Root(t *testing.T) {
	s := New(":0", stubHealth{}, "release")

	resp := do(s.Engine, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `{"message":"data API is up"}`, resp.Body.String())
}

func TestServer_Health(t *testing.T) {
	tests := []struct {
		name       string
		health     HealthChecker
		wantStatus int
		wantState  string
	}{
		{name: "healthy", health: stubHealth{}, wantStatus: http.StatusOK, wantState: "healthy"},
		{name: "db down", health: stubHealth{err: errors.New("dial tcp")}, wantStatus: http.StatusServiceUnavailable, wantState: "unhealthy"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(":0", tc.health, "release")

			resp := do(s.Engine, http.MethodGet, "/health", nil)
			require.Equal(t, tc.wantStatus, resp.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			require.Equal(t, tc.wantState, body["status"])
		})
	}
}

func TestServer_MetricsEndpoint(t *testing.T) {
	s := New(":0", stubHealth{}, "release")
	do(s.Engine, http.MethodGet, "/health", nil)

	resp := do(s.Engine, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), "ventus_http_requests_total")
}

func TestRequestID(t *testing.T) {
	s := New(":0", stubHealth{}, "release")

	resp := do(s.Engine, http.MethodGet, "/", nil)
	require.Len(t, resp.Header().Get(RequestIDHeader), 36)

	resp = do(s.Engine, http.MethodGet, "/", http.Header{RequestIDHeader: []string{"abc-123"}})
	require.Equal(t, "abc-123", resp.Header().Get(RequestIDHeader))
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(0.001, 2, func(c *gin.Context) string { return c.GetHeader("X-Key") })
	r := gin.New()
	r.GET("/limited", limiter.Handler(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	alice := http.Header{"X-Key": []string{"alice"}}
	require.Equal(t, http.StatusNoContent, do(r, http.MethodGet, "/limited", alice).Code)
	require.Equal(t, http.StatusNoContent, do(r, http.MethodGet, "/limited", alice).Code)
	require.Equal(t, http.StatusTooManyRequests, do(r, http.MethodGet, "/limited", alice).Code)

	// Buckets are per key.
	bob := http.Header{"X-Key": []string{"bob"}}
	require.Equal(t, http.StatusNoContent, do(r, http.MethodGet, "/limited", bob).Code)
}

package etl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ventus-lab/ventus/internal/metrics"
)

// Extraction failures. Every failure discards the records fetched so far.
var (
	ErrUnauthorized = errors.New("source API rejected the API key")
	ErrUpstream     = errors.New("source API returned an error status")
	ErrTransport    = errors.New("source API request failed")
)

// queryLayout is the zone-less timestamp format sent as start_ts / end_ts.
const queryLayout = "2006-01-02T15:04:05"

// Record is one decoded row of the source API. Numbers are json.Number.
type Record map[string]interface{}

type pageResponse struct {
	Data   []Record `json:"data"`
	Paging struct {
		TotalPages int `json:"total_pages"`
	} `json:"paging"`
}

// Extractor pulls paginated data from the data API with a bearer API key.
type Extractor struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewExtractor creates an Extractor for baseURL, the data listing endpoint
// (e.g. http://api:8000/api/v1/data).
func NewExtractor(baseURL, apiKey string, timeout time.Duration) *Extractor {
	return &Extractor{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fields returns the field names the source API accepts.
func (e *Extractor) Fields(ctx context.Context) ([]string, error) {
	var names []string
	if err := e.getJSON(ctx, e.baseURL+"/fields", &names); err != nil {
		e.logFailure("fields", err)
		return nil, err
	}
	return names, nil
}

// Extract fetches every page of data between the calendar days of start and
// end (both normalized to midnight UTC), one page at a time.
//
// Any failure returns a nil slice together with ErrUnauthorized, ErrUpstream
// or ErrTransport. An empty range returns a nil slice and a nil error.
func (e *Extractor) Extract(ctx context.Context, start, end time.Time, fields []string, pageSize int) ([]Record, error) {
	params := url.Values{}
	params.Set("start_ts", midnight(start).Format(queryLayout))
	params.Set("end_ts", midnight(end).Format(queryLayout))
	params.Set("fields", strings.Join(fields, ","))
	params.Set("page_size", strconv.Itoa(pageSize))

	var records []Record
	totalPages := 1
	for page := 1; page <= totalPages; page++ {
		params.Set("page", strconv.Itoa(page))

		var resp pageResponse
		if err := e.getJSON(ctx, e.baseURL+"?"+params.Encode(), &resp); err != nil {
			e.logFailure("page "+strconv.Itoa(page), err)
			return nil, fmt.Errorf("page %d: %w", page, err)
		}

		if page == 1 {
			totalPages = resp.Paging.TotalPages
		}
		records = append(records, resp.Data...)
		metrics.RecordPageFetched(len(resp.Data))

		slog.Debug("[Extractor] Fetched page",
			"page", page,
			"total_pages", totalPages,
			"records", len(resp.Data),
		)
	}

	return records, nil
}

func (e *Extractor) getJSON(ctx context.Context, target string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	if e.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.apiKey)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrTransport, err)
	}
	return nil
}

func (e *Extractor) logFailure(what string, err error) {
	if errors.Is(err, ErrUnauthorized) {
		slog.Error("[Extractor] Source API authentication failed, check etl.api_key", "request", what, "error", err)
		return
	}
	slog.Error("[Extractor] Source API request failed", "request", what, "error", err)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

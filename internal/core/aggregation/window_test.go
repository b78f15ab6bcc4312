package aggregation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseWindowSize(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantSize  time.Duration
		wantError bool
	}{
		{name: "ten minutes", input: "10m", wantSize: 10 * time.Minute},
		{name: "hour", input: "1h", wantSize: time.Hour},
		{name: "days suffix", input: "1d", wantSize: 24 * time.Hour},
		{name: "not a multiple", input: "15m", wantError: true},
		{name: "minute too small", input: "1m", wantError: true},
		{name: "empty invalid", input: "", wantError: true},
		{name: "negative invalid", input: "-10m", wantError: true},
		{name: "zero invalid", input: "0m", wantError: true},
		{name: "bad day format invalid", input: "xd", wantError: true},
		{name: "unknown unit invalid", input: "10x", wantError: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := ParseWindowSize(tc.input)
			if tc.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantSize, spec.Size)
		})
	}
}

func TestWindowLabel(t *testing.T) {
	day := func(h, m, s, ns int) time.Time { return time.Date(2026, 2, 11, h, m, s, ns, time.UTC) }

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{name: "inside window rounds up", in: day(10, 3, 12, 0), want: day(10, 10, 0, 0)},
		{name: "boundary is its own label", in: day(10, 10, 0, 0), want: day(10, 10, 0, 0)},
		{name: "just past boundary", in: day(10, 10, 0, 1), want: day(10, 20, 0, 0)},
		{name: "last window of the day", in: day(23, 55, 0, 0), want: time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC)},
		{name: "midnight", in: day(0, 0, 0, 0), want: day(0, 0, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, WindowLabel(tc.in, DefaultWindow))
		})
	}
}

func TestWindowLabel_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*3600)
	in := time.Date(2026, 2, 11, 7, 3, 0, 0, loc)
	require.Equal(t, time.Date(2026, 2, 11, 10, 10, 0, 0, time.UTC), WindowLabel(in, DefaultWindow))
}

func TestAligned(t *testing.T) {
	require.True(t, Aligned(time.Date(2026, 2, 11, 10, 20, 0, 0, time.UTC), DefaultWindow))
	require.False(t, Aligned(time.Date(2026, 2, 11, 10, 25, 0, 0, time.UTC), DefaultWindow))
	require.False(t, Aligned(time.Date(2026, 2, 11, 10, 20, 30, 0, time.UTC), DefaultWindow))
}

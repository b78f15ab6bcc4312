package aggregation

import (
	"fmt"
	"time"
)

// DefaultWindow is the resampling step and the alignment enforced by the
// aggregate store.
const DefaultWindow = 10 * time.Minute

// WindowSpec represents a parsed and validated window size.
type WindowSpec struct {
	Size time.Duration
}

// ParseWindowSize parses a duration string into a WindowSpec.
// Supports Go duration syntax (e.g. "10m", "1h") plus "Xd" for days. The size
// must be a whole multiple of DefaultWindow so labels stay aligned.
func ParseWindowSize(s string) (WindowSpec, error) {
	if s == "" {
		return WindowSpec{}, fmt.Errorf("window_size must not be empty")
	}

	var d time.Duration
	if len(s) > 1 && s[len(s)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(s, "%dd", &days); err != nil {
			return WindowSpec{}, fmt.Errorf("invalid window_size %q: %w", s, err)
		}
		d = time.Duration(days) * 24 * time.Hour
	} else {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return WindowSpec{}, fmt.Errorf("invalid window_size %q: %w", s, err)
		}
		d = parsed
	}

	if d <= 0 {
		return WindowSpec{}, fmt.Errorf("window_size must be positive, got %q", s)
	}
	if d%DefaultWindow != 0 {
		return WindowSpec{}, fmt.Errorf("window_size %q must be a multiple of %s", s, DefaultWindow)
	}
	return WindowSpec{Size: d}, nil
}

// WindowLabel returns the right edge of the right-closed window (label-size, label]
// that contains t. A timestamp exactly on a boundary is its own label.
// Example: WindowLabel(10:03:12, 10m) is 10:10:00, WindowLabel(10:10:00, 10m) is 10:10:00
func WindowLabel(t time.Time, size time.Duration) time.Time {
	t = t.UTC()
	label := t.Truncate(size)
	if label.Before(t) {
		label = label.Add(size)
	}
	return label
}

// Aligned reports whether t sits exactly on a size boundary.
func Aligned(t time.Time, size time.Duration) bool {
	return t.Equal(t.Truncate(size))
}

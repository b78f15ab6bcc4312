// Package paging derives page counts and row offsets from a total item count.
package paging

import "math"

// Window describes one page of a result set.
type Window struct {
	Page       int
	PageSize   int
	TotalItems int64
	TotalPages int
	Offset     int64
	HasNext    bool
}

// Compute returns the paging window for page (1-based) of pageSize items
// over totalItems rows. An empty result set has zero pages.
//
// Callers validate page >= 1 and pageSize >= 1 before calling. An offset
// that does not fit in int64 saturates at math.MaxInt64.
func Compute(totalItems int64, page, pageSize int) Window {
	w := Window{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		Offset:     offset(page, pageSize),
	}
	if totalItems > 0 {
		size := int64(pageSize)
		w.TotalPages = int((totalItems + size - 1) / size)
	}
	w.HasNext = page < w.TotalPages
	return w
}

func offset(page, pageSize int) int64 {
	skipped, size := int64(page)-1, int64(pageSize)
	if skipped > math.MaxInt64/size {
		return math.MaxInt64
	}
	return skipped * size
}

package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	v1 "github.com/ventus-lab/ventus/internal/api/v1"
	"github.com/ventus-lab/ventus/internal/core/config"
	"github.com/ventus-lab/ventus/internal/core/fields"
	"github.com/ventus-lab/ventus/internal/core/paging"
	"github.com/ventus-lab/ventus/internal/core/storage"
)

// ErrInvalidQuery marks paging validation errors that should return HTTP 422.
var ErrInvalidQuery = errors.New("invalid data query")

func invalidQueryf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}

// Service serves paginated, field-projected reads of the source data table.
type Service struct {
	reader storage.DataReader
	fields []string
}

// NewService creates a query service over reader.
func NewService(reader storage.DataReader) *Service {
	return &Service{
		reader: reader,
		fields: append([]string(nil), v1.Fields...),
	}
}

// Fields returns the projectable field names in response order.
func (s *Service) Fields() []string {
	return append([]string(nil), s.fields...)
}

// QueryPage returns one page of rows newest first.
//
// Unknown field names fail with *fields.InvalidFieldError; out-of-range paging
// fails with ErrInvalidQuery. Any other error comes from storage.
func (s *Service) QueryPage(ctx context.Context, req Request) (*v1.Page, error) {
	if req.Page < 1 {
		return nil, invalidQueryf("page must be >= 1, got %d", req.Page)
	}
	if req.PageSize < 1 || req.PageSize > config.MaxPageSize {
		return nil, invalidQueryf("page_size must be between 1 and %d, got %d", config.MaxPageSize, req.PageSize)
	}

	projection, err := fields.Project(req.Fields, s.fields)
	if err != nil {
		return nil, err
	}

	q := storage.DataQuery{
		Fields: projection,
		Start:  req.Start,
		End:    req.End,
	}

	total, err := s.reader.CountData(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("count data: %w", err)
	}

	window := paging.Compute(total, req.Page, req.PageSize)
	q.Limit = window.PageSize
	q.Offset = window.Offset

	points := []v1.DataPoint{}
	if window.Page <= window.TotalPages {
		rows, err := s.reader.ListData(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("list data: %w", err)
		}
		if rows != nil {
			points = rows
		}
	}

	slog.Debug("[Query] Served data page",
		"page", window.Page,
		"page_size", window.PageSize,
		"total_items", total,
		"returned", len(points),
		"fields", projection,
	)

	return &v1.Page{
		Data: points,
		Paging: v1.Paging{
			Page:         window.Page,
			TotalPages:   window.TotalPages,
			ItemsPerPage: window.PageSize,
			TotalItems:   total,
			HasNext:      window.HasNext,
		},
	}, nil
}

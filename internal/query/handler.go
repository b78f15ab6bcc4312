package query

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	httperr "github.com/ventus-lab/ventus/internal/core/errors"
	"github.com/ventus-lab/ventus/internal/core/fields"
)

// Accepted layouts for start_ts and end_ts. Zone-less values are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// RegisterRoutes registers the data routes on r, usually the authenticated
// /api/v1/data group.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("", s.HandleListData)
	r.GET("/", s.HandleListData)
	r.GET("/fields", s.HandleFields)
}

// HandleFields handles GET /api/v1/data/fields.
func (s *Service) HandleFields(c *gin.Context) {
	c.JSON(http.StatusOK, s.Fields())
}

// HandleListData handles GET /api/v1/data/
// Query parameters: start_ts, end_ts, fields, page, page_size
func (s *Service) HandleListData(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusUnprocessableEntity, httperr.ErrorResponse{
			ErrorType: httperr.HttpValidationError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	req, err := q.toRequest()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, httperr.ErrorResponse{
			ErrorType: httperr.HttpValidationError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	page, err := s.QueryPage(c.Request.Context(), req)
	if err != nil {
		var invalid *fields.InvalidFieldError
		switch {
		case errors.As(err, &invalid):
			c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
				ErrorType: httperr.HttpInvalidFieldsError,
				Message:   "Invalid fields: " + strings.Join(invalid.Fields, ", "),
				Details: invalidFieldsDetails{
					InvalidFields: invalid.Fields,
					ValidFields:   s.Fields(),
				},
			})
		case errors.Is(err, ErrInvalidQuery):
			c.JSON(http.StatusUnprocessableEntity, httperr.ErrorResponse{
				ErrorType: httperr.HttpValidationError,
				Message:   "Invalid query parameters",
				Details:   err.Error(),
			})
		default:
			slog.Error("[Query] Failed to query data", "error", err)
			c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
				ErrorType: httperr.HttpInternalError,
				Message:   "Failed to query data",
			})
		}
		return
	}

	c.JSON(http.StatusOK, page)
}

func (q listQuery) toRequest() (Request, error) {
	req := Request{
		Fields:   q.Fields,
		Page:     q.Page,
		PageSize: q.PageSize,
	}

	var err error
	if req.Start, err = parseTimestamp("start_ts", q.StartTS); err != nil {
		return Request{}, err
	}
	if req.End, err = parseTimestamp("end_ts", q.EndTS); err != nil {
		return Request{}, err
	}
	return req, nil
}

func parseTimestamp(name, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%s: cannot parse %q as a timestamp", name, raw)
}

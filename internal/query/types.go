package query

import "time"

// Request is a validated data listing request.
// Start is exclusive and End inclusive; nil bounds are open.
type Request struct {
	Fields   string
	Start    *time.Time
	End      *time.Time
	Page     int
	PageSize int
}

// listQuery is the raw query-string shape of GET /api/v1/data/.
type listQuery struct {
	StartTS  string `form:"start_ts"`
	EndTS    string `form:"end_ts"`
	Fields   string `form:"fields"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"page_size,default=25" binding:"min=1,max=1000"`
}

// invalidFieldsDetails is the details payload of a 400 invalid_fields response.
type invalidFieldsDetails struct {
	InvalidFields []string `json:"invalid_fields"`
	ValidFields   []string `json:"valid_fields"`
}

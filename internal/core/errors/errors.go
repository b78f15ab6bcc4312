package errors

const (
	HttpInternalError      = "internal_error"
	HttpInvalidFieldsError = "invalid_fields"
	HttpValidationError    = "validation_failed"
	HttpUnauthorizedError  = "unauthorized"
	HttpRateLimitedError   = "rate_limited"
)

// ErrorResponse is the error response body shared by every HTTP handler.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}

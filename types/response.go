package types

// Stable machine-readable error codes returned alongside HTTP statuses so
// clients can branch on the condition instead of parsing messages.
const (
	CodeValidationFailed = "validation_failed"
	CodeNotFound         = "not_found"
	CodeVenueUnavailable = "venue_unavailable"
	CodeUnauthorized     = "unauthorized"
	CodeForbidden        = "forbidden"
	CodeInternalError    = "internal_error"
)

type ApiResponse struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Code    string      `json:"code,omitempty"`
	Token   string      `json:"token,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

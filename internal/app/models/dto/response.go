package dto

import "time"

// APIResponse is the standard success envelope for API endpoints
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// SuccessResponse represents a standard success message for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// PagedResponse is the envelope for cursor-paginated listings. NextCursor is
// present only when more results may exist; clients pass it back verbatim.
type PagedResponse struct {
	Items      interface{} `json:"items"`
	NextCursor string      `json:"nextCursor,omitempty"`
}

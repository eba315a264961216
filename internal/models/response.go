package models

// StandardResponse is the envelope returned by the upstream rate API.
type StandardResponse[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse represents an error returned by the JSON endpoints
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: date is outside the archive range
	Error string `json:"error"`
}

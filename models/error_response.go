package models

// ErrorResponse is the JSON error payload returned by the HTTP layer.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

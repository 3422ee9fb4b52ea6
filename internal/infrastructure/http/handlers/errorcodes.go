package handlers

// API error codes returned in JSON { "error": "...", "code": "..." }
// for stable client handling.
const (
	ErrCodeInvalidRequest     = "invalid_request"
	ErrCodeUnauthorized       = "unauthorized"
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeAccountNotFound    = "account_not_found"
	ErrCodeNotFound           = "not_found"
	ErrCodeConflict           = "conflict"
	ErrCodeTooManyRequests    = "rate_limited"
	ErrCodeInternal           = "internal_error"
)

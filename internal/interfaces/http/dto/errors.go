package dto

import "net/http"

// Error codes surfaced by the local facade
const (
	ErrCodeInternal         = "INTERNAL_ERROR"
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeInvalidInput     = "INVALID_INPUT"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeNotAuthenticated = "NOT_AUTHENTICATED"
	ErrCodeRemoteFailure    = "REMOTE_FAILURE"
	ErrCodeSessionExpired   = "SESSION_EXPIRED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:         http.StatusInternalServerError,
	ErrCodeBadRequest:       http.StatusBadRequest,
	ErrCodeInvalidInput:     http.StatusBadRequest,
	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeNotAuthenticated: http.StatusUnauthorized,
	ErrCodeSessionExpired:   http.StatusUnauthorized,

	// The facade proxies a remote backend; its unavailability is a 502
	// from the caller's point of view.
	ErrCodeRemoteFailure: http.StatusBadGateway,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

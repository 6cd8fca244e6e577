package client

import (
	"errors"
	"fmt"
)

// APIError is the classified failure of one endpoint call. Status 0
// means the server was never reached (timeout, refused connection,
// DNS failure); those are always retryable. HTTP 4xx is terminal,
// everything else retryable.
type APIError struct {
	Endpoint  string
	Status    int
	Body      string
	Retryable bool
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("network error on %s: %s", e.Endpoint, e.Body)
	}
	return fmt.Sprintf("api error: %d on %s", e.Status, e.Endpoint)
}

// IsRetryable reports whether err is an APIError marked retryable.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable
	}
	return false
}

// IsNetworkFailure reports whether the server was never reached.
func IsNetworkFailure(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == 0
	}
	return false
}

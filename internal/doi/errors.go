package doi

import "errors"

// Common errors returned by the resolver client.
var (
	// ErrNotFound indicates the DOI is not registered.
	ErrNotFound = errors.New("DOI not found")

	// ErrRateLimited indicates the resolver rejected the request for
	// exceeding its rate limit.
	ErrRateLimited = errors.New("DOI resolver rate limit exceeded")

	// ErrNetworkError indicates a network connectivity issue.
	ErrNetworkError = errors.New("network error contacting DOI resolver")
)

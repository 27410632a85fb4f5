package callback

import "errors"

const (
	ErrCodeTimeout      = "TIMEOUT"
	ErrCodeNetworkError = "NETWORK_ERROR"
	ErrCodeInvalidURL   = "INVALID_URL"
)

var (
	ErrTimeout    = errors.New(ErrCodeTimeout)
	ErrNetwork    = errors.New(ErrCodeNetworkError)
	ErrInvalidURL = errors.New(ErrCodeInvalidURL)
)

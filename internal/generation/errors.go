package generation

import (
	"errors"
	"fmt"
)

// AuthError represents a credential or permission failure from the generation
// provider. Never retried; it indicates misconfiguration, not load.
type AuthError struct {
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation auth error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation auth error: %s", e.Message)
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// TransientError represents a retryable provider failure (network, 5xx, rate
// limit).
type TransientError struct {
	Message string
	Cause   error
}

func (e *TransientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation transient error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation transient error: %s", e.Message)
}

func (e *TransientError) Unwrap() error {
	return e.Cause
}

// EmptyResponseError represents a provider response with no usable text.
type EmptyResponseError struct {
	Message string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("generation empty response: %s", e.Message)
}

// IsAuthError reports whether err is (or wraps) an AuthError.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

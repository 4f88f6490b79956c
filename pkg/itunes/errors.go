package itunes

import (
	"errors"
	"fmt"
)

// TransportError is returned when a request could not be completed:
// the connection failed, the context ended, or the endpoint answered
// with a non-2xx status.
type TransportError struct {
	URL        string // Request URL
	StatusCode int    // HTTP status code, zero when no response was received
	Err        error  // Underlying cause
}

// Error returns the error message.
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("itunes: transport: unexpected status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("itunes: transport: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a response body does not have the
// expected JSON shape.
type DecodeError struct {
	Kind Kind   // Result kind that was being decoded
	Body string // Leading bytes of the response body
	Err  error  // Raw decoder error
}

// Error returns the error message.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("itunes: decode %s response: %v", e.Kind, e.Err)
}

// Unwrap returns the raw decoder error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Predefined errors for common cases.
var (
	// ErrInvalidQuery is returned when a query fails validation. No
	// request is sent.
	ErrInvalidQuery = errors.New("itunes: invalid query")
)

// IsTransport reports whether err is, or wraps, a *TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsDecode reports whether err is, or wraps, a *DecodeError.
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

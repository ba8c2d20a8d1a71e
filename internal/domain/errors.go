package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks malformed setter input or a malformed matrix call.
// It is always returned synchronously, before any network I/O.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrDecodeResponse marks a 200 response whose body is not valid JSON.
var ErrDecodeResponse = errors.New("decode matrix response")

// APIRequestError is returned when the API answers with a status other than 200.
type APIRequestError struct {
	StatusCode int
	Body       string
}

func (e *APIRequestError) Error() string {
	return "DMA API request error: " + e.Body
}

// TransportError wraps a failure to obtain any HTTP response at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("DMA transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError reports a non-OK status inside an otherwise successful response.
type StatusError struct {
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return "DMA status " + e.Status
	}
	return fmt.Sprintf("DMA status %s: %s", e.Status, e.Message)
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

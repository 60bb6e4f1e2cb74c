package onoffice

import (
	"fmt"
)

// EncodingError is returned when a signature input is not valid UTF-8.
// It is raised before any network I/O.
type EncodingError struct {
	Field string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding signature input: %s is not valid UTF-8", e.Field)
}

// TransportError wraps connection, DNS and timeout failures.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("onOffice transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UpstreamHTTPError is returned for 4xx and 5xx responses.
type UpstreamHTTPError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamHTTPError) Error() string {
	return fmt.Sprintf("onOffice API error (status %d): %s", e.StatusCode, e.Body)
}

// MalformedResponseError is returned when a successful response body is not JSON.
type MalformedResponseError struct {
	Body string
	Err  error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("parsing onOffice response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

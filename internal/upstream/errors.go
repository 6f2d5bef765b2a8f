// Package upstream is the HTTP client for the analysis service. It owns the
// transport contract: exact wire field names, the error taxonomy, and schema
// validation of everything the service sends back.
package upstream

import "fmt"

// GenericFailureMessage is surfaced when the service reports failure without
// a detail payload.
const GenericFailureMessage = "Analysis failed"

// NetworkError is a transport failure or timeout. The call never produced a
// usable response.
type NetworkError struct {
	Op    string
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Cause)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// UpstreamError is a non-success status from the analysis service. Detail
// carries the service's own message when it sent one.
type UpstreamError struct {
	Op         string
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error during %s (status %d): %s", e.Op, e.StatusCode, e.Message())
}

// Message returns the user-facing failure message, falling back to a generic
// one when the service sent no detail.
func (e *UpstreamError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return GenericFailureMessage
}

// MalformedResponseError is a success status whose body is missing
// contractually required fields or cannot be decoded. Fatal to the submission
// only, never to the process.
type MalformedResponseError struct {
	Op      string
	Message string
	Cause   error
}

func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed response from %s: %s: %v", e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed response from %s: %s", e.Op, e.Message)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}

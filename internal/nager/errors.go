package nager

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCountryCode reports an upstream 404 for the country (or year).
	ErrInvalidCountryCode = errors.New("invalid country code")
	// ErrUpstreamUnavailable covers network failures, timeouts and non-404 errors.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrCheckFailed is returned when IsTodayHoliday cannot reach a verdict.
	ErrCheckFailed = errors.New("holiday check failed")
)

// Error is returned by every Client operation. Its message is meant for the
// tool caller; errors.Is matches both the kind and the cause.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func newError(kind error, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Err: cause}
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() []error { return []error{e.Kind, e.Err} }

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.code)
}

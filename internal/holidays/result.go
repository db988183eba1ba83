package holidays

import (
	"errors"

	"mcp-funcs/internal/nager"
)

// ErrorKind classifies a failed tool call.
type ErrorKind int

const (
	// OK marks a successful result.
	OK ErrorKind = iota
	// InvalidArgument is a missing or malformed argument; no upstream call was made.
	InvalidArgument
	// InvalidCountryCode is an upstream 404.
	InvalidCountryCode
	// UpstreamUnavailable covers network, timeout and other upstream failures.
	UpstreamUnavailable
	// CheckFailed is a failed is-today lookup.
	CheckFailed
)

func (k ErrorKind) String() string {
	switch k {
	case OK:
		return "ok"
	case InvalidArgument:
		return "invalid_argument"
	case InvalidCountryCode:
		return "invalid_country_code"
	case UpstreamUnavailable:
		return "upstream_unavailable"
	case CheckFailed:
		return "check_failed"
	}
	return "unknown"
}

// Result is the outcome of a tool call before it is shaped for a caller.
type Result[T any] struct {
	Value   T
	Kind    ErrorKind
	Message string
}

// Failed reports whether the call failed.
func (r Result[T]) Failed() bool { return r.Kind != OK }

// Message is the value of the is-today tool.
type Message struct {
	Message string `json:"message"`
}

func success[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func failure[T any](kind ErrorKind, msg string) Result[T] {
	return Result[T]{Kind: kind, Message: msg}
}

func fromError[T any](err error) Result[T] {
	kind := UpstreamUnavailable
	switch {
	case errors.Is(err, nager.ErrCheckFailed):
		kind = CheckFailed
	case errors.Is(err, nager.ErrInvalidCountryCode):
		kind = InvalidCountryCode
	}
	return failure[T](kind, err.Error())
}

func erase[T any](r Result[T]) Result[any] {
	return Result[any]{Value: r.Value, Kind: r.Kind, Message: r.Message}
}

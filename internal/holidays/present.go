package holidays

import (
	"encoding/json"
	"net/http"
)

// errorBody is the JSON shape of a failure in both presentations.
type errorBody struct {
	Error string `json:"error"`
}

// Native renders r for the native tool trigger: a JSON document that is the
// value itself, or {"error": message} on failure.
func Native[T any](r Result[T]) string {
	var v any = r.Value
	if r.Failed() {
		v = errorBody{Error: r.Message}
	}
	b, err := json.Marshal(v)
	if err != nil {
		b, _ = json.Marshal(errorBody{Error: err.Error()})
	}
	return string(b)
}

// LegacyResponse is the {status, body} envelope of the fallback invocation path.
type LegacyResponse struct {
	Status int `json:"status"`
	Body   any `json:"body"`
}

// Legacy renders r for the fallback path: 200 with the value, or 400 with
// {"error": message}.
func Legacy[T any](r Result[T]) LegacyResponse {
	if r.Failed() {
		return LegacyResponse{Status: http.StatusBadRequest, Body: errorBody{Error: r.Message}}
	}
	return LegacyResponse{Status: http.StatusOK, Body: r.Value}
}

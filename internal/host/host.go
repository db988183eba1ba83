// Package host implements the function host's custom handler contract.
//
// The host reaches a custom handler in two ways: HTTP triggers may be
// forwarded as plain HTTP requests under /api/<route>, and every other
// invocation arrives as a POST to /<FunctionName> whose JSON body carries the
// trigger data and metadata. This package holds the wire types for both and
// the per-invocation context handed to function code.
package host

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrMissingBinding is returned when an invocation lacks the requested
// input binding.
var ErrMissingBinding = errors.New("missing binding")

// InvokeRequest is the payload the host posts for each invocation.
type InvokeRequest struct {
	Data     map[string]json.RawMessage `json:"Data"`
	Metadata map[string]json.RawMessage `json:"Metadata"`
}

// InvokeResponse is returned to the host for each invocation.
type InvokeResponse struct {
	Outputs     map[string]any `json:"Outputs,omitempty"`
	Logs        []string       `json:"Logs"`
	ReturnValue any            `json:"ReturnValue,omitempty"`
}

// HTTPRequest is the host's representation of an HTTP trigger request.
type HTTPRequest struct {
	URL     string              `json:"Url"`
	Method  string              `json:"Method"`
	Query   map[string]string   `json:"Query,omitempty"`
	Headers map[string][]string `json:"Headers,omitempty"`
	Params  map[string]string   `json:"Params,omitempty"`
	Body    string              `json:"Body,omitempty"`
}

// HTTPResponse is the host's representation of an HTTP output binding.
type HTTPResponse struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body"`
}

// JSONResponse encodes v as the body of an HTTPResponse.
func JSONResponse(status int, v any) HTTPResponse {
	body, err := json.Marshal(v)
	if err != nil {
		return HTTPResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error":"Internal server error"}`,
		}
	}
	return HTTPResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}

// Write copies the response onto w.
func (r HTTPResponse) Write(w http.ResponseWriter) {
	for k, v := range r.Headers {
		w.Header().Set(k, v)
	}
	status := r.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = io.WriteString(w, r.Body)
}

// FromHTTP converts a forwarded request into the host representation. The
// request body is consumed.
func FromHTTP(r *http.Request) (HTTPRequest, error) {
	var body []byte
	if r.Body != nil {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			return HTTPRequest{}, fmt.Errorf("read body: %w", err)
		}
		body = b
	}

	u := *r.URL
	if u.Host == "" {
		u.Host = r.Host
	}
	if u.Scheme == "" {
		u.Scheme = "http"
		if r.TLS != nil {
			u.Scheme = "https"
		}
	}

	query := make(map[string]string)
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}

	return HTTPRequest{
		URL:     u.String(),
		Method:  r.Method,
		Query:   query,
		Headers: r.Header.Clone(),
		Body:    string(body),
	}, nil
}

// HTTP decodes the named input binding as an HTTP trigger request.
func (r InvokeRequest) HTTP(binding string) (HTTPRequest, error) {
	raw, ok := r.Data[binding]
	if !ok {
		return HTTPRequest{}, fmt.Errorf("%w: %s", ErrMissingBinding, binding)
	}
	var req HTTPRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return HTTPRequest{}, fmt.Errorf("decode %s binding: %w", binding, err)
	}
	return req, nil
}

// DecodeInvocation reads an invocation payload from the host.
func DecodeInvocation(r *http.Request) (InvokeRequest, error) {
	var req InvokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return InvokeRequest{}, fmt.Errorf("decode invocation: %w", err)
	}
	return req, nil
}

// WriteInvocation answers the host with resp.
func WriteInvocation(w http.ResponseWriter, resp InvokeResponse) {
	if resp.Logs == nil {
		resp.Logs = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// Package mcpadapter bridges the function host's HTTP representation and the
// MCP streamable HTTP transport.
//
// Each call is a single, non-persistent exchange: the host request is turned
// into a standard *http.Request, served by a stateless MCP handler that builds
// a fresh server per request, and the captured response is handed back in the
// host's shape. Any failure collapses into a fixed 500 answer.
package mcpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"mcp-funcs/internal/host"
)

// ErrInvalidBody is returned when the request body is not a JSON document.
var ErrInvalidBody = errors.New("invalid json body")

// Adapter serves MCP requests given in the host's representation.
type Adapter struct {
	handler http.Handler
	logger  *slog.Logger
}

// New returns an Adapter whose transport asks factory for a new server on
// every request. No session ids are issued.
func New(factory func() *mcp.Server, logger *slog.Logger) *Adapter {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return factory()
	}, &mcp.StreamableHTTPOptions{Stateless: true})
	return NewWithHandler(handler, logger)
}

// NewWithHandler returns an Adapter in front of an arbitrary transport handler.
func NewWithHandler(handler http.Handler, logger *slog.Logger) *Adapter {
	return &Adapter{handler: handler, logger: logger}
}

// Serve runs one MCP exchange. It never fails: errors and panics become
// 500 {"error":"Internal server error"}.
func (a *Adapter) Serve(ctx context.Context, in host.HTTPRequest) (resp host.HTTPResponse) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.ErrorContext(ctx, "mcp request panicked", "panic", r)
			resp = internalError()
		}
	}()

	a.logger.InfoContext(ctx, "mcp request received", "method", in.Method, "url", in.URL)
	out, err := a.serve(ctx, in)
	if err != nil {
		a.logger.ErrorContext(ctx, "mcp request error", "err", err)
		return internalError()
	}
	a.logger.InfoContext(ctx, "mcp response", "status", out.StatusCode, "body_length", len(out.Body))
	return out
}

// ServeHTTP adapts a forwarded request.
func (a *Adapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	in, err := host.FromHTTP(r)
	if err != nil {
		a.logger.ErrorContext(r.Context(), "mcp request error", "err", err)
		internalError().Write(w)
		return
	}
	a.Serve(r.Context(), in).Write(w)
}

func (a *Adapter) serve(ctx context.Context, in host.HTTPRequest) (host.HTTPResponse, error) {
	body, err := reencodeBody(in)
	if err != nil {
		return host.HTTPResponse{}, err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, in.Method, in.URL, reader)
	if err != nil {
		return host.HTTPResponse{}, fmt.Errorf("build request: %w", err)
	}
	for k, values := range in.Headers {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	rec := newRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec.result(), nil
}

// reencodeBody parses the body as JSON and serializes it again. Bodyless GET
// and DELETE requests yield nil. Numbers are kept as literals so that large
// request ids survive the round trip.
func reencodeBody(in host.HTTPRequest) ([]byte, error) {
	if strings.TrimSpace(in.Body) == "" && (in.Method == http.MethodGet || in.Method == http.MethodDelete) {
		return nil, nil
	}

	dec := json.NewDecoder(strings.NewReader(in.Body))
	dec.UseNumber()
	var parsed any
	if err := dec.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrInvalidBody)
	}

	body, err := json.Marshal(parsed)
	if err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}
	return body, nil
}

func internalError() host.HTTPResponse {
	return host.JSONResponse(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}

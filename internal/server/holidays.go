package server

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"mcp-funcs/internal/config"
	"mcp-funcs/internal/holidays"
	"mcp-funcs/internal/host"
)

// NewHolidays builds the holidays function app: one tool-trigger function
// per holiday tool plus the testHttp diagnostic function.
func NewHolidays(cfg config.Config, svc holidays.Service, logger *slog.Logger) *Server {
	s := newServer(cfg, logger)
	s.router.Use(middleware.Timeout(60 * time.Second))

	tools := holidays.New(svc)
	for _, def := range holidays.Definitions() {
		s.router.Post("/"+def.Function, s.handleToolTrigger(tools, def.Function))
	}
	s.router.Get("/api/testHttp", s.handleTestHTTP)
	s.router.Post("/api/testHttp", s.handleTestHTTP)
	return s
}

// handleToolTrigger runs a holiday tool for a host invocation. Arguments in
// the mcptoolargs metadata select the native envelope; otherwise the tool-call
// object is read from the input data and answered with the legacy envelope.
func (s *Server) handleToolTrigger(tools *holidays.Tools, fn string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := host.DecodeInvocation(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		inv := host.NewInvocation(fn, req.Metadata, s.logger)

		var args holidays.Args
		native, err := inv.TriggerMetadata("mcptoolargs", &args)
		if err != nil {
			inv.Error("ignoring malformed tool arguments", "err", err)
			args = holidays.Args{}
		}
		if !native {
			args = legacyArgs(req.Data)
		}

		res, ok := tools.Call(r.Context(), fn, args)
		if !ok {
			inv.Error("no tool registered for function")
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown function " + fn})
			return
		}
		if res.Failed() {
			inv.Error("tool call failed", "kind", res.Kind, "error", res.Message)
		} else {
			inv.Log("tool call succeeded", "country", args.CountryCode())
		}

		resp := host.InvokeResponse{Logs: inv.Logs()}
		if native {
			resp.ReturnValue = holidays.Native(res)
		} else {
			resp.ReturnValue = holidays.Legacy(res)
		}
		host.WriteInvocation(w, resp)
	}
}

func (s *Server) handleTestHTTP(w http.ResponseWriter, r *http.Request) {
	s.logger.InfoContext(r.Context(), "test HTTP function processed request", "url", r.URL.String())

	name := r.URL.Query().Get("name")
	if name == "" && r.Body != nil {
		body, _ := io.ReadAll(r.Body)
		name = string(body)
	}
	if name == "" {
		name = "World"
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "Hello, "+name+"! Azure Functions v4 is working.")
}

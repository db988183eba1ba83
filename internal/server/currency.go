package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"mcp-funcs/internal/config"
	"mcp-funcs/internal/currency"
	"mcp-funcs/internal/host"
	"mcp-funcs/internal/mcpadapter"
)

// NewCurrency builds the currency function app. Every MCP request gets its
// own server built from rates.
func NewCurrency(cfg config.Config, rates currency.Rates, logger *slog.Logger) *Server {
	s := newServer(cfg, logger)

	adapter := mcpadapter.New(func() *mcp.Server {
		return currency.NewServer(rates, logger)
	}, logger)

	s.router.Get("/api/health", s.handleHealth)
	s.router.Group(func(r chi.Router) {
		r.Use(s.functionKey)
		r.Method(http.MethodPost, "/api/mcp", adapter)
		r.Method(http.MethodGet, "/api/mcp", adapter)
		r.Method(http.MethodDelete, "/api/mcp", adapter)
	})

	s.router.Post("/McpEndpoint", s.handleMCPInvocation(adapter))
	s.router.Post("/HealthCheck", s.handleHealthInvocation)
	return s
}

func health() Health {
	return Health{Status: "ok", Server: currency.ServerName, Version: currency.ServerVersion}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, health())
}

func (s *Server) handleHealthInvocation(w http.ResponseWriter, _ *http.Request) {
	host.WriteInvocation(w, host.InvokeResponse{
		Outputs: map[string]any{"res": host.JSONResponse(http.StatusOK, health())},
	})
}

// handleMCPInvocation serves an MCP request delivered as an invocation
// payload with the HTTP trigger bound as "req".
func (s *Server) handleMCPInvocation(adapter *mcpadapter.Adapter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inv := host.NewInvocation("McpEndpoint", nil, s.logger)

		var res host.HTTPResponse
		req, err := host.DecodeInvocation(r)
		if err == nil {
			var in host.HTTPRequest
			in, err = req.HTTP("req")
			if err == nil {
				res = adapter.Serve(r.Context(), in)
			}
		}
		if err != nil {
			inv.Error("MCP request error", "err", err)
			res = host.JSONResponse(http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
		} else {
			inv.Log("MCP response", "status", res.StatusCode, "body_length", len(res.Body))
		}

		host.WriteInvocation(w, host.InvokeResponse{
			Outputs: map[string]any{"res": res},
			Logs:    inv.Logs(),
		})
	}
}

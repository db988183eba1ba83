// Package currency exposes fixed-rate PLN/EUR conversion as an MCP server.
package currency

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ServerName    = "currency-converter-mcp"
	ServerVersion = "1.0.0"
)

// Rates holds the exchange rates used by the conversion tools.
type Rates struct {
	PLNToEUR float64
	EURToPLN float64
}

// DefaultRates returns the production rates.
func DefaultRates() Rates {
	return Rates{PLNToEUR: 0.23, EURToPLN: 4.35}
}

// Conversions returns the conversions served for r, PLN→EUR first.
func (r Rates) Conversions() []Conversion {
	return []Conversion{
		{From: pln, To: eur, Rate: r.PLNToEUR},
		{From: eur, To: pln, Rate: r.EURToPLN},
	}
}

type convertInput struct {
	Amount float64 `json:"amount"`
}

// NewServer builds a fresh MCP server with one tool per conversion. Nothing
// is shared between returned servers.
func NewServer(rates Rates, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: ServerVersion}, &mcp.ServerOptions{
		HasTools: true,
		Logger:   logger,
		// Stateless transport: no Mcp-Session-Id is issued.
		GetSessionID: func() string { return "" },
	})
	for _, c := range rates.Conversions() {
		mcp.AddTool(server, conversionTool(c), conversionHandler(c))
	}
	return server
}

// ToolName returns the MCP tool name of c, e.g. convert_pln_to_eur.
func ToolName(c Conversion) string {
	return fmt.Sprintf("convert_%s_to_%s", strings.ToLower(c.From.String()), strings.ToLower(c.To.String()))
}

func conversionTool(c Conversion) *mcp.Tool {
	return &mcp.Tool{
		Name: ToolName(c),
		Description: fmt.Sprintf("Converts an amount from %s (%s) to %s (%s) using a fixed exchange rate.",
			currencyNames[c.From], c.From, currencyNames[c.To], c.To),
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"amount": {
					Type:        "number",
					Description: fmt.Sprintf("The amount in %s to convert", c.From),
				},
			},
			Required: []string{"amount"},
		},
	}
}

func conversionHandler(c Conversion) mcp.ToolHandlerFor[convertInput, any] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in convertInput) (*mcp.CallToolResult, any, error) {
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: c.Apply(in.Amount)}},
		}, nil, nil
	}
}

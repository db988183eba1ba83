package server

import (
	"encoding/json"
	"sort"

	"mcp-funcs/internal/holidays"
)

// Health is the body of the health endpoint.
type Health struct {
	Status  string `json:"status"`
	Server  string `json:"server"`
	Version string `json:"version"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// legacyArgs finds the generic tool-call object among the invocation's input
// bindings. Bindings are tried in name order; the first object wins.
func legacyArgs(data map[string]json.RawMessage) holidays.Args {
	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		var m map[string]any
		if err := json.Unmarshal(data[name], &m); err == nil && m != nil {
			return holidays.Args(m)
		}
	}
	return holidays.Args{}
}

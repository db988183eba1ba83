package host

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/oklog/ulid/v2"
)

// Invocation is the context of a single function execution.
type Invocation struct {
	ID       string
	Function string
	Metadata map[string]json.RawMessage
	Logger   *slog.Logger

	logs []string
}

// NewInvocation starts an invocation of function with a fresh id.
func NewInvocation(function string, metadata map[string]json.RawMessage, logger *slog.Logger) *Invocation {
	id := ulid.Make().String()
	return &Invocation{
		ID:       id,
		Function: function,
		Metadata: metadata,
		Logger:   logger.With("invocation_id", id, "function", function),
	}
}

// Log writes to the process logger and records the line for the host.
func (inv *Invocation) Log(msg string, args ...any) {
	inv.Logger.Info(msg, args...)
	inv.logs = append(inv.logs, formatLine(msg, args))
}

// Error is Log at error level.
func (inv *Invocation) Error(msg string, args ...any) {
	inv.Logger.Error(msg, args...)
	inv.logs = append(inv.logs, formatLine(msg, args))
}

// Logs returns the lines recorded so far.
func (inv *Invocation) Logs() []string {
	return append([]string(nil), inv.logs...)
}

// TriggerMetadata decodes the metadata entry key into v. It reports false
// when the entry is absent or null.
func (inv *Invocation) TriggerMetadata(key string, v any) (bool, error) {
	raw, ok := inv.Metadata[key]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return false, nil
	}
	// Some bindings deliver metadata as a JSON document inside a string.
	var s string
	if json.Unmarshal(raw, &s) == nil {
		if s == "" {
			return false, nil
		}
		raw = json.RawMessage(s)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("decode metadata %s: %w", key, err)
	}
	return true, nil
}

func formatLine(msg string, args []any) string {
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(&b, " %v=%v", args[i], args[i+1])
	}
	return b.String()
}

package holidays

import (
	"math"
	"strconv"
	"strings"
)

// Args is a tool-call argument bag. Fields may sit at the top level or be
// nested under "params" or "input".
type Args map[string]any

// lookup returns the first non-empty value of field, searching the top
// level, then params, then input.
func (a Args) lookup(field string) any {
	if v := a[field]; !empty(v) {
		return v
	}
	for _, nested := range []string{"params", "input"} {
		m, ok := a[nested].(map[string]any)
		if !ok {
			continue
		}
		if v := m[field]; !empty(v) {
			return v
		}
	}
	return nil
}

// CountryCode returns the upper-cased country_code argument, or "".
func (a Args) CountryCode() string {
	s, _ := a.lookup("country_code").(string)
	return strings.ToUpper(strings.TrimSpace(s))
}

// Year returns the year argument coerced to an integer. Zero means missing
// or not a whole number.
func (a Args) Year() int {
	var f float64
	switch v := a.lookup("year").(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0
	}
	return int(f)
}

func empty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case float64:
		return t == 0
	case int:
		return t == 0
	case bool:
		return !t
	}
	return false
}

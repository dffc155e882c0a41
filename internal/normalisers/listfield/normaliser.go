// Package listfield normalizes the loosely typed column values that
// SharePoint lists return. The same logical column can arrive as a
// string, a number, a lookup object or an array depending on how the
// site administrators defined it, so every read goes through Resolve.
package listfield

import (
	"encoding/json"
	"strconv"
	"strings"
)

// joinSeparator joins multi-value column entries into one display string.
const joinSeparator = " - "

// Extract returns the display string for the named column, or "" when
// the column is absent or null.
func Extract(fields map[string]any, name string) string {
	v, ok := fields[name]
	if !ok || v == nil {
		return ""
	}
	return Resolve(v)
}

// FirstOf tries the candidate column names in order and returns the
// first non-empty resolved value.
func FirstOf(fields map[string]any, names ...string) string {
	for _, name := range names {
		if v := Extract(fields, name); v != "" {
			return v
		}
	}
	return ""
}

// Resolve converts one remote column value into a display string.
// Strings pass through, numbers render in plain decimal, arrays join
// their resolved elements, lookup objects yield their value or
// LookupValue. Anything else falls back to its JSON encoding.
func Resolve(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(val))
		for _, el := range val {
			if s := resolveElement(el); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, joinSeparator)
	case map[string]any:
		return resolveWrapped(val)
	default:
		return jsonString(v)
	}
}

// resolveElement resolves one array element. Elements that yield no
// string are skipped by the caller.
func resolveElement(el any) string {
	switch val := el.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case map[string]any:
		if s, ok := val["value"].(string); ok {
			return s
		}
		if s, ok := val["LookupValue"].(string); ok {
			return s
		}
		return ""
	default:
		return ""
	}
}

// resolveWrapped unwraps a lookup or multi-choice object.
func resolveWrapped(obj map[string]any) string {
	if inner, ok := obj["value"]; ok {
		switch val := inner.(type) {
		case string:
			return val
		case []any:
			parts := make([]string, 0, len(val))
			for _, el := range val {
				if s, ok := el.(string); ok {
					parts = append(parts, s)
				}
			}
			if len(parts) > 0 {
				return strings.Join(parts, joinSeparator)
			}
		}
	}
	if s, ok := obj["LookupValue"].(string); ok {
		return s
	}
	return jsonString(obj)
}

func jsonString(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

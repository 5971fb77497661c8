package tools

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// intArgument coerces an argument that should be a positive integer. JSON
// numbers arrive as float64 through the protocol layer.
func intArgument(value any, name string) (int, error) {
	switch v := value.(type) {
	case float64:
		if v <= 0 {
			return 0, fmt.Errorf("%s must be positive", name)
		}
		return int(v), nil
	case int:
		if v <= 0 {
			return 0, fmt.Errorf("%s must be positive", name)
		}
		return v, nil
	default:
		return 0, fmt.Errorf("%s must be provided", name)
	}
}

// optionalInt reads an integer argument, falling back to a default when the
// argument is absent or invalid.
func optionalInt(args map[string]any, name string, fallback int) int {
	if raw, ok := args[name].(float64); ok && int(raw) > 0 {
		return int(raw)
	}
	return fallback
}

// prettyJSON re-indents a raw upstream response for the tool's text result.
// The content is passed through untouched; only whitespace changes.
func prettyJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

func mustMarshal(v any) []byte {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(err)
	}
	return b
}

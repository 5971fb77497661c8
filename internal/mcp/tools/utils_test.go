package tools

import (
	"encoding/json"
	"testing"
)

func TestIntArgument(t *testing.T) {
	if v, err := intArgument(float64(42), "folder_id"); err != nil || v != 42 {
		t.Fatalf("expected 42, got %d (%v)", v, err)
	}
	if _, err := intArgument(float64(-1), "folder_id"); err == nil {
		t.Fatal("negative values must be rejected")
	}
	if _, err := intArgument(nil, "folder_id"); err == nil {
		t.Fatal("absent values must be rejected")
	}
	if _, err := intArgument("7", "folder_id"); err == nil {
		t.Fatal("strings must be rejected")
	}
}

func TestOptionalInt(t *testing.T) {
	args := map[string]any{"page": float64(3), "page_size": float64(0)}
	if got := optionalInt(args, "page", 1); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := optionalInt(args, "page_size", 10); got != 10 {
		t.Fatalf("non-positive values fall back to the default, got %d", got)
	}
	if got := optionalInt(args, "missing", 7); got != 7 {
		t.Fatalf("absent values fall back to the default, got %d", got)
	}
}

func TestPrettyJSONPreservesContent(t *testing.T) {
	raw := json.RawMessage(`{"b":1,"a":{"nested":[1,2,3]}}`)
	pretty := prettyJSON(raw)

	var original, reindented any
	if err := json.Unmarshal(raw, &original); err != nil {
		t.Fatalf("decode original: %v", err)
	}
	if err := json.Unmarshal([]byte(pretty), &reindented); err != nil {
		t.Fatalf("re-indented output is not valid JSON: %v", err)
	}
	origBytes, _ := json.Marshal(original)
	prettyBytes, _ := json.Marshal(reindented)
	if string(origBytes) != string(prettyBytes) {
		t.Fatalf("re-indenting altered the content: %s vs %s", origBytes, prettyBytes)
	}
}

func TestPrettyJSONInvalidInputFallsThrough(t *testing.T) {
	if got := prettyJSON(json.RawMessage("not json")); got != "not json" {
		t.Fatalf("invalid JSON must pass through untouched, got %q", got)
	}
}

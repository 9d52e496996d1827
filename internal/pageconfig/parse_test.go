package pageconfig

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseEntriesKeepsDocumentOrder(t *testing.T) {
	raw := json.RawMessage(`{
		"zeta":  {"name": "Zeta",  "slug": "zeta",  "order": 1, "enabled": true},
		"alpha": {"name": "Alpha", "slug": "alpha", "order": 1, "enabled": true},
		"mid":   {"name": "Mid",   "slug": "mid",   "enabled": false}
	}`)

	entries, keyOrder, err := ParseEntries(raw)
	if err != nil {
		t.Fatalf("ParseEntries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if want := []string{"zeta", "alpha", "mid"}; !reflect.DeepEqual(keyOrder, want) {
		t.Fatalf("keyOrder = %v, want %v", keyOrder, want)
	}
	if entries["mid"].Order != nil {
		t.Fatalf("missing order should decode as nil, got %d", *entries["mid"].Order)
	}
}

func TestParseEntriesDuplicateKeyKeepsFirstPosition(t *testing.T) {
	raw := json.RawMessage(`{
		"a": {"name": "First", "slug": "a", "enabled": true},
		"b": {"name": "B",     "slug": "b", "enabled": true},
		"a": {"name": "Last",  "slug": "a", "enabled": false}
	}`)

	entries, keyOrder, err := ParseEntries(raw)
	if err != nil {
		t.Fatalf("ParseEntries: %v", err)
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(keyOrder, want) {
		t.Fatalf("keyOrder = %v, want %v", keyOrder, want)
	}
	// The decoded map holds the last value for a repeated key.
	if entries["a"].Name != "Last" {
		t.Fatalf("entries[a].Name = %q, want Last", entries["a"].Name)
	}
}

func TestParseEntriesRejectsNonObject(t *testing.T) {
	if _, _, err := ParseEntries(json.RawMessage(`[1, 2]`)); err == nil {
		t.Fatal("expected error for array payload")
	}
	if _, _, err := ParseEntries(json.RawMessage(`{"a": `)); err == nil {
		t.Fatal("expected error for truncated payload")
	}
}

func TestParseEntriesEmptyObject(t *testing.T) {
	entries, keyOrder, err := ParseEntries(json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("ParseEntries: %v", err)
	}
	if len(entries) != 0 || len(keyOrder) != 0 {
		t.Fatalf("expected empty result, got %d entries, %d keys", len(entries), len(keyOrder))
	}
}

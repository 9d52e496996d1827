package pageconfig

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pathlight/corpsite-backend/internal/model"
)

// ParseEntries decodes a JSON object of page entries while recording the
// order its keys appear in the document. encoding/json maps forget that
// order, and entries sharing an order value tie-break by submission order,
// so it has to be recovered from the raw bytes.
func ParseEntries(raw json.RawMessage) (map[string]model.PageEntry, []string, error) {
	entries := make(map[string]model.PageEntry)
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, nil, fmt.Errorf("decode entries: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, fmt.Errorf("decode entries: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, fmt.Errorf("decode entries: expected object, got %v", tok)
	}

	keyOrder := make([]string, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("decode entries: %w", err)
		}
		key := tok.(string)
		// Duplicate keys keep their first position; the decoded map already
		// holds the last value.
		if _, dup := seen[key]; !dup {
			seen[key] = struct{}{}
			keyOrder = append(keyOrder, key)
		}

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, nil, fmt.Errorf("decode entries: %w", err)
		}
	}
	return entries, keyOrder, nil
}

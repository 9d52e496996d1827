// Package pageconfig resolves keyed page-configuration maps into the ordered
// lists rendered by the back office and the public site.
package pageconfig

import (
	"sort"

	"github.com/pathlight/corpsite-backend/internal/model"
)

// ResolveAdminList returns every entry of the config map annotated with its
// key, sorted ascending by order. Entries without an order sort after every
// ordered entry. keyOrder is the insertion order of the underlying map (the
// store preserves it); ties keep that order. Keys absent from keyOrder are
// appended in lexicographic order so resolution stays deterministic.
func ResolveAdminList(cfg map[string]model.PageEntry, keyOrder []string) []model.PageItem {
	items := make([]model.PageItem, 0, len(cfg))

	seen := make(map[string]bool, len(keyOrder))
	for _, key := range keyOrder {
		entry, ok := cfg[key]
		if !ok {
			continue
		}
		seen[key] = true
		items = append(items, model.PageItem{Key: key, PageEntry: entry})
	}

	rest := make([]string, 0)
	for key := range cfg {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		items = append(items, model.PageItem{Key: key, PageEntry: cfg[key]})
	}

	// Stable sort preserves the base ordering for equal order values.
	sort.SliceStable(items, func(i, j int) bool {
		return orderValue(items[i].Order) < orderValue(items[j].Order)
	})

	return items
}

// ResolveEnabledList returns only enabled entries, sorted ascending by order.
// It is always a subset of ResolveAdminList in the same relative order.
func ResolveEnabledList(cfg map[string]model.PageEntry, keyOrder []string) []model.PageItem {
	all := ResolveAdminList(cfg, keyOrder)
	enabled := make([]model.PageItem, 0, len(all))
	for _, item := range all {
		if item.Enabled {
			enabled = append(enabled, item)
		}
	}
	return enabled
}

// orderValue treats a missing order as larger than any explicit one, so
// malformed entries sort last instead of relying on undefined comparisons.
func orderValue(order *int) int64 {
	if order == nil {
		return int64(1) << 40
	}
	return int64(*order)
}

package pageconfig

import (
	"reflect"
	"testing"

	"github.com/pathlight/corpsite-backend/internal/model"
)

func intp(v int) *int { return &v }

func entry(order *int, enabled bool) model.PageEntry {
	return model.PageEntry{Name: "n", Slug: "s", Order: order, Enabled: enabled}
}

func keysOf(items []model.PageItem) []string {
	keys := make([]string, 0, len(items))
	for _, it := range items {
		keys = append(keys, it.Key)
	}
	return keys
}

func TestResolveAdminListSortsAscending(t *testing.T) {
	cfg := map[string]model.PageEntry{
		"a": entry(intp(2), true),
		"b": entry(intp(1), false),
		"c": entry(intp(3), true),
	}

	got := keysOf(ResolveAdminList(cfg, []string{"a", "b", "c"}))
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("admin list order = %v, want %v", got, want)
	}
}

func TestResolveEnabledListFiltersAndSorts(t *testing.T) {
	cfg := map[string]model.PageEntry{
		"a": entry(intp(2), true),
		"b": entry(intp(1), false),
		"c": entry(intp(3), true),
	}

	got := keysOf(ResolveEnabledList(cfg, []string{"a", "b", "c"}))
	want := []string{"a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("enabled list = %v, want %v", got, want)
	}
}

func TestResolveEnabledListIsSubsetOfAdminList(t *testing.T) {
	cfg := map[string]model.PageEntry{
		"p1": entry(intp(5), true),
		"p2": entry(intp(1), true),
		"p3": entry(nil, true),
		"p4": entry(intp(3), false),
		"p5": entry(intp(2), false),
	}
	keyOrder := []string{"p1", "p2", "p3", "p4", "p5"}

	admin := ResolveAdminList(cfg, keyOrder)
	enabled := ResolveEnabledList(cfg, keyOrder)

	if len(enabled) >= len(admin) {
		t.Fatalf("enabled list should be a strict subset, got %d of %d", len(enabled), len(admin))
	}

	// Every enabled item must appear in the admin list in the same relative order.
	pos := make(map[string]int, len(admin))
	for i, it := range admin {
		pos[it.Key] = i
		if !cfg[it.Key].Enabled {
			continue
		}
	}
	last := -1
	for _, it := range enabled {
		if !it.Enabled {
			t.Fatalf("disabled entry %q leaked into enabled list", it.Key)
		}
		idx, ok := pos[it.Key]
		if !ok {
			t.Fatalf("enabled entry %q missing from admin list", it.Key)
		}
		if idx <= last {
			t.Fatalf("enabled list order diverges from admin list at %q", it.Key)
		}
		last = idx
	}
}

func TestMissingOrderSortsLast(t *testing.T) {
	cfg := map[string]model.PageEntry{
		"broken": entry(nil, true),
		"first":  entry(intp(1), true),
		"big":    entry(intp(1_000_000), true),
	}

	got := keysOf(ResolveAdminList(cfg, []string{"broken", "first", "big"}))
	want := []string{"first", "big", "broken"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestTiesKeepInsertionOrder(t *testing.T) {
	cfg := map[string]model.PageEntry{
		"x": entry(intp(1), true),
		"y": entry(intp(1), true),
		"z": entry(intp(1), true),
	}

	got := keysOf(ResolveAdminList(cfg, []string{"z", "x", "y"}))
	want := []string{"z", "x", "y"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tie order = %v, want %v", got, want)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	cfg := map[string]model.PageEntry{
		"a": entry(intp(2), true),
		"b": entry(intp(2), true),
		"c": entry(nil, false),
		"d": entry(intp(1), true),
	}
	keyOrder := []string{"a", "b", "c", "d"}

	first := ResolveAdminList(cfg, keyOrder)
	second := ResolveAdminList(cfg, keyOrder)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("resolution is not stable: %v vs %v", keysOf(first), keysOf(second))
	}
}

func TestUnknownKeysAppendDeterministically(t *testing.T) {
	cfg := map[string]model.PageEntry{
		"known": entry(intp(1), true),
		"beta":  entry(intp(1), true),
		"alpha": entry(intp(1), true),
	}

	// Only "known" has a recorded insertion position; the rest tie at the
	// same order and must fall back to lexicographic key order.
	got := keysOf(ResolveAdminList(cfg, []string{"known"}))
	want := []string{"known", "alpha", "beta"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

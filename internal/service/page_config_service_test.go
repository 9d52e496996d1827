package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pathlight/corpsite-backend/internal/model"
)

type fakePageConfigRepo struct {
	entries  map[string]model.PageEntry
	keyOrder []string

	replacedArea     string
	replacedEntries  map[string]model.PageEntry
	replacedKeyOrder []string
}

func (f *fakePageConfigRepo) GetArea(ctx context.Context, area string) (map[string]model.PageEntry, []string, error) {
	return f.entries, f.keyOrder, nil
}

func (f *fakePageConfigRepo) ReplaceArea(ctx context.Context, area string, entries map[string]model.PageEntry, keyOrder []string) error {
	f.replacedArea = area
	f.replacedEntries = entries
	f.replacedKeyOrder = keyOrder
	return nil
}

// deadRedis returns a client with nothing listening behind it. Cache reads
// miss and invalidations fail soft, which is the degraded path the service
// must survive.
func deadRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
}

func orderOf(v int) *int { return &v }

func TestReplaceSwapsWholeArea(t *testing.T) {
	repo := &fakePageConfigRepo{
		entries: map[string]model.PageEntry{
			"old": {Name: "Old", Slug: "old", Order: orderOf(1), Enabled: true},
		},
		keyOrder: []string{"old"},
	}
	svc := NewPageConfigService(repo, deadRedis(), zerolog.Nop())

	submitted := map[string]model.PageEntry{
		"bootcamp":  {Name: "Bootcamp", Slug: "bootcamp", Order: orderOf(2), Enabled: true},
		"mentoring": {Name: "Mentoring", Slug: "mentoring", Order: orderOf(1), Enabled: false},
	}
	items, err := svc.Replace(context.Background(), model.AreaProductPages, submitted, []string{"bootcamp", "mentoring"})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}

	if repo.replacedArea != model.AreaProductPages {
		t.Fatalf("replaced area = %q", repo.replacedArea)
	}
	if _, kept := repo.replacedEntries["old"]; kept {
		t.Fatal("previous entry survived a whole-map replace")
	}

	keys := make([]string, 0, len(items))
	for _, it := range items {
		keys = append(keys, it.Key)
	}
	if want := []string{"mentoring", "bootcamp"}; !reflect.DeepEqual(keys, want) {
		t.Fatalf("resolved keys = %v, want %v", keys, want)
	}
}

// Two whole-map replaces in a row: the stored state is exactly the later
// call's map, nothing merged from the earlier one.
func TestSequentialReplacesLastWins(t *testing.T) {
	repo := &fakePageConfigRepo{}
	svc := NewPageConfigService(repo, deadRedis(), zerolog.Nop())

	first := map[string]model.PageEntry{
		"alpha": {Name: "Alpha", Slug: "alpha", Order: orderOf(1), Enabled: true},
		"beta":  {Name: "Beta", Slug: "beta", Order: orderOf(2), Enabled: true},
	}
	if _, err := svc.Replace(context.Background(), model.AreaProductPages, first, []string{"alpha", "beta"}); err != nil {
		t.Fatalf("first Replace: %v", err)
	}

	second := map[string]model.PageEntry{
		"gamma": {Name: "Gamma", Slug: "gamma", Order: orderOf(1), Enabled: true},
	}
	items, err := svc.Replace(context.Background(), model.AreaProductPages, second, []string{"gamma"})
	if err != nil {
		t.Fatalf("second Replace: %v", err)
	}

	if !reflect.DeepEqual(repo.replacedEntries, second) {
		t.Fatalf("stored entries = %v, want %v", repo.replacedEntries, second)
	}
	if !reflect.DeepEqual(repo.replacedKeyOrder, []string{"gamma"}) {
		t.Fatalf("stored key order = %v", repo.replacedKeyOrder)
	}
	if len(items) != 1 || items[0].Key != "gamma" {
		t.Fatalf("resolved items = %v, want only gamma", items)
	}
}

func TestReplaceUnknownArea(t *testing.T) {
	svc := NewPageConfigService(&fakePageConfigRepo{}, deadRedis(), zerolog.Nop())

	_, err := svc.Replace(context.Background(), "nonsense", nil, nil)
	if !errors.Is(err, ErrUnknownArea) {
		t.Fatalf("err = %v, want ErrUnknownArea", err)
	}
	if _, err := svc.GetAdminList(context.Background(), "nonsense"); !errors.Is(err, ErrUnknownArea) {
		t.Fatalf("GetAdminList err = %v, want ErrUnknownArea", err)
	}
}

func TestGetAdminListIncludesDisabled(t *testing.T) {
	repo := &fakePageConfigRepo{
		entries: map[string]model.PageEntry{
			"visible": {Name: "Visible", Slug: "visible", Order: orderOf(1), Enabled: true},
			"hidden":  {Name: "Hidden", Slug: "hidden", Order: orderOf(2), Enabled: false},
		},
		keyOrder: []string{"visible", "hidden"},
	}
	svc := NewPageConfigService(repo, deadRedis(), zerolog.Nop())

	items, err := svc.GetAdminList(context.Background(), model.AreaSolutionPages)
	if err != nil {
		t.Fatalf("GetAdminList: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected disabled entries in admin list, got %d items", len(items))
	}
}

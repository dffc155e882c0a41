package services

import (
	"context"
	"time"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
)

// fakeSource scripts FetchItems behavior per call and records what was
// asked of it.
type fetchCall struct {
	List   string
	Filter string
}

type updateCall struct {
	List   string
	ItemID int
	Fields map[string]string
}

type fakeSource struct {
	fetch   func(list, filter string) ([]domain.RawItem, error)
	fetches []fetchCall
	updates []updateCall
}

func (f *fakeSource) FetchItems(_ context.Context, list, filter string) ([]domain.RawItem, error) {
	f.fetches = append(f.fetches, fetchCall{List: list, Filter: filter})
	return f.fetch(list, filter)
}

func (f *fakeSource) UpdateItem(_ context.Context, list string, itemID int, fields map[string]string) error {
	f.updates = append(f.updates, updateCall{List: list, ItemID: itemID, Fields: fields})
	return nil
}

// fakeConfig serves default list names and fixed settings.
type fakeConfig struct {
	settings  domain.Settings
	overrides map[domain.ListType]string
}

func (f *fakeConfig) Settings() domain.Settings { return f.settings }

func (f *fakeConfig) ListName(t domain.ListType) string {
	if name, ok := f.overrides[t]; ok {
		return name
	}
	return t.DefaultListName()
}

func (f *fakeConfig) Watch(context.Context, func()) error { return nil }

// newFixedService builds a RecordService whose clock is pinned to
// 28/12/2025.
func newFixedService(src *fakeSource) *RecordService {
	svc := NewRecordService(src, &fakeConfig{})
	svc.now = func() time.Time {
		return time.Date(2025, time.December, 28, 15, 30, 0, 0, time.Local)
	}
	return svc
}

// serviceItem builds a raw service row. Naive datetimes keep the tests
// independent of the host timezone.
func serviceItem(id string, fields map[string]any) domain.RawItem {
	if fields == nil {
		fields = map[string]any{}
	}
	if _, ok := fields["IDSERVIZIO"]; !ok && id != "" {
		fields["IDSERVIZIO"] = id
	}
	return domain.RawItem{ID: id, Fields: fields}
}

// Package services implements the driving ports on top of the list
// source: fetching, filter fallback, mapping into domain records and
// deterministic ordering.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
	"github.com/lorenzomotta/AUSER/internal/core/ports/driven"
	"github.com/lorenzomotta/AUSER/internal/core/ports/driving"
	"github.com/lorenzomotta/AUSER/internal/logger"
	"github.com/lorenzomotta/AUSER/internal/normalisers/listfield"
)

// RecordService answers the record queries of the UI layer. Ordering
// always happens here: the server-side item order is unreliable across
// pages.
type RecordService struct {
	source driven.ListSource
	cfg    driven.ConfigStore

	// now is replaceable in tests; date windows depend on it.
	now func() time.Time
}

var _ driving.Records = (*RecordService)(nil)

// NewRecordService creates the record query service.
func NewRecordService(source driven.ListSource, cfg driven.ConfigStore) *RecordService {
	return &RecordService{source: source, cfg: cfg, now: time.Now}
}

// today returns the current day at local midnight.
func (s *RecordService) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// legacyDateFilter builds a date filter in the legacy REST syntax; the
// connector translates it to the remote dialect.
func legacyDateFilter(field, op string, day time.Time) string {
	return fmt.Sprintf("%s %s datetime'%sT00:00:00Z'", field, op, day.Format("2006-01-02"))
}

// fetchWithFallback fetches a logical list, retrying unfiltered when
// the server rejects the filter. keep, when non-nil, is the client-side
// replacement predicate applied to the unfiltered set.
func (s *RecordService) fetchWithFallback(
	ctx context.Context, t domain.ListType, filter string, keep func(domain.RawItem) bool,
) ([]domain.RawItem, error) {
	listName := s.cfg.ListName(t)

	items, err := s.source.FetchItems(ctx, listName, filter)
	if err == nil {
		return items, nil
	}
	if filter == "" || !domain.IsFilterRejected(err) {
		return nil, err
	}

	logger.Warn("server rejected filter on %q, retrying unfiltered: %v", listName, err)
	items, err = s.source.FetchItems(ctx, listName, "")
	if err != nil {
		return nil, err
	}
	if keep == nil {
		return items, nil
	}
	kept := make([]domain.RawItem, 0, len(items))
	for _, item := range items {
		if keep(item) {
			kept = append(kept, item)
		}
	}
	logger.Debug("client-side filter kept %d of %d items", len(kept), len(items))
	return kept, nil
}

// DayServices returns the short services whose pickup date is today.
// The date window is re-checked client-side on both paths because the
// server-side filter is a lower bound, not an exact match.
func (s *RecordService) DayServices(ctx context.Context) ([]domain.Service, error) {
	today := s.today()
	items, err := s.fetchWithFallback(ctx, domain.ListDayServices,
		legacyDateFilter("DATA_PRELIEVO", "ge", today), nil)
	if err != nil {
		return nil, err
	}

	want := today.Format(listfield.DisplayDateLayout)
	services := keepServices(mapServices(items), func(svc domain.Service) bool {
		return svc.Date == want
	})
	sortServices(services)
	return services, nil
}

// UpcomingServices returns the short services from tomorrow onward.
// Services whose date does not parse are excluded: they cannot be
// placed in the window.
func (s *RecordService) UpcomingServices(ctx context.Context) ([]domain.Service, error) {
	tomorrow := s.today().AddDate(0, 0, 1)
	items, err := s.fetchWithFallback(ctx, domain.ListUpcomingServices,
		legacyDateFilter("DATA_PRELIEVO", "ge", tomorrow), nil)
	if err != nil {
		return nil, err
	}

	services := keepServices(mapServices(items), func(svc domain.Service) bool {
		d, ok := listfield.ParseDisplayDate(svc.Date)
		return ok && !d.Before(tomorrow)
	})
	sortServices(services)
	return services, nil
}

// ServicesCreatedToday returns the short services whose item creation
// timestamp falls on today.
func (s *RecordService) ServicesCreatedToday(ctx context.Context) ([]domain.Service, error) {
	today := s.today()
	items, err := s.fetchWithFallback(ctx, domain.ListServicesCreatedToday,
		legacyDateFilter("Created", "ge", today),
		func(item domain.RawItem) bool { return createdOnOrAfter(item, today) })
	if err != nil {
		return nil, err
	}

	services := mapServices(items)
	sortServices(services)
	return services, nil
}

// AllServiceDetails returns every long-form service, sorted.
func (s *RecordService) AllServiceDetails(ctx context.Context) ([]domain.ServiceDetail, error) {
	items, err := s.fetchWithFallback(ctx, domain.ListServiceDetails, "", nil)
	if err != nil {
		return nil, err
	}
	details := mapServiceDetails(items)
	sortServiceDetails(details)
	return details, nil
}

// ServiceDetail returns the long-form service with the given ID.
func (s *RecordService) ServiceDetail(ctx context.Context, id int) (domain.ServiceDetail, error) {
	items, err := s.fetchWithFallback(ctx, domain.ListServiceDetails, "", nil)
	if err != nil {
		return domain.ServiceDetail{}, err
	}
	for _, item := range items {
		if d, ok := mapServiceDetail(item); ok && d.ID == id {
			return d, nil
		}
	}
	return domain.ServiceDetail{}, domain.E(domain.KindNotFound, "records: service detail",
		fmt.Sprintf("service %d not found", id))
}

// CardsTodo returns the membership cards still to be produced. The
// candidates live in the member registry, where the TIPOLOGIASOCIO
// column is; the member-type gate runs in the mapper, so the unfiltered
// fallback needs no extra predicate.
func (s *RecordService) CardsTodo(ctx context.Context) ([]domain.Card, error) {
	items, err := s.fetchWithFallback(ctx, domain.ListMembers,
		"fields/TIPOLOGIASOCIO eq 'NUOVO' or fields/TIPOLOGIASOCIO eq 'ESTERNO'", nil)
	if err != nil {
		return nil, err
	}
	return mapCards(items), nil
}

// Members returns all registered members.
func (s *RecordService) Members(ctx context.Context) ([]domain.Member, error) {
	items, err := s.fetchWithFallback(ctx, domain.ListMembers, "", nil)
	if err != nil {
		return nil, err
	}
	return mapMembers(items), nil
}

// UpdateService merges logical field values into one service item.
func (s *RecordService) UpdateService(ctx context.Context, id int, fields map[string]string) error {
	return s.source.UpdateItem(ctx, s.cfg.ListName(domain.ListServiceDetails), id, fields)
}

func keepServices(list []domain.Service, keep func(domain.Service) bool) []domain.Service {
	out := make([]domain.Service, 0, len(list))
	for _, svc := range list {
		if keep(svc) {
			out = append(out, svc)
		}
	}
	return out
}

// createdOnOrAfter checks the item creation timestamp, which has been
// seen both at the item root and inside the expanded fields.
func createdOnOrAfter(item domain.RawItem, cutoff time.Time) bool {
	raw := item.CreatedAt
	if raw == "" {
		raw = listfield.Extract(item.Fields, "createdDateTime")
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return false
	}
	return !t.Before(cutoff)
}

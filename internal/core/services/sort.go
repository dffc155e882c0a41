package services

import (
	"sort"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
	"github.com/lorenzomotta/AUSER/internal/normalisers/listfield"
)

// Records sort newest-first by pickup date, with start time as the
// tie-break. Values that fail to parse sort after anything that
// parses; two unparseable values are equal at that level and the
// comparison moves on. Stability covers the remaining ties.

func sortServices(list []domain.Service) {
	sort.SliceStable(list, func(i, j int) bool {
		if c := compareDatesDesc(list[i].Date, list[j].Date); c != 0 {
			return c < 0
		}
		return compareClocksDesc(list[i].PickupTime, list[j].PickupTime) < 0
	})
}

func sortServiceDetails(list []domain.ServiceDetail) {
	sort.SliceStable(list, func(i, j int) bool {
		if c := compareDatesDesc(list[i].PickupDate, list[j].PickupDate); c != 0 {
			return c < 0
		}
		return compareClocksDesc(list[i].StartTime, list[j].StartTime) < 0
	})
}

func compareDatesDesc(a, b string) int {
	ta, okA := listfield.ParseDisplayDate(a)
	tb, okB := listfield.ParseDisplayDate(b)
	switch {
	case okA && okB:
		if ta.After(tb) {
			return -1
		}
		if tb.After(ta) {
			return 1
		}
		return 0
	case okA:
		return -1
	case okB:
		return 1
	default:
		return 0
	}
}

func compareClocksDesc(a, b string) int {
	ta, okA := listfield.ParseClock(a)
	tb, okB := listfield.ParseClock(b)
	switch {
	case okA && okB:
		if ta.After(tb) {
			return -1
		}
		if tb.After(ta) {
			return 1
		}
		return 0
	case okA:
		return -1
	case okB:
		return 1
	default:
		return 0
	}
}

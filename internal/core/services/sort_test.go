package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
)

func TestSortServicesDateDescWithTimeTieBreak(t *testing.T) {
	list := []domain.Service{
		{ID: 1, Date: "10/01/2025", PickupTime: "09:00"},
		{ID: 2, Date: "09/01/2025"},
		{ID: 3, Date: "boh"},
		{ID: 4, Date: "10/01/2025", PickupTime: "10:00"},
	}
	sortServices(list)

	got := []int{list[0].ID, list[1].ID, list[2].ID, list[3].ID}
	assert.Equal(t, []int{4, 1, 2, 3}, got)
}

func TestSortServicesUnparseableTimesLast(t *testing.T) {
	list := []domain.Service{
		{ID: 1, Date: "10/01/2025", PickupTime: "presto"},
		{ID: 2, Date: "10/01/2025", PickupTime: "08:00"},
	}
	sortServices(list)
	assert.Equal(t, 2, list[0].ID)
	assert.Equal(t, 1, list[1].ID)
}

func TestSortServicesStableForEqualKeys(t *testing.T) {
	list := []domain.Service{
		{ID: 1, Date: "x"},
		{ID: 2, Date: "y"},
		{ID: 3, Date: "z"},
	}
	sortServices(list)
	// All unparseable at both levels: original order survives.
	assert.Equal(t, []int{1, 2, 3}, []int{list[0].ID, list[1].ID, list[2].ID})
}

func TestSortServiceDetails(t *testing.T) {
	list := []domain.ServiceDetail{
		{ID: 1, PickupDate: "01/02/2025", StartTime: "07:00"},
		{ID: 2, PickupDate: "01/02/2025", StartTime: "19:30"},
		{ID: 3, PickupDate: "02/02/2025"},
	}
	sortServiceDetails(list)
	assert.Equal(t, []int{3, 2, 1}, []int{list[0].ID, list[1].ID, list[2].ID})
}

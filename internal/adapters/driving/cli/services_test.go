package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
)

func TestServicesCmd_ListsToday(t *testing.T) {
	cleanup := setupTestServices(&fakeRecords{services: []domain.Service{
		{ID: 1, Date: "28/12/2025", PickupTime: "08:30", CounterpartName: "GALUPPO ANGELO", Operator: "ROSSI"},
		{ID: 2, Date: "28/12/2025"},
	}})
	defer cleanup()

	out, err := execute("services")
	require.NoError(t, err)

	assert.Contains(t, out, "[1] 28/12/2025 08:30")
	assert.Contains(t, out, "GALUPPO ANGELO")
	assert.Contains(t, out, "op: ROSSI")
	assert.Contains(t, out, "2 service(s)")
}

func TestServicesCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices(&fakeRecords{services: []domain.Service{
		{ID: 1, Date: "28/12/2025", Operator: "ROSSI"},
	}})
	defer func() {
		servicesJSON = false
		cleanup()
	}()

	out, err := execute("services", "--json")
	require.NoError(t, err)

	assert.Contains(t, out, `"operator": "ROSSI"`)
	assert.Contains(t, out, `"date": "28/12/2025"`)
}

func TestServicesCmd_AllShowsDetails(t *testing.T) {
	cleanup := setupTestServices(&fakeRecords{details: []domain.ServiceDetail{
		{ID: 7, PickupDate: "28/12/2025", StartTime: "08:30", TransportedPerson: "GALUPPO ANGELO", Status: "APERTO"},
	}})
	defer func() {
		servicesAll = false
		cleanup()
	}()

	out, err := execute("services", "--all")
	require.NoError(t, err)

	assert.Contains(t, out, "[7] 28/12/2025 08:30")
	assert.Contains(t, out, "[APERTO]")
}

func TestServicesCmd_EmptyList(t *testing.T) {
	cleanup := setupTestServices(&fakeRecords{})
	defer cleanup()

	out, err := execute("services")
	require.NoError(t, err)
	assert.Contains(t, out, "No services found.")
}

func TestServicesCmd_SnapshotFallbackOnUpstreamError(t *testing.T) {
	good := &fakeRecords{services: []domain.Service{{ID: 1, Date: "28/12/2025"}}}
	cleanup := setupTestServices(good)
	defer cleanup()

	// First run succeeds and persists a snapshot.
	_, err := execute("services")
	require.NoError(t, err)

	// Second run fails upstream: the cached data is shown with a warning.
	good.err = domain.E(domain.KindUpstream, "graph: fetch items", "boom")
	out, err := execute("services")
	require.NoError(t, err)

	assert.Contains(t, out, "Warning: remote unreachable")
	assert.Contains(t, out, "[1] 28/12/2025")
}

func TestServicesCmd_AuthErrorNotMasked(t *testing.T) {
	records := &fakeRecords{err: domain.E(domain.KindAuth, "graph: ensure valid", "not authenticated")}
	cleanup := setupTestServices(records)
	defer cleanup()

	_, err := execute("services")
	assert.True(t, domain.IsAuth(err))
}

func TestServiceShowCmd(t *testing.T) {
	cleanup := setupTestServices(&fakeRecords{details: []domain.ServiceDetail{
		{ID: 42, PickupDate: "28/12/2025", TransportedPerson: "GALUPPO ANGELO", DistanceKm: "12.5"},
	}})
	defer cleanup()

	out, err := execute("service", "show", "42")
	require.NoError(t, err)

	assert.Contains(t, out, "Service 42")
	assert.Contains(t, out, "GALUPPO ANGELO")
	assert.Contains(t, out, "12.5")
}

func TestServiceShowCmd_InvalidID(t *testing.T) {
	cleanup := setupTestServices(&fakeRecords{})
	defer cleanup()

	_, err := execute("service", "show", "abc")
	assert.ErrorContains(t, err, "invalid service id")
}

func TestServiceShowCmd_NotFound(t *testing.T) {
	cleanup := setupTestServices(&fakeRecords{})
	defer cleanup()

	_, err := execute("service", "show", "999")
	assert.True(t, domain.IsNotFound(err))
}

func TestServiceUpdateCmd(t *testing.T) {
	records := &fakeRecords{}
	cleanup := setupTestServices(records)
	defer cleanup()

	out, err := execute("service", "update", "42", "operator=ROSSI", "pickup_time=08:30")
	require.NoError(t, err)

	assert.Contains(t, out, "Service 42 updated.")
	assert.Equal(t, 42, records.updatedID)
	assert.Equal(t, map[string]string{
		"operator":    "ROSSI",
		"pickup_time": "08:30",
	}, records.updatedFields)
}

func TestServiceUpdateCmd_RejectsBadAssignment(t *testing.T) {
	cleanup := setupTestServices(&fakeRecords{})
	defer cleanup()

	_, err := execute("service", "update", "42", "operator")
	assert.ErrorContains(t, err, "invalid field assignment")
}

func TestServicesCmd_Flags(t *testing.T) {
	for _, name := range []string{"upcoming", "created-today", "all", "json"} {
		assert.NotNil(t, servicesCmd.Flags().Lookup(name), name)
	}
}

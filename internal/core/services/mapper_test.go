package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
)

func TestMapServiceIDResolution(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]any
		wantID int
		wantOK bool
	}{
		{"primary id column", map[string]any{"IDSERVIZIO": "42"}, 42, true},
		{"numeric id column", map[string]any{"IDSERVIZIO": json.Number("42")}, 42, true},
		{"title fallback", map[string]any{"Title": "7"}, 7, true},
		{"primary wins over title", map[string]any{"IDSERVIZIO": "42", "Title": "7"}, 42, true},
		{"zero is no id", map[string]any{"IDSERVIZIO": "0"}, 0, false},
		{"non-numeric everywhere", map[string]any{"IDSERVIZIO": "abc", "Title": "servizio"}, 0, false},
		{"nothing", map[string]any{}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ok := mapService(domain.RawItem{Fields: tt.fields})
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantID, svc.ID)
			}
		})
	}
}

func TestMapServiceShortFormUsesReasonAsType(t *testing.T) {
	svc, ok := mapService(domain.RawItem{Fields: map[string]any{
		"IDSERVIZIO":    "1",
		"MOTIVAZIONE":   "TRASPORTO GENERICO",
		"TIPO_SERVIZIO": "ANDATA/RITORNO",
	}})
	require.True(t, ok)
	assert.Equal(t, "TRASPORTO GENERICO", svc.ServiceType)

	// The long-form column alone does not feed the short view.
	svc, ok = mapService(domain.RawItem{Fields: map[string]any{
		"IDSERVIZIO":    "2",
		"TIPO_SERVIZIO": "ANDATA/RITORNO",
	}})
	require.True(t, ok)
	assert.Empty(t, svc.ServiceType)
}

func TestMapServiceDetailFields(t *testing.T) {
	detail, ok := mapServiceDetail(domain.RawItem{Fields: map[string]any{
		"IDSERVIZIO":        "64",
		"DATA_PRELIEVO":     "2025-12-28T00:00:00",
		"IDSOCIO":           "123",
		"TRASP":             "GALUPPO ANGELO",
		"ORA_PRELIEVO":      "08:30",
		"COMUNE_PRELIEVO":   "ASTI",
		"CARROZZINA":        "SI",
		"OPER":              "GAGLIARDI",
		"OPER2":             "",
		"KM":                json.Number("12.5"),
		"DATABONIFICO":      "2025-11-02",
		"STATOSERVIZIO":     "CHIUSO",
		"note_destinazione": "citofonare",
	}})
	require.True(t, ok)

	assert.Equal(t, 64, detail.ID)
	assert.Equal(t, "28/12/2025", detail.PickupDate)
	assert.Equal(t, "123", detail.MemberID)
	assert.Equal(t, "GALUPPO ANGELO", detail.TransportedPerson)
	assert.Equal(t, "08:30", detail.StartTime)
	assert.Equal(t, "ASTI", detail.PickupCity)
	assert.Equal(t, "SI", detail.Wheelchair)
	assert.Equal(t, "GAGLIARDI", detail.Operator)
	assert.Equal(t, "12.5", detail.DistanceKm)
	assert.Equal(t, "02/11/2025", detail.TransferDate)
	assert.Equal(t, "CHIUSO", detail.Status)
	assert.Equal(t, "citofonare", detail.ArrivalNotes)
}

func TestMapCardGate(t *testing.T) {
	_, ok := mapCard(domain.RawItem{ID: "1", Fields: map[string]any{"TIPOLOGIASOCIO": "RINNOVO"}})
	assert.False(t, ok)

	_, ok = mapCard(domain.RawItem{ID: "1", Fields: map[string]any{}})
	assert.False(t, ok)

	card, ok := mapCard(domain.RawItem{ID: "5", Fields: map[string]any{
		"TIPOLOGIASOCIO": "nuovo",
		"DESCRIZIONE":    "tessera urgente",
	}})
	require.True(t, ok)
	assert.Equal(t, 5, card.ID)
	assert.Equal(t, "tessera urgente", card.Description)

	// Internal ID must parse.
	_, ok = mapCard(domain.RawItem{ID: "abc", Fields: map[string]any{"TIPOLOGIASOCIO": "NUOVO"}})
	assert.False(t, ok)
}

func TestMapCardRequiresDescription(t *testing.T) {
	_, ok := mapCard(domain.RawItem{ID: "5", Fields: map[string]any{"TIPOLOGIASOCIO": "NUOVO"}})
	assert.False(t, ok)

	card, ok := mapCard(domain.RawItem{ID: "5", Fields: map[string]any{
		"TIPOLOGIASOCIO": "NUOVO",
		"TITOLO":         "ROSSI MARIO",
	}})
	require.True(t, ok)
	assert.Equal(t, "ROSSI MARIO", card.Description)
}

func TestMapMemberLookupColumns(t *testing.T) {
	member, ok := mapMember(domain.RawItem{ID: "9", Fields: map[string]any{
		"SocioID":         "77",
		"COGNOME":         "VERDI",
		"NOME":            "ANNA",
		"CodiceFiscale":   "VRDNNA85M41A052X",
		"SCADENZATESSERA": "2026-06-30",
		"TIPOLOGIASOCIO":  "ORDINARIO",
		"operatore":       "y",
		"STATO":           "1",
		"DISPONIBILITA":   map[string]any{"value": []any{"LUN", "MAR"}},
	}})
	require.True(t, ok)

	assert.Equal(t, 9, member.ID)
	assert.Equal(t, "77", member.MemberID)
	assert.Equal(t, "VERDI ANNA", member.FullName)
	assert.Equal(t, "VRDNNA85M41A052X", member.FiscalCode)
	assert.Equal(t, "30/06/2026", member.CardExpiry)
	assert.True(t, member.IsOperator)
	assert.True(t, member.IsActive)
	assert.Equal(t, "LUN - MAR", member.Availability)
}

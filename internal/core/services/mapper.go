package services

import (
	"strconv"
	"strings"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
	"github.com/lorenzomotta/AUSER/internal/normalisers/listfield"
)

// Service identifiers live in the IDSERVIZIO column, with the generic
// Title column as fallback. Items resolving to no positive integer are
// unusable for update or reference operations and are dropped.
var serviceIDKeys = []string{"IDSERVIZIO", "Title"}

// Card candidates are the member registry rows whose type marks a card
// still to be produced.
var cardMemberTypes = map[string]struct{}{"NUOVO": {}, "ESTERNO": {}}

func parsePositiveInt(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// resolveID tries the candidate columns in order for a positive
// integer identifier.
func resolveID(fields map[string]any, keys []string) (int, bool) {
	for _, key := range keys {
		if id, ok := parsePositiveInt(listfield.Extract(fields, key)); ok {
			return id, true
		}
	}
	return 0, false
}

func mapService(item domain.RawItem) (domain.Service, bool) {
	id, ok := resolveID(item.Fields, serviceIDKeys)
	if !ok {
		return domain.Service{}, false
	}
	f := item.Fields
	return domain.Service{
		ID:              id,
		Operator:        listfield.Extract(f, "OPER"),
		Date:            listfield.NormalizeDate(listfield.Extract(f, "DATA_PRELIEVO")),
		CounterpartName: listfield.Extract(f, "TRASP"),
		PickupTime:      listfield.NormalizeTime(listfield.Extract(f, "ORA_PRELIEVO")),
		DropoffTime:     listfield.NormalizeTime(listfield.Extract(f, "ORA_DESTINAZIONE")),
		// The short form shows the trip reason as its type; the
		// TIPO_SERVIZIO column only appears in the long form.
		ServiceType: listfield.Extract(f, "MOTIVAZIONE"),
	}, true
}

func mapServiceDetail(item domain.RawItem) (domain.ServiceDetail, bool) {
	id, ok := resolveID(item.Fields, serviceIDKeys)
	if !ok {
		return domain.ServiceDetail{}, false
	}
	f := item.Fields
	return domain.ServiceDetail{
		ID:                id,
		PickupDate:        listfield.NormalizeDate(listfield.Extract(f, "DATA_PRELIEVO")),
		MemberID:          listfield.Extract(f, "IDSOCIO"),
		TransportedPerson: listfield.Extract(f, "TRASP"),
		StartTime:         listfield.NormalizeTime(listfield.Extract(f, "ORA_PRELIEVO")),
		PickupCity:        listfield.Extract(f, "COMUNE_PRELIEVO"),
		PickupAddress:     listfield.Extract(f, "INDIRIZZO_PRELIEVO"),
		ServiceType:       listfield.Extract(f, "TIPO_SERVIZIO"),
		Wheelchair:        listfield.Extract(f, "CARROZZINA"),
		Requester:         listfield.Extract(f, "RICHIEDENTE"),
		Reason:            listfield.Extract(f, "MOTIVAZIONE"),
		ArrivalTime:       listfield.NormalizeTime(listfield.Extract(f, "ORA_DESTINAZIONE")),
		DestCity:          listfield.Extract(f, "COMUNE_DESTINAZIONE"),
		DestAddress:       listfield.Extract(f, "INDIRIZZO_DESTINAZIONE"),
		Payment:           listfield.Extract(f, "PAGAMENTO"),
		CollectionStatus:  listfield.Extract(f, "STATO_INCASSO"),
		Operator:          listfield.Extract(f, "OPER"),
		Operator2:         listfield.Extract(f, "OPER2"),
		Vehicle:           listfield.Extract(f, "MEZZO_USATO"),
		Duration:          listfield.Extract(f, "TEMPO"),
		DistanceKm:        listfield.Extract(f, "KM"),
		PaymentType:       listfield.Extract(f, "TIPOPAGAMENTO"),
		TransferDate:      listfield.NormalizeDate(listfield.Extract(f, "DATABONIFICO")),
		ReceiptDate:       listfield.NormalizeDate(listfield.Extract(f, "DATARICEVUTA")),
		Status:            listfield.Extract(f, "STATOSERVIZIO"),
		PickupNotes:       listfield.Extract(f, "PRELIEVO_NOTE"),
		// The destination note column is lowercase on the site.
		ArrivalNotes: listfield.Extract(f, "note_destinazione"),
		ClosingNotes: listfield.Extract(f, "NOTE_FINE_SERVIZIO"),
	}, true
}

// mapCard accepts only items whose member type marks a card still to be
// produced.
func mapCard(item domain.RawItem) (domain.Card, bool) {
	memberType := strings.ToUpper(strings.TrimSpace(listfield.Extract(item.Fields, "TIPOLOGIASOCIO")))
	if _, ok := cardMemberTypes[memberType]; !ok {
		return domain.Card{}, false
	}
	id, ok := parsePositiveInt(item.ID)
	if !ok {
		return domain.Card{}, false
	}
	// A card with no resolvable name cannot be produced.
	description := listfield.DisplayName(item.Fields)
	if description == "" {
		return domain.Card{}, false
	}
	return domain.Card{
		ID:          id,
		Description: description,
	}, true
}

func mapMember(item domain.RawItem) (domain.Member, bool) {
	id, ok := parsePositiveInt(item.ID)
	if !ok {
		return domain.Member{}, false
	}
	f := item.Fields

	// Members without a dedicated identifier column reuse the internal
	// item ID.
	memberID := listfield.MemberID(f)
	if memberID == "" {
		memberID = item.ID
	}

	return domain.Member{
		ID:           id,
		MemberID:     memberID,
		FullName:     listfield.DisplayName(f),
		FiscalCode:   listfield.FiscalCode(f),
		CardNumber:   listfield.Extract(f, "NUMEROTESSERA"),
		CardExpiry:   listfield.NormalizeDate(listfield.Extract(f, "SCADENZATESSERA")),
		Phone:        listfield.Extract(f, "TELEFONO"),
		MemberType:   listfield.Extract(f, "TIPOLOGIASOCIO"),
		IsOperator:   listfield.Truthy(listfield.OperatorFlag(f)),
		IsActive:     listfield.Truthy(listfield.ActiveFlag(f)),
		Availability: listfield.Extract(f, "DISPONIBILITA"),
		Note:         listfield.Extract(f, "NOTAAGGIUNTIVA"),
	}, true
}

func mapServices(items []domain.RawItem) []domain.Service {
	out := make([]domain.Service, 0, len(items))
	for _, item := range items {
		if svc, ok := mapService(item); ok {
			out = append(out, svc)
		}
	}
	return out
}

func mapServiceDetails(items []domain.RawItem) []domain.ServiceDetail {
	out := make([]domain.ServiceDetail, 0, len(items))
	for _, item := range items {
		if d, ok := mapServiceDetail(item); ok {
			out = append(out, d)
		}
	}
	return out
}

func mapCards(items []domain.RawItem) []domain.Card {
	out := make([]domain.Card, 0, len(items))
	for _, item := range items {
		if card, ok := mapCard(item); ok {
			out = append(out, card)
		}
	}
	return out
}

func mapMembers(items []domain.RawItem) []domain.Member {
	out := make([]domain.Member, 0, len(items))
	for _, item := range items {
		if m, ok := mapMember(item); ok {
			out = append(out, m)
		}
	}
	return out
}

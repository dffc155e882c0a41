package listfield

import "strings"

// Candidate column names for logical fields whose physical name varies
// between site generations. Order matters: the first non-empty value
// wins, so the most specific names come first.

var memberIDKeys = []string{
	"IDSOCIO", "ID_SOCIO", "IdSocio", "idSocio", "Id_Socio",
	"SocioID", "SOCIO_ID", "Socio_Id", "socioId",
	"ID", "Id", "Title",
}

// "Codice Fiscale" with a space is the display name; SharePoint encodes
// the space as _x0020_ in the internal name.
var fiscalCodeKeys = []string{
	"Codice Fiscale",
	"Codice_x0020_Fiscale",
	"Codice_x0020_fiscale",
	"CODICE FISCALE",
	"CODICE_X0020_FISCALE",
	"CodiceFiscale",
	"CODICE_FISCALE",
	"Codice_Fiscale",
	"Codice fiscale",
	"CF", "cf", "Cf", "C_F", "c_f",
	"FISCALECODE", "FiscaleCode", "fiscaleCode",
	"CODICEFISCALE", "codicefiscale",
}

var operatorFlagKeys = []string{"OPERATORE", "Operatore", "operatore"}

// Some site generations use STATO instead of ATTIVO.
var activeFlagKeys = []string{"ATTIVO", "Attivo", "attivo", "STATO"}

// MemberID resolves the member identifier column, or "" when no
// variant is present.
func MemberID(fields map[string]any) string {
	return FirstOf(fields, memberIDKeys...)
}

// FiscalCode resolves the fiscal code column across its historical
// spellings.
func FiscalCode(fields map[string]any) string {
	return FirstOf(fields, fiscalCodeKeys...)
}

// OperatorFlag resolves the raw operator flag value.
func OperatorFlag(fields map[string]any) string {
	return FirstOf(fields, operatorFlagKeys...)
}

// ActiveFlag resolves the raw active flag value.
func ActiveFlag(fields map[string]any) string {
	return FirstOf(fields, activeFlagKeys...)
}

// DisplayName builds a person's display name: the dedicated nominativo
// column when present, otherwise surname and first name, otherwise the
// generic description columns.
func DisplayName(fields map[string]any) string {
	if s := FirstOf(fields, "Nominativo_SOCIO", "NOMINATIVO_SOCIO"); s != "" {
		return s
	}
	surname := Extract(fields, "COGNOME")
	name := Extract(fields, "NOME")
	switch {
	case surname != "" && name != "":
		return surname + " " + name
	case surname != "":
		return surname
	case name != "":
		return name
	}
	return FirstOf(fields, "DESCRIZIONE", "TITOLO")
}

// truthyTokens are the values free-text boolean columns use for "yes".
// Checkbox columns return "true"/"false" strings even when the UI shows
// SI/NO.
var truthyTokens = map[string]struct{}{
	"TRUE": {}, "SI": {}, "SÌ": {}, "S": {}, "1": {}, "YES": {}, "Y": {},
}

// Truthy reports whether a free-text boolean value means "yes" after
// trimming and uppercasing. Everything else, including empty, is false.
func Truthy(raw string) bool {
	_, ok := truthyTokens[strings.ToUpper(strings.TrimSpace(raw))]
	return ok
}

package graph

import "strings"

// filterRewrites translates the legacy SharePoint REST filter syntax
// into the Graph OData dialect by literal substring replacement.
// Column references move under fields/, Created becomes the item's
// createdDateTime, and the datetime'...' literal wrapper is dropped.
// Text that matches no rewrite passes through untouched.
var filterRewrites = []struct{ from, to string }{
	{"DATA_PRELIEVO ge datetime'", "fields/DATA_PRELIEVO ge "},
	{"DATA_PRELIEVO lt datetime'", "fields/DATA_PRELIEVO lt "},
	{"DATA_PRELIEVO eq datetime'", "fields/DATA_PRELIEVO eq "},
	{"DATA_PRELIEVO gt datetime'", "fields/DATA_PRELIEVO gt "},
	{"Data_Prelievo ge datetime'", "fields/DATA_PRELIEVO ge "},
	{"Data_Prelievo lt datetime'", "fields/DATA_PRELIEVO lt "},
	{"Data_Prelievo eq datetime'", "fields/DATA_PRELIEVO eq "},
	{"Data_Prelievo gt datetime'", "fields/DATA_PRELIEVO gt "},
	{"Data ge datetime'", "fields/Data ge "},
	{"Data lt datetime'", "fields/Data lt "},
	{"Data eq datetime'", "fields/Data eq "},
	{"Data gt datetime'", "fields/Data gt "},
	{"Created ge datetime'", "createdDateTime ge "},
	{"Created lt datetime'", "createdDateTime lt "},
	{"Created eq datetime'", "createdDateTime eq "},
	{"Created gt datetime'", "createdDateTime gt "},
}

// TranslateFilter converts a legacy REST filter expression to the
// Graph dialect. The final pass strips the single quotes left over
// from datetime literals.
func TranslateFilter(legacy string) string {
	out := legacy
	for _, rw := range filterRewrites {
		out = strings.ReplaceAll(out, rw.from, rw.to)
	}
	return strings.ReplaceAll(out, "'", "")
}

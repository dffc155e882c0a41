package listfield

import (
	"strings"
	"time"
)

// DisplayDateLayout is the dd/mm/yyyy layout the UI and the site's
// text columns use.
const DisplayDateLayout = "02/01/2006"

// NormalizeDate converts a remote date value into dd/mm/yyyy. The
// remote API mixes RFC3339 timestamps, naive datetimes, plain dates and
// already-formatted Italian dates, so every variant is tried in turn.
// Values that match nothing pass through unchanged; this never errors.
func NormalizeDate(raw string) string {
	if raw == "" {
		return ""
	}

	// RFC3339 timestamps are UTC on the wire; render in local time.
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(time.Local).Format(DisplayDateLayout)
	}

	// Naive datetime, no timezone to convert.
	if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
		return t.Format(DisplayDateLayout)
	}

	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.Format(DisplayDateLayout)
	}

	// Already dd/mm/yyyy, or at least something slash-separated the
	// site authors typed by hand.
	return raw
}

// NormalizeTime converts a remote time value into HH:MM. Short clock
// values pass through; RFC3339 timestamps yield their clock part;
// anything else passes through unchanged.
func NormalizeTime(raw string) string {
	if raw == "" {
		return ""
	}
	if strings.Contains(raw, ":") && len(raw) <= 5 {
		return raw
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format("15:04")
	}
	return raw
}

// ParseDisplayDate parses a dd/mm/yyyy display date. The second return
// is false for empty or malformed values.
func ParseDisplayDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(DisplayDateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseClock parses an HH:MM or HH:MM:SS display time.
func ParseClock(s string) (time.Time, bool) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

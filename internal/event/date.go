package event

import (
	"fmt"
	"strings"
	"time"

	// Fallback zone database for hosts without system zoneinfo.
	_ "time/tzdata"
)

// Zone pairs a display timezone with the label printed after the formatted time.
type Zone struct {
	Location *time.Location
	Label    string
}

// startTimeLayouts are tried in order when parsing source timestamps.
// time.RFC3339 accepts both a numeric offset and the literal "Z" suffix.
var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
}

// ParseStartTime parses an ISO-8601 start timestamp into a UTC instant.
func ParseStartTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized start time %q", raw)
}

// Ordinal returns the day of month with its English ordinal suffix.
// 11-13 always take "th"; otherwise the last digit decides.
func Ordinal(day int) string {
	suffix := "th"
	if day < 11 || day > 13 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}

// FormatDisplay renders an instant in each display zone as
// "5th May 2025, 10:00 PM EST", zones joined with " | ".
func FormatDisplay(t time.Time, zones []Zone) string {
	parts := make([]string, 0, len(zones))
	for _, z := range zones {
		local := t.In(z.Location)
		parts = append(parts, fmt.Sprintf("%s %s, %s %s",
			Ordinal(local.Day()),
			local.Format("January 2006"),
			local.Format("3:04 PM"),
			z.Label))
	}
	return strings.Join(parts, " | ")
}

// Visible reports whether an event is still current for listing purposes.
// The cutoff is midnight of the event's calendar day in the reference zone
// plus one full day, so an event stays listed through the end of the day
// after it occurs. A zero event time means the source date could not be
// parsed; such events are kept rather than silently hidden.
func Visible(eventTime, now time.Time, ref *time.Location) bool {
	if eventTime.IsZero() {
		return true
	}
	local := eventTime.In(ref)
	cutoff := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, ref).AddDate(0, 0, 1)
	return !now.In(ref).After(cutoff)
}

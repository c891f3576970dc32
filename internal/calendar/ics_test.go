package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/amehta/fight-events/internal/event"
)

func TestSerialize(t *testing.T) {
	events := []*event.Event{
		{
			ID:        "107305",
			Name:      "UFC 316: Dvalishvili vs. O'Malley 2",
			StartTime: time.Date(2025, 6, 8, 2, 0, 0, 0, time.UTC),
			Location:  "Newark, New Jersey, United States",
			URL:       "https://www.sherdog.com/events/UFC-316-Dvalishvili-vs-OMalley-2-107305",
		},
		{
			// No parseable start time; should not appear in the calendar.
			ID:   "789",
			Name: "ONE Friday Fights 110",
		},
	}

	out := Serialize(events)

	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Fatalf("output is not a calendar:\n%s", out)
	}
	if !strings.Contains(out, "UID:107305@sherdog.com") {
		t.Errorf("missing UID for dated event:\n%s", out)
	}
	if !strings.Contains(out, "20250608T020000Z") {
		t.Errorf("missing DTSTART for dated event:\n%s", out)
	}
	if strings.Contains(out, "789@sherdog.com") {
		t.Errorf("undated event should be excluded:\n%s", out)
	}
	if strings.Count(out, "BEGIN:VEVENT") != 1 {
		t.Errorf("expected exactly one VEVENT:\n%s", out)
	}
}

// Package calendar exports fight events as an iCalendar feed.
package calendar

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/amehta/fight-events/internal/event"
)

// Events without a broadcast end time get a fixed block on the calendar.
const defaultDuration = 4 * time.Hour

// Build returns a calendar with one entry per dated event. Events whose start
// time could not be parsed are left out, since a VEVENT needs a DTSTART.
func Build(events []*event.Event) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//fight-events//fight-events//EN")

	now := time.Now().UTC()
	for _, evt := range events {
		if evt.StartTime.IsZero() {
			continue
		}

		entry := cal.AddEvent(fmt.Sprintf("%s@sherdog.com", evt.ID))
		entry.SetDtStampTime(now)
		entry.SetStartAt(evt.StartTime)
		entry.SetEndAt(evt.StartTime.Add(defaultDuration))
		entry.SetSummary(evt.Name)
		if evt.Location != "" {
			entry.SetLocation(evt.Location)
		}
		if evt.URL != "" {
			entry.SetURL(evt.URL)
		}
		if evt.DateDisplay != "" {
			entry.SetDescription(evt.DateDisplay)
		}
	}

	return cal
}

// Serialize renders the events as iCalendar text.
func Serialize(events []*event.Event) string {
	return Build(events).Serialize()
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/amehta/fight-events/internal/event"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteEvents writes a listing in the specified format
func WriteEvents(w io.Writer, events []*event.Event, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, events)
	case FormatText:
		return writeEventsText(w, events)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteEventDetail writes a single event with its fight card
func WriteEventDetail(w io.Writer, evt *event.Event, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, evt)
	case FormatText:
		return writeDetailText(w, evt)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeEventsText(w io.Writer, events []*event.Event) error {
	if len(events) == 0 {
		fmt.Fprintln(w, "No upcoming events found.")
		return nil
	}

	fmt.Fprintf(w, "Found %d upcoming event(s):\n\n", len(events))
	for _, evt := range events {
		fmt.Fprintf(w, "  [%s] %s\n", evt.ID, evt.Name)
		if evt.DateDisplay != "" {
			fmt.Fprintf(w, "      %s\n", evt.DateDisplay)
		}
		if evt.Location != "" {
			fmt.Fprintf(w, "      %s\n", evt.Location)
		}
		fmt.Fprintf(w, "      %s\n\n", evt.URL)
	}
	return nil
}

func writeDetailText(w io.Writer, evt *event.Event) error {
	fmt.Fprintln(w, evt.Name)
	if evt.DateDisplay != "" {
		fmt.Fprintln(w, evt.DateDisplay)
	}
	if evt.Location != "" {
		fmt.Fprintln(w, evt.Location)
	}
	fmt.Fprintln(w)

	if len(evt.Fights) == 0 {
		fmt.Fprintln(w, "No fights announced yet.")
		return nil
	}

	fmt.Fprintf(w, "Fight card (%d bouts):\n\n", len(evt.Fights))
	for i, f := range evt.Fights {
		fmt.Fprintf(w, "  %d. %s vs %s", i+1, fighterLabel(f.FighterLeft), fighterLabel(f.FighterRight))
		if f.WeightClass != "" {
			fmt.Fprintf(w, " [%s]", f.WeightClass)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func fighterLabel(f event.FighterRef) string {
	if f.Record != "" {
		return fmt.Sprintf("%s (%s)", f.Name, f.Record)
	}
	return f.Name
}

package notifier

import (
	"bytes"
	"strings"
	"testing"

	"github.com/amehta/fight-events/internal/event"
)

func TestFormatMessage(t *testing.T) {
	evt := &event.Event{
		ID:          "107305",
		Name:        "UFC 316: Dvalishvili vs. O'Malley 2 (Ultimate Fighting Championship)",
		DateDisplay: "7th June 2025, 10:00 PM EST | 8th June 2025, 7:30 AM IST",
		Location:    "Newark, New Jersey, United States",
		URL:         "https://www.sherdog.com/events/UFC-316-Dvalishvili-vs-OMalley-2-107305",
	}

	msg := formatMessage(evt)
	for _, want := range []string{evt.Name, evt.DateDisplay, evt.Location, evt.URL} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestFormatMessageSparseEvent(t *testing.T) {
	evt := &event.Event{
		ID:   "789",
		Name: "ONE Friday Fights 110 (ONE Championship)",
		URL:  "https://www.sherdog.com/events/ONE-Friday-Fights-110-789",
	}

	msg := formatMessage(evt)
	if strings.Contains(msg, "📅") || strings.Contains(msg, "📍") {
		t.Errorf("empty fields should be omitted:\n%s", msg)
	}
}

func TestDryRunNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewDryRunNotifier(&buf)

	events := []*event.Event{
		{ID: "1", Name: "UFC 316", URL: "https://example.com/1"},
		{ID: "2", Name: "PFL 5", URL: "https://example.com/2"},
	}
	if err := n.Notify(events); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Message 1/2") || !strings.Contains(out, "Message 2/2") {
		t.Errorf("expected both messages in output:\n%s", out)
	}
	if !strings.Contains(out, "UFC 316") || !strings.Contains(out, "PFL 5") {
		t.Errorf("expected event names in output:\n%s", out)
	}
}

func TestNewTelegramNotifierMissingCredentials(t *testing.T) {
	if _, err := NewTelegramNotifier("", 0); err == nil {
		t.Error("expected error for missing credentials")
	}
}

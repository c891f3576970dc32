package notifier

import (
	"fmt"
	"strings"

	"github.com/amehta/fight-events/internal/event"
)

// Notifier defines the interface for posting event notifications
type Notifier interface {
	// Notify posts notifications for the given events
	Notify(events []*event.Event) error
}

// formatMessage formats an event announcement
func formatMessage(evt *event.Event) string {
	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("🥊 New event announced: %s\n", evt.Name))
	if evt.DateDisplay != "" {
		msg.WriteString(fmt.Sprintf("📅 %s\n", evt.DateDisplay))
	}
	if evt.Location != "" {
		msg.WriteString(fmt.Sprintf("📍 %s\n", evt.Location))
	}
	msg.WriteString(fmt.Sprintf("\n%s", evt.URL))

	return msg.String()
}

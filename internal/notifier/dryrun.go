package notifier

import (
	"fmt"
	"io"

	"github.com/amehta/fight-events/internal/event"
)

// DryRunNotifier prints what would be sent without actually posting
type DryRunNotifier struct {
	out io.Writer
}

// NewDryRunNotifier creates a new dry-run notifier writing to out
func NewDryRunNotifier(out io.Writer) *DryRunNotifier {
	return &DryRunNotifier{out: out}
}

// Notify prints the messages that would be posted
func (n *DryRunNotifier) Notify(events []*event.Event) error {
	for i, evt := range events {
		fmt.Fprintf(n.out, "--- Message %d/%d ---\n", i+1, len(events))
		fmt.Fprintln(n.out, formatMessage(evt))
		fmt.Fprintln(n.out)
	}
	return nil
}

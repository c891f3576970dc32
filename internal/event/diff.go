package event

// Snapshot captures the result of one successful listing fetch.
type Snapshot struct {
	Events    map[string]*Event `json:"events"`     // keyed by Event.ID
	Order     []string          `json:"order"`      // IDs in document order
	FetchedAt string            `json:"fetched_at"` // RFC3339 timestamp
}

// NewSnapshot creates an empty snapshot
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Events: make(map[string]*Event),
		Order:  make([]string, 0),
	}
}

// CreateSnapshot creates a snapshot from a list of events in document order
func CreateSnapshot(events []*Event, fetchedAt string) *Snapshot {
	snap := NewSnapshot()
	snap.FetchedAt = fetchedAt
	for _, evt := range events {
		if _, exists := snap.Events[evt.ID]; exists {
			continue
		}
		snap.Events[evt.ID] = evt
		snap.Order = append(snap.Order, evt.ID)
	}
	return snap
}

// Ordered returns the snapshot's events in the document order of the fetch
// they were taken from.
func (s *Snapshot) Ordered() []*Event {
	events := make([]*Event, 0, len(s.Order))
	for _, id := range s.Order {
		if evt, ok := s.Events[id]; ok {
			events = append(events, evt)
		}
	}
	return events
}

// Diff returns events from current that were not present in the previous
// snapshot, preserving current's order. A nil previous marks everything new.
func Diff(previous *Snapshot, current []*Event) []*Event {
	if previous == nil {
		previous = NewSnapshot()
	}

	newEvents := make([]*Event, 0)
	for _, evt := range current {
		if _, exists := previous.Events[evt.ID]; !exists {
			newEvents = append(newEvents, evt)
		}
	}
	return newEvents
}

package storage

import (
	"testing"

	"github.com/amehta/fight-events/internal/event"
)

func testEvents() []*event.Event {
	return []*event.Event{
		{ID: "107305", Name: "UFC 316", URL: "https://www.sherdog.com/events/UFC-316-107305"},
		{ID: "456", Name: "PFL 5", URL: "https://www.sherdog.com/events/PFL-5-456"},
	}
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("creating storage: %v", err)
	}

	if err := store.SaveEvents(testEvents()); err != nil {
		t.Fatalf("saving events: %v", err)
	}

	snapshot, err := store.LoadSnapshot()
	if err != nil {
		t.Fatalf("loading snapshot: %v", err)
	}
	if len(snapshot.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(snapshot.Events))
	}
	if snapshot.FetchedAt == "" {
		t.Error("FetchedAt should be set")
	}

	ordered := snapshot.Ordered()
	if ordered[0].ID != "107305" || ordered[1].ID != "456" {
		t.Errorf("snapshot lost document order: %s, %s", ordered[0].ID, ordered[1].ID)
	}
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("creating storage: %v", err)
	}

	snapshot, err := store.LoadSnapshot()
	if err != nil {
		t.Fatalf("loading missing snapshot should not error: %v", err)
	}
	if len(snapshot.Events) != 0 {
		t.Errorf("expected empty snapshot, got %d events", len(snapshot.Events))
	}
}

func TestGetEventByID(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("creating storage: %v", err)
	}
	if err := store.SaveEvents(testEvents()); err != nil {
		t.Fatalf("saving events: %v", err)
	}

	evt, err := store.GetEventByID("456")
	if err != nil {
		t.Fatalf("GetEventByID failed: %v", err)
	}
	if evt.Name != "PFL 5" {
		t.Errorf("unexpected event: %q", evt.Name)
	}

	if _, err := store.GetEventByID("does-not-exist"); err == nil {
		t.Error("expected error for unknown event ID")
	}
}

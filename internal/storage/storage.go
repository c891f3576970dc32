package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/amehta/fight-events/internal/event"
)

const snapshotFile = "snapshot.json"

// Storage handles persistence of listing snapshots
type Storage struct {
	dataDir string
}

// New creates a new Storage instance
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// LoadSnapshot loads the last snapshot from disk. A missing file yields an
// empty snapshot, not an error.
func (s *Storage) LoadSnapshot() (*event.Snapshot, error) {
	data, err := os.ReadFile(filepath.Join(s.dataDir, snapshotFile))
	if err != nil {
		if os.IsNotExist(err) {
			return event.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot event.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if snapshot.Events == nil {
		snapshot.Events = make(map[string]*event.Event)
	}

	return &snapshot, nil
}

// SaveSnapshot saves a snapshot to disk
func (s *Storage) SaveSnapshot(snapshot *event.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(filepath.Join(s.dataDir, snapshotFile), data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}

// SaveEvents snapshots a listing fetch taken at the current time.
func (s *Storage) SaveEvents(events []*event.Event) error {
	snapshot := event.CreateSnapshot(events, time.Now().UTC().Format(time.RFC3339))
	return s.SaveSnapshot(snapshot)
}

// GetEventByID retrieves an event by ID from the latest snapshot
func (s *Storage) GetEventByID(eventID string) (*event.Event, error) {
	snapshot, err := s.LoadSnapshot()
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	if evt, exists := snapshot.Events[eventID]; exists {
		return evt, nil
	}

	return nil, fmt.Errorf("event not found: %s", eventID)
}

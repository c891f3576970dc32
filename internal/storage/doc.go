// Package storage provides JSON-based persistence for listing snapshots.
//
// A snapshot records the events seen on the last successful listing fetch.
// It backs the "new events since last run" diff and lets the server resolve
// an event ID to its detail-page URL without refetching the listing. The
// default location is ~/.local/share/fight-events/snapshot.json.
package storage

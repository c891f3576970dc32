// Package event provides types and functions for combat-sports events and fight cards.
//
// The event package handles event representation, start-time normalization across
// timezones, and the visibility cutoff that keeps an event listed through the end
// of the day after it occurs. Event IDs are derived deterministically from the
// trailing token of the source detail-page path, so the same event keeps the same
// ID across fetches.
package event

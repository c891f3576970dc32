// Package scraper provides HTTP fetching and HTML parsing for Sherdog fight events.
//
// The scraper fetches the public events listing and individual event pages and
// extracts structured events and fight cards from Sherdog's schema.org-annotated
// markup. Extraction is tolerant of malformed items: a listing row or a fight
// block missing a required field is skipped and logged, never fatal to the whole
// page. Past events are filtered out of listings using a midnight-plus-one-day
// cutoff in the configured reference timezone.
package scraper

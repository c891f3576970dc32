package event

import (
	"fmt"
	"strings"
	"time"
)

// Event represents a single combat-sports event.
// Fights is empty for listing results and populated by the detail scraper.
type Event struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Organization string    `json:"organization"`
	StartTime    time.Time `json:"start_time"` // UTC; zero when the source date could not be parsed
	DateDisplay  string    `json:"date"`
	Location     string    `json:"location,omitempty"`
	URL          string    `json:"url"`
	Fights       []Fight   `json:"fights,omitempty"`
}

// FighterRef identifies one side of a fight.
type FighterRef struct {
	Name   string `json:"name"`
	Record string `json:"record,omitempty"`
	Image  string `json:"image,omitempty"`
}

// Fight is a single bout on an event's card.
type Fight struct {
	FighterLeft  FighterRef `json:"fighter_left"`
	FighterRight FighterRef `json:"fighter_right"`
	WeightClass  string     `json:"weight_class,omitempty"`
}

// IDFromPath derives the stable event ID from a detail-page path.
// Sherdog paths end in "-<numeric id>", e.g.
// "/events/UFC-316-Dvalishvili-vs-OMalley-2-107305" -> "107305".
func IDFromPath(path string) string {
	parts := strings.Split(path, "-")
	return parts[len(parts)-1]
}

// BuildName returns the display name for an event. When the organization is
// already part of the raw title (case-insensitive) the title is used verbatim,
// otherwise the organization is appended in parentheses.
func BuildName(rawTitle, org string) string {
	if org == "" || strings.Contains(strings.ToLower(rawTitle), strings.ToLower(org)) {
		return rawTitle
	}
	return fmt.Sprintf("%s (%s)", rawTitle, org)
}

// ResolveImageURL makes a fighter image URL absolute. Site-relative paths are
// prefixed with the base origin; anything else is already absolute and passes
// through unchanged.
func ResolveImageURL(src, baseURL string) string {
	if strings.HasPrefix(src, "/") {
		return baseURL + src
	}
	return src
}

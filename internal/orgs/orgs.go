// Package orgs resolves user-facing organization short codes against the text
// variants that appear in scraped markup.
//
// Sherdog is inconsistent about how it names a promotion: the same organization
// can show up as "Ultimate Fighting Championship" in one column and "UFC" in an
// event title. The alias table maps a short code to every variant worth
// matching, and matching is case-insensitive substring containment checked
// against both the event name and the organization field.
package orgs

import (
	"strings"

	"github.com/amehta/fight-events/internal/event"
)

// AliasTable maps an organization short code to the text variants that may
// appear in source markup. The table is fixed configuration, built once and
// passed in; it is never mutated at runtime.
type AliasTable map[string][]string

// Default returns the built-in alias table for the promotions Sherdog lists
// under more than one name.
func Default() AliasTable {
	return AliasTable{
		"UFC": {
			"Ultimate Fighting Championship",
			"UFC",
		},
		"PFL": {
			"Professional Fighters League",
			"PFL",
		},
		"ONE": {
			"ONE Championship",
			"ONE",
			"One",
		},
		"Cage Warriors": {
			"Cage Warriors",
			"CW",
		},
		"DWCS": {
			"Dana White's Contender Series",
			"DWCS",
			"Contender Series",
		},
		"Brave CF": {
			"Brave CF",
			"Brave Combat Federation",
			"BFC",
		},
		"Oktagon MMA": {
			"Oktagon MMA",
			"OKTAGON",
			"OKMMA",
		},
	}
}

// Variants returns the known variants for a short code. Unknown codes degrade
// to the code itself as the only variant.
func (t AliasTable) Variants(code string) []string {
	if variants, ok := t[code]; ok {
		return variants
	}
	return []string{code}
}

// Matches reports whether any variant of the short code appears in text,
// compared case-insensitively.
func (t AliasTable) Matches(code, text string) bool {
	textLower := strings.ToLower(text)
	for _, variant := range t.Variants(code) {
		if strings.Contains(textLower, strings.ToLower(variant)) {
			return true
		}
	}
	return false
}

// MatchesEvent reports whether an event belongs to the organization behind the
// short code. Both the event name and the organization field are checked,
// since the markup may carry the organization in only one of the two.
func (t AliasTable) MatchesEvent(code string, evt *event.Event) bool {
	return t.Matches(code, evt.Organization) || t.Matches(code, evt.Name)
}

// Filter returns the events matching the short code, preserving order.
// An empty code matches everything.
func (t AliasTable) Filter(code string, events []*event.Event) []*event.Event {
	if code == "" {
		return events
	}

	filtered := make([]*event.Event, 0)
	for _, evt := range events {
		if t.MatchesEvent(code, evt) {
			filtered = append(filtered, evt)
		}
	}
	return filtered
}

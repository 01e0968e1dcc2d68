// Package search implements the client-side search pipeline of the admin
// console: free-text matching over folded fields, facet filtering, and
// country grouping with locale-aware ordering.
package search

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mesat/flight-routes/internal/models"
	"github.com/mesat/flight-routes/internal/normalize"
)

// UnknownCountry groups entities whose country is not set.
const UnknownCountry = "Unknown Country"

// Mode selects how search words combine.
type Mode int

const (
	// MatchAll requires every word to hit at least one field.
	MatchAll Mode = iota
	// MatchAny passes when any word hits the combined text.
	MatchAny
)

type Engine struct {
	collator *collate.Collator
}

// New builds an engine whose group keys and group members are ordered with
// the collation rules of the given language.
func New(tag language.Tag) *Engine {
	return &Engine{collator: collate.New(tag)}
}

// Default uses Turkish collation, matching the console's audience.
func Default() *Engine {
	return New(language.Turkish)
}

type LocationGroup struct {
	Country   string            `json:"country"`
	Locations []models.Location `json:"locations"`
}

type TransportationGroup struct {
	Country         string                  `json:"country"`
	Transportations []models.Transportation `json:"transportations"`
}

// FilterLocations keeps locations matching every search word in at least one
// of name, country, city, or location code, then groups them by country.
// An empty query passes every location.
func (e *Engine) FilterLocations(locations []models.Location, query string) []LocationGroup {
	words := normalize.Words(query)

	filtered := make([]models.Location, 0, len(locations))
	for _, loc := range locations {
		if matches(words, MatchAll, locationFields(loc)) {
			filtered = append(filtered, loc)
		}
	}

	keys, byCountry := groupByCountry(e.collator, filtered, func(l models.Location) string { return l.Country })
	groups := make([]LocationGroup, 0, len(keys))
	for _, country := range keys {
		members := byCountry[country]
		sort.SliceStable(members, func(i, j int) bool {
			return e.collator.CompareString(members[i].Name, members[j].Name) < 0
		})
		groups = append(groups, LocationGroup{Country: country, Locations: members})
	}
	return groups
}

// FilterTransportations keeps legs where any search word appears in the
// combined origin, destination, and type text, intersected with the selected
// type facets, then groups them by origin country. Empty query and empty
// selection each pass everything.
func (e *Engine) FilterTransportations(legs []models.Transportation, query string, selectedTypes []models.TransportationType) []TransportationGroup {
	words := normalize.Words(query)

	filtered := make([]models.Transportation, 0, len(legs))
	for _, leg := range legs {
		if !matches(words, MatchAny, transportationFields(leg)) {
			continue
		}
		if !typeSelected(leg.TransportationType, selectedTypes) {
			continue
		}
		filtered = append(filtered, leg)
	}

	keys, byCountry := groupByCountry(e.collator, filtered, func(t models.Transportation) string { return t.OriginLocation.Country })
	groups := make([]TransportationGroup, 0, len(keys))
	for _, country := range keys {
		members := byCountry[country]
		sort.SliceStable(members, func(i, j int) bool {
			return e.collator.CompareString(members[i].OriginLocation.Name, members[j].OriginLocation.Name) < 0
		})
		groups = append(groups, TransportationGroup{Country: country, Transportations: members})
	}
	return groups
}

// TransportationTypes extracts the distinct type facets of a collection,
// sorted for stable display. Callers must pass the pre-filter collection so
// deselecting a facet can bring hidden options back.
func TransportationTypes(legs []models.Transportation) []models.TransportationType {
	seen := make(map[models.TransportationType]bool)
	types := make([]models.TransportationType, 0, 4)
	for _, leg := range legs {
		if !seen[leg.TransportationType] {
			seen[leg.TransportationType] = true
			types = append(types, leg.TransportationType)
		}
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

func matches(words []string, mode Mode, fields []string) bool {
	if len(words) == 0 {
		return true
	}

	folded := make([]string, len(fields))
	for i, f := range fields {
		folded[i] = normalize.Fold(f)
	}

	switch mode {
	case MatchAny:
		combined := strings.Join(folded, " ")
		for _, w := range words {
			if strings.Contains(combined, w) {
				return true
			}
		}
		return false
	default:
		for _, w := range words {
			hit := false
			for _, f := range folded {
				if strings.Contains(f, w) {
					hit = true
					break
				}
			}
			if !hit {
				return false
			}
		}
		return true
	}
}

func locationFields(l models.Location) []string {
	return []string{l.Name, l.Country, l.City, l.LocationCode}
}

func transportationFields(t models.Transportation) []string {
	return []string{
		t.OriginLocation.Name,
		t.OriginLocation.City,
		t.OriginLocation.Country,
		t.OriginLocation.LocationCode,
		t.DestinationLocation.Name,
		t.DestinationLocation.City,
		t.DestinationLocation.Country,
		t.DestinationLocation.LocationCode,
		string(t.TransportationType),
	}
}

func typeSelected(t models.TransportationType, selected []models.TransportationType) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == t {
			return true
		}
	}
	return false
}

func groupByCountry[T any](col *collate.Collator, items []T, country func(T) string) ([]string, map[string][]T) {
	byCountry := make(map[string][]T)
	for _, item := range items {
		key := country(item)
		if key == "" {
			key = UnknownCountry
		}
		byCountry[key] = append(byCountry[key], item)
	}

	keys := make([]string, 0, len(byCountry))
	for k := range byCountry {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return col.CompareString(keys[i], keys[j]) < 0
	})
	return keys, byCountry
}

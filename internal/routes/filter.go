package routes

import (
	"sort"

	"github.com/mesat/flight-routes/internal/models"
)

// Facets are the filter options derived from a candidate set. They must be
// extracted from the pre-filter set of the current search, so deselecting a
// value can restore options the active filters hid.
type Facets struct {
	OriginTransportTypes      []models.TransportationType `json:"originTransportTypes"`
	DestinationTransportTypes []models.TransportationType `json:"destinationTransportTypes"`
	OriginAirports            []string                    `json:"originAirports"`
	DestinationAirports       []string                    `json:"destinationAirports"`
}

// ExtractFacets collects the distinct boundary values of a candidate set,
// sorted for stable display.
func ExtractFacets(candidates []models.Route) Facets {
	originTypes := make(map[models.TransportationType]bool)
	destTypes := make(map[models.TransportationType]bool)
	originAirports := make(map[string]bool)
	destAirports := make(map[string]bool)

	for _, c := range candidates {
		originTypes[c.OriginType()] = true
		destTypes[c.DestinationType()] = true
		originAirports[c.OriginAirport()] = true
		destAirports[c.DestinationAirport()] = true
	}

	return Facets{
		OriginTransportTypes:      sortedTypes(originTypes),
		DestinationTransportTypes: sortedTypes(destTypes),
		OriginAirports:            sortedStrings(originAirports),
		DestinationAirports:       sortedStrings(destAirports),
	}
}

// Filter keeps the candidates passing every active filter dimension. Within
// a dimension the selected values combine with OR; an empty dimension is
// inactive and passes everything.
func Filter(candidates []models.Route, filters models.RouteFilters) []models.Route {
	if filters.Empty() {
		return candidates
	}

	kept := make([]models.Route, 0, len(candidates))
	for _, c := range candidates {
		if !typeIn(c.OriginType(), filters.OriginTransportTypes) {
			continue
		}
		if !typeIn(c.DestinationType(), filters.DestinationTransportTypes) {
			continue
		}
		if !codeIn(c.OriginAirport(), filters.OriginAirports) {
			continue
		}
		if !codeIn(c.DestinationAirport(), filters.DestinationAirports) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// SortBySegments orders candidates with direct flights first. Stable, so
// candidates with equal leg counts keep their arrival order.
func SortBySegments(candidates []models.Route) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Segments() < candidates[j].Segments()
	})
}

func typeIn(t models.TransportationType, selected []models.TransportationType) bool {
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

func codeIn(code string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == code {
			return true
		}
	}
	return false
}

func sortedTypes(set map[models.TransportationType]bool) []models.TransportationType {
	out := make([]models.TransportationType, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedStrings(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

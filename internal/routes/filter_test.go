package routes

import (
	"reflect"
	"testing"

	"github.com/mesat/flight-routes/internal/models"
)

// candidateA: bus to the airport, then a flight, no post-leg.
// candidateB: direct flight, then a subway at the destination.
func testCandidates() []models.Route {
	bus := leg(10, taksim, istAir, models.TypeBus, 1)
	subway := leg(11, esbAir, kizilay, models.TypeSubway, 1)

	a := models.Route{
		BeforeFlight: &bus,
		Flight:       leg(12, istAir, esbAir, models.TypeFlight, 1),
	}
	b := models.Route{
		Flight:      leg(13, sawAir, esbAir, models.TypeFlight, 1),
		AfterFlight: &subway,
	}
	return []models.Route{a, b}
}

func TestFilterOriginTransportType(t *testing.T) {
	got := Filter(testCandidates(), models.RouteFilters{
		OriginTransportTypes: []models.TransportationType{models.TypeBus},
	})
	if len(got) != 1 || got[0].BeforeFlight == nil {
		t.Fatalf("got %+v, want only candidate A", got)
	}
}

func TestFilterDestinationTransportType(t *testing.T) {
	got := Filter(testCandidates(), models.RouteFilters{
		DestinationTransportTypes: []models.TransportationType{models.TypeSubway},
	})
	if len(got) != 1 || got[0].AfterFlight == nil {
		t.Fatalf("got %+v, want only candidate B", got)
	}
}

func TestFilterAndAcrossDimensions(t *testing.T) {
	got := Filter(testCandidates(), models.RouteFilters{
		OriginTransportTypes:      []models.TransportationType{models.TypeBus},
		DestinationTransportTypes: []models.TransportationType{models.TypeSubway},
	})
	if len(got) != 0 {
		t.Fatalf("got %+v, want none: no candidate satisfies both dimensions", got)
	}
}

func TestFilterOrWithinDimension(t *testing.T) {
	// Candidate A boards at IST, candidate B at SAW; selecting both
	// airports keeps both.
	got := Filter(testCandidates(), models.RouteFilters{
		OriginAirports: []string{"IST", "SAW"},
	})
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
}

func TestFilterOriginAirportUsesTransferBoundary(t *testing.T) {
	// For candidate A the boarding airport is the pre-leg's destination.
	got := Filter(testCandidates(), models.RouteFilters{
		OriginAirports: []string{"IST"},
	})
	if len(got) != 1 || got[0].BeforeFlight == nil {
		t.Fatalf("got %+v, want only candidate A", got)
	}
}

func TestFilterMainLegStandsInForMissingTransfer(t *testing.T) {
	// Candidate B has no pre-leg; its origin type is the flight itself.
	got := Filter(testCandidates(), models.RouteFilters{
		OriginTransportTypes: []models.TransportationType{models.TypeFlight},
	})
	if len(got) != 1 || got[0].BeforeFlight != nil {
		t.Fatalf("got %+v, want only candidate B", got)
	}
}

func TestFilterEmptyPassesAll(t *testing.T) {
	candidates := testCandidates()
	got := Filter(candidates, models.RouteFilters{})
	if len(got) != len(candidates) {
		t.Fatalf("got %d, want %d", len(got), len(candidates))
	}
}

func TestExtractFacetsStableUnderFiltering(t *testing.T) {
	candidates := testCandidates()
	before := ExtractFacets(candidates)

	// Narrow the view, then re-extract from the pre-filter set: the facet
	// options must not shrink with the selection.
	_ = Filter(candidates, models.RouteFilters{
		OriginTransportTypes: []models.TransportationType{models.TypeBus},
	})
	after := ExtractFacets(candidates)

	if !reflect.DeepEqual(before, after) {
		t.Fatalf("facets changed: %+v vs %+v", before, after)
	}
}

func TestExtractFacetsValues(t *testing.T) {
	facets := ExtractFacets(testCandidates())

	if want := []models.TransportationType{models.TypeBus, models.TypeFlight}; !reflect.DeepEqual(facets.OriginTransportTypes, want) {
		t.Errorf("origin types = %v, want %v", facets.OriginTransportTypes, want)
	}
	if want := []models.TransportationType{models.TypeFlight, models.TypeSubway}; !reflect.DeepEqual(facets.DestinationTransportTypes, want) {
		t.Errorf("destination types = %v, want %v", facets.DestinationTransportTypes, want)
	}
	if want := []string{"IST", "SAW"}; !reflect.DeepEqual(facets.OriginAirports, want) {
		t.Errorf("origin airports = %v, want %v", facets.OriginAirports, want)
	}
	if want := []string{"ESB"}; !reflect.DeepEqual(facets.DestinationAirports, want) {
		t.Errorf("destination airports = %v, want %v", facets.DestinationAirports, want)
	}
}

func TestSortBySegmentsDirectFirst(t *testing.T) {
	bus := leg(10, taksim, istAir, models.TypeBus, 1)
	three := models.Route{BeforeFlight: &bus, Flight: leg(12, istAir, esbAir, models.TypeFlight, 1), AfterFlight: &bus}
	one := models.Route{Flight: leg(13, istAir, esbAir, models.TypeFlight, 1)}
	two := models.Route{BeforeFlight: &bus, Flight: leg(14, istAir, esbAir, models.TypeFlight, 1)}

	candidates := []models.Route{three, one, two}
	SortBySegments(candidates)

	if candidates[0].Segments() != 1 || candidates[1].Segments() != 2 || candidates[2].Segments() != 3 {
		t.Fatalf("order = %d,%d,%d", candidates[0].Segments(), candidates[1].Segments(), candidates[2].Segments())
	}
}

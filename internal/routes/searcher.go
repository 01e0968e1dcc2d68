package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/mesat/flight-routes/internal/cache"
	"github.com/mesat/flight-routes/internal/models"
)

// Backend is the slice of the API client the searcher needs.
type Backend interface {
	SearchRoutes(ctx context.Context, req models.RouteRequest) ([]models.Route, error)
	AlternativeDays(ctx context.Context, req models.RouteRequest) ([]int, error)
	AllTransportations(ctx context.Context) ([]models.Transportation, error)
	AllLocations(ctx context.Context) ([]models.Location, error)
}

// ErrSuperseded is returned when a newer search was issued while this one
// was in flight. In-flight requests are not cancelled; their results are
// discarded instead, so a slow stale response can never overwrite the state
// of a fresher search.
var ErrSuperseded = errors.New("search superseded by a newer request")

// NotFoundError reports a location code the backend does not know.
type NotFoundError struct {
	Code string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("location not found: %s", e.Code)
}

type Searcher struct {
	backend      Backend
	cache        cache.Cache
	composeLocal bool
	token        atomic.Uint64
}

// NewSearcher builds a searcher. With composeLocal set, candidates are
// composed in-process from the full transportation and location sets instead
// of the backend's /routes/search endpoint (for deployments that predate it).
func NewSearcher(b Backend, c cache.Cache, composeLocal bool) *Searcher {
	if c == nil {
		c = cache.NewNoOpCache()
	}
	return &Searcher{backend: b, cache: c, composeLocal: composeLocal}
}

// Result carries the pre-filter candidate set of one search. Facets must be
// derived from this set, not from a filtered view of it.
type Result struct {
	Routes          []models.Route
	Facets          Facets
	CacheHit        bool
	AlternativeDays []int
}

// Search validates the request, resolves candidates (cache, backend, or
// local composition), and orders them direct-flights-first. Every call
// stamps a new request token; if another search starts before this one
// finishes, the stale result is dropped with ErrSuperseded.
func (s *Searcher) Search(ctx context.Context, req models.RouteRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	token := s.token.Add(1)

	candidates, hit := s.cache.Get(ctx, req)
	if !hit {
		var err error
		candidates, err = s.fetch(ctx, req)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, req, candidates); err != nil {
			log.Printf("route cache write failed: %v", err)
		}
	}

	if s.token.Load() != token {
		return nil, ErrSuperseded
	}

	SortBySegments(candidates)

	result := &Result{
		Routes:   candidates,
		Facets:   ExtractFacets(candidates),
		CacheHit: hit,
	}

	if len(candidates) == 0 {
		days, err := s.alternativeDays(ctx, req)
		if err != nil {
			// The fallback is advisory; an empty result stays empty.
			log.Printf("alternative days lookup failed: %v", err)
		} else {
			result.AlternativeDays = days
		}
	}

	return result, nil
}

func (s *Searcher) fetch(ctx context.Context, req models.RouteRequest) ([]models.Route, error) {
	if !s.composeLocal {
		return s.backend.SearchRoutes(ctx, req)
	}

	legs, locations, origin, destination, err := s.loadWorld(ctx, req)
	if err != nil {
		return nil, err
	}
	return Compose(legs, locations, origin, destination, req.Weekday()), nil
}

func (s *Searcher) alternativeDays(ctx context.Context, req models.RouteRequest) ([]int, error) {
	if !s.composeLocal {
		return s.backend.AlternativeDays(ctx, req)
	}

	legs, locations, origin, destination, err := s.loadWorld(ctx, req)
	if err != nil {
		return nil, err
	}
	return AlternativeDays(legs, locations, origin, destination, req.Weekday()), nil
}

func (s *Searcher) loadWorld(ctx context.Context, req models.RouteRequest) ([]models.Transportation, []models.Location, models.Location, models.Location, error) {
	var zero models.Location

	legs, err := s.backend.AllTransportations(ctx)
	if err != nil {
		return nil, nil, zero, zero, err
	}
	locations, err := s.backend.AllLocations(ctx)
	if err != nil {
		return nil, nil, zero, zero, err
	}

	origin, ok := locationByCode(locations, req.OriginLocationCode)
	if !ok {
		return nil, nil, zero, zero, &NotFoundError{Code: req.OriginLocationCode}
	}
	destination, ok := locationByCode(locations, req.DestinationLocationCode)
	if !ok {
		return nil, nil, zero, zero, &NotFoundError{Code: req.DestinationLocationCode}
	}

	return legs, locations, origin, destination, nil
}

func locationByCode(locations []models.Location, code string) (models.Location, bool) {
	for _, loc := range locations {
		if loc.LocationCode == code {
			return loc, true
		}
	}
	return models.Location{}, false
}

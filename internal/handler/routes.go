package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mesat/flight-routes/internal/models"
	"github.com/mesat/flight-routes/internal/routes"
	"github.com/mesat/flight-routes/pkg/weekday"
)

type RouteHandler struct {
	searcher *routes.Searcher
}

func NewRouteHandler(searcher *routes.Searcher) *RouteHandler {
	return &RouteHandler{searcher: searcher}
}

type routeSearchRequest struct {
	models.RouteRequest
	Filters models.RouteFilters `json:"filters"`
}

type routeSearchResponse struct {
	Criteria models.RouteRequest        `json:"criteria"`
	Facets   routes.Facets              `json:"facets"`
	Routes   []models.Route             `json:"routes"`
	Metadata models.RouteSearchMetadata `json:"metadata"`
}

// Search validates the request locally (identical endpoints never reach the
// backend), resolves candidates through the searcher, then applies the
// facet filters. Facets in the response always describe the pre-filter set.
func (h *RouteHandler) Search(c echo.Context) error {
	startTime := time.Now()

	var req routeSearchRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}
	if err := req.RouteRequest.Validate(); err != nil {
		return errorJSON(c, err)
	}

	result, err := h.searcher.Search(c.Request().Context(), req.RouteRequest)
	if err != nil {
		return errorJSON(c, err)
	}

	filtered := routes.Filter(result.Routes, req.Filters)

	return c.JSON(http.StatusOK, routeSearchResponse{
		Criteria: req.RouteRequest,
		Facets:   result.Facets,
		Routes:   filtered,
		Metadata: models.RouteSearchMetadata{
			TotalResults:         len(filtered),
			SearchTimeMs:         time.Since(startTime).Milliseconds(),
			CacheHit:             result.CacheHit,
			AlternativeDays:      result.AlternativeDays,
			AlternativeDaysLabel: weekday.Format(result.AlternativeDays),
		},
	})
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mesat/flight-routes/internal/backend"
	"github.com/mesat/flight-routes/internal/models"
	"github.com/mesat/flight-routes/internal/search"
)

type LocationHandler struct {
	client *backend.Client
	engine *search.Engine
}

func NewLocationHandler(client *backend.Client, engine *search.Engine) *LocationHandler {
	return &LocationHandler{client: client, engine: engine}
}

// List proxies the backend's paginated listing for the table view.
func (h *LocationHandler) List(c echo.Context) error {
	page, size := pagination(c)

	result, err := h.client.Locations(c.Request().Context(), page, size)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

type locationSearchResponse struct {
	Query        string                 `json:"query"`
	TotalResults int                    `json:"total_results"`
	Groups       []search.LocationGroup `json:"groups"`
}

// Search fetches the full location set and runs the client-side engine over
// it: every search word must match at least one field, results grouped by
// country.
func (h *LocationHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")

	locations, err := h.client.AllLocations(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}

	groups := h.engine.FilterLocations(locations, query)
	total := 0
	for _, g := range groups {
		total += len(g.Locations)
	}

	return c.JSON(http.StatusOK, locationSearchResponse{
		Query:        query,
		TotalResults: total,
		Groups:       groups,
	})
}

func (h *LocationHandler) Create(c echo.Context) error {
	var req models.LocationRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}
	if err := req.Validate(); err != nil {
		return errorJSON(c, err)
	}

	created, err := h.client.CreateLocation(c.Request().Context(), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update forwards the mutable fields only. The location code and airport
// flag are fixed at creation, so the stored values are merged in and a
// request trying to change the code is rejected before reaching the backend.
func (h *LocationHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	var req models.LocationUpdateRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}
	if err := req.Validate(); err != nil {
		return errorJSON(c, err)
	}

	current, err := h.client.Location(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	if req.LocationCode != "" && req.LocationCode != current.LocationCode {
		return errorJSON(c, models.ErrImmutableLocationCode)
	}

	updated, err := h.client.UpdateLocation(c.Request().Context(), id, models.LocationRequest{
		Name:         req.Name,
		Country:      req.Country,
		City:         req.City,
		LocationCode: current.LocationCode,
		IsAirport:    current.IsAirport,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *LocationHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errorJSON(c, err)
	}
	if err := h.client.DeleteLocation(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

const errInvalidID models.ValidationError = "id must be a positive integer"

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func pagination(c echo.Context) (page, size int) {
	page = 0
	size = 10
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p >= 0 {
		page = p
	}
	if s, err := strconv.Atoi(c.QueryParam("size")); err == nil && s > 0 && s <= 200 {
		size = s
	}
	return page, size
}

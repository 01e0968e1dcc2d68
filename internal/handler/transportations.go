package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mesat/flight-routes/internal/backend"
	"github.com/mesat/flight-routes/internal/models"
	"github.com/mesat/flight-routes/internal/search"
)

type TransportationHandler struct {
	client *backend.Client
	engine *search.Engine
}

func NewTransportationHandler(client *backend.Client, engine *search.Engine) *TransportationHandler {
	return &TransportationHandler{client: client, engine: engine}
}

func (h *TransportationHandler) List(c echo.Context) error {
	page, size := pagination(c)

	result, err := h.client.Transportations(c.Request().Context(), page, size)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

type transportationSearchResponse struct {
	Query          string                       `json:"query"`
	SelectedTypes  []models.TransportationType  `json:"selectedTypes"`
	AvailableTypes []models.TransportationType  `json:"availableTypes"`
	TotalResults   int                          `json:"total_results"`
	Groups         []search.TransportationGroup `json:"groups"`
}

// Search runs the client-side engine over the unpaginated collection: any
// search word may match either endpoint or the type, and the type facets are
// derived from the full set so deselecting one restores hidden options.
func (h *TransportationHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	selected := selectedTypes(c)

	legs, err := h.client.AllTransportations(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}

	available := search.TransportationTypes(legs)
	groups := h.engine.FilterTransportations(legs, query, selected)
	total := 0
	for _, g := range groups {
		total += len(g.Transportations)
	}

	return c.JSON(http.StatusOK, transportationSearchResponse{
		Query:          query,
		SelectedTypes:  selected,
		AvailableTypes: available,
		TotalResults:   total,
		Groups:         groups,
	})
}

func (h *TransportationHandler) Types(c echo.Context) error {
	types, err := h.client.TransportationTypes(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, types)
}

func (h *TransportationHandler) Create(c echo.Context) error {
	var req models.TransportationRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}
	if err := req.Validate(); err != nil {
		return errorJSON(c, err)
	}

	created, err := h.client.CreateTransportation(c.Request().Context(), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *TransportationHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	var req models.TransportationRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}
	if err := req.Validate(); err != nil {
		return errorJSON(c, err)
	}

	updated, err := h.client.UpdateTransportation(c.Request().Context(), id, req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *TransportationHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errorJSON(c, err)
	}
	if err := h.client.DeleteTransportation(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func selectedTypes(c echo.Context) []models.TransportationType {
	values := c.QueryParams()["types"]
	types := make([]models.TransportationType, 0, len(values))
	for _, v := range values {
		t := models.TransportationType(v)
		if t.Valid() {
			types = append(types, t)
		}
	}
	return types
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mesat/flight-routes/internal/backend"
	"github.com/mesat/flight-routes/internal/models"
	"github.com/mesat/flight-routes/internal/routes"
)

// errorJSON maps the error taxonomy onto HTTP responses: validation to 400,
// rejected credentials to 401, backend application errors pass their status
// through, transport failures to 502.
func errorJSON(c echo.Context, err error) error {
	var validationErr models.ValidationError
	if errors.As(err, &validationErr) {
		return respondError(c, http.StatusBadRequest, "validation_error", validationErr.Error())
	}

	if errors.Is(err, backend.ErrUnauthorized) {
		return respondError(c, http.StatusUnauthorized, "authentication_error", "Authentication failed. Please login again.")
	}

	if errors.Is(err, routes.ErrSuperseded) {
		return respondError(c, http.StatusConflict, "superseded", "A newer search was issued; this result was discarded.")
	}

	var notFound *routes.NotFoundError
	if errors.As(err, &notFound) {
		return respondError(c, http.StatusNotFound, "not_found", notFound.Error())
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return respondError(c, apiErr.StatusCode, "backend_error", apiErr.Message)
	}

	var reqErr *backend.RequestError
	if errors.As(err, &reqErr) {
		return respondError(c, http.StatusBadGateway, "network_error", "Unable to reach the backend API: "+reqErr.Err.Error())
	}

	return respondError(c, http.StatusInternalServerError, "internal_error", err.Error())
}

func respondError(c echo.Context, code int, kind, message string) error {
	return c.JSON(code, models.ErrorResponse{
		Error:   kind,
		Message: message,
		Code:    code,
	})
}

func bindError(c echo.Context, err error) error {
	return respondError(c, http.StatusBadRequest, "invalid_request", "Failed to parse request body: "+err.Error())
}

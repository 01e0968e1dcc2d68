package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mesat/flight-routes/internal/backend"
	"github.com/mesat/flight-routes/internal/models"
	"github.com/mesat/flight-routes/internal/session"
)

type AuthHandler struct {
	client  *backend.Client
	session *session.Session
}

func NewAuthHandler(client *backend.Client, sess *session.Session) *AuthHandler {
	return &AuthHandler{client: client, session: sess}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

const (
	errMissingUsername models.ValidationError = "username is required"
	errMissingPassword models.ValidationError = "password is required"
)

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}
	if req.Username == "" {
		return errorJSON(c, errMissingUsername)
	}
	if req.Password == "" {
		return errorJSON(c, errMissingPassword)
	}

	result, err := h.client.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"token":    result.Token,
		"userType": result.UserType,
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	h.client.Logout()
	return c.JSON(http.StatusOK, map[string]string{"status": "logged_out"})
}

func (h *AuthHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"state":    h.session.State().String(),
		"role":     h.session.Role(),
		"loggedIn": h.session.LoggedIn(),
	})
}

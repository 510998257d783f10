// Package handler contains the HTTP handlers for the API server.
package handler

import (
	"net/http"

	"easy/internal/delivery/http/middleware"
	"easy/internal/delivery/http/response"
	"easy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for authentication handlers.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	profileUC usecase.ProfileUsecase
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(sessionUC usecase.SessionUsecase, profileUC usecase.ProfileUsecase) *SessionHandler {
	return &SessionHandler{
		sessionUC: sessionUC,
		profileUC: profileUC,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type sessionResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Profile      any    `json:"profile"`
	Screen       string `json:"screen"`
}

// Login handles the sign-in request.
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.sessionUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessionResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		Profile:      output.Profile,
		Screen:       string(output.Screen),
	}, "Login successful")
}

// Refresh handles the token rotation request.
func (h *SessionHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.sessionUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessionResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		Profile:      output.Profile,
		Screen:       string(output.Screen),
	}, "Token refreshed successfully")
}

// Logout revokes the presented refresh token.
func (h *SessionHandler) Logout(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}

	if err := h.sessionUC.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// GetSession returns the caller's profile and the screen their role routes to.
func (h *SessionHandler) GetSession(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	output, err := h.profileUC.GetMyProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"profile": output.Profile,
		"screen":  string(output.Screen),
	}, "")
}

// HealthCheck is a simple handler to confirm the server is running.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

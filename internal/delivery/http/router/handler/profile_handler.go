package handler

import (
	"net/http"

	"easy/internal/delivery/http/middleware"
	"easy/internal/delivery/http/response"
	"easy/internal/domain/entity"
	"easy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile directory handlers.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(profileUC usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUC: profileUC}
}

// ListProfilesByRole returns all active profiles with the given role.
func (h *ProfileHandler) ListProfilesByRole(c echo.Context) error {
	role := entity.Role(c.QueryParam("role"))
	if role == "" {
		role = entity.RoleResident
	}

	profiles, err := h.profileUC.ListProfilesByRole(c.Request().Context(), role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profiles, "")
}

// RemoveProfile soft-deletes a profile.
func (h *ProfileHandler) RemoveProfile(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid profile ID")
	}

	if err := h.profileUC.RemoveProfile(c.Request().Context(), userID, profileID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Profile removed"}, "")
}

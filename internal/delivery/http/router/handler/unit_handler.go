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

// UnitHandler holds dependencies for unit directory handlers.
type UnitHandler struct {
	unitUC usecase.UnitUsecase
}

// NewUnitHandler is the constructor for UnitHandler, injected by Fx.
func NewUnitHandler(unitUC usecase.UnitUsecase) *UnitHandler {
	return &UnitHandler{unitUC: unitUC}
}

type createUnitRequest struct {
	Block  string `json:"block"`
	Floor  int    `json:"floor"`
	Number int    `json:"number" validate:"required,gt=0"`
}

type addResidentRequest struct {
	ProfileID string `json:"profile_id" validate:"required,uuid"`
	Type      string `json:"type" validate:"required"`
}

// CreateUnit registers a unit in the directory.
func (h *UnitHandler) CreateUnit(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	var req createUnitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unit input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	unit, err := h.unitUC.CreateUnit(c.Request().Context(), userID, &usecase.CreateUnitInput{
		Block:  req.Block,
		Floor:  req.Floor,
		Number: req.Number,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, unit, "Unit created successfully")
}

// ListUnits returns all units ordered by block and number.
func (h *UnitHandler) ListUnits(c echo.Context) error {
	units, err := h.unitUC.ListUnits(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, units, "")
}

// GetUnit returns a single unit.
func (h *UnitHandler) GetUnit(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid unit ID")
	}

	unit, err := h.unitUC.GetUnit(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, unit, "")
}

// AddResident links a profile to a unit as an active occupancy.
func (h *UnitHandler) AddResident(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid unit ID")
	}

	var req addResidentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resident input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profileID, err := uuid.Parse(req.ProfileID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid profile ID")
	}

	link, err := h.unitUC.AddResident(c.Request().Context(), userID, &usecase.AddResidentInput{
		UnitID:    unitID,
		ProfileID: profileID,
		Type:      entity.OccupancyType(req.Type),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, link, "Resident added successfully")
}

// RemoveResident deactivates an occupancy link.
func (h *UnitHandler) RemoveResident(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid unit ID")
	}

	profileID, err := uuid.Parse(c.Param("profileID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid profile ID")
	}

	if err := h.unitUC.RemoveResident(c.Request().Context(), userID, unitID, profileID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Resident removed"}, "")
}

// ListUnitResidents returns the active residents of a unit.
func (h *UnitHandler) ListUnitResidents(c echo.Context) error {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid unit ID")
	}

	residents, err := h.unitUC.ListUnitResidents(c.Request().Context(), unitID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, residents, "")
}

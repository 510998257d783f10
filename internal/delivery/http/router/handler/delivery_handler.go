package handler

import (
	"net/http"
	"strconv"

	"easy/internal/delivery/http/middleware"
	"easy/internal/delivery/http/response"
	"easy/internal/domain/entity"
	"easy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// DeliveryHandler holds dependencies for delivery lifecycle handlers.
type DeliveryHandler struct {
	deliveryUC usecase.DeliveryUsecase
}

// NewDeliveryHandler is the constructor for DeliveryHandler, injected by Fx.
func NewDeliveryHandler(deliveryUC usecase.DeliveryUsecase) *DeliveryHandler {
	return &DeliveryHandler{deliveryUC: deliveryUC}
}

type registerDeliveryRequest struct {
	UnitID   string `json:"unit_id" validate:"required,uuid"`
	PhotoURL string `json:"photo_url"`
	Obs      string `json:"obs"`
}

type registerPickupRequest struct {
	PickedUpByName string `json:"picked_up_by_name"`
	PickupPhotoURL string `json:"pickup_photo_url"`
}

// RegisterDelivery handles the front-desk parcel registration request.
func (h *DeliveryHandler) RegisterDelivery(c echo.Context) error {
	var req registerDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	unitID, err := uuid.Parse(req.UnitID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid unit ID")
	}

	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	delivery, err := h.deliveryUC.RegisterDelivery(c.Request().Context(), &usecase.RegisterDeliveryInput{
		UnitID:          unitID,
		CreatedByUserID: userID,
		PhotoURL:        req.PhotoURL,
		Obs:             req.Obs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, delivery, "Delivery registered successfully")
}

// GetDelivery returns a single delivery.
func (h *DeliveryHandler) GetDelivery(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid delivery ID")
	}

	delivery, err := h.deliveryUC.GetDelivery(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, delivery, "")
}

// SearchDeliveries handles the front-desk search over deliveries.
func (h *DeliveryHandler) SearchDeliveries(c echo.Context) error {
	input := &usecase.SearchDeliveriesInput{
		Status: entity.DeliveryStatus(c.QueryParam("status")),
	}

	if rawUnitID := c.QueryParam("unit_id"); rawUnitID != "" {
		unitID, err := uuid.Parse(rawUnitID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid unit ID")
		}
		input.UnitID = &unitID
	}

	input.Limit, input.Offset = parsePagination(c)

	deliveries, err := h.deliveryUC.SearchDeliveries(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deliveries, "")
}

// ListUnitDeliveries returns a unit's deliveries, newest first. The usecase
// rejects residents who do not occupy the unit.
func (h *DeliveryHandler) ListUnitDeliveries(c echo.Context) error {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid unit ID")
	}

	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}
	roleStrings, _ := c.Get(middleware.ContextKeyRoles).([]string)

	limit, offset := parsePagination(c)

	deliveries, err := h.deliveryUC.ListUnitDeliveries(c.Request().Context(), &usecase.ListUnitDeliveriesInput{
		UnitID:       unitID,
		CallerUserID: userID,
		CallerRoles:  entity.RolesFromStrings(roleStrings),
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deliveries, "")
}

// RegisterPickup hands a parcel over and records who took it.
func (h *DeliveryHandler) RegisterPickup(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid delivery ID")
	}

	var req registerPickupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pickup input")
	}

	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	delivery, err := h.deliveryUC.RegisterPickup(c.Request().Context(), &usecase.RegisterPickupInput{
		DeliveryID:       id,
		RecordedByUserID: userID,
		PickedUpByName:   req.PickedUpByName,
		PickupPhotoURL:   req.PickupPhotoURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, delivery, "Pickup registered successfully")
}

// parsePagination reads limit/offset query params with sane bounds.
func parsePagination(c echo.Context) (limit, offset int) {
	limit = defaultPageSize
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = min(parsed, maxPageSize)
		}
	}

	if raw := c.QueryParam("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	return limit, offset
}

package handler

import (
	"log/slog"
	"net/http"

	"easy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HookHandler handles the synchronous edge hooks exposed by the notifier.
type HookHandler struct {
	logger   *slog.Logger
	fanoutUC usecase.FanoutUsecase
	inviteUC usecase.InviteUsecase
}

// HookHandlerParams holds dependencies for the HookHandler
type HookHandlerParams struct {
	fx.In

	Logger   *slog.Logger
	FanoutUC usecase.FanoutUsecase
	InviteUC usecase.InviteUsecase
}

// NewHookHandler creates the hook handler for the notifier server.
func NewHookHandler(params HookHandlerParams) *HookHandler {
	return &HookHandler{
		logger:   params.Logger,
		fanoutUC: params.FanoutUC,
		inviteUC: params.InviteUC,
	}
}

type deliveryNotificationRequest struct {
	DeliveryID string `json:"delivery_id"`
	UnitID     string `json:"unit_id"`
	UnitLabel  string `json:"unit_label"`
	Obs        string `json:"obs"`
}

type inviteEmailRequest struct {
	InviteID string `json:"invite_id"`
}

// HandleDeliveryNotification runs the fan-out synchronously for one delivery.
// The wire shape is fixed: 200 with success/residents_notified/push_sent, or
// 500 with a bare error field.
func (h *HookHandler) HandleDeliveryNotification(c echo.Context) error {
	var req deliveryNotificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	deliveryID, err := uuid.Parse(req.DeliveryID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid delivery_id"})
	}
	unitID, err := uuid.Parse(req.UnitID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid unit_id"})
	}

	output, err := h.fanoutUC.NotifyDelivery(c.Request().Context(), &usecase.DeliveryNotificationInput{
		DeliveryID: deliveryID,
		UnitID:     unitID,
		UnitLabel:  req.UnitLabel,
		Obs:        req.Obs,
	})
	if err != nil {
		h.logger.Error("[Worker] Delivery notification hook failed",
			slog.String("delivery_id", req.DeliveryID),
			slog.Any("error", err),
		)

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":            true,
		"residents_notified": output.ResidentsNotified,
		"push_sent":          output.PushSent,
	})
}

// HandleInviteEmail delivers the invite email for an already minted token.
func (h *HookHandler) HandleInviteEmail(c echo.Context) error {
	var req inviteEmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	inviteID, err := uuid.Parse(req.InviteID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid invite_id"})
	}

	if err := h.inviteUC.SendInviteEmail(c.Request().Context(), inviteID); err != nil {
		h.logger.Error("[Worker] Invite email hook failed",
			slog.String("invite_id", req.InviteID),
			slog.Any("error", err),
		)

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

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

// InviteHandler holds dependencies for onboarding invite handlers.
type InviteHandler struct {
	inviteUC usecase.InviteUsecase
}

// NewInviteHandler is the constructor for InviteHandler, injected by Fx.
func NewInviteHandler(inviteUC usecase.InviteUsecase) *InviteHandler {
	return &InviteHandler{inviteUC: inviteUC}
}

type createInviteRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"required"`
	UnitID string `json:"unit_id"`
}

type acceptInviteRequest struct {
	Token    string `json:"token" validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=8"`
}

// CreateInvite mints a one-time invite token for an email address.
func (h *InviteHandler) CreateInvite(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	var req createInviteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invite input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.CreateInviteInput{
		Email: req.Email,
		Role:  entity.Role(req.Role),
	}

	if req.UnitID != "" {
		unitID, err := uuid.Parse(req.UnitID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid unit ID")
		}
		input.UnitID = &unitID
	}

	invite, err := h.inviteUC.CreateInvite(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, invite, "Invite created successfully")
}

// GetInviteQR renders the invite's accept URL as a PNG QR code.
func (h *InviteHandler) GetInviteQR(c echo.Context) error {
	inviteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid invite ID")
	}

	png, err := h.inviteUC.GetInviteQR(c.Request().Context(), inviteID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ValidateInvite checks a token without redeeming it, so the accept page can
// show the invite before the form.
func (h *InviteHandler) ValidateInvite(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing invite token")
	}

	invite, err := h.inviteUC.ValidateInvite(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"email":      invite.Email,
		"role":       invite.Role,
		"unit_id":    invite.UnitID,
		"expires_at": invite.ExpiresAt,
	}, "")
}

// AcceptInvite redeems a token into a full account and opens a session.
func (h *InviteHandler) AcceptInvite(c echo.Context) error {
	var req acceptInviteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid accept input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.inviteUC.AcceptInvite(c.Request().Context(), &usecase.AcceptInviteInput{
		Token:    req.Token,
		FullName: req.FullName,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"profile":       output.Profile,
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"screen":        string(output.Screen),
	}, "Invite accepted successfully")
}

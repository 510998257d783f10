// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"easy/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateInviteInput defines the data required to invite a new resident or staff member.
type CreateInviteInput struct {
	Email  string
	Role   entity.Role
	UnitID *uuid.UUID // Required for resident invites, absent for staff.
}

// AcceptInviteInput redeems an invite token into a full account.
type AcceptInviteInput struct {
	Token    string
	FullName string
	Phone    string
	Password string
}

// AcceptInviteOutput returns the session established for the new account.
type AcceptInviteOutput struct {
	Profile      *entity.Profile
	AccessToken  string
	RefreshToken string
	Screen       entity.Screen
}

// InviteUsecase defines the interface for the onboarding invite flow.
type InviteUsecase interface {
	// CreateInvite mints a one-time token and requests the invite email.
	// Email dispatch is asynchronous; a mail failure does not undo the token.
	CreateInvite(ctx context.Context, actorUserID uuid.UUID, input *CreateInviteInput) (*entity.InviteToken, error)

	// GetInviteQR renders the invite's accept URL as a PNG QR code.
	GetInviteQR(ctx context.Context, inviteID uuid.UUID) ([]byte, error)

	// ValidateInvite checks a token without redeeming it, so the accept page
	// can show the invite's email and expiry state before the form.
	ValidateInvite(ctx context.Context, token string) (*entity.InviteToken, error)

	// AcceptInvite redeems a token: credential, profile, optional unit link
	// and the token's used flag are committed in one transaction, then a
	// session is issued. A used or expired token redeems nothing.
	AcceptInvite(ctx context.Context, input *AcceptInviteInput) (*AcceptInviteOutput, error)

	// SendInviteEmail delivers the invite email for an already minted token.
	// The notifier worker calls this from its invite hook.
	SendInviteEmail(ctx context.Context, inviteID uuid.UUID) error
}

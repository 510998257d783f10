package impl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"net/mail"
	"time"

	"easy/config"
	deliverycontext "easy/internal/delivery/context"
	"easy/internal/domain/entity"
	domainerrors "easy/internal/domain/errors"
	"easy/internal/domain/repository"
	"easy/internal/domain/service"
	"easy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	inviteTokenBytes = 32
	defaultInviteTTL = 7 * 24 * time.Hour
)

// inviteService implements the InviteUsecase interface.
type inviteService struct {
	inviteRepo repository.InviteRepository
	unitRepo   repository.UnitRepository
	auditRepo  repository.AuditRepository
	txManager  repository.TransactionManager
	hasher     service.PasswordHasher
	tokens     service.TokenService
	mailer     service.Mailer
	qrcode     service.QRCodeService
	acceptURL  string
	ttl        time.Duration
	logger     *slog.Logger
}

// InviteServiceParams holds dependencies for InviteService, injected by Fx.
type InviteServiceParams struct {
	fx.In

	Config     *config.Config
	InviteRepo repository.InviteRepository
	UnitRepo   repository.UnitRepository
	AuditRepo  repository.AuditRepository
	TxManager  repository.TransactionManager
	Hasher     service.PasswordHasher
	Tokens     service.TokenService
	Mailer     service.Mailer
	QRCode     service.QRCodeService
	Logger     *slog.Logger
}

// NewInviteService is the constructor for inviteService.
func NewInviteService(params InviteServiceParams) (usecase.InviteUsecase, error) {
	if params.Config.Invite == nil || params.Config.Invite.AcceptURL == "" {
		return nil, errors.New("invite accept URL is not configured")
	}

	ttl := params.Config.Invite.TTL
	if ttl <= 0 {
		ttl = defaultInviteTTL
	}

	return &inviteService{
		inviteRepo: params.InviteRepo,
		unitRepo:   params.UnitRepo,
		auditRepo:  params.AuditRepo,
		txManager:  params.TxManager,
		hasher:     params.Hasher,
		tokens:     params.Tokens,
		mailer:     params.Mailer,
		qrcode:     params.QRCode,
		acceptURL:  params.Config.Invite.AcceptURL,
		ttl:        ttl,
		logger:     params.Logger,
	}, nil
}

func (srv *inviteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// acceptLink builds the URL the invitee opens to redeem the token.
func (srv *inviteService) acceptLink(token string) string {
	return srv.acceptURL + "?token=" + token
}

// generateToken mints an opaque, URL-safe one-time token.
func generateToken() (string, error) {
	buf := make([]byte, inviteTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate invite token")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// CreateInvite mints a one-time token for an email address.
func (srv *inviteService) CreateInvite(ctx context.Context, actorUserID uuid.UUID, input *usecase.CreateInviteInput) (*entity.InviteToken, error) {
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid email address")
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}

	// Resident invites carry the unit the invitee will occupy; the link is
	// created when the invite is accepted, not now.
	if input.Role == entity.RoleResident {
		if input.UnitID == nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("resident invites require a unit")
		}
		if _, err := srv.unitRepo.FindUnitByID(ctx, *input.UnitID); err != nil {
			if errors.Is(err, repository.ErrUnitNotFound) {
				return nil, domainerrors.ErrUnitNotFound
			}

			return nil, err
		}
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	invite := &entity.InviteToken{
		Email:     input.Email,
		Token:     token,
		Role:      input.Role,
		UnitID:    input.UnitID,
		ExpiresAt: time.Now().Add(srv.ttl),
	}

	if err := srv.inviteRepo.CreateInvite(ctx, invite); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Invite created",
		slog.String("invite_id", invite.ID.String()),
		slog.String("role", invite.Role.String()),
	)

	entry := &entity.AuditLog{
		ActorUserID: &actorUserID,
		TableName:   "invite_tokens",
		RecordID:    &invite.ID,
		Action:      "insert",
		Payload: map[string]string{
			"email": invite.Email,
			"role":  invite.Role.String(),
		},
	}
	if err := srv.auditRepo.CreateAuditLog(ctx, entry); err != nil {
		srv.log(ctx).Warn("Failed to record audit entry", slog.Any("error", err))
	}

	return invite, nil
}

// GetInviteQR renders the invite's accept URL as a PNG QR code.
func (srv *inviteService) GetInviteQR(ctx context.Context, inviteID uuid.UUID) ([]byte, error) {
	invite, err := srv.inviteRepo.FindInviteByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, repository.ErrInviteNotFound) {
			return nil, domainerrors.ErrInviteNotFound
		}

		return nil, err
	}

	return srv.qrcode.GenerateQRCode(srv.acceptLink(invite.Token))
}

// ValidateInvite checks a token without redeeming it.
func (srv *inviteService) ValidateInvite(ctx context.Context, token string) (*entity.InviteToken, error) {
	invite, err := srv.inviteRepo.FindInviteByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrInviteNotFound) {
			return nil, domainerrors.ErrInviteNotFound
		}

		return nil, err
	}

	if invite.Used {
		return nil, domainerrors.ErrInviteAlreadyUsed
	}
	if invite.IsExpired(time.Now()) {
		return nil, domainerrors.ErrInviteExpired
	}

	return invite, nil
}

// AcceptInvite redeems a token into a credential, profile and session.
func (srv *inviteService) AcceptInvite(ctx context.Context, input *usecase.AcceptInviteInput) (*usecase.AcceptInviteOutput, error) {
	if input.FullName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("full name is required")
	}
	if len(input.Password) < 8 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("password must be at least 8 characters")
	}

	invite, err := srv.ValidateInvite(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	credential := &entity.Credential{
		UserID:       uuid.New(),
		Email:        invite.Email,
		PasswordHash: passwordHash,
	}

	profile := &entity.Profile{
		UserID:   credential.UserID,
		FullName: input.FullName,
		Phone:    input.Phone,
		Role:     invite.Role,
	}

	// Credential, profile, unit link and the token's used flag either all
	// commit or none do. Losing the race on used=false aborts everything.
	err = srv.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		if err := txRepo.InviteRepo().MarkInviteUsed(ctx, invite.ID); err != nil {
			return err
		}

		if err := txRepo.AuthRepo().CreateCredential(ctx, credential); err != nil {
			return err
		}

		if err := txRepo.ProfileRepo().CreateProfile(ctx, profile); err != nil {
			return err
		}

		if invite.UnitID != nil {
			link := &entity.UnitProfile{
				UnitID:    *invite.UnitID,
				ProfileID: profile.ID,
				Type:      entity.OccupancyTenant,
				Active:    true,
			}

			return txRepo.UnitRepo().CreateUnitProfile(ctx, link)
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInviteAlreadyUsed):
			return nil, domainerrors.ErrInviteAlreadyUsed
		case errors.Is(err, repository.ErrEmailAlreadyRegistered):
			return nil, domainerrors.ErrEmailAlreadyRegistered
		default:
			return nil, err
		}
	}

	srv.log(ctx).Info("Invite accepted",
		slog.String("invite_id", invite.ID.String()),
		slog.String("profile_id", profile.ID.String()),
	)

	accessToken, refreshToken, err := srv.issueSession(ctx, credential.UserID, profile.Role)
	if err != nil {
		return nil, err
	}

	return &usecase.AcceptInviteOutput{
		Profile:      profile,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Screen:       entity.ScreenForRole(profile.Role),
	}, nil
}

// issueSession generates a token pair and stores the refresh half.
func (srv *inviteService) issueSession(ctx context.Context, userID uuid.UUID, role entity.Role) (string, string, error) {
	accessToken, refreshToken, err := srv.tokens.GenerateTokens(userID, []string{role.String()})
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate tokens")
	}

	stored := &entity.RefreshToken{
		UserID:    userID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(srv.tokens.GetRefreshTokenDuration()),
	}

	err = srv.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		return txRepo.RefreshTokenRepo().SaveRefreshToken(ctx, stored)
	})
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// SendInviteEmail delivers the invite email for an already minted token.
func (srv *inviteService) SendInviteEmail(ctx context.Context, inviteID uuid.UUID) error {
	invite, err := srv.inviteRepo.FindInviteByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, repository.ErrInviteNotFound) {
			return domainerrors.ErrInviteNotFound
		}

		return err
	}

	if invite.Used {
		return domainerrors.ErrInviteAlreadyUsed
	}

	email := &service.InviteEmail{
		To:    invite.Email,
		Token: invite.Token,
	}

	if invite.UnitID != nil {
		unit, err := srv.unitRepo.FindUnitByID(ctx, *invite.UnitID)
		if err == nil {
			email.UnitLabel = unit.Label
		}
	}

	if err := srv.mailer.SendInviteEmail(ctx, email); err != nil {
		srv.log(ctx).Error("Failed to send invite email",
			slog.String("invite_id", inviteID.String()),
			slog.Any("error", err),
		)

		return domainerrors.ErrInviteEmailFailed
	}

	srv.log(ctx).Info("Invite email sent", slog.String("invite_id", inviteID.String()))

	return nil
}

package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "easy/internal/delivery/context"
	"easy/internal/domain/entity"
	domainerrors "easy/internal/domain/errors"
	"easy/internal/domain/repository"
	"easy/internal/domain/service"
	"easy/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	authRepo         repository.AuthRepository
	refreshTokenRepo repository.RefreshTokenRepository
	profileRepo      repository.ProfileRepository
	txManager        repository.TransactionManager
	hasher           service.PasswordHasher
	tokens           service.TokenService
	logger           *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	ProfileRepo      repository.ProfileRepository
	TxManager        repository.TransactionManager
	Hasher           service.PasswordHasher
	Tokens           service.TokenService
	Logger           *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		authRepo:         params.AuthRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		profileRepo:      params.ProfileRepo,
		txManager:        params.TxManager,
		hasher:           params.Hasher,
		tokens:           params.Tokens,
		logger:           params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials and issues an access/refresh token pair.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	credential, err := srv.authRepo.FindCredentialByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			// Same response as a wrong password so the endpoint does not
			// leak which emails exist.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, err
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	profile, err := srv.profileRepo.FindProfileByUserID(ctx, credential.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			// A soft-deleted profile cannot sign in even with a valid password.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, err
	}

	output, err := srv.issueSession(ctx, profile)
	if err != nil {
		return nil, err
	}

	if err := srv.profileRepo.UpdateLastLogin(ctx, credential.UserID); err != nil {
		srv.log(ctx).Warn("Failed to stamp last login", slog.Any("error", err))
	}

	srv.log(ctx).Info("User signed in", slog.String("user_id", credential.UserID.String()))

	return output, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued in its place.
func (srv *sessionService) Refresh(ctx context.Context, refreshToken string) (*usecase.SessionOutput, error) {
	claims, err := srv.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	// The token must also exist server-side: a signed token that was
	// revoked or already rotated is rejected.
	stored, err := srv.refreshTokenRepo.FindRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, err
	}

	profile, err := srv.profileRepo.FindProfileByUserID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, err
	}

	accessToken, newRefreshToken, err := srv.tokens.GenerateTokens(profile.UserID, []string{profile.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	newStored := &entity.RefreshToken{
		UserID:    profile.UserID,
		Token:     newRefreshToken,
		ExpiresAt: time.Now().Add(srv.tokens.GetRefreshTokenDuration()),
	}

	err = srv.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		if err := txRepo.RefreshTokenRepo().DeleteRefreshToken(ctx, stored.Token); err != nil {
			return err
		}

		return txRepo.RefreshTokenRepo().SaveRefreshToken(ctx, newStored)
	})
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			// A concurrent refresh rotated the token first.
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, err
	}

	return &usecase.SessionOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		Profile:      profile,
		Screen:       entity.ScreenForRole(profile.Role),
	}, nil
}

// Logout revokes the presented refresh token. Revoking a token that is
// already gone is not an error.
func (srv *sessionService) Logout(ctx context.Context, refreshToken string) error {
	err := srv.refreshTokenRepo.DeleteRefreshToken(ctx, refreshToken)
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return err
	}

	return nil
}

// issueSession generates a token pair for the profile and stores the refresh half.
func (srv *sessionService) issueSession(ctx context.Context, profile *entity.Profile) (*usecase.SessionOutput, error) {
	accessToken, refreshToken, err := srv.tokens.GenerateTokens(profile.UserID, []string{profile.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	stored := &entity.RefreshToken{
		UserID:    profile.UserID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(srv.tokens.GetRefreshTokenDuration()),
	}

	if err := srv.refreshTokenRepo.SaveRefreshToken(ctx, stored); err != nil {
		return nil, err
	}

	return &usecase.SessionOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile:      profile,
		Screen:       entity.ScreenForRole(profile.Role),
	}, nil
}

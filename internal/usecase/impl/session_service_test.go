package impl

import (
	"context"
	"testing"
	"time"

	"easy/internal/domain/entity"
	domainerrors "easy/internal/domain/errors"
	"easy/internal/domain/repository"
	"easy/internal/domain/service"
	mockRepo "easy/internal/mocks/repository"
	mockSvc "easy/internal/mocks/service"
	"easy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceMocks struct {
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	profileRepo      *mockRepo.MockProfileRepository
	txManager        *mockRepo.MockTransactionManager
	hasher           *mockSvc.MockPasswordHasher
	tokens           *mockSvc.MockTokenService
}

func newSessionServiceForTest(t *testing.T) (usecase.SessionUsecase, *sessionServiceMocks) {
	t.Helper()

	mocks := &sessionServiceMocks{
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		profileRepo:      mockRepo.NewMockProfileRepository(t),
		txManager:        mockRepo.NewMockTransactionManager(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokens:           mockSvc.NewMockTokenService(t),
	}

	svc := NewSessionService(SessionServiceParams{
		AuthRepo:         mocks.authRepo,
		RefreshTokenRepo: mocks.refreshTokenRepo,
		ProfileRepo:      mocks.profileRepo,
		TxManager:        mocks.txManager,
		Hasher:           mocks.hasher,
		Tokens:           mocks.tokens,
		Logger:           newTestLogger(),
	})

	return svc, mocks
}

func TestSessionService_Login_Success(t *testing.T) {
	svc, mocks := newSessionServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	credential := &entity.Credential{
		ID:           uuid.New(),
		UserID:       userID,
		Email:        "zelador@predio.com",
		PasswordHash: "$2a$10$hash",
	}
	profile := &entity.Profile{
		ID:       uuid.New(),
		UserID:   userID,
		FullName: "Carlos Souza",
		Role:     entity.RoleFrontDesk,
	}

	mocks.authRepo.EXPECT().FindCredentialByEmail(ctx, "zelador@predio.com").Return(credential, nil)
	mocks.hasher.EXPECT().Check("senha-forte", credential.PasswordHash).Return(true)
	mocks.profileRepo.EXPECT().FindProfileByUserID(ctx, userID).Return(profile, nil)
	mocks.tokens.EXPECT().GenerateTokens(userID, []string{"front_desk"}).Return("access-jwt", "refresh-jwt", nil)
	mocks.tokens.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	mocks.refreshTokenRepo.EXPECT().
		SaveRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)
	mocks.profileRepo.EXPECT().UpdateLastLogin(ctx, userID).Return(nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "zelador@predio.com", Password: "senha-forte"})
	require.NoError(t, err)
	assert.Equal(t, "access-jwt", output.AccessToken)
	assert.Equal(t, "refresh-jwt", output.RefreshToken)
	assert.Equal(t, entity.ScreenFrontDesk, output.Screen)
	assert.Equal(t, profile, output.Profile)
}

func TestSessionService_Login_UnknownEmail(t *testing.T) {
	svc, mocks := newSessionServiceForTest(t)

	ctx := context.Background()

	mocks.authRepo.EXPECT().
		FindCredentialByEmail(ctx, "ninguem@predio.com").
		Return(nil, repository.ErrCredentialNotFound)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "ninguem@predio.com", Password: "qualquer"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	svc, mocks := newSessionServiceForTest(t)

	ctx := context.Background()
	credential := &entity.Credential{UserID: uuid.New(), Email: "a@b.com", PasswordHash: "$2a$10$hash"}

	mocks.authRepo.EXPECT().FindCredentialByEmail(ctx, "a@b.com").Return(credential, nil)
	mocks.hasher.EXPECT().Check("errada", credential.PasswordHash).Return(false)

	// Wrong password and unknown email produce the same error.
	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "a@b.com", Password: "errada"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestSessionService_Login_DeletedProfile(t *testing.T) {
	svc, mocks := newSessionServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	credential := &entity.Credential{UserID: userID, Email: "ex@predio.com", PasswordHash: "$2a$10$hash"}

	mocks.authRepo.EXPECT().FindCredentialByEmail(ctx, "ex@predio.com").Return(credential, nil)
	mocks.hasher.EXPECT().Check("senha", credential.PasswordHash).Return(true)
	mocks.profileRepo.EXPECT().FindProfileByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "ex@predio.com", Password: "senha"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Refresh_RotatesToken(t *testing.T) {
	svc, mocks := newSessionServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	claims := &service.Claims{UserID: userID, Roles: []string{"resident"}, Type: "refresh"}
	stored := &entity.RefreshToken{ID: uuid.New(), UserID: userID, Token: "old-refresh"}
	profile := &entity.Profile{UserID: userID, Role: entity.RoleResident}

	mocks.tokens.EXPECT().ValidateRefreshToken("old-refresh").Return(claims, nil)
	mocks.refreshTokenRepo.EXPECT().FindRefreshToken(ctx, "old-refresh").Return(stored, nil)
	mocks.profileRepo.EXPECT().FindProfileByUserID(ctx, userID).Return(profile, nil)
	mocks.tokens.EXPECT().GenerateTokens(userID, []string{"resident"}).Return("new-access", "new-refresh", nil)
	mocks.tokens.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	txRefreshRepo.EXPECT().DeleteRefreshToken(ctx, "old-refresh").Return(nil)
	txRefreshRepo.EXPECT().
		SaveRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockFactory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	output, err := svc.Refresh(ctx, "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
	assert.Equal(t, entity.ScreenResident, output.Screen)
}

func TestSessionService_Refresh_InvalidSignature(t *testing.T) {
	svc, mocks := newSessionServiceForTest(t)

	mocks.tokens.EXPECT().ValidateRefreshToken("garbage").Return(nil, errors.New("token malformed"))

	output, err := svc.Refresh(context.Background(), "garbage")
	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Nil(t, output)
}

func TestSessionService_Refresh_RevokedToken(t *testing.T) {
	svc, mocks := newSessionServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	claims := &service.Claims{UserID: userID, Roles: []string{"resident"}, Type: "refresh"}

	mocks.tokens.EXPECT().ValidateRefreshToken("revoked").Return(claims, nil)
	mocks.refreshTokenRepo.EXPECT().
		FindRefreshToken(ctx, "revoked").
		Return(nil, repository.ErrRefreshTokenNotFound)

	// A validly signed token that was already rotated is rejected.
	_, err := svc.Refresh(ctx, "revoked")
	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestSessionService_Refresh_ConcurrentRotation(t *testing.T) {
	svc, mocks := newSessionServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	claims := &service.Claims{UserID: userID, Roles: []string{"resident"}, Type: "refresh"}
	stored := &entity.RefreshToken{ID: uuid.New(), UserID: userID, Token: "old-refresh"}
	profile := &entity.Profile{UserID: userID, Role: entity.RoleResident}

	mocks.tokens.EXPECT().ValidateRefreshToken("old-refresh").Return(claims, nil)
	mocks.refreshTokenRepo.EXPECT().FindRefreshToken(ctx, "old-refresh").Return(stored, nil)
	mocks.profileRepo.EXPECT().FindProfileByUserID(ctx, userID).Return(profile, nil)
	mocks.tokens.EXPECT().GenerateTokens(userID, []string{"resident"}).Return("new-access", "new-refresh", nil)
	mocks.tokens.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrRefreshTokenNotFound)

	_, err := svc.Refresh(ctx, "old-refresh")
	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestSessionService_Logout_TolerantOfMissingToken(t *testing.T) {
	svc, mocks := newSessionServiceForTest(t)

	ctx := context.Background()

	mocks.refreshTokenRepo.EXPECT().
		DeleteRefreshToken(ctx, "already-gone").
		Return(repository.ErrRefreshTokenNotFound)

	err := svc.Logout(ctx, "already-gone")
	require.NoError(t, err)
}

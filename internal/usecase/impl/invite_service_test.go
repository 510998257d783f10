package impl

import (
	"context"
	"testing"
	"time"

	"easy/config"
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

type inviteServiceMocks struct {
	inviteRepo *mockRepo.MockInviteRepository
	unitRepo   *mockRepo.MockUnitRepository
	auditRepo  *mockRepo.MockAuditRepository
	txManager  *mockRepo.MockTransactionManager
	hasher     *mockSvc.MockPasswordHasher
	tokens     *mockSvc.MockTokenService
	mailer     *mockSvc.MockMailer
	qrcode     *mockSvc.MockQRCodeService
}

func newInviteServiceForTest(t *testing.T) (usecase.InviteUsecase, *inviteServiceMocks) {
	t.Helper()

	mocks := &inviteServiceMocks{
		inviteRepo: mockRepo.NewMockInviteRepository(t),
		unitRepo:   mockRepo.NewMockUnitRepository(t),
		auditRepo:  mockRepo.NewMockAuditRepository(t),
		txManager:  mockRepo.NewMockTransactionManager(t),
		hasher:     mockSvc.NewMockPasswordHasher(t),
		tokens:     mockSvc.NewMockTokenService(t),
		mailer:     mockSvc.NewMockMailer(t),
		qrcode:     mockSvc.NewMockQRCodeService(t),
	}

	cfg := &config.Config{
		Invite: &config.InviteConfig{
			AcceptURL: "https://easy.example.com/convite",
			TTL:       7 * 24 * time.Hour,
		},
	}

	svc, err := NewInviteService(InviteServiceParams{
		Config:     cfg,
		InviteRepo: mocks.inviteRepo,
		UnitRepo:   mocks.unitRepo,
		AuditRepo:  mocks.auditRepo,
		TxManager:  mocks.txManager,
		Hasher:     mocks.hasher,
		Tokens:     mocks.tokens,
		Mailer:     mocks.mailer,
		QRCode:     mocks.qrcode,
		Logger:     newTestLogger(),
	})
	require.NoError(t, err)

	return svc, mocks
}

func TestNewInviteService_RequiresAcceptURL(t *testing.T) {
	_, err := NewInviteService(InviteServiceParams{
		Config: &config.Config{},
		Logger: newTestLogger(),
	})
	require.Error(t, err)
}

func TestInviteService_CreateInvite_Resident(t *testing.T) {
	svc, mocks := newInviteServiceForTest(t)

	ctx := context.Background()
	actorID := uuid.New()
	unitID := uuid.New()

	mocks.unitRepo.EXPECT().FindUnitByID(ctx, unitID).Return(&entity.Unit{ID: unitID, Label: "Bloco B - 202"}, nil)
	mocks.inviteRepo.EXPECT().
		CreateInvite(ctx, mock.AnythingOfType("*entity.InviteToken")).
		RunAndReturn(func(_ context.Context, invite *entity.InviteToken) error {
			invite.ID = uuid.New()
			return nil
		})
	mocks.auditRepo.EXPECT().CreateAuditLog(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(nil)

	invite, err := svc.CreateInvite(ctx, actorID, &usecase.CreateInviteInput{
		Email:  "morador@example.com",
		Role:   entity.RoleResident,
		UnitID: &unitID,
	})
	require.NoError(t, err)
	assert.Equal(t, "morador@example.com", invite.Email)
	assert.Equal(t, entity.RoleResident, invite.Role)
	assert.NotEmpty(t, invite.Token)
	assert.False(t, invite.Used)
	assert.True(t, invite.ExpiresAt.After(time.Now()))
}

func TestInviteService_CreateInvite_ResidentRequiresUnit(t *testing.T) {
	svc, _ := newInviteServiceForTest(t)

	_, err := svc.CreateInvite(context.Background(), uuid.New(), &usecase.CreateInviteInput{
		Email: "morador@example.com",
		Role:  entity.RoleResident,
	})
	require.Error(t, err)
}

func TestInviteService_CreateInvite_InvalidEmail(t *testing.T) {
	svc, _ := newInviteServiceForTest(t)

	_, err := svc.CreateInvite(context.Background(), uuid.New(), &usecase.CreateInviteInput{
		Email: "not-an-email",
		Role:  entity.RoleFrontDesk,
	})
	require.Error(t, err)
}

func TestInviteService_CreateInvite_StaffNeedsNoUnit(t *testing.T) {
	svc, mocks := newInviteServiceForTest(t)

	ctx := context.Background()

	mocks.inviteRepo.EXPECT().
		CreateInvite(ctx, mock.AnythingOfType("*entity.InviteToken")).
		Return(nil)
	mocks.auditRepo.EXPECT().CreateAuditLog(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(nil)

	invite, err := svc.CreateInvite(ctx, uuid.New(), &usecase.CreateInviteInput{
		Email: "portaria@example.com",
		Role:  entity.RoleFrontDesk,
	})
	require.NoError(t, err)
	assert.Nil(t, invite.UnitID)
}

func TestInviteService_ValidateInvite_Expired(t *testing.T) {
	svc, mocks := newInviteServiceForTest(t)

	ctx := context.Background()
	expired := &entity.InviteToken{
		ID:        uuid.New(),
		Token:     "tok",
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	mocks.inviteRepo.EXPECT().FindInviteByToken(ctx, "tok").Return(expired, nil)

	_, err := svc.ValidateInvite(ctx, "tok")
	require.ErrorIs(t, err, domainerrors.ErrInviteExpired)
}

func TestInviteService_ValidateInvite_Used(t *testing.T) {
	svc, mocks := newInviteServiceForTest(t)

	ctx := context.Background()
	used := &entity.InviteToken{
		ID:        uuid.New(),
		Token:     "tok",
		Used:      true,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	mocks.inviteRepo.EXPECT().FindInviteByToken(ctx, "tok").Return(used, nil)

	_, err := svc.ValidateInvite(ctx, "tok")
	require.ErrorIs(t, err, domainerrors.ErrInviteAlreadyUsed)
}

func TestInviteService_AcceptInvite_Resident(t *testing.T) {
	svc, mocks := newInviteServiceForTest(t)

	ctx := context.Background()
	unitID := uuid.New()

	invite := &entity.InviteToken{
		ID:        uuid.New(),
		Email:     "morador@example.com",
		Token:     "tok",
		Role:      entity.RoleResident,
		UnitID:    &unitID,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	mocks.inviteRepo.EXPECT().FindInviteByToken(ctx, "tok").Return(invite, nil)
	mocks.hasher.EXPECT().Hash("senha-forte").Return("$2a$10$hash", nil)

	txInviteRepo := mockRepo.NewMockInviteRepository(t)
	txInviteRepo.EXPECT().MarkInviteUsed(ctx, invite.ID).Return(nil)

	txAuthRepo := mockRepo.NewMockAuthRepository(t)
	txAuthRepo.EXPECT().
		CreateCredential(ctx, mock.AnythingOfType("*entity.Credential")).
		RunAndReturn(func(_ context.Context, credential *entity.Credential) error {
			assert.Equal(t, "morador@example.com", credential.Email)
			assert.Equal(t, "$2a$10$hash", credential.PasswordHash)
			return nil
		})

	txProfileRepo := mockRepo.NewMockProfileRepository(t)
	txProfileRepo.EXPECT().
		CreateProfile(ctx, mock.AnythingOfType("*entity.Profile")).
		RunAndReturn(func(_ context.Context, profile *entity.Profile) error {
			profile.ID = uuid.New()
			return nil
		})

	txUnitRepo := mockRepo.NewMockUnitRepository(t)
	txUnitRepo.EXPECT().
		CreateUnitProfile(ctx, mock.AnythingOfType("*entity.UnitProfile")).
		RunAndReturn(func(_ context.Context, link *entity.UnitProfile) error {
			assert.Equal(t, unitID, link.UnitID)
			assert.Equal(t, entity.OccupancyTenant, link.Type)
			assert.True(t, link.Active)
			return nil
		})

	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	txRefreshRepo.EXPECT().
		SaveRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockFactory.EXPECT().InviteRepo().Return(txInviteRepo)
	mockFactory.EXPECT().AuthRepo().Return(txAuthRepo)
	mockFactory.EXPECT().ProfileRepo().Return(txProfileRepo)
	mockFactory.EXPECT().UnitRepo().Return(txUnitRepo)
	mockFactory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	mocks.tokens.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), []string{"resident"}).
		Return("access-jwt", "refresh-jwt", nil)
	mocks.tokens.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	output, err := svc.AcceptInvite(ctx, &usecase.AcceptInviteInput{
		Token:    "tok",
		FullName: "Maria Silva",
		Password: "senha-forte",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-jwt", output.AccessToken)
	assert.Equal(t, "refresh-jwt", output.RefreshToken)
	assert.Equal(t, entity.ScreenResident, output.Screen)
	assert.Equal(t, "Maria Silva", output.Profile.FullName)
	assert.Equal(t, entity.RoleResident, output.Profile.Role)
}

func TestInviteService_AcceptInvite_ShortPassword(t *testing.T) {
	svc, _ := newInviteServiceForTest(t)

	_, err := svc.AcceptInvite(context.Background(), &usecase.AcceptInviteInput{
		Token:    "tok",
		FullName: "Maria",
		Password: "curta",
	})
	require.Error(t, err)
}

func TestInviteService_AcceptInvite_LostUsedRace(t *testing.T) {
	svc, mocks := newInviteServiceForTest(t)

	ctx := context.Background()

	invite := &entity.InviteToken{
		ID:        uuid.New(),
		Email:     "morador@example.com",
		Token:     "tok",
		Role:      entity.RoleResident,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	mocks.inviteRepo.EXPECT().FindInviteByToken(ctx, "tok").Return(invite, nil)
	mocks.hasher.EXPECT().Hash("senha-forte").Return("$2a$10$hash", nil)

	// A concurrent accept flipped used=true first; the whole transaction aborts.
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrInviteAlreadyUsed)

	_, err := svc.AcceptInvite(ctx, &usecase.AcceptInviteInput{
		Token:    "tok",
		FullName: "Maria Silva",
		Password: "senha-forte",
	})
	require.ErrorIs(t, err, domainerrors.ErrInviteAlreadyUsed)
}

func TestInviteService_GetInviteQR(t *testing.T) {
	svc, mocks := newInviteServiceForTest(t)

	ctx := context.Background()
	inviteID := uuid.New()
	invite := &entity.InviteToken{ID: inviteID, Token: "tok-abc"}

	mocks.inviteRepo.EXPECT().FindInviteByID(ctx, inviteID).Return(invite, nil)
	mocks.qrcode.EXPECT().
		GenerateQRCode("https://easy.example.com/convite?token=tok-abc").
		Return([]byte("png-bytes"), nil)

	png, err := svc.GetInviteQR(ctx, inviteID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestInviteService_SendInviteEmail_WithUnitLabel(t *testing.T) {
	svc, mocks := newInviteServiceForTest(t)

	ctx := context.Background()
	inviteID := uuid.New()
	unitID := uuid.New()

	invite := &entity.InviteToken{
		ID:     inviteID,
		Email:  "morador@example.com",
		Token:  "tok",
		UnitID: &unitID,
	}

	mocks.inviteRepo.EXPECT().FindInviteByID(ctx, inviteID).Return(invite, nil)
	mocks.unitRepo.EXPECT().FindUnitByID(ctx, unitID).Return(&entity.Unit{ID: unitID, Label: "Bloco A - 101"}, nil)
	mocks.mailer.EXPECT().
		SendInviteEmail(ctx, mock.AnythingOfType("*service.InviteEmail")).
		RunAndReturn(func(_ context.Context, email *service.InviteEmail) error {
			assert.Equal(t, "morador@example.com", email.To)
			assert.Equal(t, "tok", email.Token)
			assert.Equal(t, "Bloco A - 101", email.UnitLabel)
			return nil
		})

	err := svc.SendInviteEmail(ctx, inviteID)
	require.NoError(t, err)
}

func TestInviteService_SendInviteEmail_MailerFailure(t *testing.T) {
	svc, mocks := newInviteServiceForTest(t)

	ctx := context.Background()
	inviteID := uuid.New()
	invite := &entity.InviteToken{ID: inviteID, Email: "a@b.com", Token: "tok"}

	mocks.inviteRepo.EXPECT().FindInviteByID(ctx, inviteID).Return(invite, nil)
	mocks.mailer.EXPECT().
		SendInviteEmail(ctx, mock.AnythingOfType("*service.InviteEmail")).
		Return(errors.New("smtp timeout"))

	err := svc.SendInviteEmail(ctx, inviteID)
	require.ErrorIs(t, err, domainerrors.ErrInviteEmailFailed)
}

package impl

import (
	"context"
	"testing"
	"time"

	"easy/internal/domain/entity"
	domainerrors "easy/internal/domain/errors"
	"easy/internal/domain/repository"
	mockRepo "easy/internal/mocks/repository"
	"easy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProfileServiceForTest(t *testing.T) (usecase.ProfileUsecase, *mockRepo.MockProfileRepository, *mockRepo.MockSubscriptionRepository, *mockRepo.MockAuditRepository) {
	t.Helper()

	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockAuditRepo := mockRepo.NewMockAuditRepository(t)

	svc := NewProfileService(ProfileServiceParams{
		ProfileRepo:      mockProfileRepo,
		SubscriptionRepo: mockSubscriptionRepo,
		AuditRepo:        mockAuditRepo,
		Logger:           newTestLogger(),
	})

	return svc, mockProfileRepo, mockSubscriptionRepo, mockAuditRepo
}

func TestProfileService_GetMyProfile_ResolvesScreen(t *testing.T) {
	svc, mockProfileRepo, _, _ := newProfileServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		role   entity.Role
		screen entity.Screen
	}{
		{entity.RoleResident, entity.ScreenResident},
		{entity.RoleFrontDesk, entity.ScreenFrontDesk},
		{entity.RoleAdmin, entity.ScreenAdmin},
		{entity.RoleSuperAdmin, entity.ScreenAdmin},
	}

	for _, tt := range tests {
		profile := &entity.Profile{ID: uuid.New(), UserID: userID, Role: tt.role}
		mockProfileRepo.EXPECT().FindProfileByUserID(ctx, userID).Return(profile, nil).Once()

		output, err := svc.GetMyProfile(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, tt.screen, output.Screen, "role %s", tt.role)
	}
}

func TestProfileService_GetMyProfile_NotFound(t *testing.T) {
	svc, mockProfileRepo, _, _ := newProfileServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mockProfileRepo.EXPECT().FindProfileByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	_, err := svc.GetMyProfile(ctx, userID)
	require.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_ListProfilesByRole_InvalidRole(t *testing.T) {
	svc, _, _, _ := newProfileServiceForTest(t)

	_, err := svc.ListProfilesByRole(context.Background(), entity.Role("janitor"))
	require.Error(t, err)
}

func TestProfileService_RemoveProfile_Success(t *testing.T) {
	svc, mockProfileRepo, mockSubscriptionRepo, mockAuditRepo := newProfileServiceForTest(t)

	ctx := context.Background()
	actorID := uuid.New()
	profileID := uuid.New()
	userID := uuid.New()

	profile := &entity.Profile{ID: profileID, UserID: userID, Role: entity.RoleResident}

	mockProfileRepo.EXPECT().FindProfileByID(ctx, profileID).Return(profile, nil)
	mockProfileRepo.EXPECT().SoftDeleteProfile(ctx, profileID, actorID).Return(nil)
	mockSubscriptionRepo.EXPECT().DeleteSubscriptionsByUser(ctx, userID).Return(nil)
	mockAuditRepo.EXPECT().CreateAuditLog(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(nil)

	err := svc.RemoveProfile(ctx, actorID, profileID)
	require.NoError(t, err)
}

func TestProfileService_RemoveProfile_AlreadyDeleted(t *testing.T) {
	svc, mockProfileRepo, _, _ := newProfileServiceForTest(t)

	ctx := context.Background()
	profileID := uuid.New()
	deletedAt := time.Now()

	mockProfileRepo.EXPECT().
		FindProfileByID(ctx, profileID).
		Return(&entity.Profile{ID: profileID, DeletedAt: &deletedAt}, nil)

	err := svc.RemoveProfile(ctx, uuid.New(), profileID)
	require.ErrorIs(t, err, domainerrors.ErrProfileDeleted)
}

func TestProfileService_RemoveProfile_SubscriptionCleanupBestEffort(t *testing.T) {
	svc, mockProfileRepo, mockSubscriptionRepo, mockAuditRepo := newProfileServiceForTest(t)

	ctx := context.Background()
	actorID := uuid.New()
	profileID := uuid.New()
	userID := uuid.New()

	profile := &entity.Profile{ID: profileID, UserID: userID, Role: entity.RoleResident}

	mockProfileRepo.EXPECT().FindProfileByID(ctx, profileID).Return(profile, nil)
	mockProfileRepo.EXPECT().SoftDeleteProfile(ctx, profileID, actorID).Return(nil)
	mockSubscriptionRepo.EXPECT().
		DeleteSubscriptionsByUser(ctx, userID).
		Return(errors.New("connection reset"))
	mockAuditRepo.EXPECT().CreateAuditLog(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(nil)

	// The soft delete already committed; subscription cleanup is advisory.
	err := svc.RemoveProfile(ctx, actorID, profileID)
	require.NoError(t, err)
}

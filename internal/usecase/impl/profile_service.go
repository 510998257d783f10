package impl

import (
	"context"
	"log/slog"

	deliverycontext "easy/internal/delivery/context"
	"easy/internal/domain/entity"
	domainerrors "easy/internal/domain/errors"
	"easy/internal/domain/repository"
	"easy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo      repository.ProfileRepository
	subscriptionRepo repository.SubscriptionRepository
	auditRepo        repository.AuditRepository
	logger           *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo      repository.ProfileRepository
	SubscriptionRepo repository.SubscriptionRepository
	AuditRepo        repository.AuditRepository
	Logger           *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo:      params.ProfileRepo,
		subscriptionRepo: params.SubscriptionRepo,
		auditRepo:        params.AuditRepo,
		logger:           params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMyProfile retrieves the caller's profile and the screen its role routes to.
func (srv *profileService) GetMyProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	profile, err := srv.profileRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, err
	}

	return &usecase.ProfileOutput{
		Profile: profile,
		Screen:  entity.ScreenForRole(profile.Role),
	}, nil
}

// ListProfilesByRole retrieves all active profiles with the given role.
func (srv *profileService) ListProfilesByRole(ctx context.Context, role entity.Role) ([]*entity.Profile, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}

	return srv.profileRepo.ListProfilesByRole(ctx, role)
}

// RemoveProfile soft-deletes a profile and drops its push subscriptions.
func (srv *profileService) RemoveProfile(ctx context.Context, actorUserID, profileID uuid.UUID) error {
	profile, err := srv.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}

		return err
	}

	if profile.IsDeleted() {
		return domainerrors.ErrProfileDeleted
	}

	if err := srv.profileRepo.SoftDeleteProfile(ctx, profileID, actorUserID); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}

		return err
	}

	// A removed person must stop receiving pushes immediately. The fan-out
	// already skips deleted profiles, so a failure here only leaves rows
	// that are never used again.
	if err := srv.subscriptionRepo.DeleteSubscriptionsByUser(ctx, profile.UserID); err != nil {
		srv.log(ctx).Warn("Failed to drop subscriptions of removed profile",
			slog.String("profile_id", profileID.String()),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Profile removed",
		slog.String("profile_id", profileID.String()),
		slog.String("removed_by", actorUserID.String()),
	)

	entry := &entity.AuditLog{
		ActorUserID: &actorUserID,
		TableName:   "profiles",
		RecordID:    &profileID,
		Action:      "soft_delete",
		Payload: map[string]string{
			"role": profile.Role.String(),
		},
	}
	if err := srv.auditRepo.CreateAuditLog(ctx, entry); err != nil {
		srv.log(ctx).Warn("Failed to record audit entry", slog.Any("error", err))
	}

	return nil
}

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

// unitService implements the UnitUsecase interface.
type unitService struct {
	unitRepo    repository.UnitRepository
	profileRepo repository.ProfileRepository
	auditRepo   repository.AuditRepository
	logger      *slog.Logger
}

// UnitServiceParams holds dependencies for UnitService, injected by Fx.
type UnitServiceParams struct {
	fx.In

	UnitRepo    repository.UnitRepository
	ProfileRepo repository.ProfileRepository
	AuditRepo   repository.AuditRepository
	Logger      *slog.Logger
}

// NewUnitService is the constructor for unitService.
func NewUnitService(params UnitServiceParams) usecase.UnitUsecase {
	return &unitService{
		unitRepo:    params.UnitRepo,
		profileRepo: params.ProfileRepo,
		auditRepo:   params.AuditRepo,
		logger:      params.Logger,
	}
}

func (srv *unitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUnit registers a unit and derives its display label once.
func (srv *unitService) CreateUnit(ctx context.Context, actorUserID uuid.UUID, input *usecase.CreateUnitInput) (*entity.Unit, error) {
	if input.Number <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unit number must be positive")
	}

	unit := &entity.Unit{
		Block:  input.Block,
		Floor:  input.Floor,
		Number: input.Number,
		Label:  entity.BuildUnitLabel(input.Block, input.Number),
	}

	if err := srv.unitRepo.CreateUnit(ctx, unit); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Unit created",
		slog.String("unit_id", unit.ID.String()),
		slog.String("label", unit.Label),
	)

	srv.recordAudit(ctx, actorUserID, "units", unit.ID, "insert", map[string]string{
		"label": unit.Label,
	})

	return unit, nil
}

// GetUnit retrieves a single unit.
func (srv *unitService) GetUnit(ctx context.Context, id uuid.UUID) (*entity.Unit, error) {
	unit, err := srv.unitRepo.FindUnitByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUnitNotFound) {
			return nil, domainerrors.ErrUnitNotFound
		}

		return nil, err
	}

	return unit, nil
}

// ListUnits retrieves all units ordered by block and number.
func (srv *unitService) ListUnits(ctx context.Context) ([]*entity.Unit, error) {
	return srv.unitRepo.ListUnits(ctx)
}

// AddResident links a profile to a unit as an active occupancy.
func (srv *unitService) AddResident(ctx context.Context, actorUserID uuid.UUID, input *usecase.AddResidentInput) (*entity.UnitProfile, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown occupancy type")
	}

	if _, err := srv.unitRepo.FindUnitByID(ctx, input.UnitID); err != nil {
		if errors.Is(err, repository.ErrUnitNotFound) {
			return nil, domainerrors.ErrUnitNotFound
		}

		return nil, err
	}

	// Only live profiles can be linked; a soft-deleted one must be
	// re-invited first.
	profile, err := srv.profileRepo.FindProfileByID(ctx, input.ProfileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, err
	}
	if profile.IsDeleted() {
		return nil, domainerrors.ErrProfileDeleted
	}

	link := &entity.UnitProfile{
		UnitID:    input.UnitID,
		ProfileID: input.ProfileID,
		Type:      input.Type,
		Active:    true,
	}

	if err := srv.unitRepo.CreateUnitProfile(ctx, link); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Resident linked to unit",
		slog.String("unit_id", input.UnitID.String()),
		slog.String("profile_id", input.ProfileID.String()),
	)

	srv.recordAudit(ctx, actorUserID, "unit_profiles", link.ID, "insert", map[string]string{
		"unit_id":    input.UnitID.String(),
		"profile_id": input.ProfileID.String(),
		"type":       string(input.Type),
	})

	return link, nil
}

// RemoveResident deactivates an occupancy; history is preserved.
func (srv *unitService) RemoveResident(ctx context.Context, actorUserID, unitID, profileID uuid.UUID) error {
	err := srv.unitRepo.DeactivateUnitProfile(ctx, unitID, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrUnitProfileNotFound) {
			return domainerrors.ErrOccupancyNotFound
		}

		return err
	}

	srv.log(ctx).Info("Resident unlinked from unit",
		slog.String("unit_id", unitID.String()),
		slog.String("profile_id", profileID.String()),
	)

	srv.recordAudit(ctx, actorUserID, "unit_profiles", unitID, "deactivate", map[string]string{
		"unit_id":    unitID.String(),
		"profile_id": profileID.String(),
	})

	return nil
}

// ListUnitResidents retrieves the active, non-deleted residents of a unit.
func (srv *unitService) ListUnitResidents(ctx context.Context, unitID uuid.UUID) ([]*entity.UnitResident, error) {
	if _, err := srv.unitRepo.FindUnitByID(ctx, unitID); err != nil {
		if errors.Is(err, repository.ErrUnitNotFound) {
			return nil, domainerrors.ErrUnitNotFound
		}

		return nil, err
	}

	return srv.unitRepo.FindActiveResidents(ctx, unitID)
}

func (srv *unitService) recordAudit(ctx context.Context, actorUserID uuid.UUID, tableName string, recordID uuid.UUID, action string, payload map[string]string) {
	entry := &entity.AuditLog{
		ActorUserID: &actorUserID,
		TableName:   tableName,
		RecordID:    &recordID,
		Action:      action,
		Payload:     payload,
	}
	if err := srv.auditRepo.CreateAuditLog(ctx, entry); err != nil {
		srv.log(ctx).Warn("Failed to record audit entry",
			slog.String("table", tableName),
			slog.String("action", action),
			slog.Any("error", err),
		)
	}
}

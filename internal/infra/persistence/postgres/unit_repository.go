// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"easy/internal/domain/entity"
	domainerrors "easy/internal/domain/errors"
	"easy/internal/domain/repository"
	"easy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// unitRepository implements the domain.UnitRepository interface using GORM.
type unitRepository struct {
	db *gorm.DB
}

// NewUnitRepository is the constructor for unitRepository.
func NewUnitRepository(db *gorm.DB) repository.UnitRepository {
	return &unitRepository{db: db}
}

// CreateUnit persists a new unit. The label must already be derived.
func (repo *unitRepository) CreateUnit(ctx context.Context, unit *entity.Unit) error {
	unitM := fromUnitDomain(unit)

	if err := repo.db.WithContext(ctx).Create(unitM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("unit already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required unit information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create unit")
	}

	unit.ID = unitM.ID
	unit.CreatedAt = unitM.CreatedAt

	return nil
}

// FindUnitByID retrieves a unit by its unique ID.
func (repo *unitRepository) FindUnitByID(ctx context.Context, id uuid.UUID) (*entity.Unit, error) {
	var unitM model.UnitModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&unitM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUnitNotFound
		}

		return nil, errors.Wrap(err, "failed to find unit by id")
	}

	return toUnitDomain(&unitM), nil
}

// ListUnits retrieves all units ordered by block and number.
func (repo *unitRepository) ListUnits(ctx context.Context) ([]*entity.Unit, error) {
	var unitModels []*model.UnitModel

	err := repo.db.WithContext(ctx).
		Order("block ASC, number ASC").
		Find(&unitModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	units := make([]*entity.Unit, 0, len(unitModels))
	for _, unitM := range unitModels {
		units = append(units, toUnitDomain(unitM))
	}

	return units, nil
}

// CreateUnitProfile links a profile to a unit as an active occupancy.
func (repo *unitRepository) CreateUnitProfile(ctx context.Context, link *entity.UnitProfile) error {
	linkM := fromUnitProfileDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("resident already linked to this unit")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUnitNotFound.WrapMessage("invalid unit or profile reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to link resident to unit")
	}

	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt

	return nil
}

// DeactivateUnitProfile marks an occupancy inactive. Historical links are
// kept so past deliveries stay attributable.
func (repo *unitRepository) DeactivateUnitProfile(ctx context.Context, unitID, profileID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UnitProfileModel{}).
		Where("unit_id = ? AND profile_id = ? AND active = true", unitID, profileID).
		Update("active", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate occupancy")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUnitProfileNotFound
	}

	return nil
}

// ListUnitProfiles retrieves every occupancy link of a unit, active or not.
func (repo *unitRepository) ListUnitProfiles(ctx context.Context, unitID uuid.UUID) ([]*entity.UnitProfile, error) {
	var linkModels []*model.UnitProfileModel

	err := repo.db.WithContext(ctx).
		Where("unit_id = ?", unitID).
		Order("created_at ASC").
		Find(&linkModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	links := make([]*entity.UnitProfile, 0, len(linkModels))
	for _, linkM := range linkModels {
		links = append(links, toUnitProfileDomain(linkM))
	}

	return links, nil
}

// FindActiveResidents resolves the notification recipient set of a unit.
// The soft-delete filter lives in the join, not in the link rows: a removed
// resident keeps their occupancy history yet drops out of fan-out instantly.
func (repo *unitRepository) FindActiveResidents(ctx context.Context, unitID uuid.UUID) ([]*entity.UnitResident, error) {
	var residents []*entity.UnitResident

	err := repo.db.WithContext(ctx).
		Table("unit_profiles").
		Select("profiles.id AS profile_id, profiles.user_id AS user_id, profiles.full_name AS full_name").
		Joins("JOIN profiles ON profiles.id = unit_profiles.profile_id").
		Where("unit_profiles.unit_id = ? AND unit_profiles.active = true AND profiles.deleted_at IS NULL", unitID).
		Scan(&residents).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active residents")
	}

	// An empty recipient set is a valid outcome, not an error.
	return residents, nil
}

// --- Mapper Functions ---

// toUnitDomain converts a GORM UnitModel to a domain Unit entity.
func toUnitDomain(data *model.UnitModel) *entity.Unit {
	if data == nil {
		return nil
	}

	return &entity.Unit{
		ID:        data.ID,
		Block:     data.Block,
		Floor:     data.Floor,
		Number:    data.Number,
		Label:     data.Label,
		CreatedAt: data.CreatedAt,
	}
}

// fromUnitDomain converts a domain Unit entity to a GORM UnitModel for persistence.
func fromUnitDomain(data *entity.Unit) *model.UnitModel {
	if data == nil {
		return nil
	}

	return &model.UnitModel{
		ID:     data.ID,
		Block:  data.Block,
		Floor:  data.Floor,
		Number: data.Number,
		Label:  data.Label,
	}
}

// toUnitProfileDomain converts a GORM UnitProfileModel to a domain UnitProfile entity.
func toUnitProfileDomain(data *model.UnitProfileModel) *entity.UnitProfile {
	if data == nil {
		return nil
	}

	return &entity.UnitProfile{
		ID:        data.ID,
		UnitID:    data.UnitID,
		ProfileID: data.ProfileID,
		Type:      entity.OccupancyType(data.Type),
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
	}
}

// fromUnitProfileDomain converts a domain UnitProfile entity to a GORM UnitProfileModel.
func fromUnitProfileDomain(data *entity.UnitProfile) *model.UnitProfileModel {
	if data == nil {
		return nil
	}

	return &model.UnitProfileModel{
		ID:        data.ID,
		UnitID:    data.UnitID,
		ProfileID: data.ProfileID,
		Type:      string(data.Type),
		Active:    data.Active,
	}
}

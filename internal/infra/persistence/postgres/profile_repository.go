// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"easy/internal/domain/entity"
	domainerrors "easy/internal/domain/errors"
	"easy/internal/domain/repository"
	"easy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
// It returns the repository as a domain.ProfileRepository interface, adhering to dependency inversion.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// CreateProfile persists a new profile.
func (repo *profileRepository) CreateProfile(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileCreationFailed.WrapMessage("profile already exists for this account")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProfileCreationFailed.WrapMessage("missing required profile information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileCreationFailed.WrapMessage("invalid account reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	// Update the entity with generated values
	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt

	return nil
}

// FindProfileByID retrieves a single profile by its unique ID, including soft-deleted ones.
func (repo *profileRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return toProfileDomain(&profileM), nil
}

// FindProfileByUserID retrieves the non-deleted profile owned by an account.
func (repo *profileRepository) FindProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user id")
	}

	return toProfileDomain(&profileM), nil
}

// ListProfilesByRole retrieves all non-deleted profiles with the given role.
func (repo *profileRepository) ListProfilesByRole(ctx context.Context, role entity.Role) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel

	err := repo.db.WithContext(ctx).
		Where("role = ? AND deleted_at IS NULL", role.String()).
		Order("created_at DESC").
		Find(&profileModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// SoftDeleteProfile marks a profile deleted, recording who removed it.
// The row is kept so past deliveries and audit entries stay attributable,
// but the profile stops receiving notifications immediately.
func (repo *profileRepository) SoftDeleteProfile(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]any{
			"deleted_at": now,
			"deleted_by": deletedBy,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to soft delete profile")
	}

	// Zero rows means the profile does not exist or is already deleted.
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// UpdateLastLogin stamps the profile's most recent sign-in time.
func (repo *profileRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Update("last_login", time.Now()).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update last login")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:        data.ID,
		UserID:    data.UserID,
		FullName:  data.FullName,
		Phone:     data.Phone,
		Role:      entity.Role(data.Role),
		LastLogin: data.LastLogin,
		DeletedAt: data.DeletedAt,
		DeletedBy: data.DeletedBy,
		CreatedAt: data.CreatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel for persistence.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:        data.ID,
		UserID:    data.UserID,
		FullName:  data.FullName,
		Phone:     data.Phone,
		Role:      data.Role.String(),
		LastLogin: data.LastLogin,
		DeletedAt: data.DeletedAt,
		DeletedBy: data.DeletedBy,
	}
}

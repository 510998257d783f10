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

// inviteRepository implements the domain.InviteRepository interface using GORM.
type inviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository is the constructor for inviteRepository.
func NewInviteRepository(db *gorm.DB) repository.InviteRepository {
	return &inviteRepository{db: db}
}

// CreateInvite persists a new one-time invite token.
func (repo *inviteRepository) CreateInvite(ctx context.Context, invite *entity.InviteToken) error {
	inviteM := fromInviteDomain(invite)

	if err := repo.db.WithContext(ctx).Create(inviteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("invite token already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required invite information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create invite")
	}

	invite.ID = inviteM.ID
	invite.CreatedAt = inviteM.CreatedAt

	return nil
}

// FindInviteByID retrieves an invite by its unique ID.
func (repo *inviteRepository) FindInviteByID(ctx context.Context, id uuid.UUID) (*entity.InviteToken, error) {
	var inviteM model.InviteTokenModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&inviteM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInviteNotFound
		}

		return nil, errors.Wrap(err, "failed to find invite by id")
	}

	return toInviteDomain(&inviteM), nil
}

// FindInviteByToken retrieves an invite by its opaque token value.
func (repo *inviteRepository) FindInviteByToken(ctx context.Context, token string) (*entity.InviteToken, error) {
	var inviteM model.InviteTokenModel

	err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&inviteM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInviteNotFound
		}

		return nil, errors.Wrap(err, "failed to find invite by token")
	}

	return toInviteDomain(&inviteM), nil
}

// MarkInviteUsed flags a token as redeemed. The update is conditional on
// used being false so a token can only ever be redeemed once.
func (repo *inviteRepository) MarkInviteUsed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InviteTokenModel{}).
		Where("id = ? AND used = false", id).
		Update("used", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark invite used")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.InviteTokenModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to check invite existence")
		}
		if count == 0 {
			return repository.ErrInviteNotFound
		}

		return repository.ErrInviteAlreadyUsed
	}

	return nil
}

// --- Mapper Functions ---

// toInviteDomain converts a GORM InviteTokenModel to a domain InviteToken entity.
func toInviteDomain(data *model.InviteTokenModel) *entity.InviteToken {
	if data == nil {
		return nil
	}

	return &entity.InviteToken{
		ID:        data.ID,
		Email:     data.Email,
		Token:     data.Token,
		Role:      entity.Role(data.Role),
		UnitID:    data.UnitID,
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
		CreatedAt: data.CreatedAt,
	}
}

// fromInviteDomain converts a domain InviteToken entity to a GORM InviteTokenModel.
func fromInviteDomain(data *entity.InviteToken) *model.InviteTokenModel {
	if data == nil {
		return nil
	}

	return &model.InviteTokenModel{
		ID:        data.ID,
		Email:     data.Email,
		Token:     data.Token,
		Role:      data.Role.String(),
		UnitID:    data.UnitID,
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
	}
}

// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"easy/internal/domain/entity"
	domainerrors "easy/internal/domain/errors"
	"easy/internal/domain/repository"
	"easy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the domain.SubscriptionRepository interface using GORM.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// CreateSubscription persists a new push subscription.
func (repo *subscriptionRepository) CreateSubscription(ctx context.Context, subscription *entity.PushSubscription) error {
	subscriptionM, err := fromPushSubscriptionDomain(subscription)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing subscription descriptor")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create push subscription")
	}

	subscription.ID = subscriptionM.ID
	subscription.CreatedAt = subscriptionM.CreatedAt

	return nil
}

// FindSubscriptionsByUsers retrieves the subscriptions of the given users in
// one batch query. Users without a subscription are simply absent from the
// result; the fan-out treats that as "no push for this recipient".
func (repo *subscriptionRepository) FindSubscriptionsByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PushSubscription, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var subscriptionModels []*model.PushSubscriptionModel

	err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&subscriptionModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	subscriptions := make([]*entity.PushSubscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscription, err := toPushSubscriptionDomain(subscriptionM)
		if err != nil {
			return nil, err
		}
		subscriptions = append(subscriptions, subscription)
	}

	return subscriptions, nil
}

// DeleteSubscriptionsByUser removes every subscription of a user.
// Deleting a user with no subscription is not an error.
func (repo *subscriptionRepository) DeleteSubscriptionsByUser(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.PushSubscriptionModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete push subscriptions")
	}

	return nil
}

// DeleteSubscription removes a single subscription by ID, used to drop
// endpoints the push service reports as gone.
func (repo *subscriptionRepository) DeleteSubscription(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PushSubscriptionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete push subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPushSubscriptionDomain converts a GORM PushSubscriptionModel to a domain entity.
func toPushSubscriptionDomain(data *model.PushSubscriptionModel) (*entity.PushSubscription, error) {
	if data == nil {
		return nil, nil
	}

	var descriptor entity.WebPushDescriptor
	if err := json.Unmarshal([]byte(data.SubscriptionJSON), &descriptor); err != nil {
		return nil, errors.Wrap(err, "failed to decode push subscription descriptor")
	}

	return &entity.PushSubscription{
		ID:           data.ID,
		UserID:       data.UserID,
		Subscription: descriptor,
		CreatedAt:    data.CreatedAt,
	}, nil
}

// fromPushSubscriptionDomain converts a domain entity to a GORM PushSubscriptionModel.
func fromPushSubscriptionDomain(data *entity.PushSubscription) (*model.PushSubscriptionModel, error) {
	if data == nil {
		return nil, nil
	}

	raw, err := json.Marshal(data.Subscription)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode push subscription descriptor")
	}

	return &model.PushSubscriptionModel{
		ID:               data.ID,
		UserID:           data.UserID,
		SubscriptionJSON: string(raw),
	}, nil
}

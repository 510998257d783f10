// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"easy/internal/domain/entity"
	domainerrors "easy/internal/domain/errors"
	"easy/internal/domain/repository"
	"easy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the domain.NotificationRepository interface using GORM.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// BatchCreateNotifications persists one notification per recipient in a
// single batch insert. The whole batch fails or succeeds together so the
// fan-out never records a partial recipient set.
func (repo *notificationRepository) BatchCreateNotifications(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	notificationModels := make([]*model.NotificationModel, 0, len(notifications))
	for _, notification := range notifications {
		notificationM, err := fromNotificationDomain(notification)
		if err != nil {
			return err
		}
		notificationModels = append(notificationModels, notificationM)
	}

	if err := repo.db.WithContext(ctx).Create(&notificationModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("invalid recipient reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create notifications")
	}

	// Propagate generated values back to the entities
	for i, notificationM := range notificationModels {
		notifications[i].ID = notificationM.ID
		notifications[i].CreatedAt = notificationM.CreatedAt
	}

	return nil
}

// ListNotificationsByUser retrieves a user's notifications, newest first.
func (repo *notificationRepository) ListNotificationsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var notificationModels []*model.NotificationModel
	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notification, err := toNotificationDomain(notificationM)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}

	return notifications, nil
}

// CountUnreadByUser counts the user's notifications with read_at unset.
func (repo *notificationRepository) CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Count(&count).Error
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

// MarkNotificationRead sets read_at once, only by the owning user.
// The user_id predicate keeps one resident from marking another's
// notification; the read_at predicate keeps the first read timestamp.
func (repo *notificationRepository) MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ? AND read_at IS NULL", id, userID).
		Update("read_at", time.Now())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.NotificationModel{}).
			Where("id = ? AND user_id = ?", id, userID).
			Count(&count).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to check notification existence")
		}
		if count == 0 {
			return repository.ErrNotificationNotFound
		}

		return repository.ErrNotificationAlreadyRead
	}

	return nil
}

// MarkPushSent flags the given notifications as successfully pushed.
func (repo *notificationRepository) MarkPushSent(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id IN ?", ids).
		Update("push_sent", true).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark push sent")
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) (*entity.Notification, error) {
	if data == nil {
		return nil, nil
	}

	var payload map[string]string
	if data.DataJSON != "" {
		if err := json.Unmarshal([]byte(data.DataJSON), &payload); err != nil {
			return nil, errors.Wrap(err, "failed to decode notification data")
		}
	}

	return &entity.Notification{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      data.Type,
		Title:     data.Title,
		Body:      data.Body,
		Data:      payload,
		PushSent:  data.PushSent,
		ReadAt:    data.ReadAt,
		CreatedAt: data.CreatedAt,
	}, nil
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) (*model.NotificationModel, error) {
	if data == nil {
		return nil, nil
	}

	dataJSON := ""
	if len(data.Data) > 0 {
		raw, err := json.Marshal(data.Data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode notification data")
		}
		dataJSON = string(raw)
	}

	return &model.NotificationModel{
		ID:       data.ID,
		UserID:   data.UserID,
		Type:     data.Type,
		Title:    data.Title,
		Body:     data.Body,
		DataJSON: dataJSON,
		PushSent: data.PushSent,
		ReadAt:   data.ReadAt,
	}, nil
}

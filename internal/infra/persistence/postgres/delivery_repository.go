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

// deliveryRepository implements the domain.DeliveryRepository interface using GORM.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{db: db}
}

// CreateDelivery persists a new delivery in the awaiting state.
func (repo *deliveryRepository) CreateDelivery(ctx context.Context, delivery *entity.Delivery) error {
	deliveryM := fromDeliveryDomain(delivery)
	deliveryM.Status = entity.DeliveryAwaiting.String()

	if err := repo.db.WithContext(ctx).Create(deliveryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUnitNotFound.WrapMessage("invalid unit reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required delivery information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery")
	}

	// Update the entity with generated values
	delivery.ID = deliveryM.ID
	delivery.Status = entity.DeliveryAwaiting
	delivery.CreatedAt = deliveryM.CreatedAt

	return nil
}

// FindDeliveryByID retrieves a delivery by its unique ID.
func (repo *deliveryRepository) FindDeliveryByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	var deliveryM model.DeliveryModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deliveryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery by id")
	}

	return toDeliveryDomain(&deliveryM), nil
}

// ListDeliveriesByUnit retrieves a unit's deliveries, newest first.
func (repo *deliveryRepository) ListDeliveriesByUnit(ctx context.Context, unitID uuid.UUID, limit, offset int) ([]*entity.Delivery, error) {
	query := repo.db.WithContext(ctx).
		Where("unit_id = ?", unitID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var deliveryModels []*model.DeliveryModel
	if err := query.Find(&deliveryModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toDeliveryDomainList(deliveryModels), nil
}

// SearchDeliveries retrieves deliveries matching the filter, newest first.
func (repo *deliveryRepository) SearchDeliveries(ctx context.Context, filter repository.DeliverySearchFilter) ([]*entity.Delivery, error) {
	query := repo.db.WithContext(ctx).Model(&model.DeliveryModel{})

	if filter.UnitID != nil {
		query = query.Where("unit_id = ?", *filter.UnitID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var deliveryModels []*model.DeliveryModel
	if err := query.Order("created_at DESC").Find(&deliveryModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toDeliveryDomainList(deliveryModels), nil
}

// RegisterPickup performs the single awaiting -> picked_up transition.
// The status predicate makes the update a compare-and-set: a concurrent
// second submission matches zero rows and surfaces as a conflict instead
// of silently overwriting the first pickup's data.
func (repo *deliveryRepository) RegisterPickup(ctx context.Context, id uuid.UUID, pickedUpByName, pickupPhotoURL string, pickedUpAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ? AND status = ?", id, entity.DeliveryAwaiting.String()).
		Updates(map[string]any{
			"status":            entity.DeliveryPickedUp.String(),
			"picked_up_at":      pickedUpAt,
			"picked_up_by_name": pickedUpByName,
			"pickup_photo_url":  pickupPhotoURL,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to register pickup")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing delivery from one already picked up.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.DeliveryModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to check delivery existence")
		}
		if count == 0 {
			return repository.ErrDeliveryNotFound
		}

		return repository.ErrDeliveryNotAwaiting
	}

	return nil
}

// --- Mapper Functions ---

// toDeliveryDomain converts a GORM DeliveryModel to a domain Delivery entity.
func toDeliveryDomain(data *model.DeliveryModel) *entity.Delivery {
	if data == nil {
		return nil
	}

	return &entity.Delivery{
		ID:              data.ID,
		UnitID:          data.UnitID,
		CreatedByUserID: data.CreatedByUserID,
		PhotoURL:        data.PhotoURL,
		Obs:             data.Obs,
		Status:          entity.DeliveryStatus(data.Status),
		PickedUpAt:      data.PickedUpAt,
		PickedUpByName:  data.PickedUpByName,
		PickupPhotoURL:  data.PickupPhotoURL,
		CreatedAt:       data.CreatedAt,
	}
}

func toDeliveryDomainList(models []*model.DeliveryModel) []*entity.Delivery {
	deliveries := make([]*entity.Delivery, 0, len(models))
	for _, deliveryM := range models {
		deliveries = append(deliveries, toDeliveryDomain(deliveryM))
	}

	return deliveries
}

// fromDeliveryDomain converts a domain Delivery entity to a GORM DeliveryModel for persistence.
func fromDeliveryDomain(data *entity.Delivery) *model.DeliveryModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryModel{
		ID:              data.ID,
		UnitID:          data.UnitID,
		CreatedByUserID: data.CreatedByUserID,
		PhotoURL:        data.PhotoURL,
		Obs:             data.Obs,
		Status:          data.Status.String(),
		PickedUpAt:      data.PickedUpAt,
		PickedUpByName:  data.PickedUpByName,
		PickupPhotoURL:  data.PickupPhotoURL,
	}
}

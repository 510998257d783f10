// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "easy/internal/delivery/context"
	"easy/internal/domain/entity"
	domainerrors "easy/internal/domain/errors"
	"easy/internal/domain/repository"
	"easy/internal/domain/service"
	"easy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deliveryService implements the DeliveryUsecase interface.
type deliveryService struct {
	deliveryRepo   repository.DeliveryRepository
	unitRepo       repository.UnitRepository
	auditRepo      repository.AuditRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// DeliveryServiceParams holds dependencies for DeliveryService, injected by Fx.
type DeliveryServiceParams struct {
	fx.In

	DeliveryRepo   repository.DeliveryRepository
	UnitRepo       repository.UnitRepository
	AuditRepo      repository.AuditRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewDeliveryService is the constructor for deliveryService.
func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	return &deliveryService{
		deliveryRepo:   params.DeliveryRepo,
		unitRepo:       params.UnitRepo,
		auditRepo:      params.AuditRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *deliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDelivery records an arrived parcel and triggers the notification fan-out.
func (srv *deliveryService) RegisterDelivery(ctx context.Context, input *usecase.RegisterDeliveryInput) (*entity.Delivery, error) {
	// The unit must exist; its label travels with the event so the fan-out
	// does not need another lookup to render the notification title.
	unit, err := srv.unitRepo.FindUnitByID(ctx, input.UnitID)
	if err != nil {
		if errors.Is(err, repository.ErrUnitNotFound) {
			return nil, domainerrors.ErrUnitNotFound
		}

		return nil, errors.Wrap(err, "failed to find unit")
	}

	delivery := &entity.Delivery{
		UnitID:          input.UnitID,
		CreatedByUserID: input.CreatedByUserID,
		PhotoURL:        input.PhotoURL,
		Obs:             input.Obs,
		Status:          entity.DeliveryAwaiting,
	}

	if err := srv.deliveryRepo.CreateDelivery(ctx, delivery); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Delivery registered",
		slog.String("delivery_id", delivery.ID.String()),
		slog.String("unit_label", unit.Label),
	)

	srv.recordAudit(ctx, &input.CreatedByUserID, "deliveries", delivery.ID, "register", map[string]string{
		"unit_id": input.UnitID.String(),
	})

	// The delivery row is already committed. Publishing is fire-and-forget:
	// residents can still see the delivery in-app even if the event is lost.
	event := &service.DeliveryRegisteredEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		DeliveryID: delivery.ID.String(),
		UnitID:     unit.ID.String(),
		UnitLabel:  unit.Label,
		Obs:        delivery.Obs,
	}
	if err := srv.eventPublisher.PublishDeliveryRegistered(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish delivery event",
			slog.String("delivery_id", delivery.ID.String()),
			slog.Any("error", err),
		)
	}

	return delivery, nil
}

// GetDelivery retrieves a single delivery.
func (srv *deliveryService) GetDelivery(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	delivery, err := srv.deliveryRepo.FindDeliveryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return nil, domainerrors.ErrDeliveryNotFound
		}

		return nil, err
	}

	return delivery, nil
}

// ListUnitDeliveries retrieves a unit's deliveries, newest first. Staff roles
// may read any unit; a resident must hold an active occupancy in it.
func (srv *deliveryService) ListUnitDeliveries(ctx context.Context, input *usecase.ListUnitDeliveriesInput) ([]*entity.Delivery, error) {
	if err := srv.authorizeUnitAccess(ctx, input.UnitID, input.CallerUserID, input.CallerRoles); err != nil {
		return nil, err
	}

	return srv.deliveryRepo.ListDeliveriesByUnit(ctx, input.UnitID, input.Limit, input.Offset)
}

// authorizeUnitAccess checks that the caller may read the unit's history.
// The resident check reuses the fan-out recipient set, so a soft-deleted
// profile or a deactivated occupancy loses access the same instant it stops
// receiving notifications.
func (srv *deliveryService) authorizeUnitAccess(ctx context.Context, unitID, callerUserID uuid.UUID, roles entity.Roles) error {
	for _, role := range roles {
		if role.IsStaff() {
			return nil
		}
	}

	residents, err := srv.unitRepo.FindActiveResidents(ctx, unitID)
	if err != nil {
		return errors.Wrap(err, "failed to resolve unit residents")
	}

	for _, resident := range residents {
		if resident.UserID == callerUserID {
			return nil
		}
	}

	return domainerrors.ErrForbidden
}

// SearchDeliveries retrieves deliveries matching the filter, newest first.
func (srv *deliveryService) SearchDeliveries(ctx context.Context, input *usecase.SearchDeliveriesInput) ([]*entity.Delivery, error) {
	if input.Status != "" && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown delivery status")
	}

	return srv.deliveryRepo.SearchDeliveries(ctx, repository.DeliverySearchFilter{
		UnitID: input.UnitID,
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
}

// RegisterPickup performs the single awaiting -> picked_up transition.
func (srv *deliveryService) RegisterPickup(ctx context.Context, input *usecase.RegisterPickupInput) (*entity.Delivery, error) {
	if input.PickedUpByName == "" {
		return nil, domainerrors.ErrPickupNameRequired
	}

	pickedUpAt := time.Now()

	err := srv.deliveryRepo.RegisterPickup(ctx, input.DeliveryID, input.PickedUpByName, input.PickupPhotoURL, pickedUpAt)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDeliveryNotFound):
			return nil, domainerrors.ErrDeliveryNotFound
		case errors.Is(err, repository.ErrDeliveryNotAwaiting):
			// A second submission lost the race. The winning pickup's record
			// stays untouched and the caller gets a conflict.
			return nil, domainerrors.ErrDeliveryAlreadyPickedUp
		default:
			return nil, err
		}
	}

	srv.log(ctx).Info("Delivery picked up",
		slog.String("delivery_id", input.DeliveryID.String()),
		slog.String("picked_up_by", input.PickedUpByName),
	)

	srv.recordAudit(ctx, &input.RecordedByUserID, "deliveries", input.DeliveryID, "pickup", map[string]string{
		"picked_up_by_name": input.PickedUpByName,
	})

	return srv.deliveryRepo.FindDeliveryByID(ctx, input.DeliveryID)
}

// recordAudit appends an audit entry. Auditing never fails the operation it records.
func (srv *deliveryService) recordAudit(ctx context.Context, actorUserID *uuid.UUID, tableName string, recordID uuid.UUID, action string, payload map[string]string) {
	entry := &entity.AuditLog{
		ActorUserID: actorUserID,
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

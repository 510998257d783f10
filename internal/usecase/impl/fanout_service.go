package impl

import (
	"context"
	"log/slog"

	deliverycontext "easy/internal/delivery/context"
	"easy/internal/domain/entity"
	"easy/internal/domain/repository"
	"easy/internal/domain/service"
	"easy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultDeliveryBody = "Uma nova entrega chegou para sua unidade"

// fanoutService implements the FanoutUsecase interface.
type fanoutService struct {
	unitRepo         repository.UnitRepository
	notificationRepo repository.NotificationRepository
	subscriptionRepo repository.SubscriptionRepository
	pushSender       service.PushSender
	logger           *slog.Logger
}

// FanoutServiceParams holds dependencies for FanoutService, injected by Fx.
type FanoutServiceParams struct {
	fx.In

	UnitRepo         repository.UnitRepository
	NotificationRepo repository.NotificationRepository
	SubscriptionRepo repository.SubscriptionRepository
	PushSender       service.PushSender
	Logger           *slog.Logger
}

// NewFanoutService is the constructor for fanoutService.
func NewFanoutService(params FanoutServiceParams) usecase.FanoutUsecase {
	return &fanoutService{
		unitRepo:         params.UnitRepo,
		notificationRepo: params.NotificationRepo,
		subscriptionRepo: params.SubscriptionRepo,
		pushSender:       params.PushSender,
		logger:           params.Logger,
	}
}

func (srv *fanoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// NotifyDelivery fans a delivery event out to the unit's active residents.
func (srv *fanoutService) NotifyDelivery(ctx context.Context, input *usecase.DeliveryNotificationInput) (*usecase.DeliveryNotificationOutput, error) {
	residents, err := srv.unitRepo.FindActiveResidents(ctx, input.UnitID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve unit residents")
	}

	// A unit with no active residents is a normal outcome, not an error:
	// the delivery stays visible at the front desk either way.
	if len(residents) == 0 {
		srv.log(ctx).Info("No active residents to notify",
			slog.String("delivery_id", input.DeliveryID.String()),
			slog.String("unit_id", input.UnitID.String()),
		)

		return &usecase.DeliveryNotificationOutput{}, nil
	}

	body := input.Obs
	if body == "" {
		body = defaultDeliveryBody
	}

	notifications := make([]*entity.Notification, 0, len(residents))
	for _, resident := range residents {
		notifications = append(notifications, &entity.Notification{
			UserID: resident.UserID,
			Type:   entity.NotificationTypeDelivery,
			Title:  "Nova Entrega - " + input.UnitLabel,
			Body:   body,
			Data: map[string]string{
				"delivery_id": input.DeliveryID.String(),
				"unit_id":     input.UnitID.String(),
				"unit_label":  input.UnitLabel,
			},
		})
	}

	// The in-app records are the durable part of the fan-out. Everything
	// after this insert is best effort.
	if err := srv.notificationRepo.BatchCreateNotifications(ctx, notifications); err != nil {
		return nil, errors.Wrap(err, "failed to create notifications")
	}

	pushSent := srv.dispatchPush(ctx, residents, notifications)

	srv.log(ctx).Info("Delivery fan-out completed",
		slog.String("delivery_id", input.DeliveryID.String()),
		slog.Int("residents_notified", len(notifications)),
		slog.Int("push_sent", pushSent),
	)

	return &usecase.DeliveryNotificationOutput{
		ResidentsNotified: len(notifications),
		PushSent:          pushSent,
	}, nil
}

// dispatchPush attempts one Web Push per stored subscription of the notified
// residents and returns the number of accepted dispatches. Endpoints reported
// gone by the push service are deleted so they are not retried on the next
// delivery.
func (srv *fanoutService) dispatchPush(ctx context.Context, residents []*entity.UnitResident, notifications []*entity.Notification) int {
	userIDs := make([]uuid.UUID, 0, len(residents))
	for _, resident := range residents {
		userIDs = append(userIDs, resident.UserID)
	}

	subscriptions, err := srv.subscriptionRepo.FindSubscriptionsByUsers(ctx, userIDs)
	if err != nil {
		srv.log(ctx).Error("Failed to load push subscriptions", slog.Any("error", err))

		return 0
	}

	if len(subscriptions) == 0 {
		return 0
	}

	notificationByUser := make(map[uuid.UUID]*entity.Notification, len(notifications))
	for _, notification := range notifications {
		notificationByUser[notification.UserID] = notification
	}

	pushSent := 0
	pushedIDs := make([]uuid.UUID, 0, len(subscriptions))

	for _, subscription := range subscriptions {
		notification, ok := notificationByUser[subscription.UserID]
		if !ok {
			continue
		}

		payload := &service.PushPayload{
			Title: notification.Title,
			Body:  notification.Body,
			Data:  notification.Data,
		}

		if err := srv.pushSender.Send(ctx, subscription, payload); err != nil {
			if errors.Is(err, service.ErrSubscriptionGone) {
				srv.log(ctx).Info("Dropping gone push subscription",
					slog.String("subscription_id", subscription.ID.String()),
				)
				if delErr := srv.subscriptionRepo.DeleteSubscription(ctx, subscription.ID); delErr != nil {
					srv.log(ctx).Warn("Failed to drop gone subscription", slog.Any("error", delErr))
				}

				continue
			}

			srv.log(ctx).Warn("Push dispatch failed",
				slog.String("subscription_id", subscription.ID.String()),
				slog.Any("error", err),
			)

			continue
		}

		pushSent++
		pushedIDs = append(pushedIDs, notification.ID)
	}

	if len(pushedIDs) > 0 {
		if err := srv.notificationRepo.MarkPushSent(ctx, pushedIDs); err != nil {
			srv.log(ctx).Warn("Failed to flag pushed notifications", slog.Any("error", err))
		}
	}

	return pushSent
}

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

// subscriptionService implements the SubscriptionUsecase interface.
type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	txManager        repository.TransactionManager
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	TxManager        repository.TransactionManager
	Logger           *slog.Logger
}

// NewSubscriptionService is the constructor for subscriptionService.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		txManager:        params.TxManager,
		logger:           params.Logger,
	}
}

func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Subscribe stores the caller's push descriptor, replacing any previous ones.
func (srv *subscriptionService) Subscribe(ctx context.Context, input *usecase.SubscribeInput) (*entity.PushSubscription, error) {
	if input.Subscription.Endpoint == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("subscription endpoint is required")
	}

	subscription := &entity.PushSubscription{
		UserID:       input.UserID,
		Subscription: input.Subscription,
	}

	// Replace, not merge: the delete and insert share one transaction so a
	// crash in between cannot leave the user with zero or duplicate rows.
	err := srv.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		if err := txRepo.SubscriptionRepo().DeleteSubscriptionsByUser(ctx, input.UserID); err != nil {
			return errors.Wrap(err, "failed to clear previous subscriptions")
		}

		return txRepo.SubscriptionRepo().CreateSubscription(ctx, subscription)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Push subscription stored",
		slog.String("user_id", input.UserID.String()),
		slog.String("subscription_id", subscription.ID.String()),
	)

	return subscription, nil
}

// Unsubscribe removes every stored subscription of the caller.
func (srv *subscriptionService) Unsubscribe(ctx context.Context, userID uuid.UUID) error {
	if err := srv.subscriptionRepo.DeleteSubscriptionsByUser(ctx, userID); err != nil {
		return err
	}

	srv.log(ctx).Info("Push subscriptions removed", slog.String("user_id", userID.String()))

	return nil
}

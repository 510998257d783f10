package impl

import (
	"context"
	"testing"

	"easy/internal/domain/entity"
	"easy/internal/domain/repository"
	mockRepo "easy/internal/mocks/repository"
	"easy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionService_Subscribe_ReplacesPrevious(t *testing.T) {
	mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockTxManager := mockRepo.NewMockTransactionManager(t)

	svc := NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: mockSubscriptionRepo,
		TxManager:        mockTxManager,
		Logger:           newTestLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()

	txSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	txSubscriptionRepo.EXPECT().DeleteSubscriptionsByUser(ctx, userID).Return(nil)
	txSubscriptionRepo.EXPECT().
		CreateSubscription(ctx, mock.AnythingOfType("*entity.PushSubscription")).
		Return(nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockFactory.EXPECT().SubscriptionRepo().Return(txSubscriptionRepo)

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	subscription, err := svc.Subscribe(ctx, &usecase.SubscribeInput{
		UserID: userID,
		Subscription: entity.WebPushDescriptor{
			Endpoint: "https://push.example.com/sub/xyz",
			Keys:     entity.WebPushKeys{P256dh: "pk", Auth: "secret"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, subscription)
	assert.Equal(t, userID, subscription.UserID)
	assert.Equal(t, "https://push.example.com/sub/xyz", subscription.Subscription.Endpoint)
}

func TestSubscriptionService_Subscribe_EndpointRequired(t *testing.T) {
	mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockTxManager := mockRepo.NewMockTransactionManager(t)

	svc := NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: mockSubscriptionRepo,
		TxManager:        mockTxManager,
		Logger:           newTestLogger(),
	})

	subscription, err := svc.Subscribe(context.Background(), &usecase.SubscribeInput{
		UserID: uuid.New(),
	})
	require.Error(t, err)
	assert.Nil(t, subscription)
}

func TestSubscriptionService_Subscribe_TransactionRollsBack(t *testing.T) {
	mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockTxManager := mockRepo.NewMockTransactionManager(t)

	svc := NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: mockSubscriptionRepo,
		TxManager:        mockTxManager,
		Logger:           newTestLogger(),
	})

	ctx := context.Background()

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("deadlock detected"))

	subscription, err := svc.Subscribe(ctx, &usecase.SubscribeInput{
		UserID: uuid.New(),
		Subscription: entity.WebPushDescriptor{
			Endpoint: "https://push.example.com/sub/xyz",
		},
	})
	require.Error(t, err)
	assert.Nil(t, subscription)
}

func TestSubscriptionService_Unsubscribe(t *testing.T) {
	mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockTxManager := mockRepo.NewMockTransactionManager(t)

	svc := NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: mockSubscriptionRepo,
		TxManager:        mockTxManager,
		Logger:           newTestLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()

	mockSubscriptionRepo.EXPECT().DeleteSubscriptionsByUser(ctx, userID).Return(nil)

	err := svc.Unsubscribe(ctx, userID)
	require.NoError(t, err)
}

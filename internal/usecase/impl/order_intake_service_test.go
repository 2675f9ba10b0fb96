package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPendingOrder(t *testing.T, env *testEnv, status entity.OrderStatus) *entity.Order {
	t.Helper()

	customer := env.createUser(t, uuid.NewString()+"@example.com", false)
	order := &entity.Order{
		CustomerID:   customer.UserID,
		Status:       status,
		DispatchDate: time.Now().UTC(),
		TotalAmount:  decimal.Zero,
	}
	require.NoError(t, env.orders.Create(context.Background(), order))

	return order
}

func orderEvent(eventType service.OrderEventType, orderID string) *service.OrderEvent {
	return &service.OrderEvent{Type: eventType, OrderID: orderID, TotalAmount: "0.00", OccurredAt: time.Now().UTC()}
}

func TestOrderIntakeService_AcceptsPendingOrder(t *testing.T) {
	env := newTestEnv(t)
	srv := NewOrderIntakeService(OrderIntakeServiceParams{TxManager: env.txManager, Logger: env.logger})
	order := createPendingOrder(t, env, entity.OrderStatusPending)

	require.NoError(t, srv.HandleOrderEvent(context.Background(), orderEvent(service.OrderEventCreated, order.ID.String())))

	stored, err := env.orders.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, stored.Status)

	// Redelivery leaves the order where it is
	require.NoError(t, srv.HandleOrderEvent(context.Background(), orderEvent(service.OrderEventCreated, order.ID.String())))
	stored, err = env.orders.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, stored.Status)
}

func TestOrderIntakeService_KeepsStaffStatus(t *testing.T) {
	env := newTestEnv(t)
	srv := NewOrderIntakeService(OrderIntakeServiceParams{TxManager: env.txManager, Logger: env.logger})
	order := createPendingOrder(t, env, entity.OrderStatusCanceled)

	require.NoError(t, srv.HandleOrderEvent(context.Background(), orderEvent(service.OrderEventCreated, order.ID.String())))

	stored, err := env.orders.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCanceled, stored.Status)
}

func TestOrderIntakeService_IgnoresOtherEvents(t *testing.T) {
	env := newTestEnv(t)
	srv := NewOrderIntakeService(OrderIntakeServiceParams{TxManager: env.txManager, Logger: env.logger})
	order := createPendingOrder(t, env, entity.OrderStatusPending)

	for _, eventType := range []service.OrderEventType{service.OrderEventUpdated, service.OrderEventDeleted} {
		require.NoError(t, srv.HandleOrderEvent(context.Background(), orderEvent(eventType, order.ID.String())))
	}

	stored, err := env.orders.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, stored.Status)
}

func TestOrderIntakeService_MissingOrMalformed(t *testing.T) {
	env := newTestEnv(t)
	srv := NewOrderIntakeService(OrderIntakeServiceParams{TxManager: env.txManager, Logger: env.logger})

	assert.NoError(t, srv.HandleOrderEvent(context.Background(), orderEvent(service.OrderEventCreated, uuid.NewString())))

	err := srv.HandleOrderEvent(context.Background(), orderEvent(service.OrderEventCreated, "not-a-uuid"))
	assert.ErrorIs(t, err, usecase.ErrMalformedOrderEvent)
}

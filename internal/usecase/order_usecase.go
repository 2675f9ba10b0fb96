package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderPatch carries the staff-editable order fields.
type OrderPatch struct {
	Status       *entity.OrderStatus
	DispatchDate *time.Time
	ArrivalDate  *time.Time
	From         *string
	To           *string
}

// OrderItemInput defines a line added to an order.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// OrderItemPatch carries the line fields to change.
type OrderItemPatch struct {
	ProductID *uuid.UUID
	Quantity  *int
}

// OrderUsecase manages orders. Customers see their own orders, staff see
// and edit all of them.
type OrderUsecase interface {
	// Checkout converts the acting user's cart into a pending order.
	Checkout(ctx context.Context, principal *entity.Principal) (*entity.Order, error)
	ListOrders(ctx context.Context, principal *entity.Principal) ([]*entity.Order, error)
	GetOrder(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Order, error)
	UpdateOrder(ctx context.Context, principal *entity.Principal, id uuid.UUID, patch *OrderPatch) (*entity.Order, error)
	DeleteOrder(ctx context.Context, principal *entity.Principal, id uuid.UUID) error
	AddItem(ctx context.Context, principal *entity.Principal, orderID uuid.UUID, input *OrderItemInput) (*entity.Order, error)
	UpdateItem(ctx context.Context, principal *entity.Principal, orderID, itemID uuid.UUID, patch *OrderItemPatch) (*entity.Order, error)
	DeleteItem(ctx context.Context, principal *entity.Principal, orderID, itemID uuid.UUID) (*entity.Order, error)
}

package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderItemNotFound = errors.New("order item not found")
)

// OrderRepository persists orders and their items.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	// FindByID loads the order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// List returns orders with items, restricted to one customer when customerID is set.
	List(ctx context.Context, customerID *uuid.UUID) ([]*entity.Order, error)
	// Update persists status, dates and addresses. The total is left alone.
	Update(ctx context.Context, order *entity.Order) error
	UpdateTotal(ctx context.Context, orderID uuid.UUID, total decimal.Decimal) error
	// Delete removes the order and its items.
	Delete(ctx context.Context, id uuid.UUID) error

	CreateItem(ctx context.Context, item *entity.OrderItem) error
	FindItem(ctx context.Context, orderID, itemID uuid.UUID) (*entity.OrderItem, error)
	UpdateItem(ctx context.Context, item *entity.OrderItem) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	// ItemTotals returns the frozen totals of every item of the order.
	ItemTotals(ctx context.Context, orderID uuid.UUID) ([]decimal.Decimal, error)
	CountItemsByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}

package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrDuplicateCartItem is returned when the (user, product) line already exists.
	ErrDuplicateCartItem = errors.New("cart item already exists")
	// ErrQuantityLimit is returned when an increment would push a line past entity.MaxItemQuantity.
	ErrQuantityLimit = errors.New("cart item quantity limit reached")
)

// CartRepository persists cart lines.
type CartRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error)
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.CartItem, error)
	Create(ctx context.Context, item *entity.CartItem) error
	// IncrementQuantity atomically adds delta to the (user, product) line
	// unless the sum would exceed entity.MaxItemQuantity.
	IncrementQuantity(ctx context.Context, userID, productID uuid.UUID, delta int) error
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByIDs removes the given lines and reports how many rows went away.
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
	DeleteByProduct(ctx context.Context, productID uuid.UUID) error
}

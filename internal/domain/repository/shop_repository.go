package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrShopNotFound      = errors.New("shop not found")
	ErrDuplicateShopName = errors.New("shop name already exists")
)

// ShopRepository persists shops.
type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)
	List(ctx context.Context) ([]*entity.Shop, error)
	Update(ctx context.Context, shop *entity.Shop) error
	Delete(ctx context.Context, id uuid.UUID) error
}

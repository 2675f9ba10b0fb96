package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrDuplicateProductName = errors.New("product name already exists")
	// ErrProductReferenced is returned when a delete would orphan order items.
	ErrProductReferenced = errors.New("product is referenced by order items")
	// ErrUnknownCategory is returned when a product links a missing category.
	ErrUnknownCategory = errors.New("unknown category")
)

// ProductOrder is one ordering key of a product listing.
type ProductOrder struct {
	Field string
	Desc  bool
}

// ProductFilter narrows and sorts a product listing.
type ProductFilter struct {
	// Search matches a case-insensitive substring of the product name.
	Search   string
	Ordering []ProductOrder
}

// ProductRepository persists products and their category links.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// FindByID loads the product with its category IDs and shop owner.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	// Update persists the product and replaces its category links.
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByShop(ctx context.Context, shopID uuid.UUID) (int64, error)
}

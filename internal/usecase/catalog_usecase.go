// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// MediaUpload is an uploaded image file.
type MediaUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// ShopInput defines the data required to open a shop.
type ShopInput struct {
	Name        string
	Description string
	Address     string
}

// ShopPatch carries the shop fields to change. Nil fields are left alone.
type ShopPatch struct {
	Name        *string
	Description *string
	Address     *string
}

// CategoryInput defines the data required to create a category.
type CategoryInput struct {
	Name        string
	Description string
}

// CategoryPatch carries the category fields to change.
type CategoryPatch struct {
	Name        *string
	Description *string
}

// ProductInput defines the data required to create a product.
type ProductInput struct {
	Name        string
	Price       decimal.Decimal
	Discount    int
	Description string
	ShopID      uuid.UUID
	CategoryIDs []uuid.UUID
}

// ProductPatch carries the product fields to change. A non-nil CategoryIDs
// replaces every category link.
type ProductPatch struct {
	Name        *string
	Price       *decimal.Decimal
	Discount    *int
	Description *string
	ShopID      *uuid.UUID
	CategoryIDs *[]uuid.UUID
}

// ProductQuery filters a product listing.
type ProductQuery struct {
	Search string
	// Ordering is a comma separated list of fields, "-" prefixed for descending.
	Ordering string
}

// ShopUsecase manages shops. Every operation takes the acting principal,
// nil for anonymous callers.
type ShopUsecase interface {
	ListShops(ctx context.Context, principal *entity.Principal) ([]*entity.Shop, error)
	GetShop(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Shop, error)
	CreateShop(ctx context.Context, principal *entity.Principal, input *ShopInput) (*entity.Shop, error)
	UpdateShop(ctx context.Context, principal *entity.Principal, id uuid.UUID, patch *ShopPatch) (*entity.Shop, error)
	DeleteShop(ctx context.Context, principal *entity.Principal, id uuid.UUID) error
	UploadAvatar(ctx context.Context, principal *entity.Principal, id uuid.UUID, upload *MediaUpload) (*entity.Shop, error)
	// ShopQRCode renders a PNG QR code linking to the shop.
	ShopQRCode(ctx context.Context, principal *entity.Principal, id uuid.UUID) ([]byte, error)
	// ResolveShopQR returns the shop referenced by a scanned QR payload.
	ResolveShopQR(ctx context.Context, principal *entity.Principal, payload string) (*entity.Shop, error)
}

// CategoryUsecase manages categories. Mutations are staff-only.
type CategoryUsecase interface {
	ListCategories(ctx context.Context, principal *entity.Principal) ([]*entity.Category, error)
	GetCategory(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Category, error)
	CreateCategory(ctx context.Context, principal *entity.Principal, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, principal *entity.Principal, id uuid.UUID, patch *CategoryPatch) (*entity.Category, error)
	DeleteCategory(ctx context.Context, principal *entity.Principal, id uuid.UUID) error
}

// ProductUsecase manages products. Mutations require owning the product's shop.
type ProductUsecase interface {
	ListProducts(ctx context.Context, principal *entity.Principal, query *ProductQuery) ([]*entity.Product, error)
	GetProduct(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, principal *entity.Principal, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, principal *entity.Principal, id uuid.UUID, patch *ProductPatch) (*entity.Product, error)
	// DeleteProduct removes the product with its cart lines and reviews.
	// Products referenced by order items cannot be deleted.
	DeleteProduct(ctx context.Context, principal *entity.Principal, id uuid.UUID) error
	UploadImage(ctx context.Context, principal *entity.Principal, id uuid.UUID, upload *MediaUpload) (*entity.Product, error)
}

package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCartItemInput defines a product to put into the cart.
type AddCartItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// AddCartItemOutput returns the cart line after the add.
type AddCartItemOutput struct {
	Item *entity.CartItem
	// Created is false when the quantity was merged into an existing line.
	Created bool
}

// CartUsecase manages the cart of the acting user.
type CartUsecase interface {
	ListCart(ctx context.Context, principal *entity.Principal) ([]*entity.CartItem, error)
	// AddItem creates a line or adds the quantity to the existing line for the product.
	AddItem(ctx context.Context, principal *entity.Principal, input *AddCartItemInput) (*AddCartItemOutput, error)
	UpdateQuantity(ctx context.Context, principal *entity.Principal, id uuid.UUID, quantity int) (*entity.CartItem, error)
	RemoveItem(ctx context.Context, principal *entity.Principal, id uuid.UUID) error
}

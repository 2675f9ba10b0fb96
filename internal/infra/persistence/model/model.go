// Package model holds the GORM table mappings of the storefront schema.
package model

import (
	"github.com/google/uuid"
)

// NewID returns a time-ordered UUID for a new row.
func NewID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}

// All lists every model in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&UserModel{},
		&ShopModel{},
		&CategoryModel{},
		&ProductModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderItemModel{},
		&ReviewModel{},
	}
}

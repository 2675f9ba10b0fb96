package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a line in a user's shopping cart. A user holds at most one
// line per product.
type CartItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user"`
	ProductID uuid.UUID `json:"product"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

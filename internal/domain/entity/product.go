package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// MaxDiscount is the highest discount percentage a product may carry.
	MaxDiscount = 100
	// PriceScale is the number of fractional digits of monetary amounts.
	PriceScale = 2
	// PriceIntegerDigits is the number of integer digits a stored amount may have.
	PriceIntegerDigits = 8
	// MaxItemQuantity is the largest quantity a cart or order line may hold.
	MaxItemQuantity = 32767
)

// Product is an item sold by a shop.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Discount    int             `json:"discount"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	AddedAt     time.Time       `json:"added_at"`
	ShopID      uuid.UUID       `json:"shop"`
	CategoryIDs []uuid.UUID     `json:"categories"`

	// ShopOwnerID is the owner of the product's shop, used for object permissions.
	ShopOwnerID uuid.UUID `json:"-"`
}

// MarshalJSON renders the price with exactly PriceScale fractional digits.
func (p Product) MarshalJSON() ([]byte, error) {
	type product Product

	return json.Marshal(struct {
		product
		Price string `json:"price"`
	}{
		product: product(p),
		Price:   p.Price.StringFixed(PriceScale),
	})
}

// DiscountedPrice is the unit price after the percentage discount.
func (p *Product) DiscountedPrice() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(MaxDiscount - p.Discount))).Div(decimal.NewFromInt(MaxDiscount))
}

// ValidPrice reports whether the price fits numeric(10,2) and is not negative.
func ValidPrice(price decimal.Decimal) bool {
	return ValidAmount(price)
}

// ValidAmount reports whether a monetary amount fits numeric(10,2) and is not negative.
func ValidAmount(amount decimal.Decimal) bool {
	if amount.IsNegative() {
		return false
	}
	if !amount.Equal(amount.Truncate(PriceScale)) {
		return false
	}

	return amount.LessThan(decimal.New(1, PriceIntegerDigits))
}

// ValidQuantity reports whether a line quantity is in [1, MaxItemQuantity].
func ValidQuantity(quantity int) bool {
	return quantity >= 1 && quantity <= MaxItemQuantity
}

// ValidDiscount reports whether the discount is a percentage in [0, 100].
func ValidDiscount(discount int) bool {
	return discount >= 0 && discount <= MaxDiscount
}

// LineTotal is the frozen total of an order line:
// price * (100 - discount) / 100 * quantity, rounded half away from zero to cents.
func LineTotal(price decimal.Decimal, discount, quantity int) decimal.Decimal {
	unit := price.Mul(decimal.NewFromInt(int64(MaxDiscount - discount)))

	return unit.Mul(decimal.NewFromInt(int64(quantity))).Div(decimal.NewFromInt(MaxDiscount)).Round(PriceScale)
}

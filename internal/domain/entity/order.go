package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCanceled   OrderStatus = "canceled"
	OrderStatusReturned   OrderStatus = "returned"
)

// IsValid checks if the status is one of the known values.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusPaid, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCanceled, OrderStatusReturned:
		return true
	default:
		return false
	}
}

// Order is a customer's purchase. TotalAmount always equals the sum of the
// frozen totals of its items.
type Order struct {
	ID           uuid.UUID       `json:"id"`
	CustomerID   uuid.UUID       `json:"customer"`
	Status       OrderStatus     `json:"status"`
	DispatchDate time.Time       `json:"dispatch_date"`
	ArrivalDate  *time.Time      `json:"arrival_date"`
	From         string          `json:"from_field"`
	To           string          `json:"to_field"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	CreatedAt    time.Time       `json:"created_at"`
	Items        []*OrderItem    `json:"items"`
}

// OrderItem is an order line. TotalAmount is computed once when the line is
// written and is not affected by later product price changes.
type OrderItem struct {
	ID          uuid.UUID       `json:"id"`
	OrderID     uuid.UUID       `json:"order"`
	ProductID   uuid.UUID       `json:"product"`
	Quantity    int             `json:"quantity"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// MarshalJSON renders the total with exactly PriceScale fractional digits.
func (o Order) MarshalJSON() ([]byte, error) {
	type order Order

	return json.Marshal(struct {
		order
		TotalAmount string `json:"total_amount"`
	}{
		order:       order(o),
		TotalAmount: o.TotalAmount.StringFixed(PriceScale),
	})
}

// MarshalJSON renders the total with exactly PriceScale fractional digits.
func (i OrderItem) MarshalJSON() ([]byte, error) {
	type orderItem OrderItem

	return json.Marshal(struct {
		orderItem
		TotalAmount string `json:"total_amount"`
	}{
		orderItem:   orderItem(i),
		TotalAmount: i.TotalAmount.StringFixed(PriceScale),
	})
}

// SumTotals adds up line totals. An empty set sums to zero.
func SumTotals(totals []decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, total := range totals {
		sum = sum.Add(total)
	}

	return sum.Round(PriceScale)
}

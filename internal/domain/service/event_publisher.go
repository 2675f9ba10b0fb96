package service

import (
	"context"
	"time"
)

// OrderEventType names an order lifecycle event.
type OrderEventType string

const (
	OrderEventCreated OrderEventType = "order.created"
	OrderEventUpdated OrderEventType = "order.updated"
	OrderEventDeleted OrderEventType = "order.deleted"
)

// OrderEvent is published after an order change has been committed.
type OrderEvent struct {
	RequestID   string         `json:"request_id,omitempty"`
	Type        OrderEventType `json:"type"`
	OrderID     string         `json:"order_id"`
	CustomerID  string         `json:"customer_id"`
	Status      string         `json:"status"`
	TotalAmount string         `json:"total_amount"`
	ItemCount   int            `json:"item_count"`
	OccurredAt  time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event to subscribers.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

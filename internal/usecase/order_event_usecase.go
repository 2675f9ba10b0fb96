package usecase

import (
	"context"
	"errors"

	"storefront/internal/domain/service"
)

// ErrMalformedOrderEvent marks an event that can never be applied.
var ErrMalformedOrderEvent = errors.New("malformed order event")

// OrderEventUsecase consumes order events delivered by the message broker.
type OrderEventUsecase interface {
	// HandleOrderEvent applies one event. Events for orders that no longer
	// exist are acknowledged without effect.
	HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error
}

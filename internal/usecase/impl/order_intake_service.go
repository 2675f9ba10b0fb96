package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderIntakeService moves freshly placed orders into processing once the
// event worker receives them.
type orderIntakeService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// OrderIntakeServiceParams holds dependencies for OrderIntakeService, injected by Fx
type OrderIntakeServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewOrderIntakeService is the constructor for orderIntakeService
func NewOrderIntakeService(params OrderIntakeServiceParams) usecase.OrderEventUsecase {
	return &orderIntakeService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *orderIntakeService) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(
		slog.String("event_type", string(event.Type)),
		slog.String("order_id", event.OrderID),
	)

	if event.Type != service.OrderEventCreated {
		logger.DebugContext(ctx, "Order event acknowledged")

		return nil
	}

	orderID, err := uuid.Parse(event.OrderID)
	if err != nil {
		return errors.Wrapf(usecase.ErrMalformedOrderEvent, "order id %q", event.OrderID)
	}

	var accepted bool
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orderRepo := factory.NewOrderRepository()

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		// Staff may already have moved the order on
		if order.Status != entity.OrderStatusPending {
			return nil
		}

		order.Status = entity.OrderStatusProcessing
		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to accept order")
		}
		accepted = true

		return nil
	})
	if errors.Is(err, repository.ErrOrderNotFound) {
		logger.InfoContext(ctx, "Order event for missing order ignored")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to handle order.created")
	}

	if accepted {
		logger.InfoContext(ctx, "Order accepted for processing", slog.String("total", event.TotalAmount))
	}

	return nil
}

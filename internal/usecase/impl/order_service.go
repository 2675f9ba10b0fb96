package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/policy"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type orderService struct {
	txManager  repository.TransactionManager
	orderRepo  repository.OrderRepository
	authorizer *policy.Authorizer
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	OrderRepo  repository.OrderRepository
	Authorizer *policy.Authorizer
	Publisher  service.EventPublisher `optional:"true"`
	Logger     *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:  params.TxManager,
		orderRepo:  params.OrderRepo,
		authorizer: params.Authorizer,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout converts the principal's cart into a pending order in one
// transaction. The consumed cart lines are deleted by ID; when fewer rows go
// away than were read, another checkout took them and everything rolls back.
func (srv *orderService) Checkout(ctx context.Context, principal *entity.Principal) (*entity.Order, error) {
	if err := srv.authorizer.Check(policy.ResourceOrder, policy.ActionCreate, principal); err != nil {
		return nil, err
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		cartRepo := factory.NewCartRepository()
		orderRepo := factory.NewOrderRepository()
		productRepo := factory.NewProductRepository()

		cartItems, err := cartRepo.ListByUser(ctx, principal.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}
		if len(cartItems) == 0 {
			return domainerrors.ErrEmptyCart
		}

		now := time.Now().UTC()
		newOrder := &entity.Order{
			CustomerID:   principal.UserID,
			Status:       entity.OrderStatusPending,
			DispatchDate: now,
			TotalAmount:  decimal.Zero,
			CreatedAt:    now,
		}
		if err := orderRepo.Create(ctx, newOrder); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		consumed := make([]uuid.UUID, 0, len(cartItems))
		for _, cartItem := range cartItems {
			item := &entity.OrderItem{
				OrderID:   newOrder.ID,
				ProductID: cartItem.ProductID,
				Quantity:  cartItem.Quantity,
			}
			if err := computeItemTotal(ctx, productRepo, item); err != nil {
				return err
			}
			if err := orderRepo.CreateItem(ctx, item); err != nil {
				return errors.Wrap(err, "failed to create order item")
			}
			consumed = append(consumed, cartItem.ID)
		}

		deleted, err := cartRepo.DeleteByIDs(ctx, consumed)
		if err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}
		if deleted != int64(len(consumed)) {
			return domainerrors.ErrCheckoutConflict
		}

		if _, err := recalculateTotal(ctx, orderRepo, newOrder.ID); err != nil {
			return err
		}

		order, err = findOrder(ctx, orderRepo, newOrder.ID)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.String("order_id", order.ID.String()),
		slog.Int("items", len(order.Items)),
		slog.String("total", order.TotalAmount.StringFixed(entity.PriceScale)))
	srv.publish(ctx, service.OrderEventCreated, order)

	return order, nil
}

// ListOrders returns the principal's orders, or every order for staff.
func (srv *orderService) ListOrders(ctx context.Context, principal *entity.Principal) ([]*entity.Order, error) {
	if err := srv.authorizer.Check(policy.ResourceOrder, policy.ActionList, principal); err != nil {
		return nil, err
	}

	var customerID *uuid.UUID
	if !principal.IsStaff() {
		customerID = &principal.UserID
	}

	orders, err := srv.orderRepo.List(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns one order. Orders of other customers are reported as missing.
func (srv *orderService) GetOrder(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Order, error) {
	if err := srv.authorizer.Check(policy.ResourceOrder, policy.ActionRetrieve, principal); err != nil {
		return nil, err
	}

	order, err := findOrder(ctx, srv.orderRepo, id)
	if err != nil {
		return nil, err
	}
	if !principal.IsStaff() && order.CustomerID != principal.UserID {
		return nil, domainerrors.ErrOrderNotFound
	}

	if err := srv.authorizer.CheckObject(policy.ResourceOrder, policy.ActionRetrieve, principal, policy.Owned(order.CustomerID)); err != nil {
		return nil, err
	}

	return order, nil
}

// UpdateOrder changes status, dates and addresses. Staff only.
func (srv *orderService) UpdateOrder(ctx context.Context, principal *entity.Principal, id uuid.UUID, patch *usecase.OrderPatch) (*entity.Order, error) {
	if err := srv.authorizer.Check(policy.ResourceOrder, policy.ActionUpdate, principal); err != nil {
		return nil, err
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orderRepo := factory.NewOrderRepository()

		current, err := findOrder(ctx, orderRepo, id)
		if err != nil {
			return err
		}

		if patch.Status != nil {
			current.Status = *patch.Status
		}
		if patch.DispatchDate != nil {
			current.DispatchDate = *patch.DispatchDate
		}
		if patch.ArrivalDate != nil {
			current.ArrivalDate = patch.ArrivalDate
		}
		if patch.From != nil {
			current.From = *patch.From
		}
		if patch.To != nil {
			current.To = *patch.To
		}

		if err := orderRepo.Update(ctx, current); err != nil {
			return translateOrderError(err, "failed to update order")
		}

		order, err = findOrder(ctx, orderRepo, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, service.OrderEventUpdated, order)

	return order, nil
}

// DeleteOrder removes an order with its items. Staff only.
func (srv *orderService) DeleteOrder(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	if err := srv.authorizer.Check(policy.ResourceOrder, policy.ActionDestroy, principal); err != nil {
		return err
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orderRepo := factory.NewOrderRepository()

		var err error
		order, err = findOrder(ctx, orderRepo, id)
		if err != nil {
			return err
		}

		if err := orderRepo.Delete(ctx, id); err != nil {
			return translateOrderError(err, "failed to delete order")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.publish(ctx, service.OrderEventDeleted, order)

	return nil
}

// AddItem appends a line to an order and recomputes its total. Staff only.
func (srv *orderService) AddItem(ctx context.Context, principal *entity.Principal, orderID uuid.UUID, input *usecase.OrderItemInput) (*entity.Order, error) {
	if err := srv.authorizer.Check(policy.ResourceOrder, policy.ActionUpdate, principal); err != nil {
		return nil, err
	}
	if !entity.ValidQuantity(input.Quantity) {
		return nil, domainerrors.ErrInvalidQuantity
	}

	return srv.mutateItems(ctx, orderID, func(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) error {
		item := &entity.OrderItem{
			OrderID:   orderID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
		}
		if err := computeItemTotal(ctx, productRepo, item); err != nil {
			return err
		}

		if err := orderRepo.CreateItem(ctx, item); err != nil {
			return translateOrderError(err, "failed to create order item")
		}

		return nil
	})
}

// UpdateItem changes a line's product or quantity and recomputes the totals. Staff only.
func (srv *orderService) UpdateItem(ctx context.Context, principal *entity.Principal, orderID, itemID uuid.UUID, patch *usecase.OrderItemPatch) (*entity.Order, error) {
	if err := srv.authorizer.Check(policy.ResourceOrder, policy.ActionUpdate, principal); err != nil {
		return nil, err
	}
	if patch.Quantity != nil && !entity.ValidQuantity(*patch.Quantity) {
		return nil, domainerrors.ErrInvalidQuantity
	}

	return srv.mutateItems(ctx, orderID, func(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) error {
		item, err := orderRepo.FindItem(ctx, orderID, itemID)
		if err != nil {
			return translateOrderError(err, "failed to find order item")
		}

		if patch.ProductID != nil {
			item.ProductID = *patch.ProductID
		}
		if patch.Quantity != nil {
			item.Quantity = *patch.Quantity
		}
		if err := computeItemTotal(ctx, productRepo, item); err != nil {
			return err
		}

		if err := orderRepo.UpdateItem(ctx, item); err != nil {
			return translateOrderError(err, "failed to update order item")
		}

		return nil
	})
}

// DeleteItem removes a line and recomputes the order total. Staff only.
func (srv *orderService) DeleteItem(ctx context.Context, principal *entity.Principal, orderID, itemID uuid.UUID) (*entity.Order, error) {
	if err := srv.authorizer.Check(policy.ResourceOrder, policy.ActionUpdate, principal); err != nil {
		return nil, err
	}

	return srv.mutateItems(ctx, orderID, func(orderRepo repository.OrderRepository, _ repository.ProductRepository) error {
		if _, err := orderRepo.FindItem(ctx, orderID, itemID); err != nil {
			return translateOrderError(err, "failed to find order item")
		}

		if err := orderRepo.DeleteItem(ctx, itemID); err != nil {
			return translateOrderError(err, "failed to delete order item")
		}

		return nil
	})
}

// mutateItems runs an item change on an existing order, then recalculates
// the order total in the same transaction and publishes the update.
func (srv *orderService) mutateItems(
	ctx context.Context,
	orderID uuid.UUID,
	mutate func(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) error,
) (*entity.Order, error) {
	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orderRepo := factory.NewOrderRepository()

		if _, err := findOrder(ctx, orderRepo, orderID); err != nil {
			return err
		}

		if err := mutate(orderRepo, factory.NewProductRepository()); err != nil {
			return err
		}

		if _, err := recalculateTotal(ctx, orderRepo, orderID); err != nil {
			return err
		}

		var err error
		order, err = findOrder(ctx, orderRepo, orderID)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, service.OrderEventUpdated, order)

	return order, nil
}

// publish sends an order event. Failures are logged and never reach the caller.
func (srv *orderService) publish(ctx context.Context, eventType service.OrderEventType, order *entity.Order) {
	if srv.publisher == nil || order == nil {
		return
	}

	event := &service.OrderEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        eventType,
		OrderID:     order.ID.String(),
		CustomerID:  order.CustomerID.String(),
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount.StringFixed(entity.PriceScale),
		ItemCount:   len(order.Items),
		OccurredAt:  time.Now().UTC(),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("type", string(eventType)),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err))
	}
}

// computeItemTotal re-reads the product and freezes the line total.
func computeItemTotal(ctx context.Context, productRepo repository.ProductRepository, item *entity.OrderItem) error {
	product, err := productRepo.FindByID(ctx, item.ProductID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrUnknownProduct
	}
	if err != nil {
		return errors.Wrap(err, "failed to find product")
	}

	item.TotalAmount = entity.LineTotal(product.Price, product.Discount, item.Quantity)
	if !entity.ValidAmount(item.TotalAmount) {
		return domainerrors.ErrAmountOutOfRange
	}

	return nil
}

// recalculateTotal sets the order total to the sum of its item totals.
func recalculateTotal(ctx context.Context, orderRepo repository.OrderRepository, orderID uuid.UUID) (decimal.Decimal, error) {
	totals, err := orderRepo.ItemTotals(ctx, orderID)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to load item totals")
	}

	total := entity.SumTotals(totals)
	if !entity.ValidAmount(total) {
		return decimal.Zero, domainerrors.ErrAmountOutOfRange
	}
	if err := orderRepo.UpdateTotal(ctx, orderID, total); err != nil {
		return decimal.Zero, translateOrderError(err, "failed to update order total")
	}

	return total, nil
}

func findOrder(ctx context.Context, repo repository.OrderRepository, id uuid.UUID) (*entity.Order, error) {
	order, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateOrderError(err, "failed to find order")
	}

	return order, nil
}

func translateOrderError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrOrderNotFound):
		return domainerrors.ErrOrderNotFound
	case errors.Is(err, repository.ErrOrderItemNotFound):
		return domainerrors.ErrOrderItemNotFound
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrUnknownProduct
	default:
		return errors.Wrap(err, message)
	}
}

package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	q *query.Query
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{q: query.Use(db)}
}

// Create persists a new order without items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = model.NewID()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	if err := repo.q.OrderModel.WithContext(ctx).Create(fromOrderDomain(order)); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

// FindByID loads the order with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	o := repo.q.OrderModel
	orderM, err := o.WithContext(ctx).
		Preload(o.Items.Order(repo.q.OrderItemModel.ID)).
		Where(o.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(orderM), nil
}

// List returns orders with items, newest first.
func (repo *orderRepository) List(ctx context.Context, customerID *uuid.UUID) ([]*entity.Order, error) {
	o := repo.q.OrderModel
	do := o.WithContext(ctx).Preload(o.Items.Order(repo.q.OrderItemModel.ID))
	if customerID != nil {
		do = do.Where(o.CustomerID.Eq(*customerID))
	}

	orderModels, err := do.Order(o.CreatedAt.Desc(), o.ID.Desc()).Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Update persists status, dates and addresses.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	o := repo.q.OrderModel
	result, err := o.WithContext(ctx).
		Where(o.ID.Eq(order.ID)).
		Select(o.Status, o.DispatchDate, o.ArrivalDate, o.FromField, o.ToField).
		Updates(fromOrderDomain(order))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// UpdateTotal stores a recalculated order total.
func (repo *orderRepository) UpdateTotal(ctx context.Context, orderID uuid.UUID, total decimal.Decimal) error {
	o := repo.q.OrderModel
	result, err := o.WithContext(ctx).
		Where(o.ID.Eq(orderID)).
		UpdateSimple(o.TotalAmount.Value(total))
	if err != nil {
		return errors.Wrap(err, "failed to update order total")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete removes the order and its items.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	items := repo.q.OrderItemModel
	if _, err := items.WithContext(ctx).Where(items.OrderID.Eq(id)).Delete(); err != nil {
		return errors.Wrap(err, "failed to delete order items")
	}

	result, err := repo.q.OrderModel.WithContext(ctx).Where(repo.q.OrderModel.ID.Eq(id)).Delete()
	if err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// CreateItem persists an order line with its frozen total.
func (repo *orderRepository) CreateItem(ctx context.Context, item *entity.OrderItem) error {
	if item.ID == uuid.Nil {
		item.ID = model.NewID()
	}

	if err := repo.q.OrderItemModel.WithContext(ctx).Create(fromOrderItemDomain(item)); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order item")
	}

	return nil
}

// FindItem retrieves a line belonging to the order.
func (repo *orderRepository) FindItem(ctx context.Context, orderID, itemID uuid.UUID) (*entity.OrderItem, error) {
	items := repo.q.OrderItemModel
	itemM, err := items.WithContext(ctx).
		Where(items.ID.Eq(itemID), items.OrderID.Eq(orderID)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find order item")
	}

	return toOrderItemDomain(itemM), nil
}

// UpdateItem persists product, quantity and total of a line.
func (repo *orderRepository) UpdateItem(ctx context.Context, item *entity.OrderItem) error {
	items := repo.q.OrderItemModel
	result, err := items.WithContext(ctx).
		Where(items.ID.Eq(item.ID)).
		Select(items.ProductID, items.Quantity, items.TotalAmount).
		Updates(fromOrderItemDomain(item))
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update order item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderItemNotFound
	}

	return nil
}

// DeleteItem removes an order line.
func (repo *orderRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	result, err := repo.q.OrderItemModel.WithContext(ctx).Where(repo.q.OrderItemModel.ID.Eq(itemID)).Delete()
	if err != nil {
		return errors.Wrap(err, "failed to delete order item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderItemNotFound
	}

	return nil
}

// ItemTotals returns the frozen totals of the order's items.
func (repo *orderRepository) ItemTotals(ctx context.Context, orderID uuid.UUID) ([]decimal.Decimal, error) {
	var totals []decimal.Decimal

	items := repo.q.OrderItemModel
	if err := items.WithContext(ctx).
		Where(items.OrderID.Eq(orderID)).
		Pluck(items.TotalAmount, &totals); err != nil {
		return nil, errors.Wrap(err, "failed to load order item totals")
	}

	return totals, nil
}

// CountItemsByProduct counts order lines that reference a product.
func (repo *orderRepository) CountItemsByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	count, err := repo.q.OrderItemModel.WithContext(ctx).
		Where(repo.q.OrderItemModel.ProductID.Eq(productID)).
		Count()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count order items of product")
	}

	return count, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		Status:       entity.OrderStatus(data.Status),
		DispatchDate: data.DispatchDate,
		ArrivalDate:  data.ArrivalDate,
		From:         data.FromField,
		To:           data.ToField,
		TotalAmount:  data.TotalAmount,
		CreatedAt:    data.CreatedAt,
		Items:        make([]*entity.OrderItem, 0, len(data.Items)),
	}

	for i := range data.Items {
		order.Items = append(order.Items, toOrderItemDomain(&data.Items[i]))
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		Status:       string(data.Status),
		DispatchDate: data.DispatchDate,
		ArrivalDate:  data.ArrivalDate,
		FromField:    data.From,
		ToField:      data.To,
		TotalAmount:  data.TotalAmount,
		CreatedAt:    data.CreatedAt,
	}
}

func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:          data.ID,
		OrderID:     data.OrderID,
		ProductID:   data.ProductID,
		Quantity:    data.Quantity,
		TotalAmount: data.TotalAmount,
	}
}

func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderItemModel{
		ID:          data.ID,
		OrderID:     data.OrderID,
		ProductID:   data.ProductID,
		Quantity:    data.Quantity,
		TotalAmount: data.TotalAmount,
	}
}

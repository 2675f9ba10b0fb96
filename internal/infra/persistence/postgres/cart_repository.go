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
	"gorm.io/gen"
	"gorm.io/gorm"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	q *query.Query
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{q: query.Use(db)}
}

// ListByUser returns the cart of a user, oldest line first.
func (repo *cartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	c := repo.q.CartItemModel
	itemModels, err := c.WithContext(ctx).
		Where(c.UserID.Eq(userID)).
		Order(c.AddedAt, c.ID).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	items := make([]*entity.CartItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toCartItemDomain(itemM))
	}

	return items, nil
}

// FindByID retrieves a cart line by its ID.
func (repo *cartRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error) {
	return repo.first(ctx, repo.q.CartItemModel.ID.Eq(id))
}

// FindByUserAndProduct retrieves the line of a product in a user's cart.
func (repo *cartRepository) FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.CartItem, error) {
	c := repo.q.CartItemModel

	return repo.first(ctx, c.UserID.Eq(userID), c.ProductID.Eq(productID))
}

func (repo *cartRepository) first(ctx context.Context, conds ...gen.Condition) (*entity.CartItem, error) {
	itemM, err := repo.q.CartItemModel.WithContext(ctx).Where(conds...).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return toCartItemDomain(itemM), nil
}

// Create persists a new cart line. A second line for the same product fails
// with ErrDuplicateCartItem.
func (repo *cartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	if item.ID == uuid.Nil {
		item.ID = model.NewID()
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now().UTC()
	}

	if err := repo.q.CartItemModel.WithContext(ctx).Create(fromCartItemDomain(item)); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCartItem
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart item")
	}

	return nil
}

// IncrementQuantity adds delta in a single UPDATE so concurrent adds do not lose writes.
// The row is only touched while the sum stays within entity.MaxItemQuantity.
func (repo *cartRepository) IncrementQuantity(ctx context.Context, userID, productID uuid.UUID, delta int) error {
	c := repo.q.CartItemModel
	result, err := c.WithContext(ctx).
		Where(c.UserID.Eq(userID), c.ProductID.Eq(productID), c.Quantity.Lte(entity.MaxItemQuantity-delta)).
		UpdateSimple(c.Quantity.Add(delta))
	if err != nil {
		return errors.Wrap(err, "failed to increment cart quantity")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindByUserAndProduct(ctx, userID, productID); err != nil {
			return err
		}

		return repository.ErrQuantityLimit
	}

	return nil
}

// UpdateQuantity sets the quantity of a line.
func (repo *cartRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	c := repo.q.CartItemModel
	result, err := c.WithContext(ctx).
		Where(c.ID.Eq(id)).
		UpdateSimple(c.Quantity.Value(quantity))
	if err != nil {
		return errors.Wrap(err, "failed to update cart quantity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// Delete removes a cart line.
func (repo *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.q.CartItemModel.WithContext(ctx).Where(repo.q.CartItemModel.ID.Eq(id)).Delete()
	if err != nil {
		return errors.Wrap(err, "failed to delete cart item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// DeleteByIDs removes the given lines and reports how many were deleted.
func (repo *cartRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result, err := repo.q.CartItemModel.WithContext(ctx).
		Where(repo.q.CartItemModel.ID.In(uuidValues(ids)...)).
		Delete()
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete cart items")
	}

	return result.RowsAffected, nil
}

// DeleteByProduct removes the product from every cart.
func (repo *cartRepository) DeleteByProduct(ctx context.Context, productID uuid.UUID) error {
	if _, err := repo.q.CartItemModel.WithContext(ctx).
		Where(repo.q.CartItemModel.ProductID.Eq(productID)).
		Delete(); err != nil {
		return errors.Wrap(err, "failed to delete cart items of product")
	}

	return nil
}

// --- Mapper Functions ---

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		AddedAt:   data.AddedAt,
	}
}

func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	if data == nil {
		return nil
	}

	return &model.CartItemModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		AddedAt:   data.AddedAt,
	}
}

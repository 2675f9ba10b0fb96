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
	"gorm.io/gorm"
)

// shopRepository implements the repository.ShopRepository interface.
type shopRepository struct {
	q *query.Query
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{q: query.Use(db)}
}

// Create persists a new shop.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	if shop.ID == uuid.Nil {
		shop.ID = model.NewID()
	}
	if shop.CreatedAt.IsZero() {
		shop.CreatedAt = time.Now().UTC()
	}

	if err := repo.q.ShopModel.WithContext(ctx).Create(fromShopDomain(shop)); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateShopName
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	return nil
}

// FindByID retrieves a shop by its unique ID.
func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	shopM, err := repo.q.ShopModel.WithContext(ctx).Where(repo.q.ShopModel.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by ID")
	}

	return toShopDomain(shopM), nil
}

// List returns every shop ordered by name.
func (repo *shopRepository) List(ctx context.Context) ([]*entity.Shop, error) {
	shopModels, err := repo.q.ShopModel.WithContext(ctx).Order(repo.q.ShopModel.Name).Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	shops := make([]*entity.Shop, 0, len(shopModels))
	for _, shopM := range shopModels {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops, nil
}

// Update persists the mutable shop fields. The owner never changes.
func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	s := repo.q.ShopModel
	result, err := s.WithContext(ctx).
		Where(s.ID.Eq(shop.ID)).
		Select(s.Name, s.Description, s.Avatar, s.Address).
		Updates(&model.ShopModel{
			Name:        shop.Name,
			Description: shop.Description,
			Avatar:      shop.Avatar,
			Address:     shop.Address,
		})

	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateShopName
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update shop")
	}

	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// Delete removes a shop by its ID.
func (repo *shopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.q.ShopModel.WithContext(ctx).Where(repo.q.ShopModel.ID.Eq(id)).Delete()
	if err != nil {
		return errors.Wrap(err, "failed to delete shop")
	}

	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Avatar:      data.Avatar,
		Address:     data.Address,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
	}
}

func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	return &model.ShopModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Avatar:      data.Avatar,
		Address:     data.Address,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
	}
}

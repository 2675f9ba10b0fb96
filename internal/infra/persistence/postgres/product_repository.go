package postgres

import (
	"context"
	"database/sql/driver"
	"strings"
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
	"gorm.io/gorm/clause"
)

// likeEscaper makes a user search term match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	q *query.Query
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{q: query.Use(db)}
}

// Create persists a new product and links its categories.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = model.NewID()
	}
	if product.AddedAt.IsZero() {
		product.AddedAt = time.Now().UTC()
	}

	if err := repo.q.ProductModel.WithContext(ctx).Create(fromProductDomain(product)); err != nil {
		return translateProductWriteError(err, "failed to create product")
	}

	return repo.linkCategories(ctx, product.ID, product.CategoryIDs)
}

// FindByID loads the product with its category IDs and shop owner.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p := repo.q.ProductModel
	productM, err := p.WithContext(ctx).
		Preload(p.Shop, p.Categories).
		Where(p.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(productM), nil
}

// List returns products matching the filter. Without explicit ordering the
// newest products come first.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	p := repo.q.ProductModel
	do := p.WithContext(ctx).Preload(p.Shop, p.Categories)

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		do = do.Where(gen.Cond(clause.Expr{
			SQL:  `LOWER(?) LIKE ? ESCAPE '\'`,
			Vars: []any{clause.Column{Table: p.TableName(), Name: "name"}, pattern},
		})...)
	}

	if len(filter.Ordering) == 0 {
		do = do.Order(p.AddedAt.Desc())
	}
	for _, order := range filter.Ordering {
		column, ok := p.GetFieldByName(order.Field)
		if !ok {
			return nil, errors.Errorf("unknown product ordering field %q", order.Field)
		}
		if order.Desc {
			do = do.Order(column.Desc())
		} else {
			do = do.Order(column)
		}
	}

	productModels, err := do.Order(p.ID).Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Update persists the product fields and replaces its category links.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	p := repo.q.ProductModel
	result, err := p.WithContext(ctx).
		Where(p.ID.Eq(product.ID)).
		Select(p.Name, p.Price, p.Discount, p.Description, p.Image, p.ShopID).
		Updates(fromProductDomain(product))
	if err != nil {
		return translateProductWriteError(err, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	if err := repo.unlinkCategories(ctx, product.ID); err != nil {
		return err
	}

	return repo.linkCategories(ctx, product.ID, product.CategoryIDs)
}

// Delete removes the product and its category links.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.unlinkCategories(ctx, id); err != nil {
		return err
	}

	result, err := repo.q.ProductModel.WithContext(ctx).Where(repo.q.ProductModel.ID.Eq(id)).Delete()
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductReferenced
		}

		return errors.Wrap(err, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// CountByShop counts the products of a shop.
func (repo *productRepository) CountByShop(ctx context.Context, shopID uuid.UUID) (int64, error) {
	count, err := repo.q.ProductModel.WithContext(ctx).
		Where(repo.q.ProductModel.ShopID.Eq(shopID)).
		Count()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count shop products")
	}

	return count, nil
}

// linkCategories inserts join rows after checking every category exists.
func (repo *productRepository) linkCategories(ctx context.Context, productID uuid.UUID, categoryIDs []uuid.UUID) error {
	ids := uniqueIDs(categoryIDs)
	if len(ids) == 0 {
		return nil
	}

	found, err := repo.q.CategoryModel.WithContext(ctx).
		Where(repo.q.CategoryModel.ID.In(uuidValues(ids)...)).
		Count()
	if err != nil {
		return errors.Wrap(err, "failed to check categories")
	}
	if found != int64(len(ids)) {
		return repository.ErrUnknownCategory
	}

	links := make([]*model.ProductCategoryModel, 0, len(ids))
	for _, categoryID := range ids {
		links = append(links, &model.ProductCategoryModel{ProductID: productID, CategoryID: categoryID})
	}

	if err := repo.q.ProductCategoryModel.WithContext(ctx).Create(links...); err != nil {
		return errors.Wrap(err, "failed to link product categories")
	}

	return nil
}

func (repo *productRepository) unlinkCategories(ctx context.Context, productID uuid.UUID) error {
	links := repo.q.ProductCategoryModel
	if _, err := links.WithContext(ctx).Where(links.ProductID.Eq(productID)).Delete(); err != nil {
		return errors.Wrap(err, "failed to unlink product categories")
	}

	return nil
}

func translateProductWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		return repository.ErrDuplicateProductName
	}
	if isForeignKeyConstraintViolation(err) {
		return repository.ErrShopNotFound
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func uuidValues(ids []uuid.UUID) []driver.Valuer {
	values := make([]driver.Valuer, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}

	return values
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	result := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	return result
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		Discount:    data.Discount,
		Description: data.Description,
		Image:       data.Image,
		AddedAt:     data.AddedAt,
		ShopID:      data.ShopID,
		CategoryIDs: make([]uuid.UUID, 0, len(data.Categories)),
	}

	for _, category := range data.Categories {
		product.CategoryIDs = append(product.CategoryIDs, category.ID)
	}

	if data.Shop != nil {
		product.ShopOwnerID = data.Shop.OwnerID
	}

	return product
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		Discount:    data.Discount,
		Description: data.Description,
		Image:       data.Image,
		AddedAt:     data.AddedAt,
		ShopID:      data.ShopID,
	}
}

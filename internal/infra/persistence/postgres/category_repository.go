package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	q *query.Query
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{q: query.Use(db)}
}

// Create persists a new category.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == uuid.Nil {
		category.ID = model.NewID()
	}

	if err := repo.q.CategoryModel.WithContext(ctx).Create(fromCategoryDomain(category)); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCategoryName
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	return nil
}

// FindByID retrieves a category by its unique ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	categoryM, err := repo.q.CategoryModel.WithContext(ctx).Where(repo.q.CategoryModel.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return toCategoryDomain(categoryM), nil
}

// List returns every category ordered by name.
func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	categoryModels, err := repo.q.CategoryModel.WithContext(ctx).Order(repo.q.CategoryModel.Name).Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// Update persists the category name and description.
func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	c := repo.q.CategoryModel
	result, err := c.WithContext(ctx).
		Where(c.ID.Eq(category.ID)).
		Select(c.Name, c.Description).
		Updates(fromCategoryDomain(category))

	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCategoryName
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update category")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// Delete removes the category and unlinks it from products.
func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	links := repo.q.ProductCategoryModel
	if _, err := links.WithContext(ctx).Where(links.CategoryID.Eq(id)).Delete(); err != nil {
		return errors.Wrap(err, "failed to unlink category from products")
	}

	result, err := repo.q.CategoryModel.WithContext(ctx).Where(repo.q.CategoryModel.ID.Eq(id)).Delete()
	if err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
	}
}

package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/policy"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxNameLength bounds category and product names.
const maxNameLength = 64

type categoryService struct {
	categoryRepo repository.CategoryRepository
	authorizer   *policy.Authorizer
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Authorizer   *policy.Authorizer
	Logger       *slog.Logger
}

// NewCategoryService creates a new category service instance
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		authorizer:   params.Authorizer,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *categoryService) ListCategories(ctx context.Context, principal *entity.Principal) ([]*entity.Category, error) {
	if err := srv.authorizer.Check(policy.ResourceCategory, policy.ActionList, principal); err != nil {
		return nil, err
	}

	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *categoryService) GetCategory(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Category, error) {
	if err := srv.authorizer.Check(policy.ResourceCategory, policy.ActionRetrieve, principal); err != nil {
		return nil, err
	}

	return srv.find(ctx, id)
}

func (srv *categoryService) CreateCategory(ctx context.Context, principal *entity.Principal, input *usecase.CategoryInput) (*entity.Category, error) {
	if err := srv.authorizer.Check(policy.ResourceCategory, policy.ActionCreate, principal); err != nil {
		return nil, err
	}

	category := &entity.Category{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
	}
	if err := validateName(category.Name); err != nil {
		return nil, err
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, translateCategoryError(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.String("category_id", category.ID.String()))

	return category, nil
}

func (srv *categoryService) UpdateCategory(ctx context.Context, principal *entity.Principal, id uuid.UUID, patch *usecase.CategoryPatch) (*entity.Category, error) {
	if err := srv.authorizer.Check(policy.ResourceCategory, policy.ActionUpdate, principal); err != nil {
		return nil, err
	}

	category, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		category.Name = strings.TrimSpace(*patch.Name)
		if err := validateName(category.Name); err != nil {
			return nil, err
		}
	}
	if patch.Description != nil {
		category.Description = *patch.Description
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, translateCategoryError(err, "failed to update category")
	}

	return category, nil
}

func (srv *categoryService) DeleteCategory(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	if err := srv.authorizer.Check(policy.ResourceCategory, policy.ActionDestroy, principal); err != nil {
		return err
	}

	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		return translateCategoryError(err, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.String("category_id", id.String()))

	return nil
}

func (srv *categoryService) find(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateCategoryError(err, "failed to find category")
	}

	return category, nil
}

func translateCategoryError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateCategoryName):
		return domainerrors.ErrCategoryNameTaken
	case errors.Is(err, repository.ErrCategoryNotFound):
		return domainerrors.ErrCategoryNotFound
	default:
		return errors.Wrap(err, message)
	}
}

// validateName checks a catalog name is present and short enough.
func validateName(name string) error {
	if name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return domainerrors.ErrValidationFailed.WithDetails("name must be at most 64 characters")
	}

	return nil
}

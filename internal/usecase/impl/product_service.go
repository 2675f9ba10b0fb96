package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/policy"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productOrderingFields maps the accepted ordering names to columns.
var productOrderingFields = map[string]string{
	"id":       "id",
	"name":     "name",
	"price":    "price",
	"discount": "discount",
	"added_at": "added_at",
	"shop":     "shop_id",
	"shop_id":  "shop_id",
}

type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	authorizer  *policy.Authorizer
	uploader    *mediaUploader
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	Authorizer   *policy.Authorizer
	MediaStorage service.MediaStorage
	Config       *config.Config
	Logger       *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		authorizer:  params.Authorizer,
		uploader:    newMediaUploader(params.MediaStorage, params.Config, params.Logger),
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts searches and sorts the catalog.
func (srv *productService) ListProducts(ctx context.Context, principal *entity.Principal, query *usecase.ProductQuery) ([]*entity.Product, error) {
	if err := srv.authorizer.Check(policy.ResourceProduct, policy.ActionList, principal); err != nil {
		return nil, err
	}

	filter := repository.ProductFilter{}
	if query != nil {
		ordering, err := parseProductOrdering(query.Ordering)
		if err != nil {
			return nil, err
		}
		filter.Search = query.Search
		filter.Ordering = ordering
	}

	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns one product.
func (srv *productService) GetProduct(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Product, error) {
	if err := srv.authorizer.Check(policy.ResourceProduct, policy.ActionRetrieve, principal); err != nil {
		return nil, err
	}

	product, err := findProduct(ctx, srv.productRepo, id)
	if err != nil {
		return nil, err
	}

	if err := srv.authorizer.CheckObject(policy.ResourceProduct, policy.ActionRetrieve, principal, policy.Owned(product.ShopOwnerID)); err != nil {
		return nil, err
	}

	return product, nil
}

// CreateProduct adds a product to a shop owned by the principal.
func (srv *productService) CreateProduct(ctx context.Context, principal *entity.Principal, input *usecase.ProductInput) (*entity.Product, error) {
	if err := srv.authorizer.Check(policy.ResourceProduct, policy.ActionCreate, principal); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:        strings.TrimSpace(input.Name),
		Price:       input.Price,
		Discount:    input.Discount,
		Description: input.Description,
		ShopID:      input.ShopID,
		CategoryIDs: input.CategoryIDs,
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	var created *entity.Product
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := srv.requireShopOwnership(ctx, factory.NewShopRepository(), principal, product.ShopID); err != nil {
			return err
		}

		productRepo := factory.NewProductRepository()
		if err := productRepo.Create(ctx, product); err != nil {
			return translateProductError(err, "failed to create product")
		}

		var err error
		created, err = findProduct(ctx, productRepo, product.ID)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product created", slog.String("product_id", created.ID.String()), slog.String("shop_id", created.ShopID.String()))

	return created, nil
}

// UpdateProduct changes a product. Moving it to another shop requires owning that shop.
func (srv *productService) UpdateProduct(ctx context.Context, principal *entity.Principal, id uuid.UUID, patch *usecase.ProductPatch) (*entity.Product, error) {
	if err := srv.authorizer.Check(policy.ResourceProduct, policy.ActionUpdate, principal); err != nil {
		return nil, err
	}

	var updated *entity.Product
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		productRepo := factory.NewProductRepository()

		product, err := findProduct(ctx, productRepo, id)
		if err != nil {
			return err
		}

		if err := srv.authorizer.CheckObject(policy.ResourceProduct, policy.ActionUpdate, principal, policy.Owned(product.ShopOwnerID)); err != nil {
			return err
		}

		applyProductPatch(product, patch)
		if err := validateProduct(product); err != nil {
			return err
		}

		if patch.ShopID != nil && !principal.IsStaff() {
			if err := srv.requireShopOwnership(ctx, factory.NewShopRepository(), principal, product.ShopID); err != nil {
				return err
			}
		}

		if err := productRepo.Update(ctx, product); err != nil {
			return translateProductError(err, "failed to update product")
		}

		updated, err = findProduct(ctx, productRepo, product.ID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteProduct removes the product together with its cart lines and reviews.
func (srv *productService) DeleteProduct(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	if err := srv.authorizer.Check(policy.ResourceProduct, policy.ActionDestroy, principal); err != nil {
		return err
	}

	var image string
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		productRepo := factory.NewProductRepository()

		product, err := findProduct(ctx, productRepo, id)
		if err != nil {
			return err
		}

		if err := srv.authorizer.CheckObject(policy.ResourceProduct, policy.ActionDestroy, principal, policy.Owned(product.ShopOwnerID)); err != nil {
			return err
		}

		referenced, err := factory.NewOrderRepository().CountItemsByProduct(ctx, product.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count order items")
		}
		if referenced > 0 {
			return domainerrors.ErrProductInUse
		}

		if err := factory.NewCartRepository().DeleteByProduct(ctx, product.ID); err != nil {
			return errors.Wrap(err, "failed to delete product cart items")
		}
		if err := factory.NewReviewRepository().DeleteByProduct(ctx, product.ID); err != nil {
			return errors.Wrap(err, "failed to delete product reviews")
		}
		if err := productRepo.Delete(ctx, product.ID); err != nil {
			return translateProductError(err, "failed to delete product")
		}
		image = product.Image

		return nil
	})
	if err != nil {
		return err
	}

	if image != "" {
		if err := srv.uploader.Remove(ctx, image); err != nil {
			srv.log(ctx).Warn("Failed to remove product image", slog.String("url", image), slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Product deleted", slog.String("product_id", id.String()))

	return nil
}

// UploadImage stores a new product image and replaces the previous one.
func (srv *productService) UploadImage(ctx context.Context, principal *entity.Principal, id uuid.UUID, upload *usecase.MediaUpload) (*entity.Product, error) {
	if err := srv.authorizer.Check(policy.ResourceProduct, policy.ActionUpdate, principal); err != nil {
		return nil, err
	}

	product, err := findProduct(ctx, srv.productRepo, id)
	if err != nil {
		return nil, err
	}

	if err := srv.authorizer.CheckObject(policy.ResourceProduct, policy.ActionUpdate, principal, policy.Owned(product.ShopOwnerID)); err != nil {
		return nil, err
	}

	url, err := srv.uploader.Store(ctx, productImagePrefix, product.ID, upload)
	if err != nil {
		return nil, err
	}

	previous := product.Image
	product.Image = url
	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, translateProductError(err, "failed to save product image")
	}

	if previous != "" && previous != url {
		if err := srv.uploader.Remove(ctx, previous); err != nil {
			srv.log(ctx).Warn("Failed to remove product image", slog.String("url", previous), slog.Any("error", err))
		}
	}

	return product, nil
}

// requireShopOwnership loads the shop and checks the principal owns it.
func (srv *productService) requireShopOwnership(ctx context.Context, shopRepo repository.ShopRepository, principal *entity.Principal, shopID uuid.UUID) error {
	shop, err := shopRepo.FindByID(ctx, shopID)
	if errors.Is(err, repository.ErrShopNotFound) {
		return domainerrors.ErrValidationFailed.WithDetails("shop does not exist")
	}
	if err != nil {
		return errors.Wrap(err, "failed to find shop")
	}

	if !principal.Owns(shop.OwnerID) {
		return domainerrors.ErrShopOwnershipRequired
	}

	return nil
}

func applyProductPatch(product *entity.Product, patch *usecase.ProductPatch) {
	if patch.Name != nil {
		product.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Discount != nil {
		product.Discount = *patch.Discount
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.ShopID != nil {
		product.ShopID = *patch.ShopID
	}
	if patch.CategoryIDs != nil {
		product.CategoryIDs = *patch.CategoryIDs
	}
}

func validateProduct(product *entity.Product) error {
	if err := validateName(product.Name); err != nil {
		return err
	}
	if !entity.ValidPrice(product.Price) {
		return domainerrors.ErrInvalidPrice
	}
	if !entity.ValidDiscount(product.Discount) {
		return domainerrors.ErrInvalidDiscount
	}

	return nil
}

// parseProductOrdering turns "-price,name" into ordering keys.
func parseProductOrdering(ordering string) ([]repository.ProductOrder, error) {
	var orders []repository.ProductOrder
	for _, part := range strings.Split(ordering, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		desc := strings.HasPrefix(part, "-")
		column, ok := productOrderingFields[strings.TrimPrefix(part, "-")]
		if !ok {
			return nil, domainerrors.ErrInvalidOrdering.WithDetails(part)
		}

		orders = append(orders, repository.ProductOrder{Field: column, Desc: desc})
	}

	return orders, nil
}

func findProduct(ctx context.Context, repo repository.ProductRepository, id uuid.UUID) (*entity.Product, error) {
	product, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateProductError(err, "failed to find product")
	}

	return product, nil
}

func translateProductError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateProductName):
		return domainerrors.ErrProductNameTaken
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound
	case errors.Is(err, repository.ErrProductReferenced):
		return domainerrors.ErrProductInUse
	case errors.Is(err, repository.ErrUnknownCategory):
		return domainerrors.ErrUnknownCategory
	case errors.Is(err, repository.ErrShopNotFound):
		return domainerrors.ErrValidationFailed.WithDetails("shop does not exist")
	default:
		return errors.Wrap(err, message)
	}
}

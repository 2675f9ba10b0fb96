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
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	txManager  repository.TransactionManager
	cartRepo   repository.CartRepository
	authorizer *policy.Authorizer
	logger     *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	CartRepo   repository.CartRepository
	Authorizer *policy.Authorizer
	Logger     *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:  params.TxManager,
		cartRepo:   params.CartRepo,
		authorizer: params.Authorizer,
		logger:     params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCart returns the principal's cart lines.
func (srv *cartService) ListCart(ctx context.Context, principal *entity.Principal) ([]*entity.CartItem, error) {
	if err := srv.authorizer.Check(policy.ResourceCart, policy.ActionList, principal); err != nil {
		return nil, err
	}

	items, err := srv.cartRepo.ListByUser(ctx, principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	return items, nil
}

// AddItem puts a product into the cart. An existing line for the product
// gets the quantity added instead of a second line being created.
func (srv *cartService) AddItem(ctx context.Context, principal *entity.Principal, input *usecase.AddCartItemInput) (*usecase.AddCartItemOutput, error) {
	if err := srv.authorizer.Check(policy.ResourceCart, policy.ActionCreate, principal); err != nil {
		return nil, err
	}

	quantity := input.Quantity
	if !entity.ValidQuantity(quantity) {
		return nil, domainerrors.ErrInvalidQuantity
	}

	output, err := srv.addItem(ctx, principal.UserID, input.ProductID, quantity)
	if errors.Is(err, repository.ErrDuplicateCartItem) {
		// A concurrent add inserted the line first; merge into it.
		srv.log(ctx).Debug("Cart line inserted concurrently, merging", slog.String("product_id", input.ProductID.String()))
		output, err = srv.addItem(ctx, principal.UserID, input.ProductID, quantity)
	}
	if err != nil {
		return nil, err
	}

	return output, nil
}

func (srv *cartService) addItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*usecase.AddCartItemOutput, error) {
	output := &usecase.AddCartItemOutput{}
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := factory.NewProductRepository().FindByID(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrUnknownProduct
			}

			return errors.Wrap(err, "failed to find product")
		}

		cartRepo := factory.NewCartRepository()

		existing, err := cartRepo.FindByUserAndProduct(ctx, userID, productID)
		switch {
		case err == nil:
			if !entity.ValidQuantity(existing.Quantity + quantity) {
				return domainerrors.ErrInvalidQuantity
			}
			if err := cartRepo.IncrementQuantity(ctx, userID, productID, quantity); err != nil {
				if errors.Is(err, repository.ErrQuantityLimit) {
					return domainerrors.ErrInvalidQuantity
				}

				return errors.Wrap(err, "failed to merge cart item")
			}

			merged, err := cartRepo.FindByID(ctx, existing.ID)
			if err != nil {
				return errors.Wrap(err, "failed to reload cart item")
			}
			output.Item = merged

			return nil
		case !errors.Is(err, repository.ErrCartItemNotFound):
			return errors.Wrap(err, "failed to find cart item")
		}

		item := &entity.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   time.Now().UTC(),
		}
		if err := cartRepo.Create(ctx, item); err != nil {
			if errors.Is(err, repository.ErrDuplicateCartItem) {
				return err
			}

			return errors.Wrap(err, "failed to create cart item")
		}

		output.Item = item
		output.Created = true

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// UpdateQuantity sets the quantity of one of the principal's lines.
func (srv *cartService) UpdateQuantity(ctx context.Context, principal *entity.Principal, id uuid.UUID, quantity int) (*entity.CartItem, error) {
	if err := srv.authorizer.Check(policy.ResourceCart, policy.ActionUpdate, principal); err != nil {
		return nil, err
	}
	if !entity.ValidQuantity(quantity) {
		return nil, domainerrors.ErrInvalidQuantity
	}

	item, err := srv.findOwnItem(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, item.ID, quantity); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to update cart item")
	}
	item.Quantity = quantity

	return item, nil
}

// RemoveItem deletes one of the principal's lines.
func (srv *cartService) RemoveItem(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	if err := srv.authorizer.Check(policy.ResourceCart, policy.ActionDestroy, principal); err != nil {
		return err
	}

	item, err := srv.findOwnItem(ctx, principal, id)
	if err != nil {
		return err
	}

	if err := srv.cartRepo.Delete(ctx, item.ID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return errors.Wrap(err, "failed to delete cart item")
	}

	return nil
}

// findOwnItem loads a line of the principal. Lines of other users are reported as missing.
func (srv *cartService) findOwnItem(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.CartItem, error) {
	item, err := srv.cartRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrCartItemNotFound) {
		return nil, domainerrors.ErrCartItemNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart item")
	}

	if item.UserID != principal.UserID {
		return nil, domainerrors.ErrCartItemNotFound
	}

	return item, nil
}

package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

type shopService struct {
	txManager  repository.TransactionManager
	shopRepo   repository.ShopRepository
	authorizer *policy.Authorizer
	uploader   *mediaUploader
	qrService  service.QRCodeService
	logger     *slog.Logger
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ShopRepo      repository.ShopRepository
	Authorizer    *policy.Authorizer
	MediaStorage  service.MediaStorage
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewShopService creates a new shop service instance
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		txManager:  params.TxManager,
		shopRepo:   params.ShopRepo,
		authorizer: params.Authorizer,
		uploader:   newMediaUploader(params.MediaStorage, params.Config, params.Logger),
		qrService:  params.QRCodeService,
		logger:     params.Logger,
	}
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListShops returns every shop.
func (srv *shopService) ListShops(ctx context.Context, principal *entity.Principal) ([]*entity.Shop, error) {
	if err := srv.authorizer.Check(policy.ResourceShop, policy.ActionList, principal); err != nil {
		return nil, err
	}

	shops, err := srv.shopRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	return shops, nil
}

// GetShop returns one shop.
func (srv *shopService) GetShop(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Shop, error) {
	if err := srv.authorizer.Check(policy.ResourceShop, policy.ActionRetrieve, principal); err != nil {
		return nil, err
	}

	shop, err := findShop(ctx, srv.shopRepo, id)
	if err != nil {
		return nil, err
	}

	if err := srv.authorizer.CheckObject(policy.ResourceShop, policy.ActionRetrieve, principal, policy.Owned(shop.OwnerID)); err != nil {
		return nil, err
	}

	return shop, nil
}

// CreateShop opens a shop owned by the principal.
func (srv *shopService) CreateShop(ctx context.Context, principal *entity.Principal, input *usecase.ShopInput) (*entity.Shop, error) {
	if err := srv.authorizer.Check(policy.ResourceShop, policy.ActionCreate, principal); err != nil {
		return nil, err
	}

	shop := &entity.Shop{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Address:     input.Address,
		OwnerID:     principal.UserID,
		CreatedAt:   time.Now().UTC(),
	}
	if shop.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	if err := srv.shopRepo.Create(ctx, shop); err != nil {
		return nil, translateShopError(err, "failed to create shop")
	}

	srv.log(ctx).Info("Shop created", slog.String("shop_id", shop.ID.String()), slog.String("owner_id", shop.OwnerID.String()))

	return shop, nil
}

// UpdateShop changes the shop's details. The owner never changes.
func (srv *shopService) UpdateShop(ctx context.Context, principal *entity.Principal, id uuid.UUID, patch *usecase.ShopPatch) (*entity.Shop, error) {
	if err := srv.authorizer.Check(policy.ResourceShop, policy.ActionUpdate, principal); err != nil {
		return nil, err
	}

	shop, err := findShop(ctx, srv.shopRepo, id)
	if err != nil {
		return nil, err
	}

	if err := srv.authorizer.CheckObject(policy.ResourceShop, policy.ActionUpdate, principal, policy.Owned(shop.OwnerID)); err != nil {
		return nil, err
	}

	if patch.Name != nil {
		shop.Name = strings.TrimSpace(*patch.Name)
		if shop.Name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
		}
	}
	if patch.Description != nil {
		shop.Description = *patch.Description
	}
	if patch.Address != nil {
		shop.Address = *patch.Address
	}

	if err := srv.shopRepo.Update(ctx, shop); err != nil {
		return nil, translateShopError(err, "failed to update shop")
	}

	return shop, nil
}

// DeleteShop removes a shop that no longer has products.
func (srv *shopService) DeleteShop(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	if err := srv.authorizer.Check(policy.ResourceShop, policy.ActionDestroy, principal); err != nil {
		return err
	}

	var avatar string
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		shopRepo := factory.NewShopRepository()

		shop, err := findShop(ctx, shopRepo, id)
		if err != nil {
			return err
		}

		if err := srv.authorizer.CheckObject(policy.ResourceShop, policy.ActionDestroy, principal, policy.Owned(shop.OwnerID)); err != nil {
			return err
		}

		count, err := factory.NewProductRepository().CountByShop(ctx, shop.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count shop products")
		}
		if count > 0 {
			return domainerrors.ErrShopHasProducts
		}

		if err := shopRepo.Delete(ctx, shop.ID); err != nil {
			return translateShopError(err, "failed to delete shop")
		}
		avatar = shop.Avatar

		return nil
	})
	if err != nil {
		return err
	}

	srv.removeMedia(ctx, avatar)
	srv.log(ctx).Info("Shop deleted", slog.String("shop_id", id.String()))

	return nil
}

// UploadAvatar stores a new shop avatar and replaces the previous one.
func (srv *shopService) UploadAvatar(ctx context.Context, principal *entity.Principal, id uuid.UUID, upload *usecase.MediaUpload) (*entity.Shop, error) {
	if err := srv.authorizer.Check(policy.ResourceShop, policy.ActionUpdate, principal); err != nil {
		return nil, err
	}

	shop, err := findShop(ctx, srv.shopRepo, id)
	if err != nil {
		return nil, err
	}

	if err := srv.authorizer.CheckObject(policy.ResourceShop, policy.ActionUpdate, principal, policy.Owned(shop.OwnerID)); err != nil {
		return nil, err
	}

	url, err := srv.uploader.Store(ctx, shopAvatarPrefix, shop.ID, upload)
	if err != nil {
		return nil, err
	}

	previous := shop.Avatar
	shop.Avatar = url
	if err := srv.shopRepo.Update(ctx, shop); err != nil {
		return nil, translateShopError(err, "failed to save shop avatar")
	}

	if previous != url {
		srv.removeMedia(ctx, previous)
	}

	return shop, nil
}

// ShopQRCode renders the QR code of an existing shop.
func (srv *shopService) ShopQRCode(ctx context.Context, principal *entity.Principal, id uuid.UUID) ([]byte, error) {
	if _, err := srv.GetShop(ctx, principal, id); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateShopQR(id)
	if err != nil {
		srv.log(ctx).Error("Failed to generate shop QR code", slog.String("shop_id", id.String()), slog.Any("error", err))

		return nil, domainerrors.ErrQRCodeFailed
	}

	return png, nil
}

// ResolveShopQR decodes a scanned payload and loads the shop it points at.
func (srv *shopService) ResolveShopQR(ctx context.Context, principal *entity.Principal, payload string) (*entity.Shop, error) {
	id, err := srv.qrService.ParseShopQR(payload)
	if err != nil {
		return nil, domainerrors.ErrInvalidQRCode.WithDetails(err.Error())
	}

	return srv.GetShop(ctx, principal, id)
}

func (srv *shopService) removeMedia(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := srv.uploader.Remove(ctx, url); err != nil {
		srv.log(ctx).Warn("Failed to remove shop media", slog.String("url", url), slog.Any("error", err))
	}
}

func findShop(ctx context.Context, repo repository.ShopRepository, id uuid.UUID) (*entity.Shop, error) {
	shop, err := repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrShopNotFound) {
		return nil, domainerrors.ErrShopNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop")
	}

	return shop, nil
}

func translateShopError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateShopName):
		return domainerrors.ErrShopNameTaken
	case errors.Is(err, repository.ErrShopNotFound):
		return domainerrors.ErrShopNotFound
	default:
		return errors.Wrap(err, message)
	}
}

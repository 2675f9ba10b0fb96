package impl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shopServiceFixtures struct {
	env     *testEnv
	service usecase.ShopUsecase
	storage *mockSvc.MockMediaStorage
	qr      *mockSvc.MockQRCodeService
}

func createTestShopService(t *testing.T) shopServiceFixtures {
	env := newTestEnv(t)
	storage := mockSvc.NewMockMediaStorage(t)
	qr := mockSvc.NewMockQRCodeService(t)

	return shopServiceFixtures{
		env: env,
		service: NewShopService(ShopServiceParams{
			TxManager:     env.txManager,
			ShopRepo:      env.shops,
			Authorizer:    env.authorizer,
			MediaStorage:  storage,
			QRCodeService: qr,
			Logger:        env.logger,
		}),
		storage: storage,
		qr:      qr,
	}
}

func TestShopService_CreateShop(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()
	owner := fx.env.createUser(t, "owner@example.com", false)

	_, err := fx.service.CreateShop(ctx, nil, &usecase.ShopInput{Name: "Corner Store"})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = fx.service.CreateShop(ctx, owner, &usecase.ShopInput{Name: "   "})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	shop, err := fx.service.CreateShop(ctx, owner, &usecase.ShopInput{Name: " Corner Store ", Address: "1 Main St"})
	require.NoError(t, err)
	assert.Equal(t, "Corner Store", shop.Name)
	assert.Equal(t, owner.UserID, shop.OwnerID)

	other := fx.env.createUser(t, "other@example.com", false)
	_, err = fx.service.CreateShop(ctx, other, &usecase.ShopInput{Name: "Corner Store"})
	assert.ErrorIs(t, err, domainerrors.ErrShopNameTaken)

	shops, err := fx.service.ListShops(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, shops, 1)
}

func TestShopService_UpdatePermissions(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()
	owner := fx.env.createUser(t, "owner@example.com", false)
	stranger := fx.env.createUser(t, "stranger@example.com", false)
	staff := fx.env.createUser(t, "staff@example.com", true)
	shop := fx.env.createShop(t, owner, "Corner Store")

	_, err := fx.service.UpdateShop(ctx, nil, shop.ID, &usecase.ShopPatch{Address: ptr("2 Main St")})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = fx.service.UpdateShop(ctx, stranger, shop.ID, &usecase.ShopPatch{Address: ptr("2 Main St")})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	updated, err := fx.service.UpdateShop(ctx, staff, shop.ID, &usecase.ShopPatch{Address: ptr("2 Main St")})
	require.NoError(t, err)
	assert.Equal(t, "2 Main St", updated.Address)
	assert.Equal(t, owner.UserID, updated.OwnerID)

	renamed, err := fx.service.UpdateShop(ctx, owner, shop.ID, &usecase.ShopPatch{Name: ptr("Big Store")})
	require.NoError(t, err)
	assert.Equal(t, "Big Store", renamed.Name)

	_, err = fx.service.UpdateShop(ctx, owner, uuid.New(), &usecase.ShopPatch{})
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestShopService_DeleteShop(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()
	owner := fx.env.createUser(t, "owner@example.com", false)
	stranger := fx.env.createUser(t, "stranger@example.com", false)
	shop := fx.env.createShop(t, owner, "Corner Store")
	product := fx.env.createProduct(t, shop, "Notebook", "10.00", 0)

	assert.ErrorIs(t, fx.service.DeleteShop(ctx, stranger, shop.ID), domainerrors.ErrForbidden)
	assert.ErrorIs(t, fx.service.DeleteShop(ctx, owner, shop.ID), domainerrors.ErrShopHasProducts)

	require.NoError(t, fx.env.products.Delete(ctx, product.ID))
	require.NoError(t, fx.service.DeleteShop(ctx, owner, shop.ID))

	_, err := fx.service.GetShop(ctx, nil, shop.ID)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestShopService_UploadAvatarReplacesPrevious(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()
	owner := fx.env.createUser(t, "owner@example.com", false)
	shop := fx.env.createShop(t, owner, "Corner Store")
	shop.Avatar = "http://cdn.test/shops/avatars/old.png"
	require.NoError(t, fx.env.shops.Update(ctx, shop))

	fx.storage.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "shops/avatars/"+shop.ID.String()+"/")
		}), "image/png", mock.Anything).
		Return("http://cdn.test/shops/avatars/new.png", nil).
		Once()
	fx.storage.EXPECT().KeyFromURL("http://cdn.test/shops/avatars/old.png").Return("shops/avatars/old.png", true).Once()
	fx.storage.EXPECT().Delete(mock.Anything, "shops/avatars/old.png").Return(nil).Once()

	updated, err := fx.service.UploadAvatar(ctx, owner, shop.ID, &usecase.MediaUpload{
		Filename: "avatar.png",
		Size:     int64(len(pngHeader)),
		Content:  bytes.NewReader(pngHeader),
	})
	require.NoError(t, err)
	assert.Equal(t, "http://cdn.test/shops/avatars/new.png", updated.Avatar)
}

func TestShopService_UploadAvatarStorageFailure(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()
	owner := fx.env.createUser(t, "owner@example.com", false)
	shop := fx.env.createShop(t, owner, "Corner Store")

	fx.storage.EXPECT().
		Save(mock.Anything, mock.Anything, "image/png", mock.Anything).
		Return("", errors.New("bucket unavailable")).
		Once()

	_, err := fx.service.UploadAvatar(ctx, owner, shop.ID, &usecase.MediaUpload{Content: bytes.NewReader(pngHeader)})
	assert.ErrorIs(t, err, domainerrors.ErrMediaStorageFailed)

	stored, err := fx.env.shops.FindByID(ctx, shop.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Avatar)
}

func TestShopService_ShopQRCode(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()
	owner := fx.env.createUser(t, "owner@example.com", false)
	shop := fx.env.createShop(t, owner, "Corner Store")

	fx.qr.EXPECT().GenerateShopQR(shop.ID).Return([]byte("png-bytes"), nil).Once()

	png, err := fx.service.ShopQRCode(ctx, nil, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)

	_, err = fx.service.ShopQRCode(ctx, nil, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)

	fx.qr.EXPECT().GenerateShopQR(shop.ID).Return(nil, errors.New("encoder failure")).Once()

	_, err = fx.service.ShopQRCode(ctx, nil, shop.ID)
	assert.ErrorIs(t, err, domainerrors.ErrQRCodeFailed)
}

func TestShopService_ResolveShopQR(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()
	owner := fx.env.createUser(t, "owner@example.com", false)
	shop := fx.env.createShop(t, owner, "Corner Store")

	fx.qr.EXPECT().ParseShopQR("scanned").Return(shop.ID, nil).Once()

	got, err := fx.service.ResolveShopQR(ctx, nil, "scanned")
	require.NoError(t, err)
	assert.Equal(t, shop.ID, got.ID)
	assert.Equal(t, "Corner Store", got.Name)

	fx.qr.EXPECT().ParseShopQR("garbage").Return(uuid.Nil, errors.New("invalid QR code type")).Once()

	_, err = fx.service.ResolveShopQR(ctx, nil, "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQRCode)

	missing := uuid.New()
	fx.qr.EXPECT().ParseShopQR("stale").Return(missing, nil).Once()

	_, err = fx.service.ResolveShopQR(ctx, nil, "stale")
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestShopService_AnonymousRead(t *testing.T) {
	fx := createTestShopService(t)
	owner := fx.env.createUser(t, "owner@example.com", false)
	shop := fx.env.createShop(t, owner, "Corner Store")

	got, err := fx.service.GetShop(context.Background(), nil, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, shop.Name, got.Name)
}

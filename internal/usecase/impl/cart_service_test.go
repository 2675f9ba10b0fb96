package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	env      *testEnv
	service  usecase.CartUsecase
	customer *entity.Principal
	product  *entity.Product
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com", false)

	return cartServiceFixtures{
		env: env,
		service: NewCartService(CartServiceParams{
			TxManager:  env.txManager,
			CartRepo:   env.carts,
			Authorizer: env.authorizer,
			Logger:     env.logger,
		}),
		customer: env.createUser(t, "customer@example.com", false),
		product:  env.createProduct(t, env.createShop(t, owner, "Corner Store"), "Notebook", "10.00", 0),
	}
}

func TestCartService_AddItemMergesIntoExistingLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	first, err := fx.service.AddItem(ctx, fx.customer, &usecase.AddCartItemInput{ProductID: fx.product.ID, Quantity: 2})
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, 2, first.Item.Quantity)

	second, err := fx.service.AddItem(ctx, fx.customer, &usecase.AddCartItemInput{ProductID: fx.product.ID, Quantity: 3})
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Item.ID, second.Item.ID)
	assert.Equal(t, 5, second.Item.Quantity)

	items, err := fx.service.ListCart(ctx, fx.customer)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCartService_AddItemDefaultsAndValidation(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.AddItem(ctx, fx.customer, &usecase.AddCartItemInput{ProductID: fx.product.ID})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)

	_, err = fx.service.AddItem(ctx, fx.customer, &usecase.AddCartItemInput{ProductID: fx.product.ID, Quantity: -1})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)

	_, err = fx.service.AddItem(ctx, fx.customer, &usecase.AddCartItemInput{ProductID: fx.product.ID, Quantity: entity.MaxItemQuantity + 1})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)

	items, err := fx.service.ListCart(ctx, fx.customer)
	require.NoError(t, err)
	assert.Empty(t, items)

	added, err := fx.service.AddItem(ctx, fx.customer, &usecase.AddCartItemInput{ProductID: fx.product.ID, Quantity: entity.MaxItemQuantity})
	require.NoError(t, err)
	assert.Equal(t, entity.MaxItemQuantity, added.Item.Quantity)

	_, err = fx.service.AddItem(ctx, fx.customer, &usecase.AddCartItemInput{ProductID: fx.product.ID, Quantity: 1})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)

	items, err = fx.service.ListCart(ctx, fx.customer)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, entity.MaxItemQuantity, items[0].Quantity)

	_, err = fx.service.AddItem(ctx, fx.customer, &usecase.AddCartItemInput{ProductID: uuid.New(), Quantity: 1})
	assert.ErrorIs(t, err, domainerrors.ErrUnknownProduct)

	_, err = fx.service.AddItem(ctx, nil, &usecase.AddCartItemInput{ProductID: fx.product.ID, Quantity: 1})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestCartService_OtherUsersLinesAreInvisible(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	added, err := fx.service.AddItem(ctx, fx.customer, &usecase.AddCartItemInput{ProductID: fx.product.ID, Quantity: 1})
	require.NoError(t, err)

	stranger := fx.env.createUser(t, "stranger@example.com", false)

	items, err := fx.service.ListCart(ctx, stranger)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = fx.service.UpdateQuantity(ctx, stranger, added.Item.ID, 4)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)

	err = fx.service.RemoveItem(ctx, stranger, added.Item.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_UpdateAndRemove(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	added, err := fx.service.AddItem(ctx, fx.customer, &usecase.AddCartItemInput{ProductID: fx.product.ID, Quantity: 1})
	require.NoError(t, err)

	_, err = fx.service.UpdateQuantity(ctx, fx.customer, added.Item.ID, 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)

	updated, err := fx.service.UpdateQuantity(ctx, fx.customer, added.Item.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)

	require.NoError(t, fx.service.RemoveItem(ctx, fx.customer, added.Item.ID))

	err = fx.service.RemoveItem(ctx, fx.customer, added.Item.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

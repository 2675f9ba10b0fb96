package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/policy"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/persistence/testdb"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testEnv wires real repositories over a private SQLite database.
type testEnv struct {
	db         *gorm.DB
	txManager  repository.TransactionManager
	users      repository.UserRepository
	shops      repository.ShopRepository
	categories repository.CategoryRepository
	products   repository.ProductRepository
	carts      repository.CartRepository
	orders     repository.OrderRepository
	reviews    repository.ReviewRepository
	authorizer *policy.Authorizer
	logger     *slog.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testdb.New(t)

	return &testEnv{
		db:         db,
		txManager:  postgres.NewTransactionManager(db),
		users:      postgres.NewUserRepository(db),
		shops:      postgres.NewShopRepository(db),
		categories: postgres.NewCategoryRepository(db),
		products:   postgres.NewProductRepository(db),
		carts:      postgres.NewCartRepository(db),
		orders:     postgres.NewOrderRepository(db),
		reviews:    postgres.NewReviewRepository(db),
		authorizer: policy.NewAuthorizer(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (env *testEnv) createUser(t *testing.T, email string, staff bool) *entity.Principal {
	t.Helper()

	user := &entity.User{Email: email, PasswordHash: "hash", IsActive: true, IsStaff: staff}
	require.NoError(t, env.users.Create(context.Background(), user))

	return user.Principal()
}

func (env *testEnv) createShop(t *testing.T, owner *entity.Principal, name string) *entity.Shop {
	t.Helper()

	shop := &entity.Shop{Name: name, OwnerID: owner.UserID}
	require.NoError(t, env.shops.Create(context.Background(), shop))

	return shop
}

func (env *testEnv) createProduct(t *testing.T, shop *entity.Shop, name, price string, discount int) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Discount: discount,
		ShopID:   shop.ID,
	}
	require.NoError(t, env.products.Create(context.Background(), product))

	return product
}

func (env *testEnv) addToCart(t *testing.T, user *entity.Principal, productID uuid.UUID, quantity int) {
	t.Helper()

	item := &entity.CartItem{UserID: user.UserID, ProductID: productID, Quantity: quantity}
	require.NoError(t, env.carts.Create(context.Background(), item))
}

func ptr[T any](v T) *T {
	return &v
}

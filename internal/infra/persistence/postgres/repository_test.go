package postgres_test

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/persistence/testdb"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type seed struct {
	owner    *entity.User
	shop     *entity.Shop
	category *entity.Category
	product  *entity.Product
}

func seedCatalog(t *testing.T, db *gorm.DB) *seed {
	t.Helper()
	ctx := context.Background()

	owner := &entity.User{Email: "owner@example.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, postgres.NewUserRepository(db).Create(ctx, owner))

	shop := &entity.Shop{Name: "Corner Store", OwnerID: owner.ID}
	require.NoError(t, postgres.NewShopRepository(db).Create(ctx, shop))

	category := &entity.Category{Name: "Books"}
	require.NoError(t, postgres.NewCategoryRepository(db).Create(ctx, category))

	product := &entity.Product{
		Name:        "Go in Practice",
		Price:       decimal.RequireFromString("10.00"),
		Discount:    20,
		ShopID:      shop.ID,
		CategoryIDs: []uuid.UUID{category.ID},
	}
	require.NoError(t, postgres.NewProductRepository(db).Create(ctx, product))

	return &seed{owner: owner, shop: shop, category: category, product: product}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := testdb.New(t)
	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "a@example.com", PasswordHash: "x"}))
	err := repo.Create(ctx, &entity.User{Email: "a@example.com", PasswordHash: "y"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	_, err = repo.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestProductRepository_FindLoadsOwnerAndCategories(t *testing.T) {
	db := testdb.New(t)
	s := seedCatalog(t, db)

	product, err := postgres.NewProductRepository(db).FindByID(context.Background(), s.product.ID)
	require.NoError(t, err)

	assert.Equal(t, s.owner.ID, product.ShopOwnerID)
	assert.Equal(t, []uuid.UUID{s.category.ID}, product.CategoryIDs)
	assert.True(t, decimal.RequireFromString("10").Equal(product.Price))
	assert.Equal(t, 20, product.Discount)
}

func TestProductRepository_DuplicateNameAndUnknownCategory(t *testing.T) {
	db := testdb.New(t)
	s := seedCatalog(t, db)
	repo := postgres.NewProductRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &entity.Product{Name: s.product.Name, Price: decimal.NewFromInt(1), ShopID: s.shop.ID})
	assert.ErrorIs(t, err, repository.ErrDuplicateProductName)

	err = repo.Create(ctx, &entity.Product{
		Name:        "Another",
		Price:       decimal.NewFromInt(1),
		ShopID:      s.shop.ID,
		CategoryIDs: []uuid.UUID{uuid.New()},
	})
	assert.ErrorIs(t, err, repository.ErrUnknownCategory)
}

func TestProductRepository_SearchAndOrdering(t *testing.T) {
	db := testdb.New(t)
	s := seedCatalog(t, db)
	repo := postgres.NewProductRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Product{
		Name:        "Coffee Mug",
		Price:       decimal.RequireFromString("4.50"),
		Description: "Pairs well with a good book",
		ShopID:      s.shop.ID,
	}))

	byName, err := repo.List(ctx, repository.ProductFilter{Search: "PRACTICE"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, s.product.ID, byName[0].ID)

	byDescription, err := repo.List(ctx, repository.ProductFilter{Search: "book"})
	require.NoError(t, err)
	assert.Empty(t, byDescription)

	byShop, err := repo.List(ctx, repository.ProductFilter{Search: "corner"})
	require.NoError(t, err)
	assert.Empty(t, byShop)

	byPrice, err := repo.List(ctx, repository.ProductFilter{Ordering: []repository.ProductOrder{{Field: "price", Desc: true}}})
	require.NoError(t, err)
	require.Len(t, byPrice, 2)
	assert.Equal(t, "Go in Practice", byPrice[0].Name)
	assert.Equal(t, "Coffee Mug", byPrice[1].Name)

	_, err = repo.List(ctx, repository.ProductFilter{Ordering: []repository.ProductOrder{{Field: "password"}}})
	assert.Error(t, err)
}

func TestProductRepository_SearchMatchesWildcardsLiterally(t *testing.T) {
	db := testdb.New(t)
	s := seedCatalog(t, db)
	repo := postgres.NewProductRepository(db)
	ctx := context.Background()

	for _, name := range []string{"100% Cotton Tee", "snake_case Mug", "snakeXcase Mug"} {
		require.NoError(t, repo.Create(ctx, &entity.Product{Name: name, Price: decimal.NewFromInt(5), ShopID: s.shop.ID}))
	}

	percent, err := repo.List(ctx, repository.ProductFilter{Search: "%"})
	require.NoError(t, err)
	require.Len(t, percent, 1)
	assert.Equal(t, "100% Cotton Tee", percent[0].Name)

	underscore, err := repo.List(ctx, repository.ProductFilter{Search: "e_c"})
	require.NoError(t, err)
	require.Len(t, underscore, 1)
	assert.Equal(t, "snake_case Mug", underscore[0].Name)

	backslash, err := repo.List(ctx, repository.ProductFilter{Search: `\`})
	require.NoError(t, err)
	assert.Empty(t, backslash)
}

func TestProductRepository_UpdateReplacesCategories(t *testing.T) {
	db := testdb.New(t)
	s := seedCatalog(t, db)
	ctx := context.Background()

	other := &entity.Category{Name: "Kitchen"}
	require.NoError(t, postgres.NewCategoryRepository(db).Create(ctx, other))

	repo := postgres.NewProductRepository(db)
	s.product.CategoryIDs = []uuid.UUID{other.ID}
	s.product.Price = decimal.RequireFromString("12.00")
	require.NoError(t, repo.Update(ctx, s.product))

	product, err := repo.FindByID(ctx, s.product.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{other.ID}, product.CategoryIDs)
	assert.Equal(t, "12.00", product.Price.StringFixed(2))

	require.NoError(t, postgres.NewCategoryRepository(db).Delete(ctx, other.ID))
	product, err = repo.FindByID(ctx, s.product.ID)
	require.NoError(t, err)
	assert.Empty(t, product.CategoryIDs)
}

func TestCartRepository_UniqueLineAndIncrement(t *testing.T) {
	db := testdb.New(t)
	s := seedCatalog(t, db)
	repo := postgres.NewCartRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.CartItem{UserID: s.owner.ID, ProductID: s.product.ID, Quantity: 1}))

	err := repo.Create(ctx, &entity.CartItem{UserID: s.owner.ID, ProductID: s.product.ID, Quantity: 2})
	assert.ErrorIs(t, err, repository.ErrDuplicateCartItem)

	require.NoError(t, repo.IncrementQuantity(ctx, s.owner.ID, s.product.ID, 2))
	item, err := repo.FindByUserAndProduct(ctx, s.owner.ID, s.product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)

	err = repo.IncrementQuantity(ctx, s.owner.ID, s.product.ID, entity.MaxItemQuantity-2)
	assert.ErrorIs(t, err, repository.ErrQuantityLimit)
	item, err = repo.FindByUserAndProduct(ctx, s.owner.ID, s.product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)

	err = repo.IncrementQuantity(ctx, s.owner.ID, uuid.New(), 1)
	assert.ErrorIs(t, err, repository.ErrCartItemNotFound)

	deleted, err := repo.DeleteByIDs(ctx, []uuid.UUID{item.ID, uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestOrderRepository_ItemsAndTotals(t *testing.T) {
	db := testdb.New(t)
	s := seedCatalog(t, db)
	repo := postgres.NewOrderRepository(db)
	ctx := context.Background()

	order := &entity.Order{CustomerID: s.owner.ID, Status: entity.OrderStatusPending}
	require.NoError(t, repo.Create(ctx, order))

	totals, err := repo.ItemTotals(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, totals)

	require.NoError(t, repo.CreateItem(ctx, &entity.OrderItem{
		OrderID:     order.ID,
		ProductID:   s.product.ID,
		Quantity:    3,
		TotalAmount: decimal.RequireFromString("24.00"),
	}))

	totals, err = repo.ItemTotals(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "24.00", entity.SumTotals(totals).StringFixed(2))

	count, err := repo.CountItemsByProduct(ctx, s.product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	err = postgres.NewProductRepository(db).Delete(ctx, s.product.ID)
	assert.ErrorIs(t, err, repository.ErrProductReferenced)

	require.NoError(t, repo.Delete(ctx, order.ID))
	_, err = repo.FindByID(ctx, order.ID)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := testdb.New(t)
	tm := postgres.NewTransactionManager(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewCategoryRepository().Create(ctx, &entity.Category{Name: "Temp"}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	categories, err := postgres.NewCategoryRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

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

type reviewServiceFixtures struct {
	env     *testEnv
	service usecase.ReviewUsecase
	product *entity.Product
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com", false)
	shop := env.createShop(t, owner, "Corner Store")

	return reviewServiceFixtures{
		env: env,
		service: NewReviewService(ReviewServiceParams{
			ReviewRepo:  env.reviews,
			ProductRepo: env.products,
			Authorizer:  env.authorizer,
			Logger:      env.logger,
		}),
		product: env.createProduct(t, shop, "Notebook", "10.00", 0),
	}
}

func TestReviewService_CreateReview(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	customer := fx.env.createUser(t, "customer@example.com", false)

	_, err := fx.service.CreateReview(ctx, nil, &usecase.ReviewInput{ProductID: fx.product.ID})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	for _, grade := range []int{0, 6, -1} {
		_, err = fx.service.CreateReview(ctx, customer, &usecase.ReviewInput{ProductID: fx.product.ID, Grade: ptr(grade)})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidGrade, "grade %d", grade)
	}

	_, err = fx.service.CreateReview(ctx, customer, &usecase.ReviewInput{ProductID: uuid.New(), Grade: ptr(3)})
	assert.ErrorIs(t, err, domainerrors.ErrUnknownProduct)

	review, err := fx.service.CreateReview(ctx, customer, &usecase.ReviewInput{ProductID: fx.product.ID, Grade: ptr(5), Comment: "great"})
	require.NoError(t, err)
	assert.Equal(t, customer.UserID, review.CustomerID)
	require.NotNil(t, review.Grade)
	assert.Equal(t, 5, *review.Grade)

	ungraded, err := fx.service.CreateReview(ctx, customer, &usecase.ReviewInput{ProductID: fx.product.ID, Comment: "second thoughts"})
	require.NoError(t, err)
	assert.Nil(t, ungraded.Grade)
}

func TestReviewService_Permissions(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	author := fx.env.createUser(t, "author@example.com", false)
	other := fx.env.createUser(t, "other@example.com", false)
	staff := fx.env.createUser(t, "staff@example.com", true)

	review, err := fx.service.CreateReview(ctx, author, &usecase.ReviewInput{ProductID: fx.product.ID, Grade: ptr(4)})
	require.NoError(t, err)

	_, err = fx.service.UpdateReview(ctx, nil, review.ID, &usecase.ReviewPatch{Comment: ptr("x")})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = fx.service.UpdateReview(ctx, other, review.ID, &usecase.ReviewPatch{Comment: ptr("x")})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.UpdateReview(ctx, author, review.ID, &usecase.ReviewPatch{Grade: ptr(9)})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidGrade)

	updated, err := fx.service.UpdateReview(ctx, author, review.ID, &usecase.ReviewPatch{Grade: ptr(2), Comment: ptr("worse on reflection")})
	require.NoError(t, err)
	assert.Equal(t, 2, *updated.Grade)
	assert.Equal(t, "worse on reflection", updated.Comment)

	moderated, err := fx.service.UpdateReview(ctx, staff, review.ID, &usecase.ReviewPatch{Comment: ptr("[removed]")})
	require.NoError(t, err)
	assert.Equal(t, "[removed]", moderated.Comment)

	assert.ErrorIs(t, fx.service.DeleteReview(ctx, other, review.ID), domainerrors.ErrForbidden)
	require.NoError(t, fx.service.DeleteReview(ctx, author, review.ID))

	_, err = fx.service.GetReview(ctx, nil, review.ID)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestReviewService_ListFiltersByProduct(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	customer := fx.env.createUser(t, "customer@example.com", false)
	shop := fx.env.createShop(t, customer, "Other Store")
	otherProduct := fx.env.createProduct(t, shop, "Pen", "1.00", 0)

	_, err := fx.service.CreateReview(ctx, customer, &usecase.ReviewInput{ProductID: fx.product.ID, Comment: "a"})
	require.NoError(t, err)
	_, err = fx.service.CreateReview(ctx, customer, &usecase.ReviewInput{ProductID: otherProduct.ID, Comment: "b"})
	require.NoError(t, err)

	all, err := fx.service.ListReviews(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := fx.service.ListReviews(ctx, nil, &otherProduct.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "b", filtered[0].Comment)
}

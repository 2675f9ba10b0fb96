package impl

import (
	"context"
	"strings"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Permissions(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCategoryService(CategoryServiceParams{CategoryRepo: env.categories, Authorizer: env.authorizer, Logger: env.logger})
	ctx := context.Background()

	customer := env.createUser(t, "customer@example.com", false)
	staff := env.createUser(t, "staff@example.com", true)

	_, err := svc.CreateCategory(ctx, nil, &usecase.CategoryInput{Name: "Books"})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = svc.CreateCategory(ctx, customer, &usecase.CategoryInput{Name: "Books"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	created, err := svc.CreateCategory(ctx, staff, &usecase.CategoryInput{Name: "Books", Description: "Paper"})
	require.NoError(t, err)

	listed, err := svc.ListCategories(ctx, nil)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Books", listed[0].Name)

	fetched, err := svc.GetCategory(ctx, nil, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paper", fetched.Description)

	_, err = svc.GetCategory(ctx, nil, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_Validation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCategoryService(CategoryServiceParams{CategoryRepo: env.categories, Authorizer: env.authorizer, Logger: env.logger})
	ctx := context.Background()
	staff := env.createUser(t, "staff@example.com", true)

	books, err := svc.CreateCategory(ctx, staff, &usecase.CategoryInput{Name: "Books"})
	require.NoError(t, err)
	music, err := svc.CreateCategory(ctx, staff, &usecase.CategoryInput{Name: "Music"})
	require.NoError(t, err)

	_, err = svc.CreateCategory(ctx, staff, &usecase.CategoryInput{Name: "Books"})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNameTaken)

	_, err = svc.UpdateCategory(ctx, staff, music.ID, &usecase.CategoryPatch{Name: ptr("Books")})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNameTaken)

	_, err = svc.CreateCategory(ctx, staff, &usecase.CategoryInput{Name: strings.Repeat("x", 65)})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	renamed, err := svc.UpdateCategory(ctx, staff, books.ID, &usecase.CategoryPatch{Description: ptr("Printed")})
	require.NoError(t, err)
	assert.Equal(t, "Books", renamed.Name)
	assert.Equal(t, "Printed", renamed.Description)

	require.NoError(t, svc.DeleteCategory(ctx, staff, books.ID))
	assert.ErrorIs(t, svc.DeleteCategory(ctx, staff, books.ID), domainerrors.ErrCategoryNotFound)
}

package handler

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
}

// CategoryHandler serves /categories.
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{categoryUC: params.CategoryUC}
}

// CategoryRequest is the body of POST and PUT.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// CategoryPatchRequest is the body of PATCH.
type CategoryPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryUC.ListCategories(c.Request().Context(), middleware.GetPrincipal(c))
	if err != nil {
		return err
	}

	return response.OK(c, categories)
}

func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.categoryUC.GetCategory(c.Request().Context(), middleware.GetPrincipal(c), id)
	if err != nil {
		return err
	}

	return response.OK(c, category)
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), middleware.GetPrincipal(c), &usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return response.Created(c, category)
}

// Replace handles PUT: every field is written.
func (h *CategoryHandler) Replace(c echo.Context) error {
	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return h.update(c, &usecase.CategoryPatch{Name: &req.Name, Description: &req.Description})
}

// Patch handles PATCH: only the given fields are written.
func (h *CategoryHandler) Patch(c echo.Context) error {
	var req CategoryPatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return h.update(c, &usecase.CategoryPatch{Name: req.Name, Description: req.Description})
}

func (h *CategoryHandler) update(c echo.Context, patch *usecase.CategoryPatch) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.categoryUC.UpdateCategory(c.Request().Context(), middleware.GetPrincipal(c), id, patch)
	if err != nil {
		return err
	}

	return response.OK(c, category)
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.categoryUC.DeleteCategory(c.Request().Context(), middleware.GetPrincipal(c), id); err != nil {
		return err
	}

	return response.NoContent(c)
}

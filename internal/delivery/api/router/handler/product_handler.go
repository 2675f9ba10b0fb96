package handler

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
}

// ProductHandler serves /products.
type ProductHandler struct {
	productUC usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{productUC: params.ProductUC}
}

// ProductRequest is the body of POST and PUT.
type ProductRequest struct {
	Name        string           `json:"name" validate:"required"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Discount    int              `json:"discount"`
	Description string           `json:"description"`
	ShopID      uuid.UUID        `json:"shop" validate:"required"`
	CategoryIDs []uuid.UUID      `json:"categories"`
}

// ProductPatchRequest is the body of PATCH.
type ProductPatchRequest struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Discount    *int             `json:"discount"`
	Description *string          `json:"description"`
	ShopID      *uuid.UUID       `json:"shop"`
	CategoryIDs *[]uuid.UUID     `json:"categories"`
}

// List supports ?search= and ?ordering=.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productUC.ListProducts(c.Request().Context(), middleware.GetPrincipal(c), &usecase.ProductQuery{
		Search:   c.QueryParam("search"),
		Ordering: c.QueryParam("ordering"),
	})
	if err != nil {
		return err
	}

	return response.OK(c, products)
}

func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), middleware.GetPrincipal(c), id)
	if err != nil {
		return err
	}

	return response.OK(c, product)
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), middleware.GetPrincipal(c), &usecase.ProductInput{
		Name:        req.Name,
		Price:       *req.Price,
		Discount:    req.Discount,
		Description: req.Description,
		ShopID:      req.ShopID,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		return err
	}

	return response.Created(c, product)
}

func (h *ProductHandler) Replace(c echo.Context) error {
	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	categoryIDs := req.CategoryIDs
	if categoryIDs == nil {
		categoryIDs = []uuid.UUID{}
	}

	return h.update(c, &usecase.ProductPatch{
		Name:        &req.Name,
		Price:       req.Price,
		Discount:    &req.Discount,
		Description: &req.Description,
		ShopID:      &req.ShopID,
		CategoryIDs: &categoryIDs,
	})
}

func (h *ProductHandler) Patch(c echo.Context) error {
	var req ProductPatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return h.update(c, &usecase.ProductPatch{
		Name:        req.Name,
		Price:       req.Price,
		Discount:    req.Discount,
		Description: req.Description,
		ShopID:      req.ShopID,
		CategoryIDs: req.CategoryIDs,
	})
}

func (h *ProductHandler) update(c echo.Context, patch *usecase.ProductPatch) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), middleware.GetPrincipal(c), id, patch)
	if err != nil {
		return err
	}

	return response.OK(c, product)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), middleware.GetPrincipal(c), id); err != nil {
		return err
	}

	return response.NoContent(c)
}

// UploadImage replaces the product image with the multipart "file".
func (h *ProductHandler) UploadImage(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	upload, file, err := formUpload(c)
	if err != nil {
		return err
	}
	defer file.Close()

	product, err := h.productUC.UploadImage(c.Request().Context(), middleware.GetPrincipal(c), id, upload)
	if err != nil {
		return err
	}

	return response.OK(c, product)
}

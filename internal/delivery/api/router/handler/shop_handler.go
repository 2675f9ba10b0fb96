package handler

import (
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
}

// ShopHandler serves /shops.
type ShopHandler struct {
	shopUC usecase.ShopUsecase
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{shopUC: params.ShopUC}
}

// ShopRequest is the body of POST and PUT. The owner is always the caller.
type ShopRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	Address     string `json:"address" validate:"max=255"`
}

// ShopPatchRequest is the body of PATCH.
type ShopPatchRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
}

// ShopScanRequest carries the text decoded from a shop QR code.
type ShopScanRequest struct {
	Payload string `json:"payload" validate:"required"`
}

func (h *ShopHandler) List(c echo.Context) error {
	shops, err := h.shopUC.ListShops(c.Request().Context(), middleware.GetPrincipal(c))
	if err != nil {
		return err
	}

	return response.OK(c, shops)
}

func (h *ShopHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	shop, err := h.shopUC.GetShop(c.Request().Context(), middleware.GetPrincipal(c), id)
	if err != nil {
		return err
	}

	return response.OK(c, shop)
}

func (h *ShopHandler) Create(c echo.Context) error {
	var req ShopRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	shop, err := h.shopUC.CreateShop(c.Request().Context(), middleware.GetPrincipal(c), &usecase.ShopInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
	})
	if err != nil {
		return err
	}

	return response.Created(c, shop)
}

func (h *ShopHandler) Replace(c echo.Context) error {
	var req ShopRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return h.update(c, &usecase.ShopPatch{Name: &req.Name, Description: &req.Description, Address: &req.Address})
}

func (h *ShopHandler) Patch(c echo.Context) error {
	var req ShopPatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return h.update(c, &usecase.ShopPatch{Name: req.Name, Description: req.Description, Address: req.Address})
}

func (h *ShopHandler) update(c echo.Context, patch *usecase.ShopPatch) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	shop, err := h.shopUC.UpdateShop(c.Request().Context(), middleware.GetPrincipal(c), id, patch)
	if err != nil {
		return err
	}

	return response.OK(c, shop)
}

func (h *ShopHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.shopUC.DeleteShop(c.Request().Context(), middleware.GetPrincipal(c), id); err != nil {
		return err
	}

	return response.NoContent(c)
}

// UploadAvatar replaces the shop avatar with the multipart "file".
func (h *ShopHandler) UploadAvatar(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	upload, file, err := formUpload(c)
	if err != nil {
		return err
	}
	defer file.Close()

	shop, err := h.shopUC.UploadAvatar(c.Request().Context(), middleware.GetPrincipal(c), id, upload)
	if err != nil {
		return err
	}

	return response.OK(c, shop)
}

// QRCode renders the shop QR code as a PNG image.
func (h *ShopHandler) QRCode(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.shopUC.ShopQRCode(c.Request().Context(), middleware.GetPrincipal(c), id)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Scan resolves a decoded QR payload to its shop.
func (h *ShopHandler) Scan(c echo.Context) error {
	var req ShopScanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	shop, err := h.shopUC.ResolveShopQR(c.Request().Context(), middleware.GetPrincipal(c), req.Payload)
	if err != nil {
		return err
	}

	return response.OK(c, shop)
}

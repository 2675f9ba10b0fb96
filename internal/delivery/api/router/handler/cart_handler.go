package handler

import (
	"encoding/json"
	"net/http"
	"slices"
	"strings"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// defaultCartQuantity is used when an add request omits the quantity.
const defaultCartQuantity = 1

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
}

// CartHandler serves /cart for the authenticated caller.
type CartHandler struct {
	cartUC usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{cartUC: params.CartUC}
}

// AddCartItemRequest is the body of POST /cart.
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product" validate:"required"`
	Quantity  *int      `json:"quantity" validate:"omitnil,min=1,max=32767"`
}

func (h *CartHandler) List(c echo.Context) error {
	items, err := h.cartUC.ListCart(c.Request().Context(), middleware.GetPrincipal(c))
	if err != nil {
		return err
	}

	return response.OK(c, items)
}

// Add puts a product into the cart. A new line answers 201, a merge into
// the existing line answers 200.
func (h *CartHandler) Add(c echo.Context) error {
	var req AddCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	quantity := defaultCartQuantity
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	output, err := h.cartUC.AddItem(c.Request().Context(), middleware.GetPrincipal(c), &usecase.AddCartItemInput{
		ProductID: req.ProductID,
		Quantity:  quantity,
	})
	if err != nil {
		return err
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}

	return response.Success(c, status, output.Item)
}

// Update changes the quantity of a line. The body must hold exactly the
// quantity field.
func (h *CartHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	var extra []string
	for field := range body {
		if field != "quantity" {
			extra = append(extra, field)
		}
	}
	if len(extra) > 0 {
		slices.Sort(extra)

		return domainerrors.ErrCartFieldNotEditable.WithDetails("unexpected fields: " + strings.Join(extra, ", "))
	}

	raw, ok := body["quantity"]
	if !ok {
		return domainerrors.ErrCartFieldNotEditable.WithDetails("quantity is required")
	}

	var quantity int
	if err := json.Unmarshal(raw, &quantity); err != nil {
		return domainerrors.ErrInvalidQuantity
	}

	item, err := h.cartUC.UpdateQuantity(c.Request().Context(), middleware.GetPrincipal(c), id, quantity)
	if err != nil {
		return err
	}

	return response.OK(c, item)
}

func (h *CartHandler) Remove(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.cartUC.RemoveItem(c.Request().Context(), middleware.GetPrincipal(c), id); err != nil {
		return err
	}

	return response.NoContent(c)
}

package handler

import (
	"time"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler serves /orders and their items.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

// OrderRequest is the body of PUT; every field is written.
type OrderRequest struct {
	Status       entity.OrderStatus `json:"status" validate:"required"`
	DispatchDate time.Time          `json:"dispatch_date" validate:"required"`
	ArrivalDate  *time.Time         `json:"arrival_date"`
	From         string             `json:"from_field" validate:"max=255"`
	To           string             `json:"to_field" validate:"max=255"`
}

// OrderPatchRequest is the body of PATCH.
type OrderPatchRequest struct {
	Status       *entity.OrderStatus `json:"status"`
	DispatchDate *time.Time          `json:"dispatch_date"`
	ArrivalDate  *time.Time          `json:"arrival_date"`
	From         *string             `json:"from_field" validate:"omitempty,max=255"`
	To           *string             `json:"to_field" validate:"omitempty,max=255"`
}

// OrderItemRequest is the body of POST /orders/:id/items.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1,max=32767"`
}

// OrderItemPatchRequest is the body of PATCH /orders/:id/items/:itemId.
type OrderItemPatchRequest struct {
	ProductID *uuid.UUID `json:"product"`
	Quantity  *int       `json:"quantity" validate:"omitnil,min=1,max=32767"`
}

// Checkout turns the caller's cart into an order.
func (h *OrderHandler) Checkout(c echo.Context) error {
	order, err := h.orderUC.Checkout(c.Request().Context(), middleware.GetPrincipal(c))
	if err != nil {
		return err
	}

	return response.Created(c, order)
}

func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context(), middleware.GetPrincipal(c))
	if err != nil {
		return err
	}

	return response.OK(c, orders)
}

func (h *OrderHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), middleware.GetPrincipal(c), id)
	if err != nil {
		return err
	}

	return response.OK(c, order)
}

func (h *OrderHandler) Replace(c echo.Context) error {
	var req OrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return h.update(c, &usecase.OrderPatch{
		Status:       &req.Status,
		DispatchDate: &req.DispatchDate,
		ArrivalDate:  req.ArrivalDate,
		From:         &req.From,
		To:           &req.To,
	})
}

func (h *OrderHandler) Patch(c echo.Context) error {
	var req OrderPatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return h.update(c, &usecase.OrderPatch{
		Status:       req.Status,
		DispatchDate: req.DispatchDate,
		ArrivalDate:  req.ArrivalDate,
		From:         req.From,
		To:           req.To,
	})
}

func (h *OrderHandler) update(c echo.Context, patch *usecase.OrderPatch) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.UpdateOrder(c.Request().Context(), middleware.GetPrincipal(c), id, patch)
	if err != nil {
		return err
	}

	return response.OK(c, order)
}

func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), middleware.GetPrincipal(c), id); err != nil {
		return err
	}

	return response.NoContent(c)
}

// AddItem adds a line to an order and returns the recalculated order.
func (h *OrderHandler) AddItem(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req OrderItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.AddItem(c.Request().Context(), middleware.GetPrincipal(c), orderID, &usecase.OrderItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return err
	}

	return response.Created(c, order)
}

func (h *OrderHandler) UpdateItem(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}

	var req OrderItemPatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateItem(c.Request().Context(), middleware.GetPrincipal(c), orderID, itemID, &usecase.OrderItemPatch{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return err
	}

	return response.OK(c, order)
}

func (h *OrderHandler) DeleteItem(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}

	order, err := h.orderUC.DeleteItem(c.Request().Context(), middleware.GetPrincipal(c), orderID, itemID)
	if err != nil {
		return err
	}

	return response.OK(c, order)
}

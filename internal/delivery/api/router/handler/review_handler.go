package handler

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
}

// ReviewHandler serves /reviews.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{reviewUC: params.ReviewUC}
}

// ReviewRequest is the body of POST and PUT.
type ReviewRequest struct {
	ProductID uuid.UUID `json:"product" validate:"required"`
	Grade     *int      `json:"grade"`
	Comment   string    `json:"comment"`
}

// ReviewPatchRequest is the body of PATCH. The product of a review is fixed.
type ReviewPatchRequest struct {
	Grade   *int    `json:"grade"`
	Comment *string `json:"comment"`
}

// List supports ?product=<id>.
func (h *ReviewHandler) List(c echo.Context) error {
	var productID *uuid.UUID
	if raw := c.QueryParam("product"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.OK(c, []any{})
		}
		productID = &id
	}

	reviews, err := h.reviewUC.ListReviews(c.Request().Context(), middleware.GetPrincipal(c), productID)
	if err != nil {
		return err
	}

	return response.OK(c, reviews)
}

func (h *ReviewHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	review, err := h.reviewUC.GetReview(c.Request().Context(), middleware.GetPrincipal(c), id)
	if err != nil {
		return err
	}

	return response.OK(c, review)
}

func (h *ReviewHandler) Create(c echo.Context) error {
	var req ReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), middleware.GetPrincipal(c), &usecase.ReviewInput{
		ProductID: req.ProductID,
		Grade:     req.Grade,
		Comment:   req.Comment,
	})
	if err != nil {
		return err
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) Replace(c echo.Context) error {
	var req ReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return h.update(c, &usecase.ReviewPatch{Grade: req.Grade, Comment: &req.Comment})
}

func (h *ReviewHandler) Patch(c echo.Context) error {
	var req ReviewPatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return h.update(c, &usecase.ReviewPatch{Grade: req.Grade, Comment: req.Comment})
}

func (h *ReviewHandler) update(c echo.Context, patch *usecase.ReviewPatch) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	review, err := h.reviewUC.UpdateReview(c.Request().Context(), middleware.GetPrincipal(c), id, patch)
	if err != nil {
		return err
	}

	return response.OK(c, review)
}

func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), middleware.GetPrincipal(c), id); err != nil {
		return err
	}

	return response.NoContent(c)
}

package handler

import (
	"time"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// birthdayLayout is the date format of the birthday field.
const birthdayLayout = time.DateOnly

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// UserHandler serves the user listing and the profile of the caller.
type UserHandler struct {
	userUC usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{userUC: params.UserUC}
}

// ProfileRequest is the body of PATCH /users/me. Absent fields are left unchanged.
type ProfileRequest struct {
	FirstName  *string `json:"first_name" validate:"omitempty,max=150"`
	LastName   *string `json:"last_name" validate:"omitempty,max=150"`
	MiddleName *string `json:"middle_name" validate:"omitempty,max=150"`
	Phone      *string `json:"phone" validate:"omitempty,max=32"`
	Gender     *string `json:"gender"`
	Birthday   *string `json:"birthday"`
	Address    *string `json:"address" validate:"omitempty,max=255"`
}

// ListUsers returns every user, newest first.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context(), middleware.GetPrincipal(c))
	if err != nil {
		return err
	}

	return response.OK(c, users)
}

// GetMe returns the caller's profile.
func (h *UserHandler) GetMe(c echo.Context) error {
	user, err := h.userUC.GetProfile(c.Request().Context(), middleware.GetPrincipal(c))
	if err != nil {
		return err
	}

	return response.OK(c, user)
}

// UpdateMe changes the caller's profile.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var req ProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	patch := &usecase.ProfilePatch{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
		Phone:      req.Phone,
		Address:    req.Address,
	}
	if req.Gender != nil {
		gender := entity.Gender(*req.Gender)
		patch.Gender = &gender
	}
	if req.Birthday != nil {
		birthday, err := time.Parse(birthdayLayout, *req.Birthday)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("birthday must be YYYY-MM-DD")
		}
		patch.Birthday = &birthday
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), middleware.GetPrincipal(c), patch)
	if err != nil {
		return err
	}

	return response.OK(c, user)
}

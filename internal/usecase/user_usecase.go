package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ProfilePatch carries the editable profile fields.
type ProfilePatch struct {
	FirstName  *string
	LastName   *string
	MiddleName *string
	Phone      *string
	Gender     *entity.Gender
	Birthday   *time.Time
	Address    *string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login or refresh.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
	User         *entity.User
}

// UserUsecase defines the account and profile operations.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error)
	GetProfile(ctx context.Context, principal *entity.Principal) (*entity.User, error)
	UpdateProfile(ctx context.Context, principal *entity.Principal, patch *ProfilePatch) (*entity.User, error)
	// ListUsers returns every user, newest first.
	ListUsers(ctx context.Context, principal *entity.Principal) ([]*entity.User, error)
}

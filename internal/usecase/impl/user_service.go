// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/policy"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	authorizer   *policy.Authorizer
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Authorizer   *policy.Authorizer
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		authorizer:   params.Authorizer,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an active, non-staff account.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Warn("Password rejected during registration", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		IsActive:     true,
		DateJoined:   time.Now().UTC(),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID.String()))

	return user, nil
}

// Login checks the credentials and issues a token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login with wrong password", slog.String("user_id", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domainerrors.ErrUserInactive
	}

	return srv.issueTokens(user)
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func (srv *userService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if !user.IsActive {
		return nil, domainerrors.ErrUserInactive
	}

	return srv.issueTokens(user)
}

// GetProfile returns the principal's own account.
func (srv *userService) GetProfile(ctx context.Context, principal *entity.Principal) (*entity.User, error) {
	if err := srv.authorizer.Check(policy.ResourceUser, policy.ActionRetrieve, principal); err != nil {
		return nil, err
	}

	return srv.find(ctx, principal)
}

// UpdateProfile changes the principal's own profile fields.
func (srv *userService) UpdateProfile(ctx context.Context, principal *entity.Principal, patch *usecase.ProfilePatch) (*entity.User, error) {
	if err := srv.authorizer.Check(policy.ResourceUser, policy.ActionUpdate, principal); err != nil {
		return nil, err
	}

	user, err := srv.find(ctx, principal)
	if err != nil {
		return nil, err
	}

	if err := srv.authorizer.CheckObject(policy.ResourceUser, policy.ActionUpdate, principal, policy.Owned(user.ID)); err != nil {
		return nil, err
	}

	if patch.Gender != nil && !patch.Gender.IsValid() {
		return nil, domainerrors.ErrInvalidGender
	}
	applyProfilePatch(user, patch)

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicatePhone) {
			return nil, domainerrors.ErrPhoneTaken
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// ListUsers returns every account, newest first.
func (srv *userService) ListUsers(ctx context.Context, principal *entity.Principal) ([]*entity.User, error) {
	if err := srv.authorizer.Check(policy.ResourceUser, policy.ActionList, principal); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) find(ctx context.Context, principal *entity.Principal) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, principal.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *userService) issueTokens(user *entity.User) (*usecase.LoginOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    srv.tokenService.GetAccessTokenDuration(),
		User:         user,
	}, nil
}

func applyProfilePatch(user *entity.User, patch *usecase.ProfilePatch) {
	if patch.FirstName != nil {
		user.FirstName = strings.TrimSpace(*patch.FirstName)
	}
	if patch.LastName != nil {
		user.LastName = strings.TrimSpace(*patch.LastName)
	}
	if patch.MiddleName != nil {
		user.MiddleName = strings.TrimSpace(*patch.MiddleName)
	}
	if patch.Phone != nil {
		phone := strings.TrimSpace(*patch.Phone)
		if phone == "" {
			user.Phone = nil
		} else {
			user.Phone = &phone
		}
	}
	if patch.Gender != nil {
		user.Gender = *patch.Gender
	}
	if patch.Birthday != nil {
		user.Birthday = patch.Birthday
	}
	if patch.Address != nil {
		user.Address = strings.TrimSpace(*patch.Address)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

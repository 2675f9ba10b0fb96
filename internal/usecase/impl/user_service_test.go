package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	env     *testEnv
	service usecase.UserUsecase
	hasher  *mockSvc.MockPasswordHasher
	tokens  *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	env := newTestEnv(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)

	return userServiceFixtures{
		env: env,
		service: NewUserService(UserServiceParams{
			UserRepo:     env.users,
			Hasher:       hasher,
			TokenService: tokens,
			Authorizer:   env.authorizer,
			Logger:       env.logger,
		}),
		hasher: hasher,
		tokens: tokens,
	}
}

func TestUserService_Register(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Str0ngPassword!").Return("hashed", nil).Twice()

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:     "  Alice@Example.COM ",
		Password:  "Str0ngPassword!",
		FirstName: " Alice ",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.FirstName)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsStaff)

	_, err = fx.service.Register(ctx, &usecase.RegisterInput{Email: "alice@example.com", Password: "Str0ngPassword!"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_RegisterRejectsInput(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "  ", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	fx.hasher.EXPECT().Hash("short").Return("", domainerrors.ErrPasswordStrength).Once()

	_, err = fx.service.Register(ctx, &usecase.RegisterInput{Email: "bob@example.com", Password: "short"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestUserService_Login(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	active := &entity.User{Email: "alice@example.com", PasswordHash: "hash-a", IsActive: true}
	require.NoError(t, fx.env.users.Create(ctx, active))
	inactive := &entity.User{Email: "carol@example.com", PasswordHash: "hash-c", IsActive: false}
	require.NoError(t, fx.env.users.Create(ctx, inactive))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	fx.hasher.EXPECT().Check("wrong", "hash-a").Return(false).Once()
	_, err = fx.service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	fx.hasher.EXPECT().Check("right", "hash-c").Return(true).Once()
	_, err = fx.service.Login(ctx, &usecase.LoginInput{Email: "carol@example.com", Password: "right"})
	assert.ErrorIs(t, err, domainerrors.ErrUserInactive)

	fx.hasher.EXPECT().Check("right", "hash-a").Return(true).Once()
	fx.tokens.EXPECT().GenerateTokens(active.ID, []string{string(entity.RoleUser)}).Return("access", "refresh", nil).Once()
	fx.tokens.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute).Once()

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: " ALICE@example.com", Password: "right"})
	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, 15*time.Minute, out.ExpiresIn)
	assert.Equal(t, active.ID, out.User.ID)
}

func TestUserService_RefreshToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{Email: "alice@example.com", PasswordHash: "hash", IsActive: true, IsStaff: true}
	require.NoError(t, fx.env.users.Create(ctx, user))

	fx.tokens.EXPECT().ValidateToken("garbage").Return(nil, errors.New("malformed")).Once()
	_, err := fx.service.RefreshToken(ctx, "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)

	fx.tokens.EXPECT().ValidateToken("access-token").
		Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeAccess}, nil).Once()
	_, err = fx.service.RefreshToken(ctx, "access-token")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)

	fx.tokens.EXPECT().ValidateToken("orphan").
		Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeRefresh}, nil).Once()
	_, err = fx.service.RefreshToken(ctx, "orphan")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)

	fx.tokens.EXPECT().ValidateToken("refresh-token").
		Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil).Once()
	fx.tokens.EXPECT().GenerateTokens(user.ID, mock.MatchedBy(func(roles []string) bool {
		return assert.ElementsMatch(t, []string{string(entity.RoleUser), string(entity.RoleStaff)}, roles)
	})).Return("access-2", "refresh-2", nil).Once()
	fx.tokens.EXPECT().GetAccessTokenDuration().Return(time.Hour).Once()

	out, err := fx.service.RefreshToken(ctx, "refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "access-2", out.AccessToken)
}

func TestUserService_UpdateProfile(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	alice := fx.env.createUser(t, "alice@example.com", false)
	bob := fx.env.createUser(t, "bob@example.com", false)

	_, err := fx.service.UpdateProfile(ctx, nil, &usecase.ProfilePatch{FirstName: ptr("x")})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	gender := entity.Gender("other")
	_, err = fx.service.UpdateProfile(ctx, alice, &usecase.ProfilePatch{Gender: &gender})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidGender)

	female := entity.GenderFemale
	updated, err := fx.service.UpdateProfile(ctx, alice, &usecase.ProfilePatch{
		FirstName: ptr(" Alice "),
		Phone:     ptr("+15550100"),
		Gender:    &female,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.FirstName)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "+15550100", *updated.Phone)
	assert.Equal(t, entity.GenderFemale, updated.Gender)

	_, err = fx.service.UpdateProfile(ctx, bob, &usecase.ProfilePatch{Phone: ptr("+15550100")})
	assert.ErrorIs(t, err, domainerrors.ErrPhoneTaken)

	cleared, err := fx.service.UpdateProfile(ctx, alice, &usecase.ProfilePatch{Phone: ptr("")})
	require.NoError(t, err)
	assert.Nil(t, cleared.Phone)

	profile, err := fx.service.GetProfile(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.FirstName)
	assert.Nil(t, profile.Phone)
}

func TestUserService_ListUsers(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	alice := fx.env.createUser(t, "alice@example.com", false)
	fx.env.createUser(t, "bob@example.com", false)

	_, err := fx.service.ListUsers(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	users, err := fx.service.ListUsers(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

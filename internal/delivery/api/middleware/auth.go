package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// authSchemes are the accepted Authorization header schemes.
var authSchemes = []string{"JWT ", "Bearer "}

// AuthMiddleware resolves the request principal from an access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// OptionalAuthenticate sets the principal when an Authorization header is
// present. Requests without one continue anonymously; a malformed or
// expired token is rejected with 401.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return next(c)
		}

		principal, err := m.resolve(header)
		if err != nil {
			return err
		}

		m.attach(c, principal)

		return next(c)
	}
}

// Authenticate requires a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("authorization header is missing")
		}

		principal, err := m.resolve(header)
		if err != nil {
			return err
		}

		m.attach(c, principal)

		return next(c)
	}
}

func (m *AuthMiddleware) resolve(header string) (*entity.Principal, error) {
	token, ok := stripScheme(header)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("unsupported authorization scheme")
	}

	claims, err := m.tokenSvc.ValidateToken(token)
	if err != nil || claims.Type != service.TokenTypeAccess {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("invalid or expired token")
	}

	roles := make(entity.Roles, 0, len(claims.Roles))
	for _, role := range claims.Roles {
		if r := entity.Role(role); r.IsValid() {
			roles = append(roles, r)
		}
	}

	return &entity.Principal{UserID: claims.UserID, Roles: roles}, nil
}

// attach stores the principal and tags the request logger with the user.
func (m *AuthMiddleware) attach(c echo.Context, principal *entity.Principal) {
	deliverycontext.SetPrincipal(c, principal)

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", principal.UserID.String()))
	c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))
}

func stripScheme(header string) (string, bool) {
	for _, scheme := range authSchemes {
		if len(header) > len(scheme) && strings.EqualFold(header[:len(scheme)], scheme) {
			return strings.TrimSpace(header[len(scheme):]), true
		}
	}

	return "", false
}

// GetPrincipal returns the authenticated principal, or nil for anonymous requests.
func GetPrincipal(c echo.Context) *entity.Principal {
	return deliverycontext.GetPrincipal(c)
}

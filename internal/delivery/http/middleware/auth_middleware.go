package middleware

import (
	"strings"

	deliverycontext "authd/internal/delivery/context"
	"authd/internal/domain/entity"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/service"
	"authd/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for token authentication and authorization.
type AuthMiddleware struct {
	tokenIssuer service.TokenIssuer
	authUsecase usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenIssuer service.TokenIssuer, authUsecase usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenIssuer: tokenIssuer, authUsecase: authUsecase}
}

// Authenticate validates the bearer access token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(entity.TokenKindAccess, next)
}

// AuthenticateRefresh validates the bearer refresh token for the refresh and
// revoke-refresh endpoints.
func (m *AuthMiddleware) AuthenticateRefresh(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(entity.TokenKindRefresh, next)
}

// authenticate verifies signature, expiry, kind and revocation state of the
// bearer token. Every failure maps to the same 401.
func (m *AuthMiddleware) authenticate(kind entity.TokenKind, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenInvalid.WithDetails("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrTokenInvalid.WithDetails("authorization header must carry a bearer token")
		}

		claims, err := m.tokenIssuer.Parse(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid.WrapMessage("token verification failed")
		}
		if claims.Kind != kind {
			return domainerrors.ErrTokenInvalid.WithDetails("wrong token kind for this endpoint")
		}

		revoked, err := m.authUsecase.IsTokenRevoked(c.Request().Context(), claims.JTI)
		if err != nil {
			return err
		}
		if revoked {
			return domainerrors.ErrTokenInvalid.WithDetails("token has been revoked")
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// RequireAdmin allows only access tokens carrying the admin role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := deliverycontext.GetClaims(c)
		if claims == nil {
			return domainerrors.ErrForbidden.WithDetails("no authenticated identity")
		}
		if claims.Role != entity.RoleAdmin {
			return domainerrors.ErrForbidden.WithDetails("admin role required")
		}

		return next(c)
	}
}

// RequireSelfOrAdmin allows admins unconditionally and other callers only when
// the addressed user is their own. It must be used AFTER Authenticate and on
// routes carrying a :user_uuid parameter.
func (m *AuthMiddleware) RequireSelfOrAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := deliverycontext.GetClaims(c)
		if claims == nil {
			return domainerrors.ErrForbidden.WithDetails("no authenticated identity")
		}
		if claims.Role == entity.RoleAdmin {
			return next(c)
		}
		if c.Param("user_uuid") != claims.UUID.String() {
			return domainerrors.ErrForbidden.WithDetails("cannot act on another user")
		}

		return next(c)
	}
}

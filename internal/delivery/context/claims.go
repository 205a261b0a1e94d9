package context

import (
	"github.com/labstack/echo/v4"

	"authd/internal/domain/service"
)

// KeyAuthClaims is the key for storing verified token claims in context.
const KeyAuthClaims ContextKey = "auth_claims"

// GetClaims extracts the verified token claims from echo.Context.
// Returns nil when the request was not authenticated.
func GetClaims(c echo.Context) *service.TokenClaims {
	if claims, ok := c.Get(string(KeyAuthClaims)).(*service.TokenClaims); ok {
		return claims
	}

	return nil
}

// SetClaims stores the verified token claims in echo.Context.
func SetClaims(c echo.Context, claims *service.TokenClaims) {
	c.Set(string(KeyAuthClaims), claims)
}

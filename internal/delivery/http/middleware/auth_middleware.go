// Package middleware contains the HTTP middlewares of the delivery layer.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"fitbuilder/internal/delivery/http/response"
	"fitbuilder/internal/domain/service"
)

// ContextKeyAccountID is the echo context key the authenticated account id is
// stored under.
const ContextKeyAccountID = "accountID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the account id on
// the request context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(ContextKeyAccountID, claims.AccountID)

		return next(c)
	}
}

// AccountID returns the authenticated account id set by Authenticate.
func AccountID(c echo.Context) (string, bool) {
	accountID, ok := c.Get(ContextKeyAccountID).(string)

	return accountID, ok && accountID != ""
}

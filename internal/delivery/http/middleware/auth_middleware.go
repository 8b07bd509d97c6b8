package middleware

import (
	"strings"

	"agrosikkim/config"
	domainerrors "agrosikkim/internal/domain/errors"
	"agrosikkim/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const farmerIDContextKey = "farmerID"

// AuthMiddleware validates bearer tokens on protected routes. It is only
// active when token issuance is enabled; otherwise every request passes
// through untouched.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware. The token
// service is nil when issuance is disabled.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

func (m *AuthMiddleware) enabled() bool {
	return m.tokenSvc != nil && m.cfg.Auth != nil && m.cfg.Auth.IssueTokens
}

// Authenticate checks the Authorization header for a valid access token
// and stores the farmer ID in the echo context for downstream handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled() {
			return next(c)
		}

		authHeader := c.Request().Header.Get("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			return domainerrors.ErrTokenInvalid.WrapMessage("missing bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid.WrapMessage("token validation failed")
		}
		if claims.Type != "access" {
			return domainerrors.ErrTokenInvalid.WrapMessage("not an access token")
		}

		c.Set(farmerIDContextKey, claims.FarmerID)

		return next(c)
	}
}

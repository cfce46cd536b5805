package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lreale4125-ux/taplinknfc/internal/delivery/http/response"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/service"
)

// ContextKeyClaims is where Authenticate stores the verified claims on the
// echo context.
const ContextKeyClaims = "claims"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores its claims on the
// context for handlers and later middleware.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(ContextKeyClaims, claims)

		return next(c)
	}
}

// RequireAdmin only lets admin accounts through.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := GetClaims(c)
		if !ok {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: identity missing")
		}

		if claims.Role != entity.RoleAdmin {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: admin role required")
		}

		return next(c)
	}
}

// RequireCapability is a middleware factory gating a route on one of the
// per-user capability flags. Admins pass every gate.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireCapability(capability entity.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := GetClaims(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: identity missing")
			}

			if !claims.HasCapability(capability) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: missing '"+string(capability)+"' access")
			}

			return next(c)
		}
	}
}

// GetClaims extracts the verified claims stored by Authenticate.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(ContextKeyClaims).(*service.Claims)

	return claims, ok
}

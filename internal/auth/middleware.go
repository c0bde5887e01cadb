package auth

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "fittrack/internal/errors"
	"fittrack/internal/model"
)

const identityKey = "identity"

// Identity is the authenticated caller attached to the request context.
type Identity struct {
	ID   uint
	Role model.Role
}

// Middleware returns the authentication gate: requests without a valid,
// unexpired bearer token are rejected before reaching any handler.
func Middleware(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			claims, ok := token.Claims.(*Claims)
			if !ok {
				return
			}
			c.Set(identityKey, Identity{ID: claims.UserID, Role: claims.Role})
		},
	})
}

// IdentityFromContext returns the caller identity set by Middleware.
func IdentityFromContext(c echo.Context) (Identity, bool) {
	ident, ok := c.Get(identityKey).(Identity)
	return ident, ok
}

// RequireAdmin gates admin-only routes. The existence check runs before the
// role check: a missing identity maps to USER_NOT_FOUND, not forbidden.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ident, ok := IdentityFromContext(c)
		if !ok {
			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrUserNotFound)
			return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		if ident.Role != model.RoleAdmin {
			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrForbidden)
			return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return next(c)
	}
}

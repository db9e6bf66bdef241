package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	apperrors "gymcore/internal/errors"
	"gymcore/internal/model"
)

// ClaimsFromContext returns the verified claims attached by the JWT
// middleware, or nil when the request is unauthenticated.
func ClaimsFromContext(c echo.Context) *Claims {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil
	}
	return claims
}

// RequireRoles permits the request only when the authenticated role is in the
// allow-set. It must run after token verification.
func RequireRoles(allowed ...model.RoleID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFromContext(c)
			if claims == nil {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrMissingToken)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			for _, role := range allowed {
				if claims.Role == role {
					return next(c)
				}
			}
			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrForbidden)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
	}
}

package middleware

import (
	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/mondragon/guitar-shop/storefront-service/pkg/errs"
	"github.com/mondragon/guitar-shop/storefront-service/pkg/response"
)

// AdminOnly runs after the JWT middleware and rejects principals whose
// token lacks the admin claim. It fails before any handler (and therefore
// any store access) runs.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok || !token.Valid {
			return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
		}

		if isAdmin, _ := claims["isAdmin"].(bool); !isAdmin {
			return response.WriteErrorResponse(c, errs.ErrUnauthorized, nil)
		}

		return next(c)
	}
}

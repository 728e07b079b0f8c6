package middleware

import (
	"net/http" // http defines status codes

	"github.com/labstack/echo/v4" // echo is the web framework
)

// TokenValidator checks a raw Authorization header value.
type TokenValidator interface {
	ValidateHeader(header string) error
}

// AdminAuth rejects requests whose Authorization header does not carry a
// valid admin token.  Every failure looks the same to the client.
func AdminAuth(v TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := v.ValidateHeader(c.Request().Header.Get(echo.HeaderAuthorization)); err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
			}
			return next(c)
		}
	}
}

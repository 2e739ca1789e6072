package apimiddleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
)

type GetUserByIDFN func(int) (*smodel.User, error)

type TokenAuthConfig struct {
	Skipper     middleware.Skipper
	Secret      string
	GetUserByID GetUserByIDFN
}

// TokenAuth authenticates requests from a bearer token and stores the
// resolved user under the "user" context key. Deactivated accounts are
// rejected even when their token is still valid.
func TokenAuth(config TokenAuthConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper != nil && config.Skipper(c) {
				return next(c)
			}

			tokenString, err := tokenFromRequest(c)
			if err != nil {
				return echo.ErrUnauthorized
			}

			userID, err := ParseToken(tokenString, config.Secret)
			if err != nil {
				return echo.ErrUnauthorized
			}

			user, err := config.GetUserByID(userID)
			switch {
			case err != nil:
				return echo.ErrUnauthorized
			case !user.IsActive:
				return echo.ErrUnauthorized
			default:
				c.Set("user", user)
				return next(c)
			}
		}
	}
}

func tokenFromRequest(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer "), nil
	}

	if value := c.QueryParam("token"); value != "" {
		return value, nil
	}

	return "", fmt.Errorf("no bearer token in request")
}

// GetUser returns the authenticated user the middleware stored on the
// context.
func GetUser(c echo.Context) *smodel.User {
	user, _ := c.Get("user").(*smodel.User)
	return user
}

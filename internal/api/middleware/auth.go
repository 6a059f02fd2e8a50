package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/planventure/planventure-api/internal/core/domain"
	"github.com/planventure/planventure-api/internal/core/ports"
)

// userContextKey must match the key the handler package reads.
const userContextKey = "user"

// Auth gates protected routes behind a valid bearer token. It verifies the
// token, then resolves the subject against the user store so that tokens
// issued to since-deleted accounts never grant access. On success the
// resolved *domain.User is injected into the echo context for handlers.
//
// All failure modes answer with the same 401 shape; the body never reveals
// whether the token was malformed, expired, or the user gone.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid authorization header")
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
				}
				return err
			}

			c.Set(userContextKey, user)

			return next(c)
		}
	}
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planventure/planventure-api/internal/core/domain"
)

// userContextKey is where the auth middleware stores the resolved account.
const userContextKey = "user"

// ctxUser extracts the authenticated user injected by the Auth middleware.
// Its presence proves the middleware ran; a protected handler reached without
// it is a wiring bug surfaced as 401, never a panic.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(userContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}

package ports

import (
	"context"

	"github.com/planventure/planventure-api/internal/core/domain"
)

// AuthService implements registration and login. Both return a freshly issued
// session token alongside the account.
type AuthService interface {
	Register(ctx context.Context, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

package ports

import (
	"context"

	"github.com/planventure/planventure-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns the persisted record with its
	// store-assigned id. Returns domain.ErrEmailExists when the email is taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail returns domain.ErrUserNotFound when no such account exists.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID returns domain.ErrUserNotFound when no such account exists.
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

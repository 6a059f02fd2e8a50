package ports

import (
	"context"

	"github.com/planventure/planventure-api/internal/core/domain"
)

// TripRepository defines persistence operations for trips. Every method that
// touches a single trip takes the owning user id and applies it as a filter,
// so rows owned by other users behave exactly like absent rows
// (domain.ErrTripNotFound).
type TripRepository interface {
	// Create inserts a new trip and returns the persisted record with its
	// store-assigned id and timestamps.
	Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	// ListByUser returns all trips owned by userID in store-default order.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Trip, error)
	// FindByID returns the trip only when it exists and is owned by userID.
	FindByID(ctx context.Context, userID, tripID int64) (*domain.Trip, error)
	// Update overwrites the mutable fields of an owned trip and returns the
	// updated record.
	Update(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	// Delete removes an owned trip.
	Delete(ctx context.Context, userID, tripID int64) error
}

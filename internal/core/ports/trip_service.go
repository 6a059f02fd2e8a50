package ports

import (
	"context"
	"encoding/json"

	"github.com/planventure/planventure-api/internal/core/domain"
)

// CreateTripInput carries the data needed to create a trip. Dates are the
// raw YYYY-MM-DD strings from the request; the service validates them.
type CreateTripInput struct {
	Destination string
	StartDate   string
	EndDate     string
	Coordinates *domain.Coordinates
	Itinerary   json.RawMessage
}

// UpdateTripInput carries a partial update: nil (or empty, for Itinerary)
// fields are left unchanged.
type UpdateTripInput struct {
	Destination *string
	StartDate   *string
	EndDate     *string
	Coordinates *domain.Coordinates
	Itinerary   json.RawMessage
}

// TripService defines the use-case operations for trips. Every operation is
// scoped to userID; trips owned by others surface as domain.ErrTripNotFound.
type TripService interface {
	Create(ctx context.Context, userID int64, input CreateTripInput) (*domain.Trip, error)
	List(ctx context.Context, userID int64) ([]*domain.Trip, error)
	Get(ctx context.Context, userID, tripID int64) (*domain.Trip, error)
	Update(ctx context.Context, userID, tripID int64, input UpdateTripInput) (*domain.Trip, error)
	Delete(ctx context.Context, userID, tripID int64) error
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/planventure/planventure-api/internal/api/metrics"
	"github.com/planventure/planventure-api/internal/core/domain"
	"github.com/planventure/planventure-api/internal/core/ports"
	"github.com/planventure/planventure-api/internal/core/validate"
)

// TripService implements trip CRUD scoped to the acting user.
type TripService struct {
	repo ports.TripRepository
	log  zerolog.Logger
}

func NewTripService(repo ports.TripRepository, log zerolog.Logger) *TripService {
	return &TripService{repo: repo, log: log}
}

// Create validates and persists a new trip. When no itinerary is supplied, a
// default day-by-day plan covering the whole date range is synthesized.
func (s *TripService) Create(ctx context.Context, userID int64, input ports.CreateTripInput) (*domain.Trip, error) {
	timer := prometheus.NewTimer(metrics.TripOperationDuration.WithLabelValues("create"))
	defer timer.ObserveDuration()

	if strings.TrimSpace(input.Destination) == "" {
		return nil, domain.ErrMissingFields
	}
	start, end, err := validate.DateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	itinerary := input.Itinerary
	if len(itinerary) == 0 {
		itinerary, err = marshalDefaultItinerary(start, end)
		if err != nil {
			return nil, err
		}
	}

	created, err := s.repo.Create(ctx, &domain.Trip{
		UserID:      userID,
		Destination: input.Destination,
		StartDate:   start,
		EndDate:     end,
		Coordinates: input.Coordinates,
		Itinerary:   itinerary,
	})
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", userID).Msg("failed to create trip")
		return nil, err
	}

	metrics.TripsCreatedTotal.Inc()
	s.log.Info().Int64("trip_id", created.ID).Int64("user_id", userID).Msg("trip created")

	return created, nil
}

// List returns all trips owned by userID in store-default order.
func (s *TripService) List(ctx context.Context, userID int64) ([]*domain.Trip, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get returns a single owned trip, or domain.ErrTripNotFound.
func (s *TripService) Get(ctx context.Context, userID, tripID int64) (*domain.Trip, error) {
	return s.repo.FindByID(ctx, userID, tripID)
}

// Update applies a partial update. The date range is re-validated against the
// resulting start/end, so supplying only one of the two dates checks it
// against the stored other half. When either date changes and no itinerary is
// supplied in the same request, the default itinerary is regenerated for the
// new range, replacing the old one.
func (s *TripService) Update(ctx context.Context, userID, tripID int64, input ports.UpdateTripInput) (*domain.Trip, error) {
	timer := prometheus.NewTimer(metrics.TripOperationDuration.WithLabelValues("update"))
	defer timer.ObserveDuration()

	trip, err := s.repo.FindByID(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	if input.Destination != nil {
		if strings.TrimSpace(*input.Destination) == "" {
			return nil, domain.ErrMissingFields
		}
		trip.Destination = *input.Destination
	}

	datesChanged := false
	if input.StartDate != nil {
		start, err := validate.ParseDate(*input.StartDate)
		if err != nil {
			return nil, err
		}
		trip.StartDate = start
		datesChanged = true
	}
	if input.EndDate != nil {
		end, err := validate.ParseDate(*input.EndDate)
		if err != nil {
			return nil, err
		}
		trip.EndDate = end
		datesChanged = true
	}
	if !trip.StartDate.Before(trip.EndDate) {
		return nil, domain.ErrInvalidDateRange
	}

	if input.Coordinates != nil {
		trip.Coordinates = input.Coordinates
	}

	switch {
	case len(input.Itinerary) > 0:
		trip.Itinerary = input.Itinerary
	case datesChanged:
		trip.Itinerary, err = marshalDefaultItinerary(trip.StartDate, trip.EndDate)
		if err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, trip)
	if err != nil {
		s.log.Error().Err(err).Int64("trip_id", tripID).Msg("failed to update trip")
		return nil, err
	}

	s.log.Info().Int64("trip_id", tripID).Int64("user_id", userID).Msg("trip updated")
	return updated, nil
}

// Delete removes an owned trip, or reports domain.ErrTripNotFound.
func (s *TripService) Delete(ctx context.Context, userID, tripID int64) error {
	timer := prometheus.NewTimer(metrics.TripOperationDuration.WithLabelValues("delete"))
	defer timer.ObserveDuration()

	if err := s.repo.Delete(ctx, userID, tripID); err != nil {
		return err
	}

	s.log.Info().Int64("trip_id", tripID).Int64("user_id", userID).Msg("trip deleted")
	return nil
}

func marshalDefaultItinerary(start, end time.Time) (json.RawMessage, error) {
	b, err := json.Marshal(domain.DefaultItinerary(start, end))
	if err != nil {
		return nil, fmt.Errorf("marshal default itinerary: %w", err)
	}
	return b, nil
}

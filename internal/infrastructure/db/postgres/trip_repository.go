package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/planventure/planventure-api/internal/core/domain"
)

// TripRepository persists trips in PostgreSQL. Single-trip queries always
// filter on user_id as well, so another user's trip is indistinguishable
// from a missing one.
type TripRepository struct {
	db db
}

func NewTripRepository(db db) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	const query = `
		INSERT INTO trips (user_id, destination, start_date, end_date, coordinates, itinerary)
		VALUES (@user_id, @destination, @start_date, @end_date, @coordinates, @itinerary)
		RETURNING id, user_id, destination, start_date, end_date, coordinates, itinerary,
		          created_at, updated_at`

	coords, err := encodeCoordinates(trip.Coordinates)
	if err != nil {
		return nil, err
	}
	args := pgx.NamedArgs{
		"user_id":     trip.UserID,
		"destination": trip.Destination,
		"start_date":  trip.StartDate,
		"end_date":    trip.EndDate,
		"coordinates": coords,
		"itinerary":   []byte(trip.Itinerary),
	}

	created, err := scanTrip(r.db.QueryRow(ctx, query, args))
	if err != nil {
		return nil, fmt.Errorf("inserting trip: %w", err)
	}
	return created, nil
}

func (r *TripRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Trip, error) {
	const query = `
		SELECT id, user_id, destination, start_date, end_date, coordinates, itinerary,
		       created_at, updated_at
		FROM trips
		WHERE user_id = @user_id
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("querying trips: %w", err)
	}
	defer rows.Close()

	trips := make([]*domain.Trip, 0)
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning trip: %w", err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trips: %w", err)
	}
	return trips, nil
}

func (r *TripRepository) FindByID(ctx context.Context, userID, tripID int64) (*domain.Trip, error) {
	const query = `
		SELECT id, user_id, destination, start_date, end_date, coordinates, itinerary,
		       created_at, updated_at
		FROM trips
		WHERE id = @id AND user_id = @user_id`

	trip, err := scanTrip(r.db.QueryRow(ctx, query, pgx.NamedArgs{"id": tripID, "user_id": userID}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTripNotFound
		}
		return nil, fmt.Errorf("querying trip: %w", err)
	}
	return trip, nil
}

func (r *TripRepository) Update(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	const query = `
		UPDATE trips
		SET destination = @destination,
		    start_date  = @start_date,
		    end_date    = @end_date,
		    coordinates = @coordinates,
		    itinerary   = @itinerary,
		    updated_at  = now()
		WHERE id = @id AND user_id = @user_id
		RETURNING id, user_id, destination, start_date, end_date, coordinates, itinerary,
		          created_at, updated_at`

	coords, err := encodeCoordinates(trip.Coordinates)
	if err != nil {
		return nil, err
	}
	args := pgx.NamedArgs{
		"id":          trip.ID,
		"user_id":     trip.UserID,
		"destination": trip.Destination,
		"start_date":  trip.StartDate,
		"end_date":    trip.EndDate,
		"coordinates": coords,
		"itinerary":   []byte(trip.Itinerary),
	}

	updated, err := scanTrip(r.db.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTripNotFound
		}
		return nil, fmt.Errorf("updating trip: %w", err)
	}
	return updated, nil
}

func (r *TripRepository) Delete(ctx context.Context, userID, tripID int64) error {
	const query = `DELETE FROM trips WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, query, pgx.NamedArgs{"id": tripID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("deleting trip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTripNotFound
	}
	return nil
}

func scanTrip(row scanner) (*domain.Trip, error) {
	var (
		t      domain.Trip
		coords []byte
		itin   []byte
	)
	err := row.Scan(&t.ID, &t.UserID, &t.Destination, &t.StartDate, &t.EndDate,
		&coords, &itin, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(coords) > 0 {
		var c domain.Coordinates
		if err := json.Unmarshal(coords, &c); err != nil {
			return nil, fmt.Errorf("decoding coordinates: %w", err)
		}
		t.Coordinates = &c
	}
	t.Itinerary = json.RawMessage(itin)
	return &t, nil
}

// encodeCoordinates renders coordinates as jsonb, NULL when absent.
func encodeCoordinates(c *domain.Coordinates) ([]byte, error) {
	if c == nil {
		return nil, nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding coordinates: %w", err)
	}
	return b, nil
}

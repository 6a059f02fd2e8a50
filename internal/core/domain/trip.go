package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrTripNotFound = errors.New("trip not found")
var ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")
var ErrInvalidDateRange = errors.New("end date must be after start date")

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Trip is the core aggregate: a planned journey owned by exactly one user.
// Every read and write is scoped to the owning user id; rows belonging to
// other users are indistinguishable from absent rows.
//
// Itinerary is opaque structured data. Clients may supply any JSON shape
// (e.g. [{"day": 1, "plan": "..."}]); when omitted on create, a per-date
// default plan is synthesized (see DefaultItinerary).
type Trip struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	Destination string          `json:"destination"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	Coordinates *Coordinates    `json:"coordinates,omitempty"`
	Itinerary   json.RawMessage `json:"itinerary,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

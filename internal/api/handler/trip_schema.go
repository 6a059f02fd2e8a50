package handler

import "encoding/json"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type coordinatesRequest struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

type createTripRequest struct {
	Destination string              `json:"destination" validate:"required"`
	StartDate   string              `json:"start_date"  validate:"required"`
	EndDate     string              `json:"end_date"    validate:"required"`
	Coordinates *coordinatesRequest `json:"coordinates,omitempty"`
	Itinerary   json.RawMessage     `json:"itinerary,omitempty"`
}

// updateTripRequest is a partial update: absent fields leave the stored value
// untouched, which is why every field is a pointer or raw JSON.
type updateTripRequest struct {
	Destination *string             `json:"destination,omitempty"`
	StartDate   *string             `json:"start_date,omitempty"`
	EndDate     *string             `json:"end_date,omitempty"`
	Coordinates *coordinatesRequest `json:"coordinates,omitempty"`
	Itinerary   json.RawMessage     `json:"itinerary,omitempty"`
}

// Response-only types owned by the transport layer. Dates travel as
// YYYY-MM-DD strings so the JSON contract is not coupled to time.Time
// serialization.

type coordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type tripResponse struct {
	ID          int64                `json:"id"`
	Destination string               `json:"destination"`
	StartDate   string               `json:"start_date"`
	EndDate     string               `json:"end_date"`
	Coordinates *coordinatesResponse `json:"coordinates,omitempty"`
	Itinerary   json.RawMessage      `json:"itinerary,omitempty"`
}

type tripEnvelope struct {
	Message string       `json:"message,omitempty"`
	Trip    tripResponse `json:"trip"`
}

type listTripsResponse struct {
	Trips []tripResponse `json:"trips"`
}

type messageResponse struct {
	Message string `json:"message"`
}

package handler

import (
	"github.com/planventure/planventure-api/internal/core/domain"
	"github.com/planventure/planventure-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createTripRequest) ports.CreateTripInput {
	return ports.CreateTripInput{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Coordinates: toCoordinates(req.Coordinates),
		Itinerary:   req.Itinerary,
	}
}

func toUpdateInput(req updateTripRequest) ports.UpdateTripInput {
	return ports.UpdateTripInput{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Coordinates: toCoordinates(req.Coordinates),
		Itinerary:   req.Itinerary,
	}
}

func toCoordinates(c *coordinatesRequest) *domain.Coordinates {
	if c == nil {
		return nil
	}
	return &domain.Coordinates{Lat: c.Lat, Lng: c.Lng}
}

// --- Service result → HTTP response ---

func toTripResponse(t *domain.Trip) tripResponse {
	resp := tripResponse{
		ID:          t.ID,
		Destination: t.Destination,
		StartDate:   t.StartDate.Format(domain.DateLayout),
		EndDate:     t.EndDate.Format(domain.DateLayout),
		Itinerary:   t.Itinerary,
	}
	if t.Coordinates != nil {
		resp.Coordinates = &coordinatesResponse{Lat: t.Coordinates.Lat, Lng: t.Coordinates.Lng}
	}
	return resp
}

func toListResponse(trips []*domain.Trip) listTripsResponse {
	out := make([]tripResponse, len(trips))
	for i, t := range trips {
		out[i] = toTripResponse(t)
	}
	return listTripsResponse{Trips: out}
}

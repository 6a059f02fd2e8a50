package domain

import "errors"

// Errors shared across components. Entity-specific sentinels live next to
// their entity (user.go, trip.go, token.go).
var ErrInvalidInput = errors.New("invalid input")
var ErrMissingFields = errors.New("missing required fields")

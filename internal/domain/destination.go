package domain

import (
	"time"

	"github.com/google/uuid"
)

// Destination is a place visited within a trip.
// Country is always present but may be the empty string.
type Destination struct {
	ID            uuid.UUID
	TripID        uuid.UUID
	Name          string
	Country       string
	ArrivalDate   *time.Time
	DepartureDate *time.Time
}

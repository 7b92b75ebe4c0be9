package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a dated, costed event at a destination.
// Cost defaults to zero and is never range-checked; negative values are kept as given.
type Activity struct {
	ID            uuid.UUID
	DestinationID uuid.UUID
	Name          string
	Description   string
	ActivityDate  *time.Time
	Cost          float64
}

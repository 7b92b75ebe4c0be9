package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripSummary holds the statistics derived from a trip and its subtree.
type TripSummary struct {
	TripID           uuid.UUID
	Name             string
	StartDate        *time.Time
	EndDate          *time.Time
	Category         *Category
	Tags             []Tag
	DestinationCount int
	ActivityCount    int
	TotalCost        float64

	// DurationDays is nil when either date is missing ("not applicable").
	// It may be negative: end-before-start is not rejected.
	DurationDays *int
}

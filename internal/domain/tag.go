package domain

import "github.com/google/uuid"

// Tag represents a user-defined label that can be applied to trips.
// Tags are global, not owned by any trip.
// Name is unique and compared case-sensitively; "Family" and "family" are two tags.
type Tag struct {
	ID   uuid.UUID
	Name string
}

package domain

import "github.com/google/uuid"

// Category is a shared label; a trip has at most one.
// Name is unique and compared case-sensitively.
type Category struct {
	ID   uuid.UUID
	Name string
}

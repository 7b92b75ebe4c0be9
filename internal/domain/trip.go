// Package domain contains the core data types for the Travel Journal.
// This package has no dependencies on storage or presentation and is imported
// by every other internal package (repo, service, query, cli).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the top-level journal entry. It owns its destinations; the category
// and tags it references are shared and outlive it.
type Trip struct {
	ID        uuid.UUID
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
	Notes     string // empty when absent

	// CategoryID is nil when the trip is uncategorized. Category is populated
	// on reads so callers don't need a second lookup.
	CategoryID *uuid.UUID
	Category   *Category

	// Tags is a set: no duplicates, insertion order kept for display.
	Tags []Tag
}

// TagNames returns the names of the trip's tags in display order.
func (t Trip) TagNames() []string {
	names := make([]string, 0, len(t.Tags))
	for _, tag := range t.Tags {
		names = append(names, tag.Name)
	}
	return names
}

// TripDetail is a trip loaded together with its full destination/activity subtree.
type TripDetail struct {
	Trip
	Destinations []DestinationDetail
}

// DestinationDetail is a destination loaded together with its activities.
type DestinationDetail struct {
	Destination
	Activities []Activity
}

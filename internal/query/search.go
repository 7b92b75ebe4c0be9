// Package query filters and aggregates already-loaded journal entities.
// Everything here is pure: no store access, no I/O. Callers load a snapshot
// with the repos and pass it in; results keep the input order.
package query

import (
	"strings"

	"github.com/pkordes/travel-journal/internal/domain"
)

// SearchTrips returns the trips whose name or notes contain keyword,
// ignoring case. An empty keyword matches every trip.
func SearchTrips(trips []domain.Trip, keyword string) []domain.Trip {
	kw := strings.ToLower(keyword)
	out := []domain.Trip{}
	for _, t := range trips {
		if contains(t.Name, kw) || contains(t.Notes, kw) {
			out = append(out, t)
		}
	}
	return out
}

// SearchDestinations returns the destinations whose name or country contain
// keyword, ignoring case.
func SearchDestinations(dests []domain.Destination, keyword string) []domain.Destination {
	kw := strings.ToLower(keyword)
	out := []domain.Destination{}
	for _, d := range dests {
		if contains(d.Name, kw) || contains(d.Country, kw) {
			out = append(out, d)
		}
	}
	return out
}

// ActivityFilter selects activities. All set predicates must hold.
// Nil cost bounds impose no limit; set bounds are inclusive.
type ActivityFilter struct {
	Keyword string
	MinCost *float64
	MaxCost *float64
}

// Match reports whether a satisfies every predicate of f.
func (f ActivityFilter) Match(a domain.Activity) bool {
	kw := strings.ToLower(f.Keyword)
	if !contains(a.Name, kw) && !contains(a.Description, kw) {
		return false
	}
	if f.MinCost != nil && a.Cost < *f.MinCost {
		return false
	}
	if f.MaxCost != nil && a.Cost > *f.MaxCost {
		return false
	}
	return true
}

// FilterActivities returns the activities matching f.
func FilterActivities(acts []domain.Activity, f ActivityFilter) []domain.Activity {
	out := []domain.Activity{}
	for _, a := range acts {
		if f.Match(a) {
			out = append(out, a)
		}
	}
	return out
}

// contains reports whether lowerKeyword occurs in s, ignoring case.
func contains(s, lowerKeyword string) bool {
	return strings.Contains(strings.ToLower(s), lowerKeyword)
}

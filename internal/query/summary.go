package query

import (
	"github.com/google/uuid"

	"github.com/pkordes/travel-journal/internal/domain"
)

// Summarize derives the trip statistics from a fully loaded trip.
//   - DestinationCount: destinations owned by the trip.
//   - ActivityCount: activities across all of those destinations.
//   - TotalCost: sum of those activities' costs.
//   - DurationDays: end minus start in days, nil unless both dates are set.
func Summarize(detail domain.TripDetail) domain.TripSummary {
	s := domain.TripSummary{
		TripID:           detail.ID,
		Name:             detail.Name,
		StartDate:        detail.StartDate,
		EndDate:          detail.EndDate,
		Category:         detail.Category,
		Tags:             detail.Tags,
		DestinationCount: len(detail.Destinations),
	}
	for _, d := range detail.Destinations {
		s.ActivityCount += len(d.Activities)
		for _, a := range d.Activities {
			s.TotalCost += a.Cost
		}
	}
	if detail.StartDate != nil && detail.EndDate != nil {
		days := domain.DaysBetween(*detail.StartDate, *detail.EndDate)
		s.DurationDays = &days
	}
	return s
}

// Assemble groups activities under their destinations for Summarize.
// Activities whose destination is not in dests are ignored.
func Assemble(trip domain.Trip, dests []domain.Destination, acts []domain.Activity) domain.TripDetail {
	detail := domain.TripDetail{
		Trip:         trip,
		Destinations: make([]domain.DestinationDetail, len(dests)),
	}
	index := make(map[uuid.UUID]int, len(dests))
	for i, d := range dests {
		detail.Destinations[i] = domain.DestinationDetail{Destination: d, Activities: []domain.Activity{}}
		index[d.ID] = i
	}
	for _, a := range acts {
		if i, ok := index[a.DestinationID]; ok {
			detail.Destinations[i].Activities = append(detail.Destinations[i].Activities, a)
		}
	}
	return detail
}

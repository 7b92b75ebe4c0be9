package service

import (
	"context"
	"fmt"

	"github.com/pkordes/travel-journal/internal/domain"
	"github.com/pkordes/travel-journal/internal/query"
	"github.com/pkordes/travel-journal/internal/repo"
)

// ExportService assembles a full flat export of all trips, destinations, and activities.
type ExportService struct {
	store Transactor
}

// NewExportService constructs an ExportService backed by the provided store.
func NewExportService(store Transactor) *ExportService {
	return &ExportService{store: store}
}

// Export returns one ExportRow per activity across all trips, in creation order.
// Trips with no destinations and destinations with no activities each
// contribute one row with the missing level left empty.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	rows := []domain.ExportRow{}
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		trips, err := r.Trips.List(ctx)
		if err != nil {
			return err
		}
		for _, trip := range trips {
			dests, err := r.Destinations.ListByTripID(ctx, trip.ID)
			if err != nil {
				return err
			}
			acts, err := r.Activities.ListByTripID(ctx, trip.ID)
			if err != nil {
				return err
			}
			rows = append(rows, exportRows(query.Assemble(trip, dests, acts))...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	return rows, nil
}

// exportRows flattens one trip's subtree.
func exportRows(detail domain.TripDetail) []domain.ExportRow {
	base := domain.ExportRow{
		TripID:        detail.ID.String(),
		TripName:      detail.Name,
		TripStartDate: domain.FormatDate(detail.StartDate),
		TripEndDate:   domain.FormatDate(detail.EndDate),
		Tags:          detail.TagNames(),
	}
	if detail.Category != nil {
		base.Category = detail.Category.Name
	}

	if len(detail.Destinations) == 0 {
		return []domain.ExportRow{base}
	}

	var rows []domain.ExportRow
	for _, d := range detail.Destinations {
		row := base
		row.DestinationName = d.Name
		row.Country = d.Country
		row.ArrivalDate = domain.FormatDate(d.ArrivalDate)
		row.DepartureDate = domain.FormatDate(d.DepartureDate)

		if len(d.Activities) == 0 {
			rows = append(rows, row)
			continue
		}
		for _, a := range d.Activities {
			ar := row
			ar.ActivityName = a.Name
			ar.ActivityDate = domain.FormatDate(a.ActivityDate)
			ar.Description = a.Description
			ar.Cost = a.Cost
			rows = append(rows, ar)
		}
	}
	return rows
}

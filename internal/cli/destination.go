package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/travel-journal/internal/domain"
)

func destinationAdd(ctx context.Context, a *App, args []string) error {
	fs := a.flags("destination add")
	rawTrip := fs.String("trip", "", "ID of the owning trip")
	name := fs.String("name", "", "city or place name (required)")
	country := fs.String("country", "", "country")
	arrival := fs.String("arrival", "", "arrival date, YYYY-MM-DD")
	departure := fs.String("departure", "", "departure date, YYYY-MM-DD")
	if err := parse(fs, args); err != nil {
		return err
	}
	tripID, err := parseID(*rawTrip)
	if err != nil {
		return err
	}

	d, err := a.svc.Destinations.Create(ctx, domain.Destination{
		TripID:        tripID,
		Name:          *name,
		Country:       *country,
		ArrivalDate:   a.date(*arrival),
		DepartureDate: a.date(*departure),
	})
	if err != nil {
		return notFound(err, "Trip")
	}
	fmt.Fprintf(a.out, "✅ Destination '%s, %s' added! ID: %s\n", d.Name, d.Country, d.ID)
	return nil
}

func destinationList(ctx context.Context, a *App, args []string) error {
	fs := a.flags("destination list")
	rawTrip := fs.String("trip", "", "only list this trip's destinations")
	if err := parse(fs, args); err != nil {
		return err
	}

	var dests []domain.Destination
	if *rawTrip != "" {
		tripID, err := parseID(*rawTrip)
		if err != nil {
			return err
		}
		if dests, err = a.svc.Destinations.ListByTrip(ctx, tripID); err != nil {
			return notFound(err, "Trip")
		}
	} else {
		var err error
		if dests, err = a.svc.Destinations.List(ctx); err != nil {
			return err
		}
	}

	if len(dests) == 0 {
		fmt.Fprintln(a.out, "⚠ No destinations found.")
		return nil
	}
	return a.printDestinations(ctx, dests)
}

func destinationSearch(ctx context.Context, a *App, args []string) error {
	fs := a.flags("destination search")
	q := fs.String("q", "", "city or country to search for")
	if err := parse(fs, args); err != nil {
		return err
	}
	dests, err := a.svc.Destinations.Search(ctx, keyword(*q, fs))
	if err != nil {
		return err
	}
	if len(dests) == 0 {
		fmt.Fprintln(a.out, "⚠ No matching destinations found.")
		return nil
	}
	return a.printDestinations(ctx, dests)
}

func destinationDelete(ctx context.Context, a *App, args []string) error {
	fs := a.flags("destination delete")
	rawID := fs.String("id", "", "destination ID")
	if err := parse(fs, args); err != nil {
		return err
	}
	id, err := parseID(*rawID)
	if err != nil {
		return err
	}
	if err := a.svc.Destinations.Delete(ctx, id); err != nil {
		return notFound(err, "Destination")
	}
	fmt.Fprintln(a.out, "🗑 Destination deleted.")
	return nil
}

// printDestinations prints one line per destination with its trip's name.
func (a *App) printDestinations(ctx context.Context, dests []domain.Destination) error {
	trips, err := a.svc.Trips.List(ctx)
	if err != nil {
		return err
	}
	names := make(map[uuid.UUID]string, len(trips))
	for _, t := range trips {
		names[t.ID] = t.Name
	}
	for _, d := range dests {
		fmt.Fprintln(a.out, formatDestination(d, names[d.TripID]))
	}
	return nil
}

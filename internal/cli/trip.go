package cli

import (
	"context"
	"fmt"

	"github.com/pkordes/travel-journal/internal/service"
)

func tripAdd(ctx context.Context, a *App, args []string) error {
	fs := a.flags("trip add")
	name := fs.String("name", "", "trip name (required)")
	start := fs.String("start", "", "start date, YYYY-MM-DD")
	end := fs.String("end", "", "end date, YYYY-MM-DD")
	notes := fs.String("notes", "", "free-text notes")
	category := fs.String("category", "", "category name, created if new")
	tags := fs.String("tags", "", "comma-separated tag names, created if new")
	if err := parse(fs, args); err != nil {
		return err
	}

	trip, err := a.svc.Trips.Create(ctx, service.TripInput{
		Name:         *name,
		StartDate:    a.date(*start),
		EndDate:      a.date(*end),
		Notes:        *notes,
		CategoryName: *category,
		TagNames:     splitTags(*tags),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✅ Trip '%s' created! ID: %s\n", trip.Name, trip.ID)
	return nil
}

func tripList(ctx context.Context, a *App, args []string) error {
	if err := parse(a.flags("trip list"), args); err != nil {
		return err
	}
	trips, err := a.svc.Trips.List(ctx)
	if err != nil {
		return err
	}
	if len(trips) == 0 {
		fmt.Fprintln(a.out, "⚠ No trips found.")
		return nil
	}
	for _, t := range trips {
		fmt.Fprintln(a.out, formatTrip(t))
	}
	return nil
}

func tripSearch(ctx context.Context, a *App, args []string) error {
	fs := a.flags("trip search")
	q := fs.String("q", "", "keyword to find in trip name or notes")
	if err := parse(fs, args); err != nil {
		return err
	}
	trips, err := a.svc.Trips.Search(ctx, keyword(*q, fs))
	if err != nil {
		return err
	}
	if len(trips) == 0 {
		fmt.Fprintln(a.out, "⚠ No matching trips found.")
		return nil
	}
	for _, t := range trips {
		fmt.Fprintln(a.out, formatTrip(t))
	}
	return nil
}

func tripSummary(ctx context.Context, a *App, args []string) error {
	fs := a.flags("trip summary")
	rawID := fs.String("id", "", "trip ID")
	if err := parse(fs, args); err != nil {
		return err
	}
	id, err := parseID(*rawID)
	if err != nil {
		return err
	}

	s, err := a.svc.Trips.Summary(ctx, id)
	if err != nil {
		return notFound(err, "Trip")
	}

	duration := "N/A"
	if s.DurationDays != nil {
		duration = fmt.Sprintf("%d days", *s.DurationDays)
	}
	fmt.Fprintf(a.out, "📊 Summary for Trip: %s\n", s.Name)
	fmt.Fprintf(a.out, "Dates: %s → %s\n", dateOrNone(s.StartDate), dateOrNone(s.EndDate))
	fmt.Fprintf(a.out, "Category: %s\n", categoryOrNone(s.Category))
	fmt.Fprintf(a.out, "Tags: %s\n", tagsOrNone(s.Tags))
	fmt.Fprintf(a.out, "Destinations: %d\n", s.DestinationCount)
	fmt.Fprintf(a.out, "Activities: %d\n", s.ActivityCount)
	fmt.Fprintf(a.out, "Total Cost: $%.2f\n", s.TotalCost)
	fmt.Fprintf(a.out, "Duration: %s\n", duration)
	return nil
}

func tripDelete(ctx context.Context, a *App, args []string) error {
	fs := a.flags("trip delete")
	rawID := fs.String("id", "", "trip ID")
	if err := parse(fs, args); err != nil {
		return err
	}
	id, err := parseID(*rawID)
	if err != nil {
		return err
	}
	if err := a.svc.Trips.Delete(ctx, id); err != nil {
		return notFound(err, "Trip")
	}
	fmt.Fprintln(a.out, "🗑 Trip deleted.")
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/travel-journal/internal/domain"
	"github.com/pkordes/travel-journal/internal/query"
)

func activityAdd(ctx context.Context, a *App, args []string) error {
	fs := a.flags("activity add")
	rawDest := fs.String("destination", "", "ID of the owning destination")
	name := fs.String("name", "", "activity name (required)")
	description := fs.String("description", "", "description")
	date := fs.String("date", "", "activity date, YYYY-MM-DD")
	rawCost := fs.String("cost", "", "cost, default 0")
	if err := parse(fs, args); err != nil {
		return err
	}
	destID, err := parseID(*rawDest)
	if err != nil {
		return err
	}
	cost, err := parseCost(*rawCost)
	if err != nil {
		return err
	}

	act, err := a.svc.Activities.Create(ctx, domain.Activity{
		DestinationID: destID,
		Name:          *name,
		Description:   *description,
		ActivityDate:  a.date(*date),
		Cost:          cost,
	})
	if err != nil {
		return notFound(err, "Destination")
	}
	fmt.Fprintf(a.out, "✅ Activity '%s' added! ID: %s\n", act.Name, act.ID)
	return nil
}

func activityList(ctx context.Context, a *App, args []string) error {
	fs := a.flags("activity list")
	rawDest := fs.String("destination", "", "only list this destination's activities")
	if err := parse(fs, args); err != nil {
		return err
	}

	var acts []domain.Activity
	if *rawDest != "" {
		destID, err := parseID(*rawDest)
		if err != nil {
			return err
		}
		if acts, err = a.svc.Activities.ListByDestination(ctx, destID); err != nil {
			return notFound(err, "Destination")
		}
	} else {
		var err error
		if acts, err = a.svc.Activities.List(ctx); err != nil {
			return err
		}
	}

	if len(acts) == 0 {
		fmt.Fprintln(a.out, "⚠ No activities found.")
		return nil
	}
	return a.printActivities(ctx, acts, formatActivity)
}

func activitySearch(ctx context.Context, a *App, args []string) error {
	fs := a.flags("activity search")
	q := fs.String("q", "", "keyword to find in name or description")
	rawMin := fs.String("min", "", "minimum cost, inclusive")
	rawMax := fs.String("max", "", "maximum cost, inclusive")
	if err := parse(fs, args); err != nil {
		return err
	}
	minCost, err := parseBound(*rawMin)
	if err != nil {
		return err
	}
	maxCost, err := parseBound(*rawMax)
	if err != nil {
		return err
	}

	acts, err := a.svc.Activities.Search(ctx, query.ActivityFilter{
		Keyword: keyword(*q, fs),
		MinCost: minCost,
		MaxCost: maxCost,
	})
	if err != nil {
		return err
	}
	if len(acts) == 0 {
		fmt.Fprintln(a.out, "⚠ No matching activities found.")
		return nil
	}
	return a.printActivities(ctx, acts, formatActivityWithCost)
}

func activityDelete(ctx context.Context, a *App, args []string) error {
	fs := a.flags("activity delete")
	rawID := fs.String("id", "", "activity ID")
	if err := parse(fs, args); err != nil {
		return err
	}
	id, err := parseID(*rawID)
	if err != nil {
		return err
	}
	if err := a.svc.Activities.Delete(ctx, id); err != nil {
		return notFound(err, "Activity")
	}
	fmt.Fprintln(a.out, "🗑 Activity deleted.")
	return nil
}

// printActivities prints one line per activity with its destination.
func (a *App) printActivities(ctx context.Context, acts []domain.Activity, format func(domain.Activity, domain.Destination) string) error {
	dests, err := a.svc.Destinations.List(ctx)
	if err != nil {
		return err
	}
	byID := make(map[uuid.UUID]domain.Destination, len(dests))
	for _, d := range dests {
		byID[d.ID] = d
	}
	for _, act := range acts {
		fmt.Fprintln(a.out, format(act, byID[act.DestinationID]))
	}
	return nil
}

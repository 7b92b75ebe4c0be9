package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/travel-journal/internal/domain"
)

// none is printed in place of any absent optional value.
const none = "None"

func dateOrNone(t *time.Time) string {
	if t == nil {
		return none
	}
	return domain.FormatDate(t)
}

func categoryOrNone(c *domain.Category) string {
	if c == nil {
		return none
	}
	return c.Name
}

func tagsOrNone(tags []domain.Tag) string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	if len(names) == 0 {
		return none
	}
	return strings.Join(names, ", ")
}

func formatTrip(t domain.Trip) string {
	return fmt.Sprintf("%s. %s (%s → %s) | Category: %s | Tags: %s",
		t.ID, t.Name, dateOrNone(t.StartDate), dateOrNone(t.EndDate),
		categoryOrNone(t.Category), tagsOrNone(t.Tags))
}

func formatDestination(d domain.Destination, tripName string) string {
	return fmt.Sprintf("%s. %s, %s (Trip: %s)", d.ID, d.Name, d.Country, tripName)
}

func formatActivity(a domain.Activity, dest domain.Destination) string {
	return fmt.Sprintf("%s. %s (%s) - %s, %s",
		a.ID, a.Name, dateOrNone(a.ActivityDate), dest.Name, dest.Country)
}

func formatActivityWithCost(a domain.Activity, dest domain.Destination) string {
	return fmt.Sprintf("%s. %s ($%.2f) (%s) - %s, %s",
		a.ID, a.Name, a.Cost, dateOrNone(a.ActivityDate), dest.Name, dest.Country)
}

// parseID parses a record ID given on the command line.
func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, newUserError("⚠ Invalid ID.")
	}
	return id, nil
}

// parseCost parses an optional amount. Blank means 0. NaN and infinities
// are rejected.
func parseCost(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, newUserError("⚠ Invalid cost: " + s)
	}
	return v, nil
}

// parseBound parses an optional inclusive cost bound. Blank means no bound.
func parseBound(s string) (*float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := parseCost(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// date parses an optional date flag. Malformed input is reported and
// treated as absent rather than failing the command.
func (a *App) date(s string) *time.Time {
	t, ok := ParseDate(s)
	if !ok {
		fmt.Fprintln(a.out, "⚠ Invalid date format, should be YYYY-MM-DD. Skipping.")
	}
	return t
}

// splitTags splits a comma-separated tag list. Blank entries are dropped later
// by the trip service.
func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}

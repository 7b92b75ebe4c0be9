package domain

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per activity, with trip and
// destination fields repeated. A trip with no destinations, or a destination
// with no activities, yields one row with empty values for the missing level.
//
// Dates are "2006-01-02" strings, empty when absent.
// Tags is the trip's tag names in display order.
type ExportRow struct {
	// Trip fields, repeated for every row of the trip.
	TripID        string   `yaml:"trip_id"`
	TripName      string   `yaml:"trip_name"`
	TripStartDate string   `yaml:"trip_start_date,omitempty"`
	TripEndDate   string   `yaml:"trip_end_date,omitempty"`
	Category      string   `yaml:"category,omitempty"`
	Tags          []string `yaml:"tags,omitempty"`

	// Destination fields, empty when the trip has no destinations.
	DestinationName string `yaml:"destination_name,omitempty"`
	Country         string `yaml:"country,omitempty"`
	ArrivalDate     string `yaml:"arrival_date,omitempty"`
	DepartureDate   string `yaml:"departure_date,omitempty"`

	// Activity fields, empty when the destination has no activities.
	ActivityName string  `yaml:"activity_name,omitempty"`
	ActivityDate string  `yaml:"activity_date,omitempty"`
	Description  string  `yaml:"description,omitempty"`
	Cost         float64 `yaml:"cost"`
}

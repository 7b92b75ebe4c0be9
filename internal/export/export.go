// Package export encodes the flat journal export as CSV or YAML.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/travel-journal/internal/domain"
)

// Format selects an export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user-supplied format name to a Format.
// Matching ignores case; "yml" is accepted as YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unknown export format %q (want csv or yaml)", domain.ErrValidation, s)
	}
}

// Write encodes rows to w in the given format.
func Write(w io.Writer, f Format, rows []domain.ExportRow) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, rows)
	case FormatYAML:
		return WriteYAML(w, rows)
	default:
		return fmt.Errorf("export.Write: unsupported format %q", f)
	}
}

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "trip_name", "trip_start_date", "trip_end_date", "category", "tags",
	"destination_name", "country", "arrival_date", "departure_date",
	"activity_name", "activity_date", "description", "cost",
}

// WriteCSV writes a header row followed by one record per export row.
// Tags within a row are pipe-separated ("|") to keep each row on a single CSV line.
func WriteCSV(w io.Writer, rows []domain.ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(csvRecord(r)); err != nil {
			return fmt.Errorf("export.WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}
	return nil
}

// csvRecord encodes r in csvHeaders order. Cost always has two decimals.
func csvRecord(r domain.ExportRow) []string {
	return []string{
		r.TripID,
		r.TripName,
		r.TripStartDate,
		r.TripEndDate,
		r.Category,
		strings.Join(r.Tags, "|"),
		r.DestinationName,
		r.Country,
		r.ArrivalDate,
		r.DepartureDate,
		r.ActivityName,
		r.ActivityDate,
		r.Description,
		strconv.FormatFloat(r.Cost, 'f', 2, 64),
	}
}

// WriteYAML writes rows as a single YAML sequence. An empty export is "[]".
func WriteYAML(w io.Writer, rows []domain.ExportRow) error {
	if rows == nil {
		rows = []domain.ExportRow{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("export.WriteYAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("export.WriteYAML: %w", err)
	}
	return nil
}

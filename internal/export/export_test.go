package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/travel-journal/internal/domain"
	"github.com/pkordes/travel-journal/internal/export"
)

func exportRowFixture() domain.ExportRow {
	return domain.ExportRow{
		TripID:          "0190f4c2-0000-7000-8000-000000000001",
		TripName:        "Europe Summer 2025",
		TripStartDate:   "2025-06-01",
		TripEndDate:     "2025-06-10",
		Category:        "Family",
		DestinationName: "Paris",
		Country:         "France",
		ActivityName:    "Visited the Louvre",
		Description:     "Mona Lisa, crowded",
		Cost:            22,
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]export.Format{
		"csv":  export.FormatCSV,
		"CSV":  export.FormatCSV,
		"yaml": export.FormatYAML,
		"yml":  export.FormatYAML,
	}
	for in, want := range cases {
		got, err := export.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := export.ParseFormat("xml")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWriteCSV_EmptyResult_HasHeaderRow(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, export.WriteCSV(&buf, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "trip_id,"), "CSV should start with header row, got: %q", lines[0])
}

func TestWriteCSV_OneRow_HasHeaderAndDataRow(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, export.WriteCSV(&buf, []domain.ExportRow{exportRowFixture()}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Europe Summer 2025")
	// Fields containing commas are quoted.
	assert.Contains(t, lines[1], `"Mona Lisa, crowded"`)
	assert.True(t, strings.HasSuffix(lines[1], ",22.00"), lines[1])
}

func TestWriteCSV_TagsJoinedWithPipe(t *testing.T) {
	row := exportRowFixture()
	row.Tags = []string{"beach", "food"}
	var buf bytes.Buffer

	require.NoError(t, export.WriteCSV(&buf, []domain.ExportRow{row}))

	assert.Contains(t, buf.String(), "beach|food")
}

func TestWriteYAML_RoundTripsFields(t *testing.T) {
	row := exportRowFixture()
	row.Tags = []string{"beach"}
	var buf bytes.Buffer

	require.NoError(t, export.WriteYAML(&buf, []domain.ExportRow{row}))

	out := buf.String()
	assert.Contains(t, out, "trip_name: Europe Summer 2025")
	assert.Contains(t, out, "destination_name: Paris")
	// Empty optional fields are omitted.
	assert.NotContains(t, out, "arrival_date")

	var decoded []domain.ExportRow
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, row, decoded[0])
}

func TestWriteYAML_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, export.WriteYAML(&buf, nil))

	assert.Equal(t, "[]\n", buf.String())
}

func TestWrite_DispatchesOnFormat(t *testing.T) {
	var csvBuf, yamlBuf bytes.Buffer
	rows := []domain.ExportRow{exportRowFixture()}

	require.NoError(t, export.Write(&csvBuf, export.FormatCSV, rows))
	require.NoError(t, export.Write(&yamlBuf, export.FormatYAML, rows))

	assert.True(t, strings.HasPrefix(csvBuf.String(), "trip_id,"))
	assert.True(t, strings.HasPrefix(yamlBuf.String(), "- trip_id:"))
	assert.Error(t, export.Write(&csvBuf, export.Format("xml"), rows))
}

package util

import (
	"errors"
	"os"
	"strings"
	"testing"

	"bike-dashboard/models"
	"bike-dashboard/models/rental"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rentalsHeader = "instant,dteday_x,season_x,weathersit_x,temp_x,hum_x,windspeed_x,cnt_x,hr\n"

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	tempFile, err := os.CreateTemp("", "test*.csv")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	_, err = tempFile.Write([]byte(content))
	if err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tempFile.Close()
	return tempFile.Name()
}

func TestReadRentalRecordsFromCSV(t *testing.T) {
	// Arrange
	content := rentalsHeader +
		"1,2011-01-02,1,2,0.46,0.88,0.25,40,1\n" +
		"2,2011-01-01,1,1,0.24,0.81,0.0,16,0\n" +
		"3,2011-01-02,1,3,0.44,0.94,0.30,12,2\n"
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	records, err := ReadRentalRecordsFromCSV(tempFile)

	// Assert
	require.NoError(t, err)
	require.Len(t, records, 3)

	// storage order is preserved
	assert.Equal(t, "2011-01-02", records[0].Date.Format(rental.DateLayout))
	assert.Equal(t, "2011-01-01", records[1].Date.Format(rental.DateLayout))

	first := records[0]
	assert.Equal(t, 1, first.Hour)
	assert.Equal(t, 1, first.SeasonCode)
	assert.Equal(t, 2, first.WeatherCode)
	assert.Equal(t, 0.46, first.Temp)
	assert.Equal(t, 0.88, first.Hum)
	assert.Equal(t, 0.25, first.Windspeed)
	assert.Equal(t, 40, first.Count)
	assert.Equal(t, "2011-01-02T01:00:00Z", first.Timestamp().Format("2006-01-02T15:04:05Z07:00"))
}

func TestParseRentalRecords_AlternativeDateLayouts(t *testing.T) {
	content := rentalsHeader +
		"1,2011-01-02 00:00:00,1,1,0.4,0.8,0.2,5,0\n" +
		"2,1/3/2011,1,1,0.4,0.8,0.2,5,0\n" +
		"3,2011-01-04,1.0,1,0.4,0.8,0.2,5,0\n"

	records, err := ParseRentalRecordsFromBytes([]byte(content))

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2011-01-02", records[0].Date.Format(rental.DateLayout))
	assert.Equal(t, "2011-01-03", records[1].Date.Format(rental.DateLayout))
	assert.Equal(t, 1, records[2].SeasonCode)
}

func TestParseRentalRecords_MissingColumns(t *testing.T) {
	content := "dteday_x,season_x,temp_x,hum_x,windspeed_x,cnt_x\n2011-01-01,1,0.2,0.8,0.1,3\n"

	_, err := ParseRentalRecords(strings.NewReader(content), DefaultRentalSchema)

	var schemaErr *models.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, []string{"weathersit_x", "hr"}, schemaErr.Missing)
}

func TestParseRentalRecords_EmptyDocument(t *testing.T) {
	_, err := ParseRentalRecords(strings.NewReader(""), DefaultRentalSchema)

	var schemaErr *models.SchemaError
	assert.True(t, errors.As(err, &schemaErr))
}

func TestParseRentalRecords_HeaderOnly(t *testing.T) {
	records, err := ParseRentalRecords(strings.NewReader(rentalsHeader), DefaultRentalSchema)

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseRentalRecords_ParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		row    string
		column string
	}{
		{"bad date", "1,not-a-date,1,1,0.2,0.8,0.1,3,0\n", "dteday_x"},
		{"bad temp", "1,2011-01-01,1,1,warm,0.8,0.1,3,0\n", "temp_x"},
		{"bad count", "1,2011-01-01,1,1,0.2,0.8,0.1,3.5,0\n", "cnt_x"},
		{"negative count", "1,2011-01-01,1,1,0.2,0.8,0.1,-3,0\n", "cnt_x"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			content := rentalsHeader + "1,2011-01-01,1,1,0.2,0.8,0.1,3,0\n" + test.row

			_, err := ParseRentalRecords(strings.NewReader(content), DefaultRentalSchema)

			var parseErr *models.ParseError
			require.True(t, errors.As(err, &parseErr), "got %v", err)
			assert.Equal(t, 3, parseErr.Row)
			assert.Equal(t, test.column, parseErr.Column)
		})
	}
}

func TestReadRentalRecordsFromCSV_MissingFile(t *testing.T) {
	_, err := ReadRentalRecordsFromCSV("/nonexistent/all_data.csv")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

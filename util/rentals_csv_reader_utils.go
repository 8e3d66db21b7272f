package util

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"bike-dashboard/models"
	"bike-dashboard/models/rental"
)

// RentalSchema names the dataset columns the loader projects.
type RentalSchema struct {
	Date      string
	Season    string
	Weather   string
	Temp      string
	Hum       string
	Windspeed string
	Count     string
	Hour      string
}

// DefaultRentalSchema matches the merged day/hour bike sharing export.
var DefaultRentalSchema = RentalSchema{
	Date:      "dteday_x",
	Season:    "season_x",
	Weather:   "weathersit_x",
	Temp:      "temp_x",
	Hum:       "hum_x",
	Windspeed: "windspeed_x",
	Count:     "cnt_x",
	Hour:      "hr",
}

func (s RentalSchema) columns() []string {
	return []string{s.Date, s.Season, s.Weather, s.Temp, s.Hum, s.Windspeed, s.Count, s.Hour}
}

var dateLayouts = []string{
	rental.DateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"1/2/2006",
}

// ReadRentalRecordsFromCSV loads the hourly rows of a CSV file on disk.
func ReadRentalRecordsFromCSV(filePath string) ([]rental.RawRecord, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	defer f.Close()

	records, err := ParseRentalRecords(f, DefaultRentalSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", filePath, err)
	}
	return records, nil
}

// ParseRentalRecordsFromBytes is ParseRentalRecords over an in-memory CSV document.
func ParseRentalRecordsFromBytes(data []byte) ([]rental.RawRecord, error) {
	return ParseRentalRecords(bytes.NewReader(data), DefaultRentalSchema)
}

// ParseRentalRecords reads a CSV document with a header line, keeps the schema
// columns and returns one RawRecord per row in storage order. Other columns are ignored.
func ParseRentalRecords(r io.Reader, schema RentalSchema) ([]rental.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, &models.SchemaError{Missing: schema.columns()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	var missing []string
	for _, col := range schema.columns() {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &models.SchemaError{Missing: missing}
	}

	var records []rental.RawRecord
	row := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", row, err)
		}

		p := rowParser{row: row, fields: fields, index: index}
		rec := rental.RawRecord{
			Date:        p.parseDate(schema.Date),
			Hour:        p.parseInt(schema.Hour),
			SeasonCode:  p.parseInt(schema.Season),
			WeatherCode: p.parseInt(schema.Weather),
			Temp:        p.parseFloat(schema.Temp),
			Hum:         p.parseFloat(schema.Hum),
			Windspeed:   p.parseFloat(schema.Windspeed),
			Count:       p.parseInt(schema.Count),
		}
		if p.err == nil && rec.Count < 0 {
			p.fail(schema.Count, strconv.Itoa(rec.Count), errors.New("rental count must be non-negative"))
		}
		if p.err != nil {
			return nil, p.err
		}
		records = append(records, rec)
	}
	return records, nil
}

// rowParser keeps the first parse failure of a row.
type rowParser struct {
	row    int
	fields []string
	index  map[string]int
	err    *models.ParseError
}

func (p *rowParser) value(col string) string {
	i := p.index[col]
	if i >= len(p.fields) {
		return ""
	}
	return strings.TrimSpace(p.fields[i])
}

func (p *rowParser) fail(col, value string, err error) {
	if p.err == nil {
		p.err = &models.ParseError{Row: p.row, Column: col, Value: value, Err: err}
	}
}

func (p *rowParser) parseDate(col string) time.Time {
	v := p.value(col)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return rental.Day(t)
		}
	}
	p.fail(col, v, errors.New("not a calendar date"))
	return time.Time{}
}

func (p *rowParser) parseInt(col string) int {
	v := p.value(col)
	n, err := strconv.Atoi(v)
	if err != nil {
		// integer columns are sometimes exported as "3.0"
		f, ferr := strconv.ParseFloat(v, 64)
		if ferr != nil || f != float64(int(f)) {
			p.fail(col, v, err)
			return 0
		}
		n = int(f)
	}
	return n
}

func (p *rowParser) parseFloat(col string) float64 {
	v := p.value(col)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(col, v, err)
	}
	return f
}

package rental

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used on the wire and in the dataset.
const DateLayout = "2006-01-02"

// DailyRecord is the per-date aggregate of the hourly rows.
// Season and weather come from the first hourly row of the day in storage order.
type DailyRecord struct {
	Date        time.Time `json:"date"`
	SeasonCode  int       `json:"season_code"`
	Season      string    `json:"season"`
	WeatherCode int       `json:"weather_code"`
	Weather     string    `json:"weather"`
	Temp        float64   `json:"temp"`
	Hum         float64   `json:"hum"`
	Windspeed   float64   `json:"windspeed"`
	Count       int       `json:"cnt"`
	MonthName   string    `json:"month_name"`
}

// Day truncates t to its calendar date in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (d DailyRecord) ToString() string {
	return fmt.Sprintf("DailyRecord(date=%s, season=%s, weather=%s, cnt=%d)",
		d.Date.Format(DateLayout), d.Season, d.Weather, d.Count)
}

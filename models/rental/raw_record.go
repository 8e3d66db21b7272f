package rental

import (
	"fmt"
	"time"
)

// RawRecord is one hourly row of the source dataset.
type RawRecord struct {
	Date        time.Time `json:"date"`
	Hour        int       `json:"hour"`
	SeasonCode  int       `json:"season_code"`
	WeatherCode int       `json:"weather_code"`
	Temp        float64   `json:"temp"`
	Hum         float64   `json:"hum"`
	Windspeed   float64   `json:"windspeed"`
	Count       int       `json:"cnt"`
}

// Timestamp combines the calendar date with the hour of the row.
func (r RawRecord) Timestamp() time.Time {
	return r.Date.Add(time.Duration(r.Hour) * time.Hour)
}

func (r RawRecord) ToString() string {
	return fmt.Sprintf("RawRecord(date=%s, hr=%d, season=%d, weather=%d, cnt=%d)",
		r.Date.Format(DateLayout), r.Hour, r.SeasonCode, r.WeatherCode, r.Count)
}

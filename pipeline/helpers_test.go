package pipeline

import (
	"testing"
	"time"

	"bike-dashboard/models/rental"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(rental.DateLayout, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func hourly(t *testing.T, date string, hour, season, weather, cnt int) rental.RawRecord {
	return rental.RawRecord{
		Date:        mustDate(t, date),
		Hour:        hour,
		SeasonCode:  season,
		WeatherCode: weather,
		Temp:        0.2 + float64(hour)/100,
		Hum:         0.5,
		Windspeed:   0.1,
		Count:       cnt,
	}
}

func day(t *testing.T, date string, cnt int, weather, season string) rental.DailyRecord {
	d := mustDate(t, date)
	return rental.DailyRecord{
		Date:      d,
		Weather:   weather,
		Season:    season,
		Count:     cnt,
		MonthName: d.Month().String(),
	}
}

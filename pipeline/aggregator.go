package pipeline

import (
	"sort"
	"time"

	"bike-dashboard/models/rental"

	"gonum.org/v1/gonum/stat"
)

// dayGroup accumulates the hourly rows of one calendar date.
type dayGroup struct {
	first    rental.RawRecord
	temps    []float64
	hums     []float64
	winds    []float64
	countSum int
}

// AggregateDaily groups raw rows by calendar date and reduces each group:
//
//	season, weather        first row in storage order
//	temp, hum, windspeed   arithmetic mean
//	cnt                    sum
//
// The result is sorted by ascending date and carries codes only; see LabelDaily.
func AggregateDaily(raw []rental.RawRecord) []rental.DailyRecord {
	groups := make(map[time.Time]*dayGroup)
	for _, r := range raw {
		day := rental.Day(r.Date)
		g, ok := groups[day]
		if !ok {
			g = &dayGroup{first: r}
			groups[day] = g
		}
		g.temps = append(g.temps, r.Temp)
		g.hums = append(g.hums, r.Hum)
		g.winds = append(g.winds, r.Windspeed)
		g.countSum += r.Count
	}

	daily := make([]rental.DailyRecord, 0, len(groups))
	for day, g := range groups {
		daily = append(daily, rental.DailyRecord{
			Date:        day,
			SeasonCode:  g.first.SeasonCode,
			WeatherCode: g.first.WeatherCode,
			Temp:        stat.Mean(g.temps, nil),
			Hum:         stat.Mean(g.hums, nil),
			Windspeed:   stat.Mean(g.winds, nil),
			Count:       g.countSum,
			MonthName:   day.Month().String(),
		})
	}

	sort.Slice(daily, func(i, j int) bool {
		return daily[i].Date.Before(daily[j].Date)
	})
	return daily
}

// LabelDaily fills season and weather names from their codes, in place.
func LabelDaily(daily []rental.DailyRecord) error {
	for i := range daily {
		season, err := SeasonLabel(daily[i].SeasonCode)
		if err != nil {
			return err
		}
		weather, err := WeatherLabel(daily[i].WeatherCode)
		if err != nil {
			return err
		}
		daily[i].Season = season
		daily[i].Weather = weather
	}
	return nil
}

// BuildDaily runs AggregateDaily then LabelDaily.
func BuildDaily(raw []rental.RawRecord) ([]rental.DailyRecord, error) {
	daily := AggregateDaily(raw)
	if err := LabelDaily(daily); err != nil {
		return nil, err
	}
	return daily, nil
}

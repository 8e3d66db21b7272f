package pipeline

import (
	"bike-dashboard/models"
	"bike-dashboard/models/rental"
)

// ApplyFilter returns the records matching every predicate of c, in their original order.
// Date bounds are inclusive. An empty accepted set matches nothing.
func ApplyFilter(daily []rental.DailyRecord, c models.FilterCriteria) []rental.DailyRecord {
	weather := toSet(c.Weather)
	seasons := toSet(c.Seasons)
	months := toSet(c.Months)
	start, end := rental.Day(c.Start), rental.Day(c.End)

	out := make([]rental.DailyRecord, 0, len(daily))
	for _, d := range daily {
		if d.Date.Before(start) || d.Date.After(end) {
			continue
		}
		if _, ok := weather[d.Weather]; !ok {
			continue
		}
		if _, ok := seasons[d.Season]; !ok {
			continue
		}
		if _, ok := months[d.MonthName]; !ok {
			continue
		}
		out = append(out, d)
	}
	return out
}

// DefaultCriteria selects the full observed domain of daily: the min and max dates
// and every distinct weather, season and month in first-seen order.
func DefaultCriteria(daily []rental.DailyRecord) models.FilterCriteria {
	c := models.FilterCriteria{
		Weather: []string{},
		Seasons: []string{},
		Months:  []string{},
	}
	if len(daily) == 0 {
		return c
	}

	c.Start, c.End = daily[0].Date, daily[0].Date
	seenWeather := make(map[string]struct{})
	seenSeasons := make(map[string]struct{})
	seenMonths := make(map[string]struct{})
	for _, d := range daily {
		if d.Date.Before(c.Start) {
			c.Start = d.Date
		}
		if d.Date.After(c.End) {
			c.End = d.Date
		}
		c.Weather = appendUnique(c.Weather, seenWeather, d.Weather)
		c.Seasons = appendUnique(c.Seasons, seenSeasons, d.Season)
		c.Months = appendUnique(c.Months, seenMonths, d.MonthName)
	}
	return c
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func appendUnique(out []string, seen map[string]struct{}, v string) []string {
	if _, ok := seen[v]; ok {
		return out
	}
	seen[v] = struct{}{}
	return append(out, v)
}

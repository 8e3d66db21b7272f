// Package pipeline turns the hourly rental rows into daily records and derives
// every dashboard statistic from a filtered view of them. All functions are pure.
package pipeline

import (
	"errors"

	"bike-dashboard/models"
	"bike-dashboard/models/rental"
)

// Render filters daily by c and derives the full view.
// An empty selection is a normal state and yields a view with Empty set, not an error.
func Render(daily []rental.DailyRecord, c models.FilterCriteria) (*models.DashboardView, error) {
	view := ApplyFilter(daily, c)

	out := &models.DashboardView{
		Criteria:       c,
		DayCount:       len(view),
		TotalRentals:   TotalRentals(view),
		Trend:          Trend(view),
		MonthlyAverage: MonthlyAverage(view),
		WeatherAverage: WeatherAverage(view),
		SeasonAverage:  SeasonAverage(view),
		Conditions:     Conditions(view),
		TopDays:        TopDays(view, TOP_N),
		BottomDays:     BottomDays(view, TOP_N),
	}

	average, err := AverageDailyRentals(view)
	if err != nil {
		return emptyOr(out, err)
	}
	maxDay, err := MaxRentalDay(view)
	if err != nil {
		return emptyOr(out, err)
	}
	minDay, err := MinRentalDay(view)
	if err != nil {
		return emptyOr(out, err)
	}
	corr, err := Correlation(view)
	if err != nil {
		return emptyOr(out, err)
	}

	out.AverageDailyRentals = average
	out.MaxDay = &maxDay
	out.MinDay = &minDay
	out.Correlation = corr
	return out, nil
}

func emptyOr(out *models.DashboardView, err error) (*models.DashboardView, error) {
	var empty *models.EmptyInputError
	if errors.As(err, &empty) {
		out.Empty = true
		return out, nil
	}
	return nil, err
}

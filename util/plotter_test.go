package util

import (
	"bytes"
	"math"
	"testing"
	"time"

	"bike-dashboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleView() *models.DashboardView {
	d1 := time.Date(2012, 5, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2012, 5, 2, 0, 0, 0, 0, time.UTC)
	nan := models.Coefficient(math.NaN())
	return &models.DashboardView{
		DayCount:            2,
		TotalRentals:        60,
		AverageDailyRentals: 30,
		MaxDay:              &models.DayRentals{Date: d2, Count: 50, Weather: "Cloudy", Season: "Summer"},
		MinDay:              &models.DayRentals{Date: d1, Count: 10, Weather: "Clear", Season: "Summer"},
		Trend: []models.DayRentals{
			{Date: d1, Count: 10, Weather: "Clear", Season: "Summer"},
			{Date: d2, Count: 50, Weather: "Cloudy", Season: "Summer"},
		},
		MonthlyAverage: []models.GroupAverage{{Label: "May", Average: 30, Days: 2}},
		WeatherAverage: []models.GroupAverage{{Label: "Clear", Average: 10, Days: 1}, {Label: "Cloudy", Average: 50, Days: 1}},
		SeasonAverage:  []models.GroupAverage{{Label: "Summer", Average: 30, Days: 2}},
		Conditions:     []models.ConditionPoint{{Temp: 0.3, Hum: 0.5, Windspeed: 0.1, Count: 10}, {Temp: 0.6, Hum: 0.5, Windspeed: 0.2, Count: 50}},
		Correlation: &models.CorrelationMatrix{
			Columns: []string{"temp", "hum", "windspeed", "cnt"},
			Values: [][]models.Coefficient{
				{1, nan, 1, 1},
				{nan, nan, nan, nan},
				{1, nan, 1, 1},
				{1, nan, 1, 1},
			},
		},
		TopDays:    []models.DayRentals{{Date: d2, Count: 50, Weather: "Cloudy", Season: "Summer"}},
		BottomDays: []models.DayRentals{{Date: d1, Count: 10, Weather: "Clear", Season: "Summer"}},
	}
}

func TestRenderDashboard(t *testing.T) {
	var buf bytes.Buffer

	err := RenderDashboard(&buf, sampleView())

	require.NoError(t, err)
	html := buf.String()
	for _, title := range []string{
		"Daily Rentals Over Time",
		"Average Rentals per Month",
		"Average Rentals by Weather",
		"Temperature vs. Rentals",
		"Average Rentals by Season",
		"Correlation Heatmap",
		"Top 5 Days",
		"Bottom 5 Days",
	} {
		assert.Contains(t, html, title)
	}
}

func TestRenderDashboard_Empty(t *testing.T) {
	var buf bytes.Buffer

	err := RenderDashboard(&buf, &models.DashboardView{Empty: true})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No data for the selected filters")
	assert.NotContains(t, buf.String(), "Correlation Heatmap")
}

func TestSummaryText(t *testing.T) {
	text := SummaryText(sampleView())

	assert.Contains(t, text, "Total Rentals: 60")
	assert.Contains(t, text, "Average Daily Rentals: 30.00")
	assert.Contains(t, text, "Maximum Daily Rentals: 50 on 2012-05-02")
	assert.Contains(t, text, "Minimum Daily Rentals: 10 on 2012-05-01")
}

func TestRenderDashboard_RoundsAverages(t *testing.T) {
	view := sampleView()
	view.WeatherAverage = []models.GroupAverage{{Label: "Clear", Average: 33.3333333, Days: 3}}
	var buf bytes.Buffer

	err := RenderDashboard(&buf, view)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "33.33")
	assert.NotContains(t, buf.String(), "33.333")
}

package util

import (
	"fmt"
	"io"
	"math"

	"bike-dashboard/models"
	"bike-dashboard/models/rental"
	"bike-dashboard/pipeline"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	DASHBOARD_PAGE_TITLE = "Bike Sharing Dataset Dashboard"
	CHART_WIDTH          = "900px"
	CHART_HEIGHT         = "450px"
	SERIES_COLOR         = "#90CAF9"
)

// RenderDashboard writes the whole dashboard for view as one HTML page.
func RenderDashboard(w io.Writer, view *models.DashboardView) error {
	page := components.NewPage()
	page.PageTitle = DASHBOARD_PAGE_TITLE

	if view.Empty {
		page.AddCharts(noDataChart(view))
		return page.Render(w)
	}

	page.AddCharts(
		trendChart(view),
		averageChart("Average Rentals per Month", "Month", view.MonthlyAverage),
		averageChart("Average Rentals by Weather", "Weather", view.WeatherAverage),
		conditionChart("Temperature vs. Rentals", "Temperature", view.Conditions, func(p models.ConditionPoint) float64 { return p.Temp }),
		conditionChart("Humidity vs. Rentals", "Humidity", view.Conditions, func(p models.ConditionPoint) float64 { return p.Hum }),
		conditionChart("Wind Speed vs. Rentals", "Wind Speed", view.Conditions, func(p models.ConditionPoint) float64 { return p.Windspeed }),
		averageChart("Average Rentals by Season", "Season", view.SeasonAverage),
		correlationChart(view.Correlation),
		rankedDaysChart("Top 5 Days", view.TopDays),
		rankedDaysChart("Bottom 5 Days", view.BottomDays),
	)
	return page.Render(w)
}

// SummaryText is the headline metrics line shown above the trend chart.
func SummaryText(view *models.DashboardView) string {
	if view.Empty || view.MaxDay == nil || view.MinDay == nil {
		return "No data for the selected filters"
	}
	return fmt.Sprintf("Total Rentals: %d | Average Daily Rentals: %.2f\nMaximum Daily Rentals: %d on %s | Minimum Daily Rentals: %d on %s",
		view.TotalRentals, view.AverageDailyRentals,
		view.MaxDay.Count, view.MaxDay.Date.Format(rental.DateLayout),
		view.MinDay.Count, view.MinDay.Date.Format(rental.DateLayout))
}

func initOpts() charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		PageTitle: DASHBOARD_PAGE_TITLE,
		Width:     CHART_WIDTH,
		Height:    CHART_HEIGHT,
	})
}

func noDataChart(view *models.DashboardView) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		initOpts(),
		charts.WithTitleOpts(opts.Title{
			Title:    "Summary",
			Subtitle: SummaryText(view),
		}),
	)
	return bar
}

func trendChart(view *models.DashboardView) *charts.Line {
	dates := make([]string, 0, len(view.Trend))
	data := make([]opts.LineData, 0, len(view.Trend))
	for _, d := range view.Trend {
		dates = append(dates, d.Date.Format(rental.DateLayout))
		data = append(data, opts.LineData{Value: d.Count})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		initOpts(),
		charts.WithTitleOpts(opts.Title{
			Title:    "Daily Rentals Over Time",
			Subtitle: SummaryText(view),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date", AxisLabel: &opts.AxisLabel{Rotate: 45}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Number of Rentals"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	line.SetXAxis(dates).AddSeries("Rentals", data,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: SERIES_COLOR}),
	)
	return line
}

func averageChart(title, axis string, groups []models.GroupAverage) *charts.Bar {
	labels := make([]string, 0, len(groups))
	data := make([]opts.BarData, 0, len(groups))
	for _, g := range groups {
		labels = append(labels, g.Label)
		data = append(data, opts.BarData{Value: pipeline.RoundTo2(g.Average)})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		initOpts(),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: axis, AxisLabel: &opts.AxisLabel{Rotate: 45}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Average Rentals"}),
	)
	bar.SetXAxis(labels).AddSeries("Average Rentals", data)
	return bar
}

func conditionChart(title, axis string, points []models.ConditionPoint, x func(models.ConditionPoint) float64) *charts.Scatter {
	data := make([]opts.ScatterData, 0, len(points))
	for _, p := range points {
		data = append(data, opts.ScatterData{Value: []interface{}{x(p), p.Count}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		initOpts(),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: axis, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Rentals", Type: "value"}),
	)
	scatter.AddSeries("Rentals", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: SERIES_COLOR}),
	)
	return scatter
}

func correlationChart(m *models.CorrelationMatrix) *charts.HeatMap {
	if m == nil {
		m = &models.CorrelationMatrix{}
	}
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		initOpts(),
		charts.WithTitleOpts(opts.Title{Title: "Correlation Heatmap"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: m.Columns}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        -1,
			Max:        1,
			InRange: &opts.VisualMapInRange{
				Color: []string{"#3b4cc0", "#f7f7f7", "#b40426"},
			},
		}),
	)

	data := make([]opts.HeatMapData, 0, len(m.Columns)*len(m.Columns))
	for i := range m.Values {
		for j, c := range m.Values[i] {
			// echarts treats "-" as a missing cell
			var v interface{} = "-"
			if !math.IsNaN(float64(c)) {
				v = pipeline.RoundTo2(float64(c))
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{i, j, v}})
		}
	}
	hm.SetXAxis(m.Columns).AddSeries("correlation", data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}),
	)
	return hm
}

func rankedDaysChart(title string, days []models.DayRentals) *charts.Bar {
	labels := make([]string, 0, len(days))
	data := make([]opts.BarData, 0, len(days))
	for _, d := range days {
		labels = append(labels, fmt.Sprintf("%s (%s, %s)", d.Date.Format(rental.DateLayout), d.Weather, d.Season))
		data = append(data, opts.BarData{Value: d.Count})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		initOpts(),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 20}}),
	)
	bar.SetXAxis(labels).AddSeries("Rentals", data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)
	return bar
}

package pipeline

import (
	"math"
	"sort"
	"time"

	"bike-dashboard/models"
	"bike-dashboard/models/rental"

	"gonum.org/v1/gonum/stat"
)

// TOP_N is the row count of the top and bottom day tables.
const TOP_N = 5

// CorrelationColumns are the columns of the correlation matrix, in order.
var CorrelationColumns = []string{"temp", "hum", "windspeed", "cnt"}

// TotalRentals sums cnt over the view. An empty view totals zero.
func TotalRentals(view []rental.DailyRecord) int {
	total := 0
	for _, d := range view {
		total += d.Count
	}
	return total
}

// AverageDailyRentals is the mean cnt rounded to 2 decimals.
func AverageDailyRentals(view []rental.DailyRecord) (float64, error) {
	if len(view) == 0 {
		return 0, &models.EmptyInputError{Statistic: "average daily rentals"}
	}
	return RoundTo2(stat.Mean(counts(view), nil)), nil
}

// MaxRentalDay returns the day with the highest cnt, the earliest one on ties.
func MaxRentalDay(view []rental.DailyRecord) (models.DayRentals, error) {
	return extremeDay(view, "maximum rental day", func(candidate, best int) bool { return candidate > best })
}

// MinRentalDay returns the day with the lowest cnt, the earliest one on ties.
func MinRentalDay(view []rental.DailyRecord) (models.DayRentals, error) {
	return extremeDay(view, "minimum rental day", func(candidate, best int) bool { return candidate < best })
}

func extremeDay(view []rental.DailyRecord, statistic string, better func(candidate, best int) bool) (models.DayRentals, error) {
	if len(view) == 0 {
		return models.DayRentals{}, &models.EmptyInputError{Statistic: statistic}
	}
	best := 0
	for i := 1; i < len(view); i++ {
		// strict comparison keeps the first occurrence
		if better(view[i].Count, view[best].Count) {
			best = i
		}
	}
	return dayRentals(view[best]), nil
}

// MonthlyAverage is the mean cnt per month, in calendar order.
func MonthlyAverage(view []rental.DailyRecord) []models.GroupAverage {
	order := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		order = append(order, m.String())
	}
	return groupAverage(view, order, func(d rental.DailyRecord) string { return d.MonthName })
}

// WeatherAverage is the mean cnt per weather label, in code order.
func WeatherAverage(view []rental.DailyRecord) []models.GroupAverage {
	return groupAverage(view, weatherLabels, func(d rental.DailyRecord) string { return d.Weather })
}

// SeasonAverage is the mean cnt per season label, in code order.
func SeasonAverage(view []rental.DailyRecord) []models.GroupAverage {
	return groupAverage(view, seasonLabels, func(d rental.DailyRecord) string { return d.Season })
}

// groupAverage only emits groups present in view.
func groupAverage(view []rental.DailyRecord, order []string, key func(rental.DailyRecord) string) []models.GroupAverage {
	grouped := make(map[string][]float64)
	for _, d := range view {
		k := key(d)
		grouped[k] = append(grouped[k], float64(d.Count))
	}

	out := make([]models.GroupAverage, 0, len(grouped))
	for _, k := range order {
		values, ok := grouped[k]
		if !ok {
			continue
		}
		out = append(out, models.GroupAverage{
			Label:   k,
			Average: stat.Mean(values, nil),
			Days:    len(values),
		})
	}
	return out
}

// Correlation computes the Pearson matrix over CorrelationColumns.
// A pair involving a zero-variance column is NaN; the diagonal of any other column is exactly 1.
func Correlation(view []rental.DailyRecord) (*models.CorrelationMatrix, error) {
	if len(view) == 0 {
		return nil, &models.EmptyInputError{Statistic: "correlation matrix"}
	}

	columns := [][]float64{
		make([]float64, len(view)),
		make([]float64, len(view)),
		make([]float64, len(view)),
		counts(view),
	}
	for i, d := range view {
		columns[0][i] = d.Temp
		columns[1][i] = d.Hum
		columns[2][i] = d.Windspeed
	}

	defined := make([]bool, len(columns))
	for i, col := range columns {
		defined[i] = len(view) > 1 && !constant(col)
	}

	values := make([][]models.Coefficient, len(columns))
	for i := range columns {
		values[i] = make([]models.Coefficient, len(columns))
		for j := range columns {
			switch {
			case !defined[i] || !defined[j]:
				values[i][j] = models.Coefficient(math.NaN())
			case i == j:
				values[i][j] = 1
			default:
				values[i][j] = models.Coefficient(stat.Correlation(columns[i], columns[j], nil))
			}
		}
	}

	return &models.CorrelationMatrix{
		Columns: append([]string(nil), CorrelationColumns...),
		Values:  values,
	}, nil
}

// TopDays returns up to n days by descending cnt; ties keep date order.
func TopDays(view []rental.DailyRecord, n int) []models.DayRentals {
	return rankDays(view, n, func(a, b int) bool { return a > b })
}

// BottomDays returns up to n days by ascending cnt; ties keep date order.
func BottomDays(view []rental.DailyRecord, n int) []models.DayRentals {
	return rankDays(view, n, func(a, b int) bool { return a < b })
}

func rankDays(view []rental.DailyRecord, n int, less func(a, b int) bool) []models.DayRentals {
	sorted := append([]rental.DailyRecord(nil), view...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i].Count, sorted[j].Count)
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	out := make([]models.DayRentals, 0, len(sorted))
	for _, d := range sorted {
		out = append(out, dayRentals(d))
	}
	return out
}

// Trend is the daily series of the view in date order.
func Trend(view []rental.DailyRecord) []models.DayRentals {
	out := make([]models.DayRentals, 0, len(view))
	for _, d := range view {
		out = append(out, dayRentals(d))
	}
	return out
}

// Conditions pairs the weather readings of each day with its cnt.
func Conditions(view []rental.DailyRecord) []models.ConditionPoint {
	out := make([]models.ConditionPoint, 0, len(view))
	for _, d := range view {
		out = append(out, models.ConditionPoint{
			Temp:      d.Temp,
			Hum:       d.Hum,
			Windspeed: d.Windspeed,
			Count:     d.Count,
		})
	}
	return out
}

// RoundTo2 rounds half away from zero to 2 decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

func dayRentals(d rental.DailyRecord) models.DayRentals {
	return models.DayRentals{
		Date:    d.Date,
		Count:   d.Count,
		Weather: d.Weather,
		Season:  d.Season,
	}
}

func counts(view []rental.DailyRecord) []float64 {
	out := make([]float64, len(view))
	for i, d := range view {
		out[i] = float64(d.Count)
	}
	return out
}

func constant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

package models

import (
	"encoding/json"
	"math"
	"time"
)

// DayRentals is one row of the trend series and of the top/bottom tables.
type DayRentals struct {
	Date    time.Time `json:"date"`
	Count   int       `json:"cnt"`
	Weather string    `json:"weather"`
	Season  string    `json:"season"`
}

// GroupAverage is the mean daily count of one group.
type GroupAverage struct {
	Label   string  `json:"label"`
	Average float64 `json:"average"`
	Days    int     `json:"days"`
}

// ConditionPoint pairs the weather readings of a day with its count, for scatter charts.
type ConditionPoint struct {
	Temp      float64 `json:"temp"`
	Hum       float64 `json:"hum"`
	Windspeed float64 `json:"windspeed"`
	Count     int     `json:"cnt"`
}

// Coefficient is a correlation value; NaN means undefined and encodes as null.
type Coefficient float64

func (c Coefficient) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(c)) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(c))
}

func (c *Coefficient) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = Coefficient(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*c = Coefficient(f)
	return nil
}

// CorrelationMatrix holds pairwise Pearson coefficients; Values[i][j] pairs Columns[i] and Columns[j].
type CorrelationMatrix struct {
	Columns []string        `json:"columns"`
	Values  [][]Coefficient `json:"values"`
}

// DashboardView is everything the render surface needs for one FilterCriteria.
// When Empty is set only Criteria and DayCount are meaningful.
type DashboardView struct {
	Criteria            FilterCriteria     `json:"criteria"`
	Empty               bool               `json:"empty"`
	DayCount            int                `json:"day_count"`
	TotalRentals        int                `json:"total_rentals"`
	AverageDailyRentals float64            `json:"average_daily_rentals"`
	MaxDay              *DayRentals        `json:"max_day,omitempty"`
	MinDay              *DayRentals        `json:"min_day,omitempty"`
	Trend               []DayRentals       `json:"trend"`
	MonthlyAverage      []GroupAverage     `json:"monthly_average"`
	WeatherAverage      []GroupAverage     `json:"weather_average"`
	SeasonAverage       []GroupAverage     `json:"season_average"`
	Conditions          []ConditionPoint   `json:"conditions"`
	Correlation         *CorrelationMatrix `json:"correlation,omitempty"`
	TopDays             []DayRentals       `json:"top_days"`
	BottomDays          []DayRentals       `json:"bottom_days"`
}

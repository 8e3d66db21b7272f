package pipeline

import "bike-dashboard/models"

const (
	SEASON_KIND  = "season"
	WEATHER_KIND = "weather"
)

// Labels are indexed by code-1.
var seasonLabels = []string{"Spring", "Summer", "Fall", "Winter"}
var weatherLabels = []string{"Clear", "Cloudy", "Rainy", "Snowy"}

// SeasonLabel maps a season code (1..4) to its name.
func SeasonLabel(code int) (string, error) {
	return label(SEASON_KIND, seasonLabels, code)
}

// WeatherLabel maps a weather code (1..4) to its name.
func WeatherLabel(code int) (string, error) {
	return label(WEATHER_KIND, weatherLabels, code)
}

// SeasonCode is the reverse lookup of SeasonLabel. It returns false for unknown labels.
func SeasonCode(label string) (int, bool) {
	return code(seasonLabels, label)
}

// WeatherCode is the reverse lookup of WeatherLabel.
func WeatherCode(label string) (int, bool) {
	return code(weatherLabels, label)
}

// SeasonLabels returns all season names in code order.
func SeasonLabels() []string {
	return append([]string(nil), seasonLabels...)
}

// WeatherLabels returns all weather names in code order.
func WeatherLabels() []string {
	return append([]string(nil), weatherLabels...)
}

func label(kind string, labels []string, c int) (string, error) {
	if c < 1 || c > len(labels) {
		return "", &models.UnknownCodeError{Kind: kind, Code: c}
	}
	return labels[c-1], nil
}

func code(labels []string, l string) (int, bool) {
	for i, candidate := range labels {
		if candidate == l {
			return i + 1, true
		}
	}
	return 0, false
}

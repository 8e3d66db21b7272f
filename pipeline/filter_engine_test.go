package pipeline

import (
	"testing"

	"bike-dashboard/models"
	"bike-dashboard/models/rental"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDaily(t *testing.T) []rental.DailyRecord {
	return []rental.DailyRecord{
		day(t, "2011-01-01", 985, "Cloudy", "Spring"),
		day(t, "2011-01-02", 801, "Cloudy", "Spring"),
		day(t, "2011-01-03", 1349, "Clear", "Spring"),
		day(t, "2011-04-01", 2000, "Rainy", "Summer"),
		day(t, "2011-07-01", 5000, "Clear", "Fall"),
		day(t, "2011-12-31", 1200, "Snowy", "Winter"),
	}
}

func TestApplyFilter_DefaultCriteriaKeepsEverything(t *testing.T) {
	daily := sampleDaily(t)

	got := ApplyFilter(daily, DefaultCriteria(daily))

	assert.Equal(t, daily, got)
}

func TestApplyFilter_DateRangeIsInclusive(t *testing.T) {
	daily := sampleDaily(t)
	c := DefaultCriteria(daily)
	c.Start = mustDate(t, "2011-01-02")
	c.End = mustDate(t, "2011-04-01")

	got := ApplyFilter(daily, c)

	require.Len(t, got, 3)
	assert.Equal(t, 801, got[0].Count)
	assert.Equal(t, 2000, got[2].Count)
}

func TestApplyFilter_SetsAreANDed(t *testing.T) {
	daily := sampleDaily(t)
	c := DefaultCriteria(daily)
	c.Weather = []string{"Clear"}
	c.Seasons = []string{"Spring"}

	got := ApplyFilter(daily, c)

	require.Len(t, got, 1)
	assert.Equal(t, 1349, got[0].Count)
}

func TestApplyFilter_EmptySetMatchesNothing(t *testing.T) {
	daily := sampleDaily(t)

	tests := []struct {
		name   string
		mutate func(c *models.FilterCriteria)
	}{
		{"weather", func(c *models.FilterCriteria) { c.Weather = []string{} }},
		{"season", func(c *models.FilterCriteria) { c.Seasons = nil }},
		{"month", func(c *models.FilterCriteria) { c.Months = []string{} }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := DefaultCriteria(daily)
			test.mutate(&c)
			assert.Empty(t, ApplyFilter(daily, c))
		})
	}
}

func TestApplyFilter_Idempotent(t *testing.T) {
	daily := sampleDaily(t)
	c := DefaultCriteria(daily)
	c.Months = []string{"January", "July"}
	c.Weather = []string{"Clear", "Cloudy"}

	once := ApplyFilter(daily, c)
	twice := ApplyFilter(once, c)

	assert.Equal(t, once, twice)
	assert.Len(t, once, 4)
}

func TestDefaultCriteria(t *testing.T) {
	c := DefaultCriteria(sampleDaily(t))

	assert.Equal(t, "2011-01-01", c.Start.Format(rental.DateLayout))
	assert.Equal(t, "2011-12-31", c.End.Format(rental.DateLayout))
	assert.Equal(t, []string{"Cloudy", "Clear", "Rainy", "Snowy"}, c.Weather)
	assert.Equal(t, []string{"Spring", "Summer", "Fall", "Winter"}, c.Seasons)
	assert.Equal(t, []string{"January", "April", "July", "December"}, c.Months)
}

func TestDefaultCriteria_Empty(t *testing.T) {
	c := DefaultCriteria(nil)

	assert.True(t, c.Start.IsZero())
	assert.Empty(t, c.Weather)
}

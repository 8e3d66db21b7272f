package models_test

import (
	"net/url"
	"testing"
	"time"

	"bike-dashboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func testDefaults() models.FilterCriteria {
	return models.FilterCriteria{
		Start:   day("2011-01-01"),
		End:     day("2012-12-31"),
		Weather: []string{"Clear", "Cloudy", "Rainy"},
		Seasons: []string{"Spring", "Summer", "Fall", "Winter"},
		Months:  []string{"January", "February"},
	}
}

func TestFilterCriteriaFromValues_AbsentArgsUseDefaults(t *testing.T) {
	defaults := testDefaults()

	c, err := models.FilterCriteriaFromValues(url.Values{}, defaults)

	require.NoError(t, err)
	assert.Equal(t, defaults, c)

	c.Weather[0] = "Snowy"
	assert.Equal(t, "Clear", defaults.Weather[0])
}

func TestFilterCriteriaFromValues_SetArgs(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		weather []string
	}{
		{"blank selects nothing", "weather=", []string{}},
		{"comma list", "weather=Clear,Rainy", []string{"Clear", "Rainy"}},
		{"repeated keys", "weather=Clear&weather=Rainy", []string{"Clear", "Rainy"}},
		{"mixed with spaces", "weather=Clear,%20Cloudy&weather=Rainy", []string{"Clear", "Cloudy", "Rainy"}},
		{"only commas", "weather=,,", []string{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			q, err := url.ParseQuery(test.query)
			require.NoError(t, err)

			c, err := models.FilterCriteriaFromValues(q, testDefaults())

			require.NoError(t, err)
			assert.Equal(t, test.weather, c.Weather)
			assert.Equal(t, testDefaults().Seasons, c.Seasons)
		})
	}
}

func TestFilterCriteriaFromValues_Dates(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
		start   string
		end     string
	}{
		{"override both", "start=2011-03-01&end=2011-03-31", false, "2011-03-01", "2011-03-31"},
		{"single day", "start=2011-03-01&end=2011-03-01", false, "2011-03-01", "2011-03-01"},
		{"start only", "start=2012-06-01", false, "2012-06-01", "2012-12-31"},
		{"blank start keeps default", "start=", false, "2011-01-01", "2012-12-31"},
		{"bad start", "start=01/03/2011", true, "", ""},
		{"bad end", "end=2011-02-30", true, "", ""},
		{"reversed", "start=2011-05-01&end=2011-04-30", true, "", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			q, err := url.ParseQuery(test.query)
			require.NoError(t, err)

			c, err := models.FilterCriteriaFromValues(q, testDefaults())

			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, day(test.start), c.Start)
			assert.Equal(t, day(test.end), c.End)
		})
	}
}

func TestFilterCriteria_ToValuesRoundTrip(t *testing.T) {
	c := models.FilterCriteria{
		Start:   day("2011-04-01"),
		End:     day("2011-09-30"),
		Weather: []string{"Rainy", "Clear"},
		Seasons: []string{},
		Months:  []string{"April", "September"},
	}

	parsed, err := models.FilterCriteriaFromValues(c.ToValues(), testDefaults())

	require.NoError(t, err)
	assert.Equal(t, c, parsed)
}

func TestFilterCriteria_CacheKey(t *testing.T) {
	a := testDefaults()
	b := testDefaults()
	b.Weather = []string{"Rainy", "Clear", "Cloudy"}
	b.Months = []string{"February", "January"}

	assert.Equal(t, a.CacheKey(), b.CacheKey())
	assert.Len(t, a.CacheKey(), 16)

	b.Weather = []string{"Clear", "Cloudy"}
	assert.NotEqual(t, a.CacheKey(), b.CacheKey())

	empty := testDefaults()
	empty.Seasons = []string{}
	assert.NotEqual(t, a.CacheKey(), empty.CacheKey())

	shifted := testDefaults()
	shifted.End = day("2012-12-30")
	assert.NotEqual(t, a.CacheKey(), shifted.CacheKey())
}

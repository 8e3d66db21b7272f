package models

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"bike-dashboard/models/rental"

	"github.com/cespare/xxhash/v2"
)

const (
	START_QUERY_ARG   = "start"
	END_QUERY_ARG     = "end"
	WEATHER_QUERY_ARG = "weather"
	SEASON_QUERY_ARG  = "season"
	MONTH_QUERY_ARG   = "month"
)

// FilterCriteria is the widget state of the dashboard. All four predicates are ANDed.
// A nil or empty set accepts nothing.
type FilterCriteria struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Weather []string  `json:"weather"`
	Seasons []string  `json:"seasons"`
	Months  []string  `json:"months"`
}

// FilterCriteriaFromValues builds criteria from query args.
// Absent args fall back to defaults; an arg that is present but blank selects the empty set.
// Set args accept repeated keys and comma-separated lists.
func FilterCriteriaFromValues(q url.Values, defaults FilterCriteria) (FilterCriteria, error) {
	c := FilterCriteria{
		Start: defaults.Start,
		End:   defaults.End,
	}

	var err error
	if s := q.Get(START_QUERY_ARG); s != "" {
		if c.Start, err = time.Parse(rental.DateLayout, s); err != nil {
			return FilterCriteria{}, fmt.Errorf("invalid argument %s: %w", START_QUERY_ARG, err)
		}
	}
	if s := q.Get(END_QUERY_ARG); s != "" {
		if c.End, err = time.Parse(rental.DateLayout, s); err != nil {
			return FilterCriteria{}, fmt.Errorf("invalid argument %s: %w", END_QUERY_ARG, err)
		}
	}
	if c.End.Before(c.Start) {
		return FilterCriteria{}, fmt.Errorf("invalid date range: %s is after %s",
			c.Start.Format(rental.DateLayout), c.End.Format(rental.DateLayout))
	}

	c.Weather = parseSetArg(q, WEATHER_QUERY_ARG, defaults.Weather)
	c.Seasons = parseSetArg(q, SEASON_QUERY_ARG, defaults.Seasons)
	c.Months = parseSetArg(q, MONTH_QUERY_ARG, defaults.Months)
	return c, nil
}

// ToValues is the inverse of FilterCriteriaFromValues.
func (c FilterCriteria) ToValues() url.Values {
	q := url.Values{}
	if !c.Start.IsZero() {
		q.Set(START_QUERY_ARG, c.Start.Format(rental.DateLayout))
	}
	if !c.End.IsZero() {
		q.Set(END_QUERY_ARG, c.End.Format(rental.DateLayout))
	}
	q.Set(WEATHER_QUERY_ARG, strings.Join(c.Weather, ","))
	q.Set(SEASON_QUERY_ARG, strings.Join(c.Seasons, ","))
	q.Set(MONTH_QUERY_ARG, strings.Join(c.Months, ","))
	return q
}

// CacheKey identifies the criteria independently of set ordering.
func (c FilterCriteria) CacheKey() string {
	canonical := FilterCriteria{
		Start:   c.Start,
		End:     c.End,
		Weather: sortedCopy(c.Weather),
		Seasons: sortedCopy(c.Seasons),
		Months:  sortedCopy(c.Months),
	}
	return fmt.Sprintf("%016x", xxhash.Sum64String(canonical.ToValues().Encode()))
}

func parseSetArg(q url.Values, name string, fallback []string) []string {
	raw, present := q[name]
	if !present {
		return append([]string(nil), fallback...)
	}
	out := []string{}
	for _, v := range raw {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

func sortedCopy(ss []string) []string {
	out := append([]string(nil), ss...)
	sort.Strings(out)
	return out
}

package services

import (
	"fmt"

	"bike-dashboard/models"
	"bike-dashboard/models/rental"
	"bike-dashboard/pipeline"
	"bike-dashboard/util/log"

	"github.com/cespare/xxhash/v2"
)

// ViewCache stores rendered views per dataset fingerprint and criteria key.
type ViewCache interface {
	GetView(fingerprint, criteriaKey string) (*models.DashboardView, error)
	SetView(fingerprint, criteriaKey string, view *models.DashboardView) error
	DeleteStaleViews(fingerprint string) (int, error)
}

// DashboardService owns the immutable daily dataset and renders views for criteria.
type DashboardService struct {
	daily       []rental.DailyRecord
	defaults    models.FilterCriteria
	fingerprint string
	viewCache   ViewCache
}

// NewDashboardService constructs a DashboardService. daily must not be mutated afterwards.
func NewDashboardService(daily []rental.DailyRecord, viewCache ViewCache) *DashboardService {
	return &DashboardService{
		daily:       daily,
		defaults:    pipeline.DefaultCriteria(daily),
		fingerprint: datasetFingerprint(daily),
		viewCache:   viewCache,
	}
}

// Defaults returns the full-domain criteria the controls start from.
func (s *DashboardService) Defaults() models.FilterCriteria {
	d := s.defaults
	d.Weather = append([]string{}, d.Weather...)
	d.Seasons = append([]string{}, d.Seasons...)
	d.Months = append([]string{}, d.Months...)
	return d
}

func (s *DashboardService) Fingerprint() string {
	return s.fingerprint
}

func (s *DashboardService) DayCount() int {
	return len(s.daily)
}

// Render returns the view for c, from the cache when possible.
// Cache failures are logged and fall through to a fresh render.
func (s *DashboardService) Render(c models.FilterCriteria) (*models.DashboardView, error) {
	key := c.CacheKey()

	cached, err := s.viewCache.GetView(s.fingerprint, key)
	if err != nil {
		log.Warnf("[DashboardService] View cache read failed for %s: %v", key, err)
	} else if cached != nil {
		log.Debugf("[DashboardService] View cache hit for %s", key)
		// the key ignores set order, so echo the caller's criteria
		cached.Criteria = c
		return cached, nil
	}

	view, err := pipeline.Render(s.daily, c)
	if err != nil {
		return nil, fmt.Errorf("failed to render dashboard view: %w", err)
	}

	if err := s.viewCache.SetView(s.fingerprint, key, view); err != nil {
		log.Warnf("[DashboardService] View cache write failed for %s: %v", key, err)
	}
	return view, nil
}

// PruneStaleViews drops cached views rendered from another dataset.
func (s *DashboardService) PruneStaleViews() (int, error) {
	return s.viewCache.DeleteStaleViews(s.fingerprint)
}

func datasetFingerprint(daily []rental.DailyRecord) string {
	digest := xxhash.New()
	for _, d := range daily {
		fmt.Fprintf(digest, "%s|%d|%d|%g|%g|%g|%d\n",
			d.Date.Format(rental.DateLayout), d.SeasonCode, d.WeatherCode,
			d.Temp, d.Hum, d.Windspeed, d.Count)
	}
	return fmt.Sprintf("%016x", digest.Sum64())
}

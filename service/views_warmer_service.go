package services

import (
	"context"
	"time"

	"bike-dashboard/models"
	"bike-dashboard/util/log"
)

// ViewsWarmerService keeps the cache populated with the views users open first.
type ViewsWarmerService struct {
	dashboard *DashboardService
}

// NewViewsWarmerService constructs a new warmer over the dashboard service.
func NewViewsWarmerService(dashboard *DashboardService) *ViewsWarmerService {
	return &ViewsWarmerService{dashboard: dashboard}
}

// StartPeriodicJob launches the background loop at the given interval until ctx is done.
func (vw *ViewsWarmerService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go vw.startPeriodicJob(ctx, interval)
}

func (vw *ViewsWarmerService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Infof("[ViewsWarmerService] Periodic job stopped.")
			return
		case <-ticker.C:
			log.Infof("[ViewsWarmerService] Running periodic views warmer job.")
			if err := vw.WarmViews(); err != nil {
				log.Errorf("[ViewsWarmerService] WarmViews returned error: %v", err)
			}
		}
	}
}

// WarmViews prunes views of other datasets, then renders every preset.
func (vw *ViewsWarmerService) WarmViews() error {
	if _, err := vw.dashboard.PruneStaleViews(); err != nil {
		log.Warnf("[ViewsWarmerService] Failed to prune stale views: %v", err)
	}

	presets := vw.Presets()
	for _, c := range presets {
		if _, err := vw.dashboard.Render(c); err != nil {
			return err
		}
	}
	log.Infof("[ViewsWarmerService] Warmed %d views", len(presets))
	return nil
}

// Presets is the default view plus one view per single season and per single weather.
func (vw *ViewsWarmerService) Presets() []models.FilterCriteria {
	defaults := vw.dashboard.Defaults()
	presets := []models.FilterCriteria{defaults}

	for _, season := range defaults.Seasons {
		c := vw.dashboard.Defaults()
		c.Seasons = []string{season}
		presets = append(presets, c)
	}
	for _, weather := range defaults.Weather {
		c := vw.dashboard.Defaults()
		c.Weather = []string{weather}
		presets = append(presets, c)
	}
	return presets
}

package services

import (
	"context"
	"fmt"

	"bike-dashboard/api"
	"bike-dashboard/config"
	"bike-dashboard/models/rental"
	"bike-dashboard/pipeline"
	"bike-dashboard/util"
	"bike-dashboard/util/log"
)

// LoadDailyRecords reads the hourly dataset from disk or over HTTP and derives the
// daily records once. Any error here is a startup failure.
func LoadDailyRecords(ctx context.Context, cfg config.DatasetConfig) ([]rental.DailyRecord, error) {
	var raw []rental.RawRecord
	var err error

	if cfg.IsRemote() {
		log.Infof("[DatasetLoader] Downloading dataset from %s", cfg.Path)
		var body []byte
		body, err = api.NewHTTPClient("", cfg.DownloadTimeout).Download(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		raw, err = util.ParseRentalRecordsFromBytes(body)
		if err != nil {
			err = fmt.Errorf("failed to parse %q: %w", cfg.Path, err)
		}
	} else {
		log.Infof("[DatasetLoader] Reading dataset from %s", cfg.Path)
		raw, err = util.ReadRentalRecordsFromCSV(cfg.Path)
	}
	if err != nil {
		return nil, err
	}

	daily, err := pipeline.BuildDaily(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %q: %w", cfg.Path, err)
	}
	log.Infow("[DatasetLoader] Dataset loaded", "hourly_rows", len(raw), "days", len(daily))
	return daily, nil
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"bike-dashboard/config"
	"bike-dashboard/di"
	services "bike-dashboard/service"
	"bike-dashboard/util/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := log.Init(cfg.Log.Debug); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infof("Loading dataset from %s", cfg.Dataset.Path)
	daily, err := services.LoadDailyRecords(ctx, cfg.Dataset)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	container, err := di.NewContainer(ctx, cfg, daily)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer container.Close()

	log.Infof("Warming dashboard views")
	if err := container.ViewsWarmerService.WarmViews(); err != nil {
		log.Warnf("Failed to warm dashboard views: %v", err)
	}
	if cfg.Warmer.Interval > 0 {
		container.ViewsWarmerService.StartPeriodicJob(ctx, cfg.Warmer.Interval)
	}

	if err := container.DashboardHttpServer.Start(); err != nil {
		log.Errorf("Server stopped with error: %v", err)
		os.Exit(1)
	}
}

package di

import (
	"context"
	"fmt"

	"bike-dashboard/config"
	"bike-dashboard/dao/redis"
	"bike-dashboard/db"
	"bike-dashboard/models/rental"
	"bike-dashboard/server"
	"bike-dashboard/server/handlers"
	services "bike-dashboard/service"
	"bike-dashboard/util/log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient         db.RedisClient
	RedisViewDao        *redis.RedisViewDAO
	DashboardService    *services.DashboardService
	ViewsWarmerService  *services.ViewsWarmerService
	DashboardHandler    *handlers.DashboardHandler
	MuxRouter           *mux.Router
	Router              *server.Router
	DashboardHttpServer *server.DashboardHttpServer
}

// NewContainer initializes and wires up all dependencies around the loaded daily records.
func NewContainer(ctx context.Context, cfg *config.Config, daily []rental.DailyRecord) (*Container, error) {
	log.Infof("initializing container - days: %d, redis enabled: %t", len(daily), cfg.Redis.Enabled)

	// Initialize the view cache client
	var redisClient db.RedisClient
	if cfg.Redis.Enabled {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		client, err := db.NewCacheRedisClient(ctx, redisInternalClient)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		redisClient = client
		log.Infof("Using redis view cache at %s", cfg.Redis.Addr)
	} else {
		redisClient = db.NewInMemoryRedisClient(ctx)
		log.Infof("Using in-memory view cache")
	}

	// Initialize Redis View DAO
	redisViewDao := redis.NewRedisViewDAO(redisClient, cfg.Redis.TTL)

	// Initialize service layer with the view cache
	dashboardService := services.NewDashboardService(daily, redisViewDao)
	viewsWarmerService := services.NewViewsWarmerService(dashboardService)

	// Initialize dashboard handler
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(dashboardHandler, muxRouter)

	// Initialize dashboard server
	dashboardHttpServer := server.NewDashboardHttpServer(router, muxRouter, cfg.Server.Addr, cfg.Server.ShutdownTimeout)

	return &Container{
		RedisClient:         redisClient,
		RedisViewDao:        redisViewDao,
		DashboardService:    dashboardService,
		ViewsWarmerService:  viewsWarmerService,
		DashboardHandler:    dashboardHandler,
		MuxRouter:           muxRouter,
		Router:              router,
		DashboardHttpServer: dashboardHttpServer,
	}, nil
}

// Close releases the cache connection.
func (c *Container) Close() error {
	return c.RedisClient.Close()
}

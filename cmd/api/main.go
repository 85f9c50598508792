// ABOUTME: Main entry point for the Pools API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pools-app-api/api"
	"pools-app-api/api/handlers"
	"pools-app-api/core/directory"
	"pools-app-api/core/interfaces"
	"pools-app-api/core/pools"
	"pools-app-api/core/scrape"
	"pools-app-api/core/snapshot"
	"pools-app-api/infrastructure/cache/memory"
	"pools-app-api/infrastructure/cache/redis"
	"pools-app-api/infrastructure/cache/sqlite"
	stdhttp "pools-app-api/infrastructure/http/standard"
	logruslogger "pools-app-api/infrastructure/logger/logrus"
	"pools-app-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger()
	logger.Info("Starting Pools API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	// Create cache backend
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis.Address, cfg.Cache.Redis.Password, cfg.Cache.Redis.DB)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration)*time.Second, 10*time.Minute)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration)*time.Second, 10*time.Minute)
		} else {
			cache = sqliteCache
			logger.Info("Using SQLite cache", map[string]interface{}{
				"path": cfg.Cache.SQLite.Path,
			})
		}
	default:
		cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration)*time.Second, 10*time.Minute)
		logger.Info("Using memory cache", nil)
	}

	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create services
	scheduleService := scrape.NewScheduleService(deps, cfg.Scrape.ScheduleURL, cfg.Scrape.FailFast)
	directoryService := directory.NewDirectoryService(deps, cfg.Scrape.DirectoryURLs)
	store := snapshot.NewStore(cache, logger)
	poolService := pools.NewService(
		scheduleService,
		directoryService,
		store,
		time.Duration(cfg.Scrape.SnapshotTTL)*time.Second,
		logger,
	)

	// Warm the collection before accepting traffic. A failure is not fatal:
	// the first request retries the load.
	warmCtx, cancelWarm := context.WithTimeout(context.Background(), 2*time.Minute)
	if _, err := poolService.Current(warmCtx); err != nil {
		logger.Warn("Failed to warm schedule collection", map[string]interface{}{
			"error": err.Error(),
		})
	}
	cancelWarm()

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:    logger,
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	poolHandler := handlers.NewPoolHandler(poolService)
	poolHandler.RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

func init() {
	// Print banner
	fmt.Println(`
    ____              __        ___    ____  ____
   / __ \____  ____  / /____   /   |  / __ \/  _/
  / /_/ / __ \/ __ \/ / ___/  / /| | / /_/ // /
 / ____/ /_/ / /_/ / (__  )  / ___ |/ ____// /
/_/    \____/\____/_/____/  /_/  |_/_/   /___/
	`)
}

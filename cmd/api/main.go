package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"readshelf-share/config"
	_ "readshelf-share/docs" // Swagger docs
	"readshelf-share/internal/httpserver"
	"readshelf-share/internal/middleware"
	"readshelf-share/internal/note/repository/backend"
	"readshelf-share/internal/note/usecase"
	"readshelf-share/pkg/cache"
	"readshelf-share/pkg/log"
)

// @title       ReadShelf Share API
// @description Public share pages, printable exports and share path resolution for ReadShelf notes.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ReadShelf share gateway...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.URL)

	// 3. Notes backend
	backendClient := backend.NewClient(backend.ClientConfig{
		BaseURL:         cfg.Backend.URL,
		PublicNotesPath: cfg.Backend.PublicNotesPath,
		AssetsURL:       cfg.Backend.AssetsURL,
		Timeout:         cfg.Backend.Timeout,
	})

	// 4. Listing cache, opt-in (falls back to no cache if Redis is unreachable)
	listingCache, err := cache.New(ctx, cache.Config{
		Driver: cfg.Cache.Driver,
		TTL:    cfg.Cache.TTL,
		Size:   cfg.Cache.Size,
		Redis: cache.RedisConfig{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
			Prefix:   "readshelf-share:",
		},
	})
	if err != nil {
		logger.Warnf(ctx, "Listing cache unavailable, continuing without it: %v", err)
		listingCache = cache.Nop{}
	} else if cfg.Cache.Driver == cache.DriverNone {
		logger.Info(ctx, "Listing cache: disabled")
	} else {
		logger.Warnf(ctx, "Listing cache: %s (ttl %s), visibility changes apply after expiry", cfg.Cache.Driver, cfg.Cache.TTL)
	}
	defer listingCache.Close()

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Backend:     backendClient,
		Cache:       listingCache,
		NoteConfig: usecase.Config{
			ListingLimit: cfg.Backend.ListingLimit,
			ProductLabel: cfg.Export.ProductLabel,
			Location:     cfg.Export.Location(),
		},
		Middleware: middleware.Config{
			CookieName:       cfg.Session.CookieName,
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		},
		ProductLabel: cfg.Export.ProductLabel,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

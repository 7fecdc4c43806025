package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/techriver/tech-river/app/analysis"
	"github.com/techriver/tech-river/app/api"
	"github.com/techriver/tech-river/app/catalog"
	"github.com/techriver/tech-river/app/cfg"
	"github.com/techriver/tech-river/app/reddit"
	"github.com/techriver/tech-river/app/river"
	"github.com/techriver/tech-river/app/tasks"
)

func main() {
	// A .env file is optional, real environment variables take precedence
	_ = godotenv.Load()

	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Tech River server", "version", appCfg.Version)

	cat, err := catalog.Load(appCfg.CatalogPath)
	if err != nil {
		slog.Error("Failed to load keyword catalog", "path", appCfg.CatalogPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Keyword catalog loaded", "categories", len(cat.Categories), "sources", len(cat.Sources))

	fetcher := reddit.NewClient(
		appCfg.RedditBaseUrl,
		appCfg.UserAgent,
		time.Duration(appCfg.RateLimitInterval)*time.Second,
		time.Duration(appCfg.FetchTimeout)*time.Second,
		appCfg.FetchMaxAttempts,
	)

	relevance := analysis.NewRelevanceDetector(cat.Categories, appCfg.RelevanceSaturation)
	ranker := river.NewRanker(river.Weights{
		Engagement:        appCfg.EngagementWeight,
		Recency:           appCfg.RecencyWeight,
		Relevance:         appCfg.RelevanceWeight,
		SentimentBonus:    appCfg.SentimentWeight,
		Threshold:         appCfg.ImportanceThreshold,
		EngagementCeiling: appCfg.EngagementCeiling,
		RecencyHalfLife:   appCfg.RecencyHalfLife,
	})
	cache := river.NewResultCache(time.Duration(appCfg.CacheTTL)*time.Second, appCfg.CacheMaxEntries)

	service := river.NewService(fetcher, relevance, ranker, cache, cat)

	scheduler := tasks.NewScheduler(cache, time.Duration(appCfg.SweepInterval)*time.Second)
	scheduler.Start()
	defer scheduler.Stop()

	handler := api.NewHandler(service, cache)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	// Scheduler is stopped via defer
	slog.Info("Shutdown complete")
}

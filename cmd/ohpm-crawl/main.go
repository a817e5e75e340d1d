// Command ohpm-crawl crawls the OHPM registry, classifies every
// package, and persists the resulting snapshot.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ohpm-awesome/ohpm-crawler/pkg/catalog"
	"github.com/ohpm-awesome/ohpm-crawler/pkg/classify"
	"github.com/ohpm-awesome/ohpm-crawler/pkg/crawler"
	"github.com/ohpm-awesome/ohpm-crawler/pkg/logging"
	"github.com/ohpm-awesome/ohpm-crawler/pkg/registry"
	"github.com/ohpm-awesome/ohpm-crawler/pkg/store"
)

func main() {
	logging.Setup(logging.Config{
		Level:  logging.LogLevel(getEnv("LOG_LEVEL", "info")),
		Pretty: getEnv("LOG_PRETTY", "false") == "true",
		Output: os.Stderr,
	})
	logger := logging.NewLogger("ohpm-crawl")

	// Configuration from environment
	baseURL := getEnv("OHPM_BASE_URL", registry.DefaultBaseURL)
	condition := getEnv("OHPM_CONDITION", "")
	snapshotPath := getEnv("SNAPSHOT_PATH", "packages.json")
	redisURL := getEnv("REDIS_URL", "")
	metricsAddr := getEnv("METRICS_ADDR", "")
	maxConcurrency := getEnvInt("MAX_CONCURRENCY", 20)
	pageSize := getEnvInt("PAGE_SIZE", 50)

	// Stop on SIGINT/SIGTERM; in-flight fetches wind down and the
	// partial snapshot is still written.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if metricsAddr != "" {
		go serveMetrics(metricsAddr, logger)
	}

	regCfg := registry.DefaultConfig()
	regCfg.BaseURL = baseURL
	regCfg.Condition = condition
	client, err := registry.New(regCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create registry client")
	}
	defer client.Close()

	crawlCfg := crawler.DefaultConfig()
	crawlCfg.MaxConcurrency = maxConcurrency
	crawlCfg.PageSize = pageSize

	start := time.Now()
	snap, failures, err := crawler.New(client, crawlCfg).Collect(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("Crawl aborted")
	}
	for _, failure := range failures {
		logger.Warn().Err(failure.Err).Int("page", failure.Page).Msg("Page missing from snapshot")
	}

	classifier := classify.New(catalog.Default())
	results := classifier.ClassifyAll(snap.Packages)
	summary := classify.Summarize(classifier.Categories(), snap.Packages, results)

	for _, cs := range summary.Categories {
		logger.Info().
			Str("category", cs.Category.ID).
			Int("count", cs.Count).
			Float64("avg_popularity", cs.AvgPopularity).
			Str("top_package", cs.TopPackage.Name).
			Msg("Category summary")
	}
	logger.Info().
		Int("categorized", summary.Categorized).
		Int("uncategorized", len(summary.Uncategorized)).
		Msg("Classification complete")

	fileStore := store.NewFileStore(snapshotPath)
	if err := fileStore.Save(ctx, snap); err != nil {
		logger.Fatal().Err(err).Str("path", snapshotPath).Msg("Failed to save snapshot")
	}
	logger.Info().Str("path", snapshotPath).Int("packages", snap.TotalPackages).Msg("Snapshot saved")

	if redisURL != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: redisURL})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Error().Err(err).Str("redis", redisURL).Msg("Redis unreachable, snapshot not mirrored")
		} else if err := store.NewRedisStore(redisClient).Save(ctx, snap); err != nil {
			logger.Error().Err(err).Msg("Failed to mirror snapshot to Redis")
		} else {
			logger.Info().Str("redis", redisURL).Msg("Snapshot mirrored to Redis")
		}
	}

	logger.Info().
		Dur("duration", time.Since(start)).
		Int("failed_pages", len(failures)).
		Msg("Crawl run finished")
}

// serveMetrics exposes Prometheus metrics and a health probe for the
// duration of the crawl.
func serveMetrics(addr string, logger zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error().Err(err).Str("addr", addr).Msg("Metrics server stopped")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

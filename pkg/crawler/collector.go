// Package crawler collects the complete registry listing through
// bounded-concurrency paginated fetches.
package crawler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ohpm-awesome/ohpm-crawler/pkg/ohpm"
	"github.com/ohpm-awesome/ohpm-crawler/pkg/registry"
)

// ErrBadPagination is returned when the first page carries no usable
// total page count. Without it the remaining pages cannot be scheduled,
// so the whole collection aborts.
var ErrBadPagination = errors.New("first page has no usable pagination metadata")

// Prometheus metrics for crawl runs.
var (
	pagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ohpm_crawl_pages_total",
		Help: "Total pages processed by crawl outcome",
	}, []string{"outcome"})

	crawlDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ohpm_crawl_duration_seconds",
		Help:    "Duration of complete crawl runs in seconds",
		Buckets: []float64{1, 5, 15, 30, 60, 120, 300},
	})

	packagesCollected = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ohpm_crawl_packages_collected",
		Help: "Packages collected by the most recent crawl",
	})
)

// PageFetcher is the single-page contract the collector drives. The
// registry client satisfies it.
type PageFetcher interface {
	SearchPage(ctx context.Context, pageNum, pageSize int) (*registry.PageBody, error)
}

// PageFailure records one page that contributed no records.
type PageFailure struct {
	Page int
	Err  error
}

// Config holds collector configuration.
type Config struct {
	// MaxConcurrency bounds simultaneously in-flight page fetches.
	// The registry enforces a per-host connection ceiling of 20, so
	// the default must not exceed it.
	MaxConcurrency int

	// PageSize is the number of records requested per page.
	PageSize int

	// PageTimeout bounds each page fetch.
	PageTimeout time.Duration
}

// DefaultConfig returns safe defaults for the OHPM registry.
func DefaultConfig() Config {
	return Config{
		MaxConcurrency: 20,
		PageSize:       50,
		PageTimeout:    30 * time.Second,
	}
}

// Collector fetches every page of the search listing and merges the
// results into a snapshot.
type Collector struct {
	fetcher PageFetcher
	config  Config
	logger  zerolog.Logger
}

// New creates a collector driving the given fetcher.
func New(fetcher PageFetcher, config Config) *Collector {
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = 20
	}
	if config.PageSize <= 0 {
		config.PageSize = 50
	}
	if config.PageTimeout <= 0 {
		config.PageTimeout = 30 * time.Second
	}

	return &Collector{
		fetcher: fetcher,
		config:  config,
		logger:  log.With().Str("component", "collector").Logger(),
	}
}

// pageOutcome is one worker's report for a single page.
type pageOutcome struct {
	page int
	rows []json.RawMessage
	err  error
}

// Collect fetches all pages and returns the merged snapshot plus the
// list of pages that failed.
//
// Page 1 is the only source of the total page count, so a first-page
// failure is fatal and no snapshot is produced. Every other page is
// independent: a failure there is recorded and the collection
// continues. Cancelling the context abandons unfetched pages, which
// are reported as failures on an otherwise valid partial snapshot.
func (c *Collector) Collect(ctx context.Context) (*ohpm.Snapshot, []PageFailure, error) {
	start := time.Now()

	firstCtx, cancel := context.WithTimeout(ctx, c.config.PageTimeout)
	first, err := c.fetcher.SearchPage(firstCtx, 1, c.config.PageSize)
	cancel()
	if err != nil {
		pagesTotal.WithLabelValues("failure").Inc()
		return nil, nil, fmt.Errorf("fetch first page: %w", err)
	}
	if first.Pages < 1 {
		return nil, nil, fmt.Errorf("%w: pages=%d", ErrBadPagination, first.Pages)
	}
	pagesTotal.WithLabelValues("success").Inc()

	totalPages := first.Pages
	c.logger.Info().
		Int("total_pages", totalPages).
		Int("total_records", first.Total).
		Msg("Starting crawl")

	rows := make([]json.RawMessage, 0, first.Total)
	rows = append(rows, first.Rows...)
	var failures []PageFailure

	if totalPages > 1 {
		merged, failed := c.fetchRemaining(ctx, totalPages)
		rows = append(rows, merged...)
		failures = failed
	}

	pkgs, dropped := ohpm.NormalizeAll(rows, c.logger)
	snap := ohpm.NewSnapshot(pkgs)

	crawlDuration.Observe(time.Since(start).Seconds())
	packagesCollected.Set(float64(len(pkgs)))

	c.logger.Info().
		Int("packages", len(pkgs)).
		Int("dropped_records", dropped).
		Int("failed_pages", len(failures)).
		Dur("duration", time.Since(start)).
		Msg("Crawl complete")

	return snap, failures, nil
}

// fetchRemaining fans pages 2..totalPages out over a bounded worker
// pool and merges results in arrival order. All appends happen on the
// collecting goroutine; workers only report outcomes.
func (c *Collector) fetchRemaining(ctx context.Context, totalPages int) ([]json.RawMessage, []PageFailure) {
	remaining := totalPages - 1
	pageQueue := make(chan int, remaining)
	outcomes := make(chan pageOutcome, remaining)

	for page := 2; page <= totalPages; page++ {
		pageQueue <- page
	}
	close(pageQueue)

	workers := c.config.MaxConcurrency
	if workers > remaining {
		workers = remaining
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.worker(ctx, pageQueue, outcomes)
		}()
	}
	go func() {
		wg.Wait()
		close(outcomes)
	}()

	var rows []json.RawMessage
	var failures []PageFailure
	fetched := 1 // page 1 already merged

	for outcome := range outcomes {
		if outcome.err != nil {
			pagesTotal.WithLabelValues("failure").Inc()
			failures = append(failures, PageFailure{Page: outcome.page, Err: outcome.err})
			c.logger.Warn().
				Err(outcome.err).
				Int("page", outcome.page).
				Msg("Page fetch failed")
			continue
		}

		pagesTotal.WithLabelValues("success").Inc()
		rows = append(rows, outcome.rows...)
		fetched++

		if fetched%50 == 0 {
			c.logger.Info().
				Int("fetched", fetched).
				Int("total", totalPages).
				Msg("Crawl progress")
		}
	}

	sort.Slice(failures, func(i, j int) bool {
		return failures[i].Page < failures[j].Page
	})

	return rows, failures
}

// worker drains the page queue. A cancelled context does not stop the
// drain: remaining pages are reported as failures so the final summary
// accounts for every page.
func (c *Collector) worker(ctx context.Context, pageQueue <-chan int, outcomes chan<- pageOutcome) {
	for page := range pageQueue {
		select {
		case <-ctx.Done():
			outcomes <- pageOutcome{
				page: page,
				err:  fmt.Errorf("fetch abandoned: %w", ctx.Err()),
			}
			continue
		default:
		}

		pageCtx, cancel := context.WithTimeout(ctx, c.config.PageTimeout)
		body, err := c.fetcher.SearchPage(pageCtx, page, c.config.PageSize)
		cancel()

		if err != nil {
			outcomes <- pageOutcome{page: page, err: err}
			continue
		}
		outcomes <- pageOutcome{page: page, rows: body.Rows}
	}
}

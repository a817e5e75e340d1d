// Command ohpm-search queries a persisted crawl snapshot.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ohpm-awesome/ohpm-crawler/pkg/logging"
	"github.com/ohpm-awesome/ohpm-crawler/pkg/ohpm"
	"github.com/ohpm-awesome/ohpm-crawler/pkg/search"
	"github.com/ohpm-awesome/ohpm-crawler/pkg/store"
)

func main() {
	snapshotPath := flag.String("snapshot", "packages.json", "snapshot file written by ohpm-crawl")
	redisAddr := flag.String("redis", "", "load the snapshot from Redis instead of a file")
	org := flag.String("org", "", "filter by organization (exact match)")
	license := flag.String("license", "", "filter by license (exact match)")
	minLikes := flag.Int("min-likes", 0, "minimum number of likes")
	minPopularity := flag.Int("min-popularity", 0, "minimum popularity score")
	limit := flag.Int("limit", 20, "maximum number of results")
	detailed := flag.Bool("detailed", false, "show author, publisher and publish time")
	listOrgs := flag.Bool("list-orgs", false, "list all organizations")
	listLicenses := flag.Bool("list-licenses", false, "list all licenses")
	stats := flag.Bool("stats", false, "show snapshot statistics")
	flag.Parse()

	logging.Setup(logging.Config{Level: logging.LevelWarn, Output: os.Stderr})
	logger := logging.NewLogger("ohpm-search")

	ctx := context.Background()
	snap, err := loadSnapshot(ctx, *snapshotPath, *redisAddr)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load snapshot (run ohpm-crawl first)")
	}

	switch {
	case *listOrgs:
		printCounts("organizations", search.Organizations(snap.Packages))
	case *listLicenses:
		printCounts("licenses", search.Licenses(snap.Packages))
	case *stats:
		printStats(search.Summarize(snap.Packages))
	default:
		results := search.Run(snap.Packages, search.Query{
			Text:          flag.Arg(0),
			Org:           *org,
			License:       *license,
			MinLikes:      *minLikes,
			MinPopularity: *minPopularity,
			Limit:         *limit,
		})
		printResults(results, *detailed)
	}
}

// loadSnapshot reads the latest snapshot from Redis when an address is
// given, otherwise from the snapshot file.
func loadSnapshot(ctx context.Context, path, redisAddr string) (*ohpm.Snapshot, error) {
	if redisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})
		defer redisClient.Close()
		return store.NewRedisStore(redisClient).Load(ctx)
	}
	return store.NewFileStore(path).Load(ctx)
}

func printResults(results []ohpm.Package, detailed bool) {
	if len(results) == 0 {
		fmt.Println("No packages found matching your criteria.")
		return
	}

	fmt.Printf("Found %d packages:\n\n", len(results))
	for i, pkg := range results {
		desc := pkg.Description
		if !detailed && len(desc) > 80 {
			desc = desc[:77] + "..."
		}

		fmt.Printf("%2d. %s\n", i+1, pkg.Name)
		fmt.Printf("    %s\n", ohpm.DetailURL(pkg.Name))
		fmt.Printf("    org: %s | license: %s | v%s\n", orNA(pkg.Org), orNA(pkg.License), orNA(pkg.LatestVersion))
		fmt.Printf("    %d likes | %d popularity\n", pkg.Likes, pkg.Popularity)
		if desc != "" {
			fmt.Printf("    %s\n", desc)
		}

		if detailed {
			fmt.Printf("    author: %s | publisher: %s\n", orNA(pkg.AuthorName), orNA(pkg.PublisherName))
			if pkg.LatestPublishTime > 0 {
				published := time.UnixMilli(pkg.LatestPublishTime)
				fmt.Printf("    last updated: %s\n", published.Format("2006-01-02 15:04"))
			}
		}
		fmt.Println()
	}
}

func printCounts(label string, counts []search.Count) {
	fmt.Printf("Found %d %s:\n", len(counts), label)
	for _, c := range counts {
		fmt.Printf("  %s (%d packages)\n", c.Value, c.Count)
	}
}

func printStats(s search.Stats) {
	fmt.Println("Package statistics:")
	fmt.Printf("  Total packages:     %d\n", s.Total)
	fmt.Printf("  Total likes:        %d\n", s.TotalLikes)
	fmt.Printf("  Average popularity: %.1f\n", s.AvgPopularity)
	if s.Total > 0 {
		fmt.Printf("  With description:   %d (%.1f%%)\n", s.WithDescription,
			float64(s.WithDescription)/float64(s.Total)*100)
	}
	fmt.Printf("  Unique orgs:        %d\n", s.UniqueOrgs)
	fmt.Printf("  Unique licenses:    %d\n", s.UniqueLicenses)
	if s.Total > 0 {
		fmt.Printf("\nTop packages:\n")
		fmt.Printf("  Most popular: %s (%d)\n", s.MostPopular.Name, s.MostPopular.Popularity)
		fmt.Printf("  Most liked:   %s (%d likes)\n", s.MostLiked.Name, s.MostLiked.Likes)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

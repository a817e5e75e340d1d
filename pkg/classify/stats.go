package classify

import (
	"sort"

	"github.com/ohpm-awesome/ohpm-crawler/pkg/catalog"
	"github.com/ohpm-awesome/ohpm-crawler/pkg/ohpm"
)

// CategoryStats holds the aggregate view of one category after
// classification.
type CategoryStats struct {
	Category      catalog.Category
	Count         int
	AvgPopularity float64

	// TopPackage is the most popular package in the category.
	TopPackage ohpm.Package

	// Packages are the category's members sorted by popularity,
	// most popular first.
	Packages []ohpm.Package
}

// Summary is the full classification report for a snapshot: one entry
// per non-empty category plus the uncategorized remainder.
type Summary struct {
	// Categories is sorted by package count, descending; categories
	// with equal counts keep catalog order.
	Categories []CategoryStats

	// Uncategorized packages, sorted by popularity descending.
	Uncategorized []ohpm.Package

	// Categorized is the number of packages assigned to any category.
	Categorized int
}

// Summarize reduces per-package classification results into
// per-category statistics. It is a pure function over the classified
// snapshot; results[i] must correspond to pkgs[i].
func Summarize(cats []catalog.Category, pkgs []ohpm.Package, results []Result) Summary {
	byID := make(map[string]int, len(cats))
	for i, cat := range cats {
		byID[cat.ID] = i
	}

	groups := make([][]ohpm.Package, len(cats))
	var uncategorized []ohpm.Package
	categorized := 0

	for i, res := range results {
		if i >= len(pkgs) {
			break
		}
		if !res.Assigned() {
			uncategorized = append(uncategorized, pkgs[i])
			continue
		}
		idx, ok := byID[res.CategoryID]
		if !ok {
			// Result from a different catalog; treat as uncategorized.
			uncategorized = append(uncategorized, pkgs[i])
			continue
		}
		groups[idx] = append(groups[idx], pkgs[i])
		categorized++
	}

	stats := make([]CategoryStats, 0, len(cats))
	for i, cat := range cats {
		members := groups[i]
		if len(members) == 0 {
			continue
		}

		sorted := ohpm.TopByPopularity(members, len(members))
		total := 0
		for _, p := range sorted {
			total += p.Popularity
		}

		stats = append(stats, CategoryStats{
			Category:      cat,
			Count:         len(sorted),
			AvgPopularity: float64(total) / float64(len(sorted)),
			TopPackage:    sorted[0],
			Packages:      sorted,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	return Summary{
		Categories:    stats,
		Uncategorized: ohpm.TopByPopularity(uncategorized, len(uncategorized)),
		Categorized:   categorized,
	}
}

// Package search filters and summarizes persisted crawl snapshots.
package search

import (
	"sort"
	"strings"

	"github.com/ohpm-awesome/ohpm-crawler/pkg/ohpm"
)

// Query holds search filters. Zero values disable a filter.
type Query struct {
	// Text is matched case-insensitively against name and description.
	Text string

	// Org and License are exact matches, case-insensitive.
	Org     string
	License string

	MinLikes      int
	MinPopularity int

	// Limit caps the result count; <= 0 means no limit.
	Limit int
}

// Run filters packages by the query and returns matches sorted by
// popularity, most popular first.
func Run(pkgs []ohpm.Package, q Query) []ohpm.Package {
	text := strings.ToLower(q.Text)

	var results []ohpm.Package
	for _, pkg := range pkgs {
		if text != "" &&
			!strings.Contains(strings.ToLower(pkg.Name), text) &&
			!strings.Contains(strings.ToLower(pkg.Description), text) {
			continue
		}
		if q.Org != "" && !strings.EqualFold(pkg.Org, q.Org) {
			continue
		}
		if q.License != "" && !strings.EqualFold(pkg.License, q.License) {
			continue
		}
		if pkg.Likes < q.MinLikes {
			continue
		}
		if pkg.Popularity < q.MinPopularity {
			continue
		}
		results = append(results, pkg)
	}

	results = ohpm.TopByPopularity(results, len(results))
	if q.Limit > 0 && len(results) > q.Limit {
		results = results[:q.Limit]
	}
	return results
}

// Count pairs a field value with the number of packages carrying it.
type Count struct {
	Value string
	Count int
}

// Organizations lists every org alphabetically with its package count.
// Packages without an org are skipped.
func Organizations(pkgs []ohpm.Package) []Count {
	return countField(pkgs, func(p ohpm.Package) string { return p.Org }, func(a, b Count) bool {
		return a.Value < b.Value
	})
}

// Licenses lists every license with its package count, most common
// first. Packages without a license are skipped.
func Licenses(pkgs []ohpm.Package) []Count {
	return countField(pkgs, func(p ohpm.Package) string { return p.License }, func(a, b Count) bool {
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Value < b.Value
	})
}

func countField(pkgs []ohpm.Package, field func(ohpm.Package) string, less func(a, b Count) bool) []Count {
	counts := make(map[string]int)
	for _, pkg := range pkgs {
		if v := field(pkg); v != "" {
			counts[v]++
		}
	}

	out := make([]Count, 0, len(counts))
	for v, n := range counts {
		out = append(out, Count{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Stats is the aggregate view of a snapshot.
type Stats struct {
	Total           int
	TotalLikes      int
	AvgPopularity   float64
	WithDescription int
	UniqueOrgs      int
	UniqueLicenses  int
	MostPopular     ohpm.Package
	MostLiked       ohpm.Package
}

// Summarize computes snapshot-wide statistics.
func Summarize(pkgs []ohpm.Package) Stats {
	s := Stats{Total: len(pkgs)}
	if len(pkgs) == 0 {
		return s
	}

	orgs := make(map[string]bool)
	licenses := make(map[string]bool)
	popularitySum := 0
	s.MostPopular = pkgs[0]
	s.MostLiked = pkgs[0]

	for _, pkg := range pkgs {
		s.TotalLikes += pkg.Likes
		popularitySum += pkg.Popularity
		if pkg.Description != "" {
			s.WithDescription++
		}
		if pkg.Org != "" {
			orgs[pkg.Org] = true
		}
		if pkg.License != "" {
			licenses[pkg.License] = true
		}
		if pkg.Popularity > s.MostPopular.Popularity {
			s.MostPopular = pkg
		}
		if pkg.Likes > s.MostLiked.Likes {
			s.MostLiked = pkg
		}
	}

	s.AvgPopularity = float64(popularitySum) / float64(len(pkgs))
	s.UniqueOrgs = len(orgs)
	s.UniqueLicenses = len(licenses)
	return s
}

// Package ohpm defines the domain model for OHPM registry packages
// and crawl snapshots.
package ohpm

import (
	"net/url"
	"sort"
)

// Package is one normalized registry entry.
//
// JSON field names match the registry's raw payload so a persisted
// snapshot round-trips without a separate serialization schema.
type Package struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Org               string   `json:"org"`
	PackageType       string   `json:"packageType"`
	LatestVersion     string   `json:"latestVersion"`
	LatestPublishTime int64    `json:"latestPublishTime"` // epoch millis, 0 if unknown
	License           string   `json:"license"`
	AuthorName        string   `json:"authorName"`
	PublisherID       string   `json:"publisherId"`
	PublisherName     string   `json:"publisherName"`
	AuthorPicURL      string   `json:"authorPicUrl"`
	Likes             int      `json:"likes"`
	Points            int      `json:"points"`
	Popularity        int      `json:"popularity"`
	Keywords          []string `json:"keywords,omitempty"`
}

const detailBaseURL = "https://ohpm.openharmony.cn/#/cn/detail/"

// DetailURL returns the registry detail page URL for a package name.
// The full name is percent-encoded, including the org separator.
func DetailURL(name string) string {
	return detailBaseURL + url.QueryEscape(name)
}

// TopByPopularity returns the n most popular packages, most popular first.
// The input slice is not modified.
func TopByPopularity(pkgs []Package, n int) []Package {
	return topBy(pkgs, n, func(a, b Package) bool {
		return a.Popularity > b.Popularity
	})
}

// TopByRecency returns the n most recently published packages, newest first.
// The input slice is not modified.
func TopByRecency(pkgs []Package, n int) []Package {
	return topBy(pkgs, n, func(a, b Package) bool {
		return a.LatestPublishTime > b.LatestPublishTime
	})
}

func topBy(pkgs []Package, n int, less func(a, b Package) bool) []Package {
	sorted := make([]Package, len(pkgs))
	copy(sorted, pkgs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

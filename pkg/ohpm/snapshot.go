package ohpm

import "time"

// Snapshot is the complete result of one collection run.
// It is immutable once the crawl completes; the classifier and all
// downstream consumers read it without modification.
type Snapshot struct {
	CrawledAt     time.Time `json:"crawled_at"`
	TotalPackages int       `json:"total_packages"`
	Packages      []Package `json:"packages"`
}

// NewSnapshot builds a snapshot from collected packages, stamped with
// the current time.
func NewSnapshot(pkgs []Package) *Snapshot {
	return &Snapshot{
		CrawledAt:     time.Now().UTC(),
		TotalPackages: len(pkgs),
		Packages:      pkgs,
	}
}

// Package store persists crawl snapshots. The crawl writes one
// snapshot per run; the search tooling reads the latest one back.
package store

import (
	"context"
	"errors"

	"github.com/ohpm-awesome/ohpm-crawler/pkg/ohpm"
)

// ErrNoSnapshot indicates no snapshot has been persisted yet.
var ErrNoSnapshot = errors.New("no snapshot found")

// Store reads and writes crawl snapshots.
type Store interface {
	// Save persists the snapshot, replacing any previous one.
	Save(ctx context.Context, snap *ohpm.Snapshot) error

	// Load returns the latest snapshot, or ErrNoSnapshot.
	Load(ctx context.Context) (*ohpm.Snapshot, error)
}

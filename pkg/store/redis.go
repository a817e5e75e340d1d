package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"github.com/ohpm-awesome/ohpm-crawler/pkg/ohpm"
)

// snapshotKey holds the latest snapshot; each Save replaces it.
const snapshotKey = "ohpm:snapshot:latest"

// Prometheus metrics for snapshot store operations.
var (
	storeOpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ohpm_store_operations_total",
		Help: "Snapshot store operations by operation and result",
	}, []string{"operation", "result"})

	storeSnapshotBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ohpm_store_snapshot_bytes",
		Help: "Size of the most recently saved snapshot in bytes",
	})
)

// RedisStore persists snapshots in Redis so a long-lived search
// deployment can read them without sharing a filesystem with the
// crawl job.
type RedisStore struct {
	redis *redis.Client
}

// NewRedisStore creates a Redis-backed snapshot store.
func NewRedisStore(redisClient *redis.Client) *RedisStore {
	if redisClient == nil {
		panic("redis client cannot be nil")
	}
	return &RedisStore{redis: redisClient}
}

// Save stores the snapshot under a fixed key. Snapshots have no TTL:
// stale data is preferable to no data until the next crawl replaces it.
func (s *RedisStore) Save(ctx context.Context, snap *ohpm.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("snapshot cannot be nil")
	}

	data, err := json.Marshal(snap)
	if err != nil {
		storeOpsTotal.WithLabelValues("save", "error").Inc()
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := s.redis.Set(ctx, snapshotKey, data, 0).Err(); err != nil {
		storeOpsTotal.WithLabelValues("save", "error").Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	storeOpsTotal.WithLabelValues("save", "ok").Inc()
	storeSnapshotBytes.Set(float64(len(data)))
	return nil
}

// Load retrieves the latest snapshot.
func (s *RedisStore) Load(ctx context.Context) (*ohpm.Snapshot, error) {
	data, err := s.redis.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			storeOpsTotal.WithLabelValues("load", "miss").Inc()
			return nil, ErrNoSnapshot
		}
		storeOpsTotal.WithLabelValues("load", "error").Inc()
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var snap ohpm.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		storeOpsTotal.WithLabelValues("load", "error").Inc()
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	storeOpsTotal.WithLabelValues("load", "ok").Inc()
	return &snap, nil
}

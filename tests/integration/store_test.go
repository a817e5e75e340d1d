package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ohpm-awesome/ohpm-crawler/pkg/ohpm"
	"github.com/ohpm-awesome/ohpm-crawler/pkg/store"
)

// setupRedis starts a Redis container for integration testing.
func setupRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("Failed to start Redis container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: host + ":" + port.Port(),
	})

	cleanup := func() {
		redisClient.Close()
		container.Terminate(ctx)
	}

	return redisClient, cleanup
}

func TestRedisStore_RoundTrip(t *testing.T) {
	redisClient, cleanup := setupRedis(t)
	defer cleanup()

	ctx := context.Background()
	s := store.NewRedisStore(redisClient)

	snap := &ohpm.Snapshot{
		CrawledAt:     time.Now().UTC().Truncate(time.Second),
		TotalPackages: 2,
		Packages: []ohpm.Package{
			{Name: "@ohos/axios", Popularity: 35000, License: "MIT", Keywords: []string{"http"}},
			{Name: "@ohos/lottie", Popularity: 28000},
		},
	}

	if err := s.Save(ctx, snap); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.TotalPackages != 2 {
		t.Errorf("TotalPackages = %d, want 2", loaded.TotalPackages)
	}
	if loaded.Packages[0].Name != "@ohos/axios" || loaded.Packages[0].Keywords[0] != "http" {
		t.Errorf("Packages[0] = %+v, round-trip mismatch", loaded.Packages[0])
	}
	if !loaded.CrawledAt.Equal(snap.CrawledAt) {
		t.Errorf("CrawledAt = %v, want %v", loaded.CrawledAt, snap.CrawledAt)
	}
}

func TestRedisStore_LoadWithoutSnapshot(t *testing.T) {
	redisClient, cleanup := setupRedis(t)
	defer cleanup()

	_, err := store.NewRedisStore(redisClient).Load(context.Background())
	if !errors.Is(err, store.ErrNoSnapshot) {
		t.Errorf("Load() error = %v, want ErrNoSnapshot", err)
	}
}

func TestRedisStore_SaveReplacesPrevious(t *testing.T) {
	redisClient, cleanup := setupRedis(t)
	defer cleanup()

	ctx := context.Background()
	s := store.NewRedisStore(redisClient)

	first := &ohpm.Snapshot{TotalPackages: 1, Packages: []ohpm.Package{{Name: "old"}}}
	second := &ohpm.Snapshot{TotalPackages: 1, Packages: []ohpm.Package{{Name: "new"}}}

	if err := s.Save(ctx, first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := s.Save(ctx, second); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Packages[0].Name != "new" {
		t.Errorf("Packages[0].Name = %q, want %q", loaded.Packages[0].Name, "new")
	}
}

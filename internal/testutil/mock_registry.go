// Package testutil provides testing utilities for the OHPM crawler.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"
)

// MockRegistry is a configurable in-process OHPM search endpoint.
// It serves a fixed package listing split into pages, with per-page
// failure and delay injection.
type MockRegistry struct {
	server *httptest.Server

	mu       sync.RWMutex
	packages []map[string]any
	failures map[int]int // page -> HTTP status
	delays   map[int]time.Duration

	// Tracking
	RequestCount int
	PageRequests map[int]int
}

// NewMockRegistry creates a mock registry serving the given packages.
func NewMockRegistry(packages []map[string]any) *MockRegistry {
	mock := &MockRegistry{
		packages:     packages,
		failures:     make(map[int]int),
		delays:       make(map[int]time.Duration),
		PageRequests: make(map[int]int),
	}
	mock.server = httptest.NewServer(http.HandlerFunc(mock.handleSearch))
	return mock
}

// URL returns the mock search endpoint URL.
func (m *MockRegistry) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockRegistry) Close() {
	m.server.Close()
}

// FailPage makes a specific page respond with the given HTTP status.
func (m *MockRegistry) FailPage(page, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[page] = status
}

// DelayPage delays responses for a specific page.
func (m *MockRegistry) DelayPage(page int, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delays[page] = d
}

func (m *MockRegistry) handleSearch(w http.ResponseWriter, r *http.Request) {
	pageNum, _ := strconv.Atoi(r.URL.Query().Get("pageNum"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageNum < 1 {
		pageNum = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}

	m.mu.Lock()
	m.RequestCount++
	m.PageRequests[pageNum]++
	status, failed := m.failures[pageNum]
	delay := m.delays[pageNum]
	total := len(m.packages)
	start := (pageNum - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	rows := m.packages[start:end]
	m.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if failed {
		w.WriteHeader(status)
		return
	}

	pages := (total + pageSize - 1) / pageSize

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"body": map[string]any{
			"pages": pages,
			"total": total,
			"rows":  rows,
		},
	})
}

// GeneratePackages builds n distinct package rows for listing tests.
func GeneratePackages(n int) []map[string]any {
	pkgs := make([]map[string]any, n)
	for i := 0; i < n; i++ {
		pkgs[i] = map[string]any{
			"name":        "@mock/pkg-" + strconv.Itoa(i),
			"description": "mock package " + strconv.Itoa(i),
			"org":         "mock",
			"license":     "MIT",
			"likes":       i % 10,
			"popularity":  n - i,
		}
	}
	return pkgs
}

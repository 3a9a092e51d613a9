package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"dashboard-srv/internal/model"
	"dashboard-srv/internal/report"
	"dashboard-srv/internal/report/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	gets    int
	saves   int
	getErr  error
	saveErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func keyString(key repository.SummaryKey) string {
	s := key.Fingerprint + "|" + key.Kind
	for _, p := range key.Params {
		s += "|" + p
	}
	return s
}

func (c *memoryCache) GetSummary(ctx context.Context, key repository.SummaryKey) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.getErr != nil {
		return nil, c.getErr
	}
	data, ok := c.entries[keyString(key)]
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	return data, nil
}

func (c *memoryCache) SaveSummary(ctx context.Context, key repository.SummaryKey, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.saves++
	if c.saveErr != nil {
		return c.saveErr
	}
	c.entries[keyString(key)] = data
	return nil
}

func cacheFixtureLogs() []model.LogEntry {
	return []model.LogEntry{
		withPublication(entry("alice", model.ActivityProduction, model.StatusComp, day(6, 2), 600), "Pub A"),
		withPublication(entry("bob", model.ActivityQC, model.StatusComp, day(6, 3), 300), "Pub B"),
	}
}

func TestCachedServesSecondCallFromCache(t *testing.T) {
	cache := newMemoryCache()
	uc := newTestUseCaseWithCache(cacheFixtureLogs(), []model.ConfigEntry{{Publication: "Pub A", Grid: "G1", LatestStatus: model.StatusComp}}, nil, cache)
	ctx := context.Background()

	first, err := uc.PublicationSummary(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, cache.saves)

	second, err := uc.PublicationSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.saves)
	assert.Equal(t, 2, cache.gets)
	assert.Equal(t, first, second)
}

func TestCachedKeysByParams(t *testing.T) {
	cache := newMemoryCache()
	uc := newTestUseCaseWithCache(cacheFixtureLogs(), nil, nil, cache)
	ctx := context.Background()

	_, err := uc.UserPeriodSummary(ctx, report.UserPeriodInput{Bucket: report.BucketDay, Selections: []string{"2025-06-02"}})
	require.NoError(t, err)
	_, err = uc.UserPeriodSummary(ctx, report.UserPeriodInput{Bucket: report.BucketDay, Selections: []string{"2025-06-03"}})
	require.NoError(t, err)

	assert.Len(t, cache.entries, 2)
}

func TestCachedIgnoresCacheFailures(t *testing.T) {
	cache := newMemoryCache()
	cache.getErr = errors.New("connection refused")
	cache.saveErr = errors.New("connection refused")
	uc := newTestUseCaseWithCache(cacheFixtureLogs(), nil, nil, cache)

	rows, err := uc.SelectPublications(context.Background(), report.SelectPublicationsInput{All: true})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestCachedDiscardsUndecodableEntry(t *testing.T) {
	cache := newMemoryCache()
	uc := newTestUseCaseWithCache(cacheFixtureLogs(), nil, nil, cache)
	cache.entries[keyString(repository.SummaryKey{Fingerprint: "test-fingerprint", Kind: kindPublications})] = []byte("{not json")

	rows, err := uc.PublicationSummary(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, 1, cache.saves)
}

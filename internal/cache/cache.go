package cache

import (
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"quickcompare/internal/models"
)

// DefaultTTL bounds how long scrape results stay fresh.
const DefaultTTL = 5 * time.Minute

// Store is a TTL key-value cache shared by both tiers: per-platform scrape
// results and whole-query comparison results. Entries are immutable once
// written and expire after the TTL; concurrent reads and writes are safe
// with last-writer-wins semantics.
//
// It also counts hits and misses per platform so the status endpoint can
// report cache hit rates.
type Store struct {
	data *gocache.Cache

	mu     sync.Mutex
	hits   map[models.Platform]uint64
	misses map[models.Platform]uint64
}

// New creates a Store with the given entry TTL.
func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		data:   gocache.New(ttl, 2*ttl),
		hits:   make(map[models.Platform]uint64),
		misses: make(map[models.Platform]uint64),
	}
}

// NormalizeQuery lowercases and trims a search query so equivalent queries
// share cache entries.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Key builds the composite cache key for a platform tier. The whole-query
// tier uses models.WholeQuery as the platform.
func Key(platform models.Platform, query string, loc *models.Location) string {
	return string(platform) + "|" + NormalizeQuery(query) + "|" + loc.Discriminator()
}

// GetProducts returns the cached product list for one platform, if fresh.
func (s *Store) GetProducts(platform models.Platform, query string, loc *models.Location) ([]models.RawProduct, bool) {
	v, ok := s.lookup(platform, Key(platform, query, loc))
	if !ok {
		return nil, false
	}
	products, ok := v.([]models.RawProduct)
	return products, ok
}

// SetProducts caches one platform's successful result set.
func (s *Store) SetProducts(platform models.Platform, query string, loc *models.Location, products []models.RawProduct) {
	s.data.SetDefault(Key(platform, query, loc), products)
}

// GetComparison returns the cached whole-query result, if fresh.
func (s *Store) GetComparison(query string, loc *models.Location) (*models.ComparisonResult, bool) {
	v, ok := s.lookup(models.WholeQuery, Key(models.WholeQuery, query, loc))
	if !ok {
		return nil, false
	}
	result, ok := v.(*models.ComparisonResult)
	return result, ok
}

// SetComparison caches a whole-query comparison result.
func (s *Store) SetComparison(query string, loc *models.Location, result *models.ComparisonResult) {
	s.data.SetDefault(Key(models.WholeQuery, query, loc), result)
}

// HitRate returns the fraction of lookups served from cache for one
// platform, or 0 when the platform has never been looked up.
func (s *Store) HitRate(platform models.Platform) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := s.hits[platform] + s.misses[platform]
	if total == 0 {
		return 0
	}
	return float64(s.hits[platform]) / float64(total)
}

// Flush drops all entries and counters. Used by the manual refresh endpoint.
func (s *Store) Flush() {
	s.data.Flush()

	s.mu.Lock()
	s.hits = make(map[models.Platform]uint64)
	s.misses = make(map[models.Platform]uint64)
	s.mu.Unlock()
}

func (s *Store) lookup(platform models.Platform, key string) (interface{}, bool) {
	v, ok := s.data.Get(key)

	s.mu.Lock()
	if ok {
		s.hits[platform]++
	} else {
		s.misses[platform]++
	}
	s.mu.Unlock()

	return v, ok
}

package compare

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"quickcompare/internal/cache"
	"quickcompare/internal/config"
	"quickcompare/internal/models"
	"quickcompare/internal/scraper"
)

// Recorder is the external collaborator that persists comparison results.
// The engine only writes; it never reads history back.
type Recorder interface {
	Record(query string, loc *models.Location, result *models.ComparisonResult) error
}

// Service coordinates the fan-out across all registered adapters and
// produces a ComparisonResult even under partial failure. Purely a
// coordination layer: it holds no locks across the fan-out, and each
// adapter manages its own resource acquisition.
type Service struct {
	registry      *scraper.Registry
	cache         *cache.Store
	recorder      Recorder
	globalTimeout time.Duration
}

// NewService builds the comparison engine over a registry and cache store.
func NewService(registry *scraper.Registry, store *cache.Store, opts config.ScraperConfig) *Service {
	timeout := opts.GlobalTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Service{
		registry:      registry,
		cache:         store,
		globalTimeout: timeout,
	}
}

// SetRecorder attaches the optional history collaborator.
func (s *Service) SetRecorder(r Recorder) {
	s.recorder = r
}

// Compare is the primary entry point: fan out one query to every platform,
// collect settled and timed-out outcomes, and rank the merged products.
// The returned error covers invalid input only; source failures are
// reported inside the result.
func (s *Service) Compare(ctx context.Context, query string, loc *models.Location) (*models.ComparisonResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query must not be empty")
	}

	if cached, ok := s.cache.GetComparison(query, loc); ok {
		log.Printf("Comparison cache hit for %q", query)
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.globalTimeout)
	defer cancel()

	adapters := s.registry.All()
	outcomeCh := make(chan models.ScrapeOutcome, len(adapters))

	for _, a := range adapters {
		go func(a scraper.ScraperAdapter) {
			products, serr := a.Search(ctx, query, loc)
			outcomeCh <- models.ScrapeOutcome{
				Platform:  a.Platform(),
				Products:  products,
				Error:     serr,
				ScrapedAt: time.Now(),
			}
		}(a)
	}

	pending := make(map[models.Platform]bool, len(adapters))
	for _, a := range adapters {
		pending[a.Platform()] = true
	}

	outcomes := make([]models.ScrapeOutcome, 0, len(adapters))
	for len(pending) > 0 {
		select {
		case o := <-outcomeCh:
			delete(pending, o.Platform)
			outcomes = append(outcomes, o)
		case <-ctx.Done():
			// Hard cutoff: adapters still running are abandoned here. Their
			// goroutines keep going long enough to release their browsing
			// contexts and then park a result in the buffered channel.
			for platform := range pending {
				outcomes = append(outcomes, models.ScrapeOutcome{
					Platform:  platform,
					Error:     models.NewScrapeError(models.ErrCodeGlobalTimeout, "scrape still pending at global timeout", ctx.Err()),
					ScrapedAt: time.Now(),
				})
			}
			pending = nil
		}
	}

	result := Aggregate(query, outcomes, s.registry.Order())

	if result.Success {
		s.cache.SetComparison(query, loc, result)
	}

	if s.recorder != nil {
		if err := s.recorder.Record(query, loc, result); err != nil {
			log.Printf("Failed to record comparison history: %v", err)
		}
	}

	return result, nil
}

// ScrapeOne runs a single platform's adapter, for diagnostics and manual
// refresh. Unknown platforms and empty queries are input errors; scrape
// failures come back inside the outcome.
func (s *Service) ScrapeOne(ctx context.Context, platform models.Platform, query string, loc *models.Location) (models.ScrapeOutcome, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.ScrapeOutcome{}, fmt.Errorf("search query must not be empty")
	}

	adapter, ok := s.registry.Get(platform)
	if !ok {
		return models.ScrapeOutcome{}, fmt.Errorf("unknown platform: %s", platform)
	}

	ctx, cancel := context.WithTimeout(ctx, s.globalTimeout)
	defer cancel()

	products, serr := adapter.Search(ctx, query, loc)
	return models.ScrapeOutcome{
		Platform:  platform,
		Products:  products,
		Error:     serr,
		ScrapedAt: time.Now(),
	}, nil
}

// Status reports per-platform telemetry for the operational dashboard.
func (s *Service) Status() []models.PlatformStatus {
	adapters := s.registry.All()
	statuses := make([]models.PlatformStatus, 0, len(adapters))
	for _, a := range adapters {
		statuses = append(statuses, models.PlatformStatus{
			Platform:      a.Platform(),
			Name:          a.Info().Name,
			LastScrapedAt: a.LastScrapedAt(),
			CacheHitRate:  s.cache.HitRate(a.Platform()),
		})
	}
	return statuses
}

// Platforms lists the registered platforms' display metadata.
func (s *Service) Platforms() []models.PlatformInfo {
	adapters := s.registry.All()
	infos := make([]models.PlatformInfo, 0, len(adapters))
	for _, a := range adapters {
		infos = append(infos, a.Info())
	}
	return infos
}

package scraper

import (
	"context"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"quickcompare/internal/cache"
	"quickcompare/internal/config"
	"quickcompare/internal/models"
	"quickcompare/internal/session"
)

// ScraperAdapter is the capability each platform implements. Search never
// panics and never returns a raw error: every failure is a *ScrapeError
// value, and the caller degrades to an empty product list.
type ScraperAdapter interface {
	Platform() models.Platform
	Info() models.PlatformInfo
	Search(ctx context.Context, query string, loc *models.Location) ([]models.RawProduct, *models.ScrapeError)
	LastScrapedAt() time.Time
}

// locationFunc injects the caller's delivery location into a browsing
// context before navigation, in whatever form the platform expects.
type locationFunc func(c *session.Context, loc *models.Location) error

// siteConfig parameterizes the shared extraction engine for one platform.
type siteConfig struct {
	info               models.PlatformInfo
	searchURL          func(query string) string
	setLocation        locationFunc
	markup             float64
	containerSelectors []string
	nameSelectors      []string
	priceSelectors     []string
}

// siteAdapter runs the common search flow: cache check, context acquisition,
// navigation, selector fallback chain, heuristic scan, extraction.
type siteAdapter struct {
	cfg   siteConfig
	pool  *session.Pool
	cache *cache.Store
	opts  config.ScraperConfig

	lastScraped atomic.Value // time.Time
}

func newSiteAdapter(cfg siteConfig, pool *session.Pool, store *cache.Store, opts config.ScraperConfig) *siteAdapter {
	return &siteAdapter{cfg: cfg, pool: pool, cache: store, opts: opts}
}

func (a *siteAdapter) Platform() models.Platform {
	return a.cfg.info.Platform
}

func (a *siteAdapter) Info() models.PlatformInfo {
	return a.cfg.info
}

func (a *siteAdapter) LastScrapedAt() time.Time {
	if t, ok := a.lastScraped.Load().(time.Time); ok {
		return t
	}
	return time.Time{}
}

func (a *siteAdapter) Search(ctx context.Context, query string, loc *models.Location) ([]models.RawProduct, *models.ScrapeError) {
	platform := a.cfg.info.Platform

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.NewScrapeError(models.ErrCodeSelectorExhausted, "empty search query", nil)
	}

	if cached, ok := a.cache.GetProducts(platform, query, loc); ok {
		log.Printf("[%s] cache hit for %q", platform, query)
		return cached, nil
	}

	cctx, err := a.pool.Acquire(ctx)
	if err != nil {
		return nil, models.NewScrapeError(models.ErrCodeResourceAcquisition, "could not acquire browsing context", err)
	}
	defer cctx.Release()

	if loc != nil && a.cfg.setLocation != nil {
		if err := a.cfg.setLocation(cctx, loc); err != nil {
			// Location injection is best effort; the platform falls back
			// to its default delivery area.
			log.Printf("[%s] location injection skipped: %v", platform, err)
		}
	}

	url := a.cfg.searchURL(query)
	log.Printf("[%s] scraping %s", platform, url)

	if err := cctx.Navigate(ctx, url, a.opts.NavigationTimeout); err != nil {
		return nil, models.NewScrapeError(models.ErrCodeNavigationTimeout, "search page navigation failed", err)
	}

	// Let client-rendered content populate before querying the DOM.
	if err := sleepCtx(ctx, a.opts.SettleDelay); err != nil {
		return nil, models.NewScrapeError(models.ErrCodeNavigationTimeout, "cancelled while settling", err)
	}

	containers, confidence := a.findContainers(cctx)
	if len(containers) == 0 {
		return nil, models.NewScrapeError(models.ErrCodeSelectorExhausted, "no product containers matched any selector", nil)
	}

	products := a.extract(containers, confidence)
	if len(products) > a.opts.MaxProducts {
		products = products[:a.opts.MaxProducts]
	}

	a.lastScraped.Store(time.Now())
	a.cache.SetProducts(platform, query, loc, products)

	log.Printf("[%s] found %d products (%s)", platform, len(products), confidence)
	return products, nil
}

// pincodeCookie builds the location injector used by platforms that key
// their delivery area off a pincode cookie.
func pincodeCookie(domain string) locationFunc {
	return func(c *session.Context, loc *models.Location) error {
		if loc.Pincode == "" {
			return nil
		}
		return c.SetCookie("pincode", loc.Pincode, domain)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

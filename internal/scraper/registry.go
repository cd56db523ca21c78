package scraper

import (
	"quickcompare/internal/cache"
	"quickcompare/internal/config"
	"quickcompare/internal/models"
	"quickcompare/internal/session"
)

// Registry holds the registered adapters in a fixed order. Registration
// order doubles as the tie-break order for equal-cost quotes, so it must
// stay stable across the process lifetime.
type Registry struct {
	adapters []ScraperAdapter
	index    map[models.Platform]ScraperAdapter
}

// NewRegistry registers adapters in the given order.
func NewRegistry(adapters ...ScraperAdapter) *Registry {
	r := &Registry{
		adapters: adapters,
		index:    make(map[models.Platform]ScraperAdapter, len(adapters)),
	}
	for _, a := range adapters {
		r.index[a.Platform()] = a
	}
	return r
}

// DefaultRegistry wires all supported platforms against a shared pool and
// cache store.
func DefaultRegistry(pool *session.Pool, store *cache.Store, opts config.ScraperConfig) *Registry {
	return NewRegistry(
		NewZepto(pool, store, opts),
		NewBlinkit(pool, store, opts),
		NewSwiggy(pool, store, opts),
		NewBigBasket(pool, store, opts),
	)
}

// All returns the adapters in registration order.
func (r *Registry) All() []ScraperAdapter {
	return r.adapters
}

// Get looks up one adapter by platform.
func (r *Registry) Get(platform models.Platform) (ScraperAdapter, bool) {
	a, ok := r.index[platform]
	return a, ok
}

// Order returns the platform enumeration order used for rank tie-breaks.
func (r *Registry) Order() []models.Platform {
	order := make([]models.Platform, len(r.adapters))
	for i, a := range r.adapters {
		order[i] = a.Platform()
	}
	return order
}

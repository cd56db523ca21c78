package scraper

import (
	"net/url"

	"quickcompare/internal/cache"
	"quickcompare/internal/config"
	"quickcompare/internal/models"
	"quickcompare/internal/session"
)

// NewBigBasket creates the BigBasket adapter.
func NewBigBasket(pool *session.Pool, store *cache.Store, opts config.ScraperConfig) ScraperAdapter {
	return newSiteAdapter(siteConfig{
		info: models.PlatformInfo{
			Platform:     models.PlatformBigBasket,
			Name:         "BigBasket",
			Color:        "#8b5cf6",
			DeliveryTime: "30-45 mins",
			DeliveryFee:  0,
		},
		searchURL: func(query string) string {
			return "https://www.bigbasket.com/ps/?q=" + url.QueryEscape(query)
		},
		setLocation: pincodeCookie(".bigbasket.com"),
		markup:      1.20,
		containerSelectors: []string{
			`[data-testid="product-card"]`,
			".product-card",
			".ProductCard",
			`[class*="ProductCard"]`,
			`[class*="product-card"]`,
			`[class*="Product"]`,
			"article",
			`[class*="item"]`,
		},
		nameSelectors: []string{
			`[data-testid="product-name"]`,
			".product-name",
			".ProductName",
			`[class*="ProductName"]`,
			"h1", "h2", "h3", "h4",
			`[class*="title"]`,
		},
		priceSelectors: []string{
			`[data-testid="product-price"]`,
			".price",
			".Price",
			`[class*="Price"]`,
			`[class*="price"]`,
			`[class*="amount"]`,
		},
	}, pool, store, opts)
}

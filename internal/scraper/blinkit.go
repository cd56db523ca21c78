package scraper

import (
	"net/url"

	"quickcompare/internal/cache"
	"quickcompare/internal/config"
	"quickcompare/internal/models"
	"quickcompare/internal/session"
)

// NewBlinkit creates the Blinkit adapter. Same pincode-cookie location
// scheme as Zepto, different search endpoint and markup.
func NewBlinkit(pool *session.Pool, store *cache.Store, opts config.ScraperConfig) ScraperAdapter {
	return newSiteAdapter(siteConfig{
		info: models.PlatformInfo{
			Platform:     models.PlatformBlinkit,
			Name:         "Blinkit",
			Color:        "#f8cb46",
			DeliveryTime: "10-15 mins",
			DeliveryFee:  0,
		},
		searchURL: func(query string) string {
			return "https://blinkit.com/s/?q=" + url.QueryEscape(query)
		},
		setLocation: pincodeCookie(".blinkit.com"),
		markup:      1.10,
		containerSelectors: []string{
			`[data-testid="product-card"]`,
			".product-card",
			".ProductCard",
			`[class*="ProductCard"]`,
			`[class*="product-card"]`,
			`[class*="Product"]`,
			"article",
			`[class*="item"]`,
			`[class*="Item"]`,
		},
		nameSelectors: []string{
			`[data-testid="product-name"]`,
			".product-name",
			".ProductName",
			`[class*="ProductName"]`,
			`[class*="product-name"]`,
			"h1", "h2", "h3", "h4",
			`[class*="title"]`,
			`[class*="Title"]`,
		},
		priceSelectors: []string{
			`[data-testid="product-price"]`,
			".price",
			".Price",
			`[class*="Price"]`,
			`[class*="price"]`,
			`[class*="amount"]`,
			`[class*="Amount"]`,
		},
	}, pool, store, opts)
}

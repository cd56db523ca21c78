package scraper

import (
	"net/url"

	"quickcompare/internal/cache"
	"quickcompare/internal/config"
	"quickcompare/internal/models"
	"quickcompare/internal/session"
)

// NewZepto creates the Zepto adapter. Zepto keys its delivery area off a
// pincode cookie and renders search results client side.
func NewZepto(pool *session.Pool, store *cache.Store, opts config.ScraperConfig) ScraperAdapter {
	return newSiteAdapter(siteConfig{
		info: models.PlatformInfo{
			Platform:     models.PlatformZepto,
			Name:         "Zepto",
			Color:        "#3b82f6",
			DeliveryTime: "10-15 mins",
			DeliveryFee:  0,
		},
		searchURL: func(query string) string {
			return "https://www.zepto.com/search?q=" + url.QueryEscape(query)
		},
		setLocation: pincodeCookie(".zepto.com"),
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

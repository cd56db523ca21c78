package scraper

import (
	"net/url"
	"strconv"

	"quickcompare/internal/cache"
	"quickcompare/internal/config"
	"quickcompare/internal/models"
	"quickcompare/internal/session"
)

// NewSwiggy creates the Swiggy Instamart adapter. Swiggy resolves the
// delivery area from lat/lng cookies rather than a pincode.
func NewSwiggy(pool *session.Pool, store *cache.Store, opts config.ScraperConfig) ScraperAdapter {
	return newSiteAdapter(siteConfig{
		info: models.PlatformInfo{
			Platform:     models.PlatformSwiggy,
			Name:         "Swiggy Instamart",
			Color:        "#f59e0b",
			DeliveryTime: "20-30 mins",
			DeliveryFee:  0,
		},
		searchURL: func(query string) string {
			return "https://www.swiggy.com/instamart/search?q=" + url.QueryEscape(query)
		},
		setLocation: func(c *session.Context, loc *models.Location) error {
			if loc.Coordinates == nil {
				return nil
			}
			lat := strconv.FormatFloat(loc.Coordinates.Latitude, 'f', -1, 64)
			lng := strconv.FormatFloat(loc.Coordinates.Longitude, 'f', -1, 64)
			if err := c.SetCookie("lat", lat, ".swiggy.com"); err != nil {
				return err
			}
			return c.SetCookie("lng", lng, ".swiggy.com")
		},
		markup: 1.15,
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

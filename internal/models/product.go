package models

import (
	"strings"
	"time"
)

// Platform identifies a quick-commerce source site.
type Platform string

const (
	PlatformZepto     Platform = "zepto"
	PlatformBlinkit   Platform = "blinkit"
	PlatformSwiggy    Platform = "swiggy"
	PlatformBigBasket Platform = "bigbasket"
)

// WholeQuery is the pseudo-platform used for whole-query cache entries.
const WholeQuery Platform = "*"

// Confidence marks how a product was extracted from the page. Selector-matched
// results are trustworthy; heuristic-scan results may include page chrome.
type Confidence string

const (
	ConfidenceSelector  Confidence = "selector"
	ConfidenceHeuristic Confidence = "heuristic"
)

// Coordinates is a lat/lon pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location scopes a search to a delivery area. When absent, adapters fall
// back to each platform's default context.
type Location struct {
	City        string       `json:"city"`
	Pincode     string       `json:"pincode"`
	State       string       `json:"state,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Discriminator returns the string used to distinguish cache entries by
// location. Pincode wins over city; empty when no location is set.
func (l *Location) Discriminator() string {
	if l == nil {
		return ""
	}
	if l.Pincode != "" {
		return l.Pincode
	}
	return strings.ToLower(strings.TrimSpace(l.City))
}

// RawProduct is one extracted listing from a single platform. Ephemeral;
// created per scrape, never mutated, discarded after aggregation.
type RawProduct struct {
	SourceID      int        `json:"sourceId"`
	Name          string     `json:"name"`
	Price         float64    `json:"price"`
	OriginalPrice float64    `json:"originalPrice"`
	ImageURL      string     `json:"image,omitempty"`
	DeliveryTime  string     `json:"deliveryTime"`
	DeliveryFee   float64    `json:"deliveryFee"`
	Available     bool       `json:"availability"`
	Platform      Platform   `json:"platform"`
	Confidence    Confidence `json:"confidence"`
}

// IdentityKey groups equivalent products across platforms. Exact normalized
// name only; naming variants across sites do not merge.
func IdentityKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// PlatformQuote is a single platform's priced offer within a product group.
type PlatformQuote struct {
	Platform          Platform   `json:"platform"`
	Price             float64    `json:"price"`
	DeliveryTime      string     `json:"deliveryTime"`
	DeliveryFee       float64    `json:"deliveryFee"`
	TotalCost         float64    `json:"totalCost"`
	Rank              int        `json:"rank"`
	Savings           float64    `json:"savings"`
	SavingsPercentage float64    `json:"savingsPercentage"`
	Available         bool       `json:"availability"`
	Confidence        Confidence `json:"confidence"`
}

// AggregatedProduct is one cross-platform product group with ranked quotes.
type AggregatedProduct struct {
	IdentityKey string          `json:"identityKey"`
	DisplayName string          `json:"name"`
	Category    string          `json:"category"`
	Image       string          `json:"image,omitempty"`
	Quotes      []PlatformQuote `json:"quotes"`
	BestDeal    PlatformQuote   `json:"bestDeal"`
}

// ScrapeOutcome is the settled result of one adapter invocation.
type ScrapeOutcome struct {
	Platform  Platform     `json:"platform"`
	Products  []RawProduct `json:"products"`
	Error     *ScrapeError `json:"error,omitempty"`
	ScrapedAt time.Time    `json:"scrapedAt"`
}

// FailedPlatform names a platform that produced no usable outcome and why.
type FailedPlatform struct {
	Platform Platform `json:"platform"`
	Error    string   `json:"error"`
}

// BestDealSummary is the headline recommendation across all product groups.
type BestDealSummary struct {
	IdentityKey string   `json:"identityKey"`
	DisplayName string   `json:"name"`
	Platform    Platform `json:"platform"`
	TotalCost   float64  `json:"totalCost"`
	Savings     float64  `json:"savings"`
}

// ComparisonResult is the terminal artifact returned to callers and the
// whole-query cache value. Always a value, never an error: partial failure
// is reported through the platform manifests.
type ComparisonResult struct {
	Success            bool                `json:"success"`
	Query              string              `json:"query"`
	Products           []AggregatedProduct `json:"products"`
	BestDeal           *BestDealSummary    `json:"bestDeal,omitempty"`
	SucceededPlatforms []Platform          `json:"succeededPlatforms"`
	FailedPlatforms    []FailedPlatform    `json:"failedPlatforms"`
	TotalScraped       int                 `json:"totalScraped"`
	ScrapedAt          time.Time           `json:"scrapedAt"`
}

// PlatformInfo is static display metadata for one platform.
type PlatformInfo struct {
	Platform     Platform `json:"platform"`
	Name         string   `json:"name"`
	Color        string   `json:"color"`
	DeliveryTime string   `json:"deliveryTime"`
	DeliveryFee  float64  `json:"deliveryFee"`
}

// PlatformStatus is the telemetry shape read by the operational dashboard.
type PlatformStatus struct {
	Platform      Platform  `json:"platform"`
	Name          string    `json:"name"`
	LastScrapedAt time.Time `json:"lastScrapedAt"`
	CacheHitRate  float64   `json:"cacheHitRate"`
}

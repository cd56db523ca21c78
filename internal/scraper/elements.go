package scraper

import (
	"math"
	"time"

	"github.com/go-rod/rod"

	"quickcompare/internal/models"
	"quickcompare/internal/session"
)

// heuristicScanSelector covers the generic block elements scanned when the
// selector chain is exhausted.
const heuristicScanSelector = "div, article, section"

// childLookupTimeout bounds per-candidate selector probes so a missing
// child element fails fast instead of waiting for it to appear.
const childLookupTimeout = 500 * time.Millisecond

// findContainers walks the ordered selector fallback chain and stops at the
// first selector yielding at least one element. When the whole chain comes
// up empty it falls back to the heuristic scan.
func (a *siteAdapter) findContainers(c *session.Context) (rod.Elements, models.Confidence) {
	for _, selector := range a.cfg.containerSelectors {
		elements, err := c.Elements(selector)
		if err != nil || len(elements) == 0 {
			continue
		}
		return elements, models.ConfidenceSelector
	}

	// Last resort: scan generic blocks for anything that looks like a
	// priced listing. Imprecise, so results carry the heuristic marker.
	elements, err := c.Elements(heuristicScanSelector)
	if err != nil {
		return nil, models.ConfidenceHeuristic
	}

	var candidates rod.Elements
	for _, el := range elements {
		text, err := el.Text()
		if err != nil || !isHeuristicCandidate(text) {
			continue
		}
		candidates = append(candidates, el)
		if len(candidates) >= a.opts.MaxHeuristicCandidates {
			break
		}
	}
	return candidates, models.ConfidenceHeuristic
}

// extract builds RawProducts from candidate containers. Candidates lacking
// a usable name or a positive price are skipped, never fatal.
func (a *siteAdapter) extract(containers rod.Elements, confidence models.Confidence) []models.RawProduct {
	info := a.cfg.info
	products := make([]models.RawProduct, 0, len(containers))

	for i, el := range containers {
		text, err := el.Text()
		if err != nil {
			continue
		}

		name := a.extractName(el)
		if name == "" {
			name = fallbackName(text)
		}

		price := a.extractPrice(el)
		if price == 0 {
			price = findPriceInText(text)
		}

		if !validProduct(name, price) {
			continue
		}

		products = append(products, models.RawProduct{
			SourceID:      i,
			Name:          name,
			Price:         price,
			OriginalPrice: roundPrice(price * a.cfg.markup),
			ImageURL:      extractImage(el),
			DeliveryTime:  info.DeliveryTime,
			DeliveryFee:   info.DeliveryFee,
			Available:     true,
			Platform:      info.Platform,
			Confidence:    confidence,
		})

		if len(products) >= a.opts.MaxProducts {
			break
		}
	}

	return products
}

func (a *siteAdapter) extractName(el *rod.Element) string {
	for _, selector := range a.cfg.nameSelectors {
		child, err := el.Timeout(childLookupTimeout).Element(selector)
		if err != nil || child == nil {
			continue
		}
		text, err := child.Text()
		if err != nil {
			continue
		}
		if name := cleanName(text); name != "" {
			return name
		}
	}
	return ""
}

func (a *siteAdapter) extractPrice(el *rod.Element) float64 {
	for _, selector := range a.cfg.priceSelectors {
		child, err := el.Timeout(childLookupTimeout).Element(selector)
		if err != nil || child == nil {
			continue
		}
		text, err := child.Text()
		if err != nil {
			continue
		}
		if price := parsePrice(text); price > 0 {
			return price
		}
	}
	return 0
}

func extractImage(el *rod.Element) string {
	img, err := el.Timeout(childLookupTimeout).Element("img")
	if err != nil || img == nil {
		return ""
	}
	if src, err := img.Attribute("src"); err == nil && src != nil && *src != "" {
		return *src
	}
	if src, err := img.Attribute("data-src"); err == nil && src != nil && *src != "" {
		return *src
	}
	return ""
}

func roundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}

package scraper

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	minNameLength = 3
	maxNameLength = 100

	// Heuristic-scan candidates must look like a product blurb: some
	// currency marker plus a text length that rules out bare labels and
	// whole page sections.
	minCandidateTextLen = 10
	maxCandidateTextLen = 200
)

var (
	currencyPattern = regexp.MustCompile(`₹|Rs|INR|\d+\.\d{2}`)
	pricePattern    = regexp.MustCompile(`₹\s*(\d+(?:\.\d+)?)|Rs\.?\s*(\d+(?:\.\d+)?)|(\d+(?:\.\d+)?)\s*₹`)
	nonPriceChars   = regexp.MustCompile(`[^\d.]`)
	whitespace      = regexp.MustCompile(`\s+`)
)

// parsePrice extracts a positive price from text taken out of a dedicated
// price element, e.g. "₹45", "Rs. 120" or "MRP ₹1,299.00". Returns 0 when
// nothing parseable is present.
func parsePrice(text string) float64 {
	cleaned := nonPriceChars.ReplaceAllString(text, "")
	if cleaned == "" {
		return 0
	}
	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || price <= 0 {
		return 0
	}
	return price
}

// findPriceInText scans free-form container text for a currency-marked
// amount. Used when no price selector matched.
func findPriceInText(text string) float64 {
	matches := pricePattern.FindStringSubmatch(text)
	if matches == nil {
		return 0
	}
	for _, group := range matches[1:] {
		if group != "" {
			price, err := strconv.ParseFloat(group, 64)
			if err == nil && price > 0 {
				return price
			}
		}
	}
	return 0
}

// isHeuristicCandidate reports whether a generic block element's text looks
// like a product listing: a currency pattern and a plausible length.
func isHeuristicCandidate(text string) bool {
	if !currencyPattern.MatchString(text) {
		return false
	}
	n := len(text)
	return n >= minCandidateTextLen && n <= maxCandidateTextLen
}

// cleanName normalizes an extracted product name and caps its length.
func cleanName(name string) string {
	name = whitespace.ReplaceAllString(strings.TrimSpace(name), " ")
	if len(name) > maxNameLength {
		name = name[:maxNameLength]
	}
	return name
}

// fallbackName derives a name from raw container text when no name selector
// matched: the first comma segment of the first non-empty line.
func fallbackName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if idx := strings.Index(line, ","); idx > 0 {
			line = line[:idx]
		}
		return cleanName(line)
	}
	return ""
}

// validProduct is the acceptance gate for one extracted candidate.
func validProduct(name string, price float64) bool {
	return len(name) > minNameLength && price > 0
}

package scraper

import (
	"strings"
	"testing"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		name string
		text string
		want float64
	}{
		{"rupeeSymbol", "₹45", 45},
		{"rsPrefix", "Rs. 120", 120},
		{"withCommas", "MRP ₹1,299.00", 1299},
		{"decimal", "₹45.50", 45.5},
		{"plainNumber", "89", 89},
		{"empty", "", 0},
		{"noDigits", "Out of stock", 0},
		{"zero", "₹0", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parsePrice(tc.text); got != tc.want {
				t.Fatalf("parsePrice(%q) = %f, want %f", tc.text, got, tc.want)
			}
		})
	}
}

func TestFindPriceInText(t *testing.T) {
	cases := []struct {
		name string
		text string
		want float64
	}{
		{"rupeePrefix", "Amul Milk 1L ₹60 10 mins", 60},
		{"rsPrefix", "Fresh Bread Rs 40 delivery", 40},
		{"rsDotPrefix", "Paneer Rs. 95", 95},
		{"rupeeSuffix", "Eggs 6pc 55 ₹", 55},
		{"decimal", "Butter ₹58.50", 58.5},
		{"noCurrency", "Amul Milk 1L fresh", 0},
		{"empty", "", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := findPriceInText(tc.text); got != tc.want {
				t.Fatalf("findPriceInText(%q) = %f, want %f", tc.text, got, tc.want)
			}
		})
	}
}

func TestIsHeuristicCandidate(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"productBlurb", "Amul Milk 1L ₹60 10 mins", true},
		{"rsMarker", "Fresh Bread Rs 40 bakery", true},
		{"decimalMarker", "Item costs 45.99 today", true},
		{"noCurrency", "Just a navigation label here", false},
		{"tooShort", "₹60", false},
		{"tooLong", "₹60 " + strings.Repeat("x", 300), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isHeuristicCandidate(tc.text); got != tc.want {
				t.Fatalf("isHeuristicCandidate(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestCleanName(t *testing.T) {
	if got := cleanName("  Amul   Milk\n1L  "); got != "Amul Milk 1L" {
		t.Fatalf("cleanName collapsed whitespace wrong: %q", got)
	}

	long := strings.Repeat("a", 150)
	if got := cleanName(long); len(got) != 100 {
		t.Fatalf("cleanName should cap at 100 chars, got %d", len(got))
	}
}

func TestFallbackName(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"firstLine", "Amul Milk 1L\n₹60\n10 mins", "Amul Milk 1L"},
		{"commaSegment", "Amul Milk, Toned, 1L\n₹60", "Amul Milk"},
		{"skipsEmptyLines", "\n\n  Fresh Bread\n₹40", "Fresh Bread"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := fallbackName(tc.text); got != tc.want {
				t.Fatalf("fallbackName(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestValidProduct(t *testing.T) {
	cases := []struct {
		name    string
		product string
		price   float64
		want    bool
	}{
		{"valid", "Amul Milk 1L", 60, true},
		{"nameTooShort", "ab", 60, false},
		{"boundaryName", "abc", 60, false},
		{"zeroPrice", "Amul Milk 1L", 0, false},
		{"negativePrice", "Amul Milk 1L", -5, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := validProduct(tc.product, tc.price); got != tc.want {
				t.Fatalf("validProduct(%q, %f) = %v, want %v", tc.product, tc.price, got, tc.want)
			}
		})
	}
}

func TestRoundPrice(t *testing.T) {
	if got := roundPrice(45.678); got != 45.68 {
		t.Fatalf("roundPrice(45.678) = %f", got)
	}
	if got := roundPrice(45.0); got != 45.0 {
		t.Fatalf("roundPrice(45.0) = %f", got)
	}
}

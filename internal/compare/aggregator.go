package compare

import (
	"math"
	"sort"
	"time"

	"quickcompare/internal/models"
)

// group accumulates the raw products sharing one identity key.
type group struct {
	displayName string
	image       string
	products    []models.RawProduct
}

// Aggregate turns the settled outcomes of one fan-out into ranked product
// groups. Pure function of its input: no side effects, deterministic for a
// fixed platform order.
func Aggregate(query string, outcomes []models.ScrapeOutcome, order []models.Platform) *models.ComparisonResult {
	rankOf := make(map[models.Platform]int, len(order))
	for i, p := range order {
		rankOf[p] = i
	}

	// Outcomes arrive in completion order; normalize to registration order
	// so grouping and first-encountered tie-breaks are deterministic.
	sorted := make([]models.ScrapeOutcome, len(outcomes))
	copy(sorted, outcomes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return rankOf[sorted[i].Platform] < rankOf[sorted[j].Platform]
	})

	var (
		succeeded    []models.Platform
		failed       []models.FailedPlatform
		groups       = make(map[string]*group)
		keys         []string
		totalScraped int
	)

	for _, o := range sorted {
		if o.Error != nil {
			failed = append(failed, models.FailedPlatform{
				Platform: o.Platform,
				Error:    string(o.Error.Code),
			})
			continue
		}
		succeeded = append(succeeded, o.Platform)

		for _, p := range o.Products {
			totalScraped++
			key := models.IdentityKey(p.Name)
			g, ok := groups[key]
			if !ok {
				g = &group{displayName: p.Name, image: p.ImageURL}
				groups[key] = g
				keys = append(keys, key)
			}
			if g.image == "" {
				g.image = p.ImageURL
			}
			g.products = append(g.products, p)
		}
	}

	products := make([]models.AggregatedProduct, 0, len(keys))
	var best *models.BestDealSummary

	for _, key := range keys {
		agg := buildProduct(key, groups[key], rankOf)
		products = append(products, agg)

		// Headline recommendation: the group with the largest best-deal
		// savings; strict comparison keeps the first-encountered winner.
		if best == nil || agg.BestDeal.Savings > best.Savings {
			best = &models.BestDealSummary{
				IdentityKey: agg.IdentityKey,
				DisplayName: agg.DisplayName,
				Platform:    agg.BestDeal.Platform,
				TotalCost:   agg.BestDeal.TotalCost,
				Savings:     agg.BestDeal.Savings,
			}
		}
	}

	return &models.ComparisonResult{
		Success:            len(products) > 0,
		Query:              query,
		Products:           products,
		BestDeal:           best,
		SucceededPlatforms: succeeded,
		FailedPlatforms:    failed,
		TotalScraped:       totalScraped,
		ScrapedAt:          time.Now(),
	}
}

func buildProduct(key string, g *group, rankOf map[models.Platform]int) models.AggregatedProduct {
	quotes := make([]models.PlatformQuote, 0, len(g.products))
	seen := make(map[models.Platform]bool)

	for _, p := range g.products {
		// One quote per contributing platform; the platform's first
		// (best-placed) listing wins when it returns the name twice.
		if seen[p.Platform] {
			continue
		}
		seen[p.Platform] = true

		quotes = append(quotes, models.PlatformQuote{
			Platform:     p.Platform,
			Price:        p.Price,
			DeliveryTime: p.DeliveryTime,
			DeliveryFee:  p.DeliveryFee,
			TotalCost:    p.Price + p.DeliveryFee,
			Available:    p.Available,
			Confidence:   p.Confidence,
		})
	}

	sort.SliceStable(quotes, func(i, j int) bool {
		if quotes[i].TotalCost != quotes[j].TotalCost {
			return quotes[i].TotalCost < quotes[j].TotalCost
		}
		return rankOf[quotes[i].Platform] < rankOf[quotes[j].Platform]
	})

	maxTotal := quotes[len(quotes)-1].TotalCost
	for i := range quotes {
		quotes[i].Rank = i + 1
		quotes[i].Savings = maxTotal - quotes[i].TotalCost
		if maxTotal > 0 {
			quotes[i].SavingsPercentage = round2(quotes[i].Savings / maxTotal * 100)
		}
	}

	return models.AggregatedProduct{
		IdentityKey: key,
		DisplayName: g.displayName,
		Category:    "General",
		Image:       g.image,
		Quotes:      quotes,
		BestDeal:    quotes[0],
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package recommend

import (
	"sort"

	"github.com/werbeauty/beauty-shop-backend/internal/catalog"
)

// Default result sizes, matching the storefront's carousels.
const (
	DefaultLimit        = 8
	DefaultSimilarLimit = 4
)

// Scoring weights for personalized recommendations.
const (
	historyWeight  = 1
	favoriteWeight = 2
	cartWeight     = 3

	categoryFactor   = 10.0
	ratingFactor     = 5.0
	popularityFactor = 0.5
	badgeBonus       = 8.0
)

// complements maps a category to the categories considered to go with it.
var complements = map[string][]string{
	"Lips":       {"Eyes", "Face"},
	"Eyes":       {"Lips", "Face"},
	"Face":       {"Lips", "Eyes", "Skincare"},
	"Skincare":   {"Face", "Self-Care"},
	"Self-Care":  {"Skincare", "Perfumes"},
	"Perfumes":   {"Self-Care"},
	"Hair-Care":  {"Self-Care"},
	"Makeup":     {"Skincare", "Perfumes"},
	"Beard-Care": {"Grooming", "Perfumes"},
	"Grooming":   {"Beard-Care", "Self-Care"},
}

// Context is the per-user input to the scorer: observed behavior plus the
// ids that must never be recommended back (already in cart or favorites).
type Context struct {
	// ViewHistory holds the category tags of recently viewed products,
	// oldest first.
	ViewHistory []string
	FavoriteIDs []string
	CartIDs     []string
}

// Engine scores candidates against the full catalog. It is stateless given
// its inputs; identical inputs always produce the identical ranking.
type Engine struct {
	byID map[string]catalog.Product
}

func NewEngine(all []catalog.Product) *Engine {
	byID := make(map[string]catalog.Product, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}
	return &Engine{byID: byID}
}

// Recommend ranks the candidate products by a weighted linear score of
// category affinity, rating, popularity and badge presence. Products already
// in the user's cart or favorites are excluded. Ties keep catalog order.
func (e *Engine) Recommend(candidates []catalog.Product, ctx Context, limit int) []catalog.Product {
	if limit <= 0 {
		limit = DefaultLimit
	}

	weights := e.categoryWeights(ctx)

	exclude := make(map[string]bool, len(ctx.CartIDs)+len(ctx.FavoriteIDs))
	for _, id := range ctx.CartIDs {
		exclude[id] = true
	}
	for _, id := range ctx.FavoriteIDs {
		exclude[id] = true
	}

	scored := make([]catalog.Product, 0, len(candidates))
	scores := make(map[string]float64, len(candidates))
	for _, p := range candidates {
		if exclude[p.ID] {
			continue
		}
		score := float64(weights[p.Category]) * categoryFactor
		score += p.Rating * ratingFactor
		score += float64(p.Popularity) * popularityFactor
		if p.Badge != "" {
			score += badgeBonus
		}
		scored = append(scored, p)
		scores[p.ID] = score
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scores[scored[i].ID] > scores[scored[j].ID]
	})
	return top(scored, limit)
}

// categoryWeights accumulates affinity per category: +1 per view-history
// entry, +2 per favorited product, +3 per cart item. Favorite and cart ids
// are resolved against the catalog; unknown ids contribute nothing.
func (e *Engine) categoryWeights(ctx Context) map[string]int {
	weights := make(map[string]int)
	for _, category := range ctx.ViewHistory {
		weights[category] += historyWeight
	}
	for _, id := range ctx.FavoriteIDs {
		if p, ok := e.byID[id]; ok {
			weights[p.Category] += favoriteWeight
		}
	}
	for _, id := range ctx.CartIDs {
		if p, ok := e.byID[id]; ok {
			weights[p.Category] += cartWeight
		}
	}
	return weights
}

// Similar ranks every other product by closeness to a reference product:
// same category, nearby price (two mutually exclusive bands), nearby rating.
// Only products with a positive score are returned. An unknown reference id
// yields an empty list.
func (e *Engine) Similar(all []catalog.Product, productID string, limit int) []catalog.Product {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}
	reference, ok := e.byID[productID]
	if !ok {
		return []catalog.Product{}
	}

	scored := make([]catalog.Product, 0, len(all))
	scores := make(map[string]float64, len(all))
	for _, p := range all {
		if p.ID == productID {
			continue
		}
		score := 0.0
		if p.Category == reference.Category {
			score += 50
		}
		priceDiff := p.Price - reference.Price
		if priceDiff < 0 {
			priceDiff = -priceDiff
		}
		if priceDiff < 20 {
			score += 30
		} else if priceDiff < 50 {
			score += 15
		}
		ratingDiff := p.Rating - reference.Rating
		if ratingDiff < 0 {
			ratingDiff = -ratingDiff
		}
		if ratingDiff < 0.5 {
			score += 10
		}
		if score > 0 {
			scored = append(scored, p)
			scores[p.ID] = score
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scores[scored[i].ID] > scores[scored[j].ID]
	})
	return top(scored, limit)
}

// AlsoBought returns products from the categories complementary to the
// reference product's category, best rated first. An unknown reference id or
// a category without an adjacency entry yields an empty list.
func (e *Engine) AlsoBought(all []catalog.Product, productID string, limit int) []catalog.Product {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}
	reference, ok := e.byID[productID]
	if !ok {
		return []catalog.Product{}
	}

	wanted := make(map[string]bool)
	for _, category := range complements[reference.Category] {
		wanted[category] = true
	}

	results := []catalog.Product{}
	for _, p := range all {
		if p.ID == productID {
			continue
		}
		if wanted[p.Category] {
			results = append(results, p)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Rating > results[j].Rating
	})
	return top(results, limit)
}

// Trending sorts products purely by popularity, most popular first. Ties
// keep catalog order.
func Trending(products []catalog.Product, limit int) []catalog.Product {
	if limit <= 0 {
		limit = DefaultLimit
	}
	sorted := make([]catalog.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Popularity > sorted[j].Popularity
	})
	return top(sorted, limit)
}

func top(products []catalog.Product, limit int) []catalog.Product {
	if len(products) > limit {
		products = products[:limit]
	}
	return products
}

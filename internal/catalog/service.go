package catalog

import (
	"sort"
	"strings"
)

// Filters describes the browse criteria accepted by the product listing.
// Zero values mean "no restriction".
type Filters struct {
	Category string
	MinPrice float64
	MaxPrice float64
	SkinType string
	HairType string
	SortBy   string
	Query    string
}

// Sort keys accepted by Filters.SortBy.
const (
	SortPriceLow   = "price_low"
	SortPriceHigh  = "price_high"
	SortRating     = "rating"
	SortPopularity = "popularity"
	SortNewest     = "newest"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(segment string) ([]Product, error) {
	return s.repo.List(segment)
}

func (s *Service) ListAll() []Product {
	return s.repo.ListAll()
}

func (s *Service) GetByID(id string) (Product, error) {
	return s.repo.GetByID(id)
}

// Browse lists one segment, then applies search and filters in that order.
func (s *Service) Browse(segment string, f Filters) ([]Product, error) {
	products, err := s.repo.List(segment)
	if err != nil {
		return nil, err
	}
	if f.Query != "" {
		products = Search(products, f.Query)
	}
	return Filter(products, f), nil
}

// Categories returns the distinct categories of a segment in catalog order.
func (s *Service) Categories(segment string) ([]string, error) {
	products, err := s.repo.List(segment)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	out := []string{}
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out, nil
}

// Filter narrows products by category, price range, skin/hair type and then
// sorts them. Products without an explicit skin/hair type restriction
// ("All Skin Types" / "All Hair Types") always pass the type filters.
func Filter(products []Product, f Filters) []Product {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && !strings.Contains(strings.ToLower(p.Category), strings.ToLower(f.Category)) {
			continue
		}
		if f.MinPrice > 0 && p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		if f.SkinType != "" && f.SkinType != "All Skin Types" &&
			p.SkinType != f.SkinType && p.SkinType != "All Skin Types" {
			continue
		}
		if f.HairType != "" && f.HairType != "All Hair Types" &&
			p.HairType != f.HairType && p.HairType != "All Hair Types" {
			continue
		}
		filtered = append(filtered, p)
	}

	switch f.SortBy {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Rating > filtered[j].Rating })
	case SortNewest:
		// ids are sequential within a segment, so the highest id is the newest
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].ID > filtered[j].ID })
	case SortPopularity:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Popularity > filtered[j].Popularity })
	}
	return filtered
}

// Search matches the query as a case-insensitive substring of name,
// description or category. An empty query matches everything.
func Search(products []Product, query string) []Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products
	}

	results := []Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) ||
			strings.Contains(strings.ToLower(p.Category), query) {
			results = append(results, p)
		}
	}
	return results
}

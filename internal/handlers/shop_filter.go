package handlers

import (
	"sort"
	"strings"

	"backend/internal/models"
)

const (
	SortFeatured  = "featured"
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

// ShopFilter holds the storefront's filter and sort state. The zero value
// matches every product and keeps the default featured-first order.
type ShopFilter struct {
	Search      string
	Category    string
	MinPrice    int64
	MaxPrice    int64 // <= 0 means no upper bound
	InStockOnly bool
	Sort        string
}

// filterAndSortProducts applies all filters conjunctively, then sorts. The
// input slice is never mutated; ties keep their relative order.
func filterAndSortProducts(products []models.Product, filter ShopFilter) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesFilter(p, filter) {
			filtered = append(filtered, p)
		}
	}

	switch filter.Sort {
	case SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].IsNew && !filtered[j].IsNew
		})
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	case SortFeatured, "":
		fallthrough
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].IsFeatured && !filtered[j].IsFeatured
		})
	}

	return filtered
}

func matchesFilter(p models.Product, filter ShopFilter) bool {
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		if !strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) &&
			!strings.Contains(strings.ToLower(p.Category), search) {
			return false
		}
	}

	if filter.Category != "" && filter.Category != "all" && p.Category != filter.Category {
		return false
	}

	if p.Price < filter.MinPrice {
		return false
	}
	if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
		return false
	}

	if filter.InStockOnly && !p.InStock {
		return false
	}

	return true
}

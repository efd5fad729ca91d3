package handlers

import (
	"testing"

	"backend/internal/models"
)

func namedProduct(name string, price int64, category string, inStock bool) models.Product {
	return models.Product{
		Name:     name,
		Price:    price,
		Category: category,
		InStock:  inStock,
	}
}

func names(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestFilterComposesConjunctively(t *testing.T) {
	products := []models.Product{
		namedProduct("Neon Lamp", 500, "lamps", true),
		namedProduct("Desk Lamp", 700, "lamps", false),
		namedProduct("Pop Figure", 900, "figures", true),
	}

	got := filterAndSortProducts(products, ShopFilter{Category: "lamps", InStockOnly: true})

	if len(got) != 1 || got[0].Name != "Neon Lamp" {
		t.Fatalf("expected only the in-stock lamp, got %v", names(got))
	}
}

func TestFilterResultIndependentOfInputOrder(t *testing.T) {
	forward := []models.Product{
		namedProduct("Neon Lamp", 500, "lamps", true),
		namedProduct("Desk Lamp", 700, "lamps", false),
		namedProduct("Pop Figure", 900, "figures", true),
	}
	reversed := []models.Product{forward[2], forward[1], forward[0]}

	filter := ShopFilter{Category: "lamps", InStockOnly: true}
	a := filterAndSortProducts(forward, filter)
	b := filterAndSortProducts(reversed, filter)

	if len(a) != len(b) || a[0].Name != b[0].Name {
		t.Fatalf("result set changed with input order: %v vs %v", names(a), names(b))
	}
}

func TestSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	products := []models.Product{
		{Name: "Batman Figure", Category: "figures"},
		{Name: "Plain Mug", Description: "A BATMAN themed mug", Category: "mugs"},
		{Name: "Lamp", Category: "batman-collection"},
		{Name: "Unrelated", Category: "posters"},
	}

	got := filterAndSortProducts(products, ShopFilter{Search: "batman"})

	if len(got) != 3 {
		t.Fatalf("expected matches on name, description and category, got %v", names(got))
	}
}

func TestEmptySearchIsNoOp(t *testing.T) {
	products := []models.Product{
		namedProduct("A", 100, "lamps", true),
		namedProduct("B", 200, "mugs", true),
	}

	got := filterAndSortProducts(products, ShopFilter{Search: "   "})

	if len(got) != 2 {
		t.Fatalf("expected all products, got %v", names(got))
	}
}

func TestCategorySentinelAllBypassesFilter(t *testing.T) {
	products := []models.Product{
		namedProduct("A", 100, "lamps", true),
		namedProduct("B", 200, "mugs", true),
	}

	got := filterAndSortProducts(products, ShopFilter{Category: "all"})

	if len(got) != 2 {
		t.Fatalf("expected all products, got %v", names(got))
	}
}

func TestPriceRangeIsInclusive(t *testing.T) {
	products := []models.Product{
		namedProduct("Low", 100, "lamps", true),
		namedProduct("Mid", 500, "lamps", true),
		namedProduct("High", 900, "lamps", true),
	}

	got := filterAndSortProducts(products, ShopFilter{MinPrice: 100, MaxPrice: 500})

	if len(got) != 2 || got[0].Name != "Low" || got[1].Name != "Mid" {
		t.Fatalf("expected inclusive [100,500], got %v", names(got))
	}
}

func TestFeaturedSortIsStablePartition(t *testing.T) {
	products := []models.Product{
		{Name: "A", IsFeatured: false},
		{Name: "B", IsFeatured: true},
		{Name: "C", IsFeatured: false},
	}

	got := filterAndSortProducts(products, ShopFilter{Sort: SortFeatured})

	want := []string{"B", "A", "C"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("expected %v, got %v", want, names(got))
		}
	}
}

func TestNewestSortIsStablePartition(t *testing.T) {
	products := []models.Product{
		{Name: "A", IsNew: false},
		{Name: "B", IsNew: true},
		{Name: "C", IsNew: false},
		{Name: "D", IsNew: true},
	}

	got := filterAndSortProducts(products, ShopFilter{Sort: SortNewest})

	want := []string{"B", "D", "A", "C"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("expected %v, got %v", want, names(got))
		}
	}
}

func TestPriceSortOrders(t *testing.T) {
	products := []models.Product{
		namedProduct("Mid", 500, "lamps", true),
		namedProduct("Low", 100, "lamps", true),
		namedProduct("High", 900, "lamps", true),
	}

	asc := filterAndSortProducts(products, ShopFilter{Sort: SortPriceLow})
	if asc[0].Name != "Low" || asc[2].Name != "High" {
		t.Fatalf("expected ascending prices, got %v", names(asc))
	}

	desc := filterAndSortProducts(products, ShopFilter{Sort: SortPriceHigh})
	if desc[0].Name != "High" || desc[2].Name != "Low" {
		t.Fatalf("expected descending prices, got %v", names(desc))
	}
}

func TestRatingSortDescending(t *testing.T) {
	products := []models.Product{
		{Name: "A", Rating: 3.5},
		{Name: "B", Rating: 4.8},
		{Name: "C", Rating: 4.1},
	}

	got := filterAndSortProducts(products, ShopFilter{Sort: SortRating})

	if got[0].Name != "B" || got[1].Name != "C" || got[2].Name != "A" {
		t.Fatalf("expected rating descending, got %v", names(got))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	products := []models.Product{
		namedProduct("Mid", 500, "lamps", true),
		namedProduct("Low", 100, "lamps", true),
	}

	_ = filterAndSortProducts(products, ShopFilter{Sort: SortPriceLow})

	if products[0].Name != "Mid" {
		t.Fatalf("input slice was reordered: %v", names(products))
	}
}

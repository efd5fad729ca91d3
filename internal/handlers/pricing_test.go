package handlers

import (
	"testing"

	"backend/internal/models"
)

func TestCalculateDiscount(t *testing.T) {
	if got := calculateDiscount(1000, 750); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
	if got := calculateDiscount(300, 200); got != 33 {
		t.Fatalf("expected rounded 33, got %d", got)
	}
	if got := calculateDiscount(0, 100); got != 0 {
		t.Fatalf("expected 0 for non-positive original price, got %d", got)
	}
}

func TestShippingBoundaryAtThreshold(t *testing.T) {
	if got := shippingCost(2000); got != 0 {
		t.Fatalf("expected free shipping at exactly 2000, got %d", got)
	}
	if got := shippingCost(1999); got != flatShippingFee {
		t.Fatalf("expected flat fee below threshold, got %d", got)
	}
	if got := shippingCost(5000); got != 0 {
		t.Fatalf("expected free shipping above threshold, got %d", got)
	}
}

func TestWithDiscountOnlyWhenOriginalExceedsPrice(t *testing.T) {
	discounted := withDiscount(models.Product{Price: 750, OriginalPrice: 1000})
	if discounted.Discount != 25 {
		t.Fatalf("expected 25%% discount, got %d", discounted.Discount)
	}

	plain := withDiscount(models.Product{Price: 750})
	if plain.Discount != 0 {
		t.Fatalf("expected no discount without original_price, got %d", plain.Discount)
	}

	inverted := withDiscount(models.Product{Price: 1000, OriginalPrice: 750})
	if inverted.Discount != 0 {
		t.Fatalf("expected no discount when original_price < price, got %d", inverted.Discount)
	}
}

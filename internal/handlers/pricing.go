package handlers

import (
	"math"

	"backend/internal/models"
)

const (
	freeShippingThreshold = 2000
	flatShippingFee       = 99
)

// calculateDiscount returns the rounded percentage saved against the
// original price, e.g. calculateDiscount(1000, 750) == 25.
func calculateDiscount(originalPrice, currentPrice int64) int {
	if originalPrice <= 0 {
		return 0
	}
	return int(math.Round(float64(originalPrice-currentPrice) / float64(originalPrice) * 100))
}

// shippingCost is free at and above the threshold, a flat surcharge below.
func shippingCost(totalPrice int64) int64 {
	if totalPrice >= freeShippingThreshold {
		return 0
	}
	return flatShippingFee
}

// withDiscount fills the derived discount percentage for display. The data
// model never enforces original_price > price, so anything else yields 0.
func withDiscount(p models.Product) models.Product {
	if p.OriginalPrice > p.Price && p.Price > 0 {
		p.Discount = calculateDiscount(p.OriginalPrice, p.Price)
	}
	return p
}

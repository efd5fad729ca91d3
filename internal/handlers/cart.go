package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/cart"
)

const (
	cartCookieName   = "stacko_cart"
	cartCookieMaxAge = 365 * 24 * 60 * 60
)

type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// cartView is the response shape for every cart endpoint: the snapshot plus
// totals derived on each read.
func cartView(c *cart.Cart) gin.H {
	totalPrice := c.TotalPrice()
	shipping := shippingCost(totalPrice)

	return gin.H{
		"id":          c.ID.Hex(),
		"items":       c.Items,
		"total_items": c.TotalItems(),
		"total_price": totalPrice,
		"shipping":    shipping,
		"order_total": totalPrice + shipping,
		"updated_at":  c.UpdatedAt,
	}
}

// loadCart resolves the cart behind the request's cookie, handing back a
// fresh cart (and setting the cookie) when none exists yet.
func loadCart(ctx context.Context, c *gin.Context, store cart.Store) *cart.Cart {
	raw, err := c.Cookie(cartCookieName)
	if err == nil {
		if id, parseErr := primitive.ObjectIDFromHex(raw); parseErr == nil {
			return store.Load(ctx, id)
		}
	}

	fresh := cart.New()
	c.SetCookie(cartCookieName, fresh.ID.Hex(), cartCookieMaxAge, "/", "", false, true)
	return fresh
}

/*
GET /cart
*/
func GetCart(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /cart"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		current := loadCart(ctx, c, store)
		c.JSON(http.StatusOK, cartView(current))
	}
}

/*
POST /cart/items
- Adding an already-present product increments its quantity
*/
func AddCartItem(store cart.Store, products ProductFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/items"
		defer handlePanic(c, route)

		var req CartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		productID, err := primitive.ObjectIDFromHex(req.ProductID)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid product_id")
			return
		}

		quantity := req.Quantity
		if quantity < 1 {
			quantity = 1
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		product, err := products.FindProduct(ctx, productID)
		if err != nil {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		current := loadCart(ctx, c, store)
		current.AddItem(product, quantity)

		if err := store.Save(ctx, current); err != nil {
			log.Printf("[%s] save failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "failed to save cart")
			return
		}

		c.JSON(http.StatusOK, cartView(current))
	}
}

/*
PUT /cart/items/:productId
- Quantity below 1 removes the entry
*/
func UpdateCartItem(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /cart/items/:productId"
		defer handlePanic(c, route)

		productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid product id")
			return
		}

		var req struct {
			Quantity int `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		current := loadCart(ctx, c, store)
		current.UpdateQuantity(productID, req.Quantity)

		if err := store.Save(ctx, current); err != nil {
			log.Printf("[%s] save failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "failed to save cart")
			return
		}

		c.JSON(http.StatusOK, cartView(current))
	}
}

/*
DELETE /cart/items/:productId
*/
func RemoveCartItem(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart/items/:productId"
		defer handlePanic(c, route)

		productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid product id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		current := loadCart(ctx, c, store)
		current.RemoveItem(productID)

		if err := store.Save(ctx, current); err != nil {
			log.Printf("[%s] save failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "failed to save cart")
			return
		}

		c.JSON(http.StatusOK, cartView(current))
	}
}

/*
DELETE /cart
- Drops the stored snapshot; the cookie keeps addressing the same id, which
  loads as an empty cart from then on
*/
func ClearCart(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		current := loadCart(ctx, c, store)
		current.Clear()

		if err := store.Delete(ctx, current.ID); err != nil {
			log.Printf("[%s] delete failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "failed to clear cart")
			return
		}

		c.JSON(http.StatusOK, cartView(current))
	}
}

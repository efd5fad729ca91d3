package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/models"
)

// buildOrderLink builds the WhatsApp deep link the storefront opens for an
// order inquiry. The navigation itself happens client-side.
func buildOrderLink(number string, product models.Product) string {
	message := fmt.Sprintf(
		"Hi! I'm interested in buying *%s* (Rs. %d). Please let me know the availability and next steps.",
		product.Name,
		product.Price,
	)
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}

/*
GET /products/:id/order-link
*/
func GetOrderLink(db *mongo.Database, whatsAppNumber string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var product models.Product
		err = db.Collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&product)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"url":   buildOrderLink(whatsAppNumber, product),
			"name":  product.Name,
			"image": product.ImageURL.First(),
		})
	}
}

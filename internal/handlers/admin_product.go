package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

/* =======================
   REQUEST MODELS
======================= */

type ProductCreateRequest struct {
	Name          string           `json:"name" binding:"required"`
	Description   string           `json:"description"`
	Price         int64            `json:"price"`
	OriginalPrice int64            `json:"original_price"`
	Category      string           `json:"category" binding:"required"`
	ImageURL      models.ImageList `json:"image_url"`
	VideoURL      string           `json:"video_url"`
	InStock       *bool            `json:"in_stock"`
	IsNew         bool             `json:"is_new"`
	IsFeatured    bool             `json:"is_featured"`
}

type ProductUpdateRequest struct {
	Name          *string           `json:"name"`
	Description   *string           `json:"description"`
	Price         *int64            `json:"price"`
	OriginalPrice *int64            `json:"original_price"`
	Category      *string           `json:"category"`
	ImageURL      *models.ImageList `json:"image_url"`
	VideoURL      *string           `json:"video_url"`
	InStock       *bool             `json:"in_stock"`
	IsNew         *bool             `json:"is_new"`
	IsFeatured    *bool             `json:"is_featured"`
	Rating        *float64          `json:"rating"`
	Reviews       *int              `json:"reviews"`
}

/* =======================
   HELPERS
======================= */

func categoryExists(ctx context.Context, db *mongo.Database, slug string) (bool, error) {
	count, err := db.Collection("categories").CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

/* =======================
   GET (ADMIN) - LIST
======================= */

func GetAllProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, err := parsePaginationParams(
			c.Query("page"),
			c.Query("limit"),
		)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		filter := bson.M{}

		if category := strings.TrimSpace(c.Query("category")); category != "" {
			filter["category"] = category
		}

		if search := strings.TrimSpace(c.Query("search")); search != "" {
			filter["$or"] = []bson.M{
				{"name": bson.M{"$regex": search, "$options": "i"}},
				{"description": bson.M{"$regex": search, "$options": "i"}},
				{"category": bson.M{"$regex": search, "$options": "i"}},
			}
		}

		ctx := context.Background()

		total, err := db.Collection("products").CountDocuments(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		totalPages := int64(0)
		if total > 0 {
			totalPages = (total + limit - 1) / limit
		}

		opts := options.Find().
			SetSkip((page - 1) * limit).
			SetLimit(limit).
			SetSort(bson.D{{Key: "created_at", Value: -1}})

		products, err := findProducts(ctx, db, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data": products,
			"pagination": gin.H{
				"page":       page,
				"limit":      limit,
				"total":      total,
				"totalPages": totalPages,
			},
		})
	}
}

/* =======================
   CREATE
======================= */

func CreateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}

		if req.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
			return
		}

		category := strings.TrimSpace(req.Category)
		if category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category required"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		known, err := categoryExists(ctx, db, category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if !known {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + category})
			return
		}

		inStock := true
		if req.InStock != nil {
			inStock = *req.InStock
		}

		images := req.ImageURL
		if images == nil {
			images = models.ImageList{}
		}

		product := models.Product{
			Name:          name,
			Description:   strings.TrimSpace(req.Description),
			Price:         req.Price,
			OriginalPrice: req.OriginalPrice,
			Category:      category,
			ImageURL:      images,
			VideoURL:      strings.TrimSpace(req.VideoURL),
			Emoji:         "📦",
			InStock:       inStock,
			IsNew:         req.IsNew,
			IsFeatured:    req.IsFeatured,
			Rating:        5.0,
			Reviews:       0,
			CreatedAt:     time.Now(),
		}

		res, err := db.Collection("products").InsertOne(ctx, product)
		if err != nil {
			log.Println("CreateProduct insert error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save product"})
			return
		}

		product.ID = res.InsertedID.(primitive.ObjectID)

		// The recount runs after the insert has committed; a failure here
		// leaves product_count stale, not the product missing.
		syncCategoryProductCounts(ctx, db, category)

		c.JSON(http.StatusCreated, product)
	}
}

/* =======================
   UPDATE
======================= */

func UpdateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req ProductUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var existing models.Product
		err = db.Collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&existing)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		updateSet := bson.M{}
		updateUnset := bson.M{}

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
				return
			}
			updateSet["name"] = name
		}
		if req.Description != nil {
			updateSet["description"] = strings.TrimSpace(*req.Description)
		}
		if req.Price != nil {
			if *req.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
				return
			}
			updateSet["price"] = *req.Price
		}
		if req.OriginalPrice != nil {
			if *req.OriginalPrice <= 0 {
				updateUnset["original_price"] = ""
			} else {
				updateSet["original_price"] = *req.OriginalPrice
			}
		}
		if req.Category != nil {
			category := strings.TrimSpace(*req.Category)
			if category == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "category required"})
				return
			}
			known, err := categoryExists(ctx, db, category)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
				return
			}
			if !known {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + category})
				return
			}
			updateSet["category"] = category
		}
		if req.ImageURL != nil {
			updateSet["image_url"] = *req.ImageURL
		}
		if req.VideoURL != nil {
			video := strings.TrimSpace(*req.VideoURL)
			if video == "" {
				updateUnset["video_url"] = ""
			} else {
				updateSet["video_url"] = video
			}
		}
		if req.InStock != nil {
			updateSet["in_stock"] = *req.InStock
		}
		if req.IsNew != nil {
			updateSet["is_new"] = *req.IsNew
		}
		if req.IsFeatured != nil {
			updateSet["is_featured"] = *req.IsFeatured
		}
		if req.Rating != nil {
			updateSet["rating"] = *req.Rating
		}
		if req.Reviews != nil {
			updateSet["reviews"] = *req.Reviews
		}

		if len(updateSet) == 0 && len(updateUnset) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}

		update := bson.M{}
		if len(updateSet) > 0 {
			update["$set"] = updateSet
		}
		if len(updateUnset) > 0 {
			update["$unset"] = updateUnset
		}

		result, err := db.Collection("products").UpdateOne(ctx, bson.M{"_id": id}, update)
		if err != nil {
			log.Println("UpdateProduct update error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save product"})
			return
		}

		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		if newCategory, ok := updateSet["category"].(string); ok && newCategory != existing.Category {
			syncCategoryProductCounts(ctx, db, existing.Category, newCategory)
		}

		var updated models.Product
		err = db.Collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&updated)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

/* =======================
   DELETE
======================= */

func DeleteProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var existing models.Product
		err = db.Collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&existing)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		result, err := db.Collection("products").DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
			return
		}

		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		syncCategoryProductCounts(ctx, db, existing.Category)

		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}

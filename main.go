package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"backend/internal/cart"
	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handlers"
	"backend/internal/middleware"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureCategoryIndexes(db); err != nil {
		log.Printf("category index warning: %v", err)
	}

	mediaStore, err := handlers.NewMediaStore(context.Background(), config.AppEnv.MediaBucket)
	if err != nil {
		log.Fatal(err)
	}

	cartStore := cart.NewMongoStore(db)
	productFinder := handlers.NewProductFinder(db)

	r := gin.Default()

	r.GET("/products", handlers.GetProducts(db))
	r.GET("/products/featured", handlers.GetFeaturedProducts(db))
	r.GET("/products/search", handlers.SearchProducts(db))
	r.GET("/products/:id", handlers.GetProduct(db))
	r.GET("/products/:id/related", handlers.GetRelatedProducts(db))
	r.GET("/products/:id/order-link", handlers.GetOrderLink(db, config.AppEnv.WhatsAppNumber))
	r.GET("/categories", handlers.GetCategories(db))
	r.GET("/shop/products", handlers.GetShopProducts(db))

	r.GET("/cart", handlers.GetCart(cartStore))
	r.POST("/cart/items", handlers.AddCartItem(cartStore, productFinder))
	r.PUT("/cart/items/:productId", handlers.UpdateCartItem(cartStore))
	r.DELETE("/cart/items/:productId", handlers.RemoveCartItem(cartStore))
	r.DELETE("/cart", handlers.ClearCart(cartStore))

	r.POST("/admin/login", handlers.AdminLogin(
		config.AppEnv.AdminPassword,
		config.AppEnv.AdminPasswordHash,
		config.AppEnv.JWTSecret,
		config.AppEnv.AdminTokenTTL,
	))
	r.POST("/admin/logout", handlers.AdminLogout())

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.GET("/me", func(c *gin.Context) {
			c.JSON(200, gin.H{"ok": true})
		})

		admin.GET("/products", handlers.GetAllProducts(db))
		admin.POST("/products", handlers.CreateProduct(db))
		admin.PUT("/products/:id", handlers.UpdateProduct(db))
		admin.DELETE("/products/:id", handlers.DeleteProduct(db))
		admin.POST("/products/uploads", handlers.UploadProductImage(mediaStore))

		admin.GET("/categories", handlers.GetAllCategories(db))
		admin.POST("/categories", handlers.CreateCategory(db))
		admin.PUT("/categories/:id", handlers.UpdateCategory(db))
		admin.DELETE("/categories/:id", handlers.DeleteCategory(db))

		admin.GET("/media", handlers.ListMedia(mediaStore))
		admin.POST("/media", handlers.UploadMedia(mediaStore))
		admin.DELETE("/media/:name", handlers.DeleteMedia(mediaStore))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

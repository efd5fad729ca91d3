package handlers

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The two ceilings intentionally differ: the media library accepts bulk
// image/video uploads, the product form only inline images.
const (
	maxMediaUploadSize        = 10 << 20
	maxProductImageUploadSize = 5 << 20
)

var imageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

var videoExtensions = map[string]string{
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mov":  "video/quicktime",
}

// validateMediaFile checks extension and size and returns the object name
// and content type to store under.
func validateMediaFile(file *multipart.FileHeader, maxSize int64, allowVideo bool) (string, string, error) {
	extension := strings.ToLower(filepath.Ext(file.Filename))
	if extension == "" {
		return "", "", fmt.Errorf("file extension is required")
	}

	contentType, isImage := imageExtensions[extension]
	if !isImage {
		videoType, isVideo := videoExtensions[extension]
		if !isVideo || !allowVideo {
			return "", "", fmt.Errorf("unsupported media type: %s", extension)
		}
		contentType = videoType
	}

	if file.Size > maxSize {
		return "", "", fmt.Errorf("file too large (max %dMB)", maxSize>>20)
	}

	name := primitive.NewObjectID().Hex() + extension
	return name, contentType, nil
}

func uploadMediaFile(ctx context.Context, store *MediaStore, file *multipart.FileHeader, name, contentType string) (string, error) {
	in, err := file.Open()
	if err != nil {
		return "", err
	}
	defer in.Close()

	return store.Upload(ctx, name, contentType, in)
}

/*
POST /admin/api/media
- Bulk media-library upload: images and videos, 10MB ceiling each
*/
func UploadMedia(store *MediaStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/media"
		defer handlePanic(c, route)

		form, err := c.MultipartForm()
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "multipart/form-data required")
			return
		}

		files := form.File["files"]
		if len(files) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "no files provided")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
		defer cancel()

		uploaded := make([]MediaObject, 0, len(files))
		for _, file := range files {
			name, contentType, err := validateMediaFile(file, maxMediaUploadSize, true)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, err.Error())
				return
			}

			url, err := uploadMediaFile(ctx, store, file, name, contentType)
			if err != nil {
				log.Printf("[%s] upload failed for %s: %v", route, file.Filename, err)
				respondWithError(c, http.StatusInternalServerError, route, "failed to save media")
				return
			}

			uploaded = append(uploaded, MediaObject{
				Name: name,
				URL:  url,
				Size: file.Size,
			})
		}

		c.JSON(http.StatusCreated, gin.H{"data": uploaded})
	}
}

/*
POST /admin/api/products/uploads
- Inline product-image upload: images only, 5MB ceiling
*/
func UploadProductImage(store *MediaStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/products/uploads"
		defer handlePanic(c, route)

		file, err := c.FormFile("image")
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "image required")
			return
		}

		name, contentType, err := validateMediaFile(file, maxProductImageUploadSize, false)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		url, err := uploadMediaFile(ctx, store, file, name, contentType)
		if err != nil {
			log.Printf("[%s] upload failed for %s: %v", route, file.Filename, err)
			respondWithError(c, http.StatusInternalServerError, route, "failed to save image")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"name": name,
			"url":  url,
		})
	}
}

/*
GET /admin/api/media
*/
func ListMedia(store *MediaStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/media"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()

		objects, err := store.List(ctx)
		if err != nil {
			log.Printf("[%s] list failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "failed to load media")
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": objects})
	}
}

/*
DELETE /admin/api/media/:name
*/
func DeleteMedia(store *MediaStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/api/media/:name"
		defer handlePanic(c, route)

		name := strings.TrimSpace(c.Param("name"))
		if name == "" || strings.Contains(name, "/") {
			respondWithError(c, http.StatusBadRequest, route, "invalid object name")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()

		if err := store.Delete(ctx, name); err != nil {
			log.Printf("[%s] delete failed for %s: %v", route, name, err)
			respondWithError(c, http.StatusInternalServerError, route, "failed to delete media")
			return
		}

		c.Status(http.StatusNoContent)
	}
}

package handlers

import (
	"context"
	"log"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// slugify turns a category name into its URL-safe slug: lowercase, runs of
// non-alphanumerics collapsed to single dashes.
func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugCleaner.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// syncCategoryProductCount recomputes the denormalized product_count for one
// slug. It runs after the product write, not inside it; on partial failure
// the count goes stale until the next write touches the slug.
func syncCategoryProductCount(ctx context.Context, db *mongo.Database, slug string) error {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil
	}

	count, err := db.Collection("products").CountDocuments(ctx, bson.M{"category": slug})
	if err != nil {
		return err
	}

	_, err = db.Collection("categories").UpdateOne(
		ctx,
		bson.M{"slug": slug},
		bson.M{"$set": bson.M{"product_count": count}},
	)
	return err
}

// syncCategoryProductCounts recounts every affected slug, logging failures
// instead of failing the request that already committed its product write.
func syncCategoryProductCounts(ctx context.Context, db *mongo.Database, slugs ...string) {
	seen := map[string]struct{}{}
	for _, slug := range slugs {
		slug = strings.TrimSpace(slug)
		if slug == "" {
			continue
		}
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}

		if err := syncCategoryProductCount(ctx, db, slug); err != nil {
			log.Printf("product_count sync failed for %q: %v", slug, err)
		}
	}
}

package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/models"
)

// ProductFinder resolves the product snapshot stored in cart entries.
type ProductFinder interface {
	FindProduct(ctx context.Context, id primitive.ObjectID) (models.Product, error)
}

type mongoProductFinder struct {
	db *mongo.Database
}

func NewProductFinder(db *mongo.Database) ProductFinder {
	return &mongoProductFinder{db: db}
}

func (f *mongoProductFinder) FindProduct(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	var product models.Product
	err := f.db.Collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	return product, err
}

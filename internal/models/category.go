package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Slug         string             `bson:"slug" json:"slug"`
	Emoji        string             `bson:"emoji,omitempty" json:"emoji,omitempty"`
	ProductCount int64              `bson:"product_count" json:"product_count"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Price         int64              `bson:"price" json:"price"`
	OriginalPrice int64              `bson:"original_price,omitempty" json:"original_price,omitempty"`
	Category      string             `bson:"category" json:"category"`
	ImageURL      ImageList          `bson:"image_url,omitempty" json:"image_url"`
	VideoURL      string             `bson:"video_url,omitempty" json:"video_url,omitempty"`
	Emoji         string             `bson:"emoji,omitempty" json:"emoji,omitempty"`
	InStock       bool               `bson:"in_stock" json:"in_stock"`
	IsNew         bool               `bson:"is_new" json:"is_new"`
	IsFeatured    bool               `bson:"is_featured" json:"is_featured"`
	Rating        float64            `bson:"rating" json:"rating"`
	Reviews       int                `bson:"reviews" json:"reviews"`
	Discount      int                `bson:"-" json:"discount,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

package cart

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store persists full cart snapshots keyed by cart id. Load never fails the
// caller over a missing or unreadable snapshot; it hands back a fresh cart
// under the requested id instead, so the token a client already holds keeps
// addressing the same cart. Last write wins; no cross-client sync.
type Store interface {
	Load(ctx context.Context, id primitive.ObjectID) *Cart
	Save(ctx context.Context, cart *Cart) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) collection() *mongo.Collection {
	return s.db.Collection("carts")
}

func (s *MongoStore) Load(ctx context.Context, id primitive.ObjectID) *Cart {
	var cart Cart
	err := s.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&cart)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Printf("cart load failed, starting empty: %v", err)
		}
		fresh := New()
		fresh.ID = id
		return fresh
	}

	if cart.Items == nil {
		cart.Items = []Item{}
	}
	return &cart
}

func (s *MongoStore) Save(ctx context.Context, cart *Cart) error {
	cart.UpdatedAt = time.Now()

	_, err := s.collection().ReplaceOne(
		ctx,
		bson.M{"_id": cart.ID},
		cart,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (s *MongoStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.collection().DeleteOne(ctx, bson.M{"_id": id})
	return err
}

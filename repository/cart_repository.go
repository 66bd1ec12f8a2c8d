package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mattys-media/backend/models"
)

type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{
		collection: db.Collection("carts"),
	}
}

func (r *CartRepository) FindByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		// No cart yet is not an error for callers.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Upsert replaces the cart for userID in a single FindOneAndUpdate with
// upsert semantics. Two concurrent calls for the same user cannot create
// two carts: id, user_id and created_at are only written on insert, while
// items, total and updated_at are overwritten every time.
func (r *CartRepository) Upsert(ctx context.Context, userID string, items []models.CartItem, total float64) (*models.Cart, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"items":      items,
			"total":      total,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"id":         uuid.NewString(),
			"user_id":    userID,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var cart models.Cart
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"user_id": userID}, update, opts).Decode(&cart)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// DeleteByUserID removes the user's cart. Deleting a cart that does not
// exist is not an error.
func (r *CartRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID})
	return err
}

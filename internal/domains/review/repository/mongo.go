package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Sravanvenkat03/library/internal/domains/review/model"
)

// =====================================================
// MONGO REPOSITORY IMPLEMENTATION
// =====================================================

type mongoReviewRepository struct {
	coll *mongo.Collection
}

func NewMongoReviewRepository(coll *mongo.Collection) ReviewRepository {
	return &mongoReviewRepository{coll: coll}
}

func (r *mongoReviewRepository) Insert(ctx context.Context, review *model.Review) error {
	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

func (r *mongoReviewRepository) FindByBook(ctx context.Context, bookID int) ([]model.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"book_id": bookID})
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}

	var reviews []model.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

func (r *mongoReviewRepository) DeleteByUser(ctx context.Context, userID int) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete reviews: %w", err)
	}
	return res.DeletedCount, nil
}

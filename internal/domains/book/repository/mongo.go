package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sravanvenkat03/library/internal/domains/book/model"
)

// =====================================================
// MONGO REPOSITORY IMPLEMENTATION
// =====================================================

type mongoBookRepository struct {
	coll *mongo.Collection
}

func NewMongoBookRepository(coll *mongo.Collection) BookRepository {
	return &mongoBookRepository{coll: coll}
}

func (r *mongoBookRepository) FindByID(ctx context.Context, id int) (*model.Book, error) {
	book := &model.Book{}
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(book)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to find book: %w", err)
	}
	return book, nil
}

func (r *mongoBookRepository) Exists(ctx context.Context, id int) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}
	return count > 0, nil
}

func (r *mongoBookRepository) FindByTitles(ctx context.Context, titles []string) ([]model.Book, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"title": bson.M{"$in": titles}})
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}

	var books []model.Book
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("failed to decode books: %w", err)
	}
	return books, nil
}

func (r *mongoBookRepository) FindNotIn(ctx context.Context, excludedIDs []int, limit int64) ([]model.Book, error) {
	if excludedIDs == nil {
		excludedIDs = []int{}
	}

	cursor, err := r.coll.Find(ctx,
		bson.M{"id": bson.M{"$nin": excludedIDs}},
		options.Find().SetLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find books: %w", err)
	}

	var books []model.Book
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("failed to decode books: %w", err)
	}
	return books, nil
}

func (r *mongoBookRepository) Insert(ctx context.Context, book *model.Book) error {
	if _, err := r.coll.InsertOne(ctx, book); err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}
	return nil
}

func (r *mongoBookRepository) UpdateFields(ctx context.Context, id int, fields map[string]interface{}) (bool, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return false, fmt.Errorf("failed to update book: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *mongoBookRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete book: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *mongoBookRepository) ApplyRating(ctx context.Context, id, value int) (bool, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, ratingPipeline(value))
	if err != nil {
		return false, fmt.Errorf("failed to rate book: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// ratingPipeline builds the aggregation-pipeline update that folds one
// rating into the stored running mean, server-side and atomic per
// document: new_avg = (avg*count + value) / (count + 1). Field
// references inside a $set stage read the pre-update document, so both
// fields see the old rating_count. Missing fields default to 0.
func ratingPipeline(value int) mongo.Pipeline {
	avg := bson.D{{Key: "$ifNull", Value: bson.A{"$average_rating", 0}}}
	count := bson.D{{Key: "$ifNull", Value: bson.A{"$rating_count", 0}}}

	newAvg := bson.D{{Key: "$divide", Value: bson.A{
		bson.D{{Key: "$add", Value: bson.A{
			bson.D{{Key: "$multiply", Value: bson.A{avg, count}}},
			value,
		}}},
		bson.D{{Key: "$add", Value: bson.A{count, 1}}},
	}}}

	return mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "average_rating", Value: newAvg},
			{Key: "rating_count", Value: bson.D{{Key: "$add", Value: bson.A{count, 1}}}},
		}}},
	}
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sravanvenkat03/library/internal/domains/user/model"
)

// =====================================================
// MONGO REPOSITORY IMPLEMENTATION
// =====================================================

type mongoUserRepository struct {
	users    *mongo.Collection
	progress *mongo.Collection
}

func NewMongoUserRepository(users, progress *mongo.Collection) UserRepository {
	return &mongoUserRepository{users: users, progress: progress}
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	user := &model.User{}
	err := r.users.FindOne(ctx, bson.M{"id": id}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func (r *mongoUserRepository) Exists(ctx context.Context, id int) (bool, error) {
	count, err := r.users.CountDocuments(ctx, bson.M{"id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

func (r *mongoUserRepository) Insert(ctx context.Context, user *model.User) error {
	if _, err := r.users.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *mongoUserRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.users.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *mongoUserRepository) SetReadingProgress(ctx context.Context, id int, entries []model.ReadingProgress) error {
	_, err := r.users.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"reading_progress": entries}},
	)
	if err != nil {
		return fmt.Errorf("failed to update reading progress: %w", err)
	}
	return nil
}

func (r *mongoUserRepository) DeleteProgressByUser(ctx context.Context, userID int) (int64, error) {
	res, err := r.progress.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete reading progress: %w", err)
	}
	return res.DeletedCount, nil
}

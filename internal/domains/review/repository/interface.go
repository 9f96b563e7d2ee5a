package repository

import (
	"context"

	"github.com/Sravanvenkat03/library/internal/domains/review/model"
)

// ReviewRepository is the document-store access contract for reviews.
type ReviewRepository interface {
	Insert(ctx context.Context, review *model.Review) error
	FindByBook(ctx context.Context, bookID int) ([]model.Review, error)
	// DeleteByUser removes all reviews by a user; returns the count.
	DeleteByUser(ctx context.Context, userID int) (int64, error)
}

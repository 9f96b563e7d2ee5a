package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	bookrepo "github.com/Sravanvenkat03/library/internal/domains/book/repository"
	"github.com/Sravanvenkat03/library/internal/domains/review/model"
	"github.com/Sravanvenkat03/library/internal/domains/review/repository"
	"github.com/Sravanvenkat03/library/internal/shared/utils"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type reviewService struct {
	reviewRepo repository.ReviewRepository
	bookRepo   bookrepo.BookRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	bookRepo bookrepo.BookRepository,
) ServiceInterface {
	return &reviewService{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
	}
}

// =====================================================
// ADD REVIEWS
// =====================================================

// AddReviews inserts each review whose referenced book exists.
// Referential integrity lives here, not in the store: a review for an
// unknown book is skipped, never inserted.
func (s *reviewService) AddReviews(ctx context.Context, reqs []model.CreateReviewRequest) (string, error) {
	var added []int
	for _, req := range reqs {
		exists, err := s.bookRepo.Exists(ctx, req.BookID)
		if err != nil {
			return "", fmt.Errorf("failed to check book %d: %w", req.BookID, err)
		}
		if !exists {
			log.Warn().Int("book_id", req.BookID).Msg("Cannot add review for non-existing book")
			continue
		}

		if err := s.reviewRepo.Insert(ctx, req.ToEntity()); err != nil {
			return "", fmt.Errorf("failed to add review for book %d: %w", req.BookID, err)
		}
		log.Info().Int("book_id", req.BookID).Int("user_id", req.UserID).Msg("Review added")
		added = append(added, req.BookID)
	}

	if len(added) == 0 {
		return "No reviews added", nil
	}
	return "Reviews added for books: " + utils.JoinIDs(added), nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	bookmodel "github.com/Sravanvenkat03/library/internal/domains/book/model"
	bookrepo "github.com/Sravanvenkat03/library/internal/domains/book/repository"
	reviewrepo "github.com/Sravanvenkat03/library/internal/domains/review/repository"
	"github.com/Sravanvenkat03/library/internal/domains/user/model"
	"github.com/Sravanvenkat03/library/internal/domains/user/repository"
	"github.com/Sravanvenkat03/library/internal/shared/utils"
)

// recommendLimit caps how many books a recommendation returns.
const recommendLimit = 5

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type userService struct {
	userRepo   repository.UserRepository
	bookRepo   bookrepo.BookRepository
	reviewRepo reviewrepo.ReviewRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	bookRepo bookrepo.BookRepository,
	reviewRepo reviewrepo.ReviewRepository,
) ServiceInterface {
	return &userService{
		userRepo:   userRepo,
		bookRepo:   bookRepo,
		reviewRepo: reviewRepo,
	}
}

// =====================================================
// ADD USERS
// =====================================================

func (s *userService) AddUsers(ctx context.Context, reqs []model.CreateUserRequest) (string, error) {
	var added []string
	for _, req := range reqs {
		// Guard: skip ids that are already present
		exists, err := s.userRepo.Exists(ctx, req.ID)
		if err != nil {
			return "", fmt.Errorf("failed to check user %d: %w", req.ID, err)
		}
		if exists {
			log.Warn().Int("user_id", req.ID).Msg("User already exists")
			continue
		}

		if err := s.userRepo.Insert(ctx, req.ToEntity()); err != nil {
			return "", fmt.Errorf("failed to add user %d: %w", req.ID, err)
		}
		log.Info().Str("name", req.Name).Msg("User added")
		added = append(added, req.Name)
	}

	if len(added) == 0 {
		return "No new users added", nil
	}
	return "Users added: " + strings.Join(added, ", "), nil
}

// =====================================================
// DELETE USERS
// =====================================================

// DeleteUsers removes each user and cascades to that user's reviews
// and reading-progress records. The cascade spans three collections
// without a transaction: a crash between steps leaves partial state.
func (s *userService) DeleteUsers(ctx context.Context, ids []int) (string, error) {
	var deleted []int
	for _, id := range ids {
		ok, err := s.userRepo.Delete(ctx, id)
		if err != nil {
			return "", fmt.Errorf("failed to delete user %d: %w", id, err)
		}
		if !ok {
			// Absent user: skip, no cascade
			log.Warn().Int("user_id", id).Msg("User not found")
			continue
		}
		log.Info().Int("user_id", id).Msg("User deleted")
		deleted = append(deleted, id)

		reviews, err := s.reviewRepo.DeleteByUser(ctx, id)
		if err != nil {
			return "", fmt.Errorf("failed to delete reviews of user %d: %w", id, err)
		}
		log.Info().Int("user_id", id).Int64("reviews", reviews).Msg("Deleted reviews by user")

		progress, err := s.userRepo.DeleteProgressByUser(ctx, id)
		if err != nil {
			return "", fmt.Errorf("failed to delete reading progress of user %d: %w", id, err)
		}
		log.Info().Int("user_id", id).Int64("progress", progress).Msg("Deleted reading progress of user")
	}

	if len(deleted) == 0 {
		return "No users deleted", nil
	}
	return "Users deleted: " + utils.JoinIDs(deleted), nil
}

// =====================================================
// TRACK READING PROGRESS
// =====================================================

func (s *userService) TrackReadingProgress(ctx context.Context, userID int, reqs []model.TrackProgressRequest) (string, error) {
	// Unlike the bulk operations, a missing user fails the whole call.
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == model.ErrUserNotFound {
			log.Warn().Int("user_id", userID).Msg("User not found")
			return "", model.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to get user %d: %w", userID, err)
	}

	entries := make([]model.ReadingProgress, 0, len(reqs))
	for _, req := range reqs {
		entries = append(entries, req.ToEntry())
	}
	user.MergeProgress(entries)

	// One whole-list write keeps at most one entry per book_id
	if err := s.userRepo.SetReadingProgress(ctx, userID, user.ReadingProgress); err != nil {
		return "", fmt.Errorf("failed to save reading progress: %w", err)
	}
	log.Info().Int("user_id", userID).Int("entries", len(reqs)).Msg("Reading progress updated")

	return fmt.Sprintf("Reading progress updated for user %d", userID), nil
}

// =====================================================
// RECOMMEND BOOKS
// =====================================================

func (s *userService) RecommendBooks(ctx context.Context, userID int) ([]bookmodel.FormattedBook, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == model.ErrUserNotFound {
			log.Warn().Int("user_id", userID).Msg("User not found")
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}

	books, err := s.bookRepo.FindNotIn(ctx, user.FavoriteBooks, recommendLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to find recommendations: %w", err)
	}
	log.Info().Int("user_id", userID).Int("found", len(books)).Msg("Recommended books for user")

	formatted := make([]bookmodel.FormattedBook, 0, len(books))
	for _, book := range books {
		reviews, err := s.reviewRepo.FindByBook(ctx, book.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch reviews: %w", err)
		}
		formatted = append(formatted, bookmodel.FormatBook(book, reviews))
	}
	return formatted, nil
}

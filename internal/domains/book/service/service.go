package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Sravanvenkat03/library/internal/domains/book/model"
	"github.com/Sravanvenkat03/library/internal/domains/book/repository"
	reviewrepo "github.com/Sravanvenkat03/library/internal/domains/review/repository"
	"github.com/Sravanvenkat03/library/internal/shared/utils"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type bookService struct {
	bookRepo   repository.BookRepository
	reviewRepo reviewrepo.ReviewRepository
}

func NewBookService(
	bookRepo repository.BookRepository,
	reviewRepo reviewrepo.ReviewRepository,
) ServiceInterface {
	return &bookService{
		bookRepo:   bookRepo,
		reviewRepo: reviewRepo,
	}
}

// formatBook builds the external shape of one book. The review
// sub-list is looked up live per call, never cached.
func (s *bookService) formatBook(ctx context.Context, book model.Book) (model.FormattedBook, error) {
	reviews, err := s.reviewRepo.FindByBook(ctx, book.ID)
	if err != nil {
		return model.FormattedBook{}, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	log.Info().Int("book_id", book.ID).Int("reviews", len(reviews)).Msg("Fetched reviews for book")
	return model.FormatBook(book, reviews), nil
}

// =====================================================
// ADD BOOKS
// =====================================================

func (s *bookService) AddBooks(ctx context.Context, reqs []model.CreateBookRequest) (string, error) {
	var added []string
	for _, req := range reqs {
		// Guard: skip ids that are already present
		exists, err := s.bookRepo.Exists(ctx, req.ID)
		if err != nil {
			return "", fmt.Errorf("failed to check book %d: %w", req.ID, err)
		}
		if exists {
			log.Warn().Int("book_id", req.ID).Msg("Book already exists")
			continue
		}

		if err := s.bookRepo.Insert(ctx, req.ToEntity()); err != nil {
			return "", fmt.Errorf("failed to add book %d: %w", req.ID, err)
		}
		log.Info().Str("title", req.Title).Msg("Book added")
		added = append(added, req.Title)
	}

	if len(added) == 0 {
		return "No new books added", nil
	}
	return "Books added: " + strings.Join(added, ", "), nil
}

// =====================================================
// UPDATE BOOKS
// =====================================================

func (s *bookService) UpdateBooks(ctx context.Context, reqs []model.UpdateBookRequest) (string, error) {
	var updated []int
	for _, req := range reqs {
		// Only supplied fields are applied
		matched, err := s.bookRepo.UpdateFields(ctx, req.ID, req.SetFields())
		if err != nil {
			return "", fmt.Errorf("failed to update book %d: %w", req.ID, err)
		}
		if !matched {
			log.Warn().Int("book_id", req.ID).Msg("Book not found")
			continue
		}
		log.Info().Int("book_id", req.ID).Msg("Book updated")
		updated = append(updated, req.ID)
	}

	if len(updated) == 0 {
		return "No books updated", nil
	}
	return "Books updated: " + utils.JoinIDs(updated), nil
}

// =====================================================
// DELETE BOOKS
// =====================================================

func (s *bookService) DeleteBooks(ctx context.Context, ids []int) (string, error) {
	var deleted []int
	for _, id := range ids {
		ok, err := s.bookRepo.Delete(ctx, id)
		if err != nil {
			return "", fmt.Errorf("failed to delete book %d: %w", id, err)
		}
		if !ok {
			log.Warn().Int("book_id", id).Msg("Book not found")
			continue
		}
		log.Info().Int("book_id", id).Msg("Book deleted")
		deleted = append(deleted, id)
	}

	if len(deleted) == 0 {
		return "No books deleted", nil
	}
	return "Books deleted: " + utils.JoinIDs(deleted), nil
}

// =====================================================
// SEARCH BOOKS
// =====================================================

func (s *bookService) SearchBooks(ctx context.Context, titles []string) ([]model.FormattedBook, error) {
	books, err := s.bookRepo.FindByTitles(ctx, titles)
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}
	log.Info().Strs("titles", titles).Int("found", len(books)).Msg("Books searched")

	formatted := make([]model.FormattedBook, 0, len(books))
	for _, book := range books {
		fb, err := s.formatBook(ctx, book)
		if err != nil {
			return nil, err
		}
		formatted = append(formatted, fb)
	}
	return formatted, nil
}

// =====================================================
// RATE BOOKS
// =====================================================

func (s *bookService) RateBooks(ctx context.Context, reqs []model.RatingRequest) (string, error) {
	var rated []int
	for _, req := range reqs {
		// The store folds the value into the running average in a
		// single per-document update; a miss doubles as the guard.
		ok, err := s.bookRepo.ApplyRating(ctx, req.BookID, req.Value)
		if err != nil {
			return "", fmt.Errorf("failed to rate book %d: %w", req.BookID, err)
		}
		if !ok {
			log.Warn().Int("book_id", req.BookID).Msg("Book not found")
			continue
		}
		log.Info().Int("book_id", req.BookID).Int("value", req.Value).Msg("Book rated")
		rated = append(rated, req.BookID)
	}

	if len(rated) == 0 {
		return "No books rated", nil
	}
	return "Books rated: " + utils.JoinIDs(rated), nil
}

// =====================================================
// GET BOOK BY ID
// =====================================================

func (s *bookService) GetBookByID(ctx context.Context, id int) (*model.FormattedBook, error) {
	book, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		if err == model.ErrBookNotFound {
			log.Warn().Int("book_id", id).Msg("Book not found")
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	formatted, err := s.formatBook(ctx, *book)
	if err != nil {
		return nil, err
	}
	return &formatted, nil
}

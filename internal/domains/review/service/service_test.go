package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	bookmodel "github.com/Sravanvenkat03/library/internal/domains/book/model"
	"github.com/Sravanvenkat03/library/internal/domains/review/model"
	"github.com/Sravanvenkat03/library/internal/domains/review/service"
)

// =====================================================
// MOCKS
// =====================================================

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) Insert(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockReviewRepository) FindByBook(ctx context.Context, bookID int) ([]model.Review, error) {
	args := m.Called(ctx, bookID)
	if reviews := args.Get(0); reviews != nil {
		return reviews.([]model.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewRepository) DeleteByUser(ctx context.Context, userID int) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockBookRepository struct {
	mock.Mock
}

func (m *mockBookRepository) FindByID(ctx context.Context, id int) (*bookmodel.Book, error) {
	args := m.Called(ctx, id)
	if book := args.Get(0); book != nil {
		return book.(*bookmodel.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookRepository) FindByTitles(ctx context.Context, titles []string) ([]bookmodel.Book, error) {
	args := m.Called(ctx, titles)
	if books := args.Get(0); books != nil {
		return books.([]bookmodel.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookRepository) FindNotIn(ctx context.Context, excludedIDs []int, limit int64) ([]bookmodel.Book, error) {
	args := m.Called(ctx, excludedIDs, limit)
	if books := args.Get(0); books != nil {
		return books.([]bookmodel.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookRepository) Insert(ctx context.Context, book *bookmodel.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *mockBookRepository) UpdateFields(ctx context.Context, id int, fields map[string]interface{}) (bool, error) {
	args := m.Called(ctx, id, fields)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookRepository) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookRepository) ApplyRating(ctx context.Context, id, value int) (bool, error) {
	args := m.Called(ctx, id, value)
	return args.Bool(0), args.Error(1)
}

// =====================================================
// ADD REVIEWS
// =====================================================

func TestAddReviews(t *testing.T) {
	reviewRepo := new(mockReviewRepository)
	bookRepo := new(mockBookRepository)
	svc := service.NewReviewService(reviewRepo, bookRepo)

	bookRepo.On("Exists", mock.Anything, 1).Return(true, nil)
	reviewRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	rating := 5
	msg, err := svc.AddReviews(context.Background(), []model.CreateReviewRequest{
		{UserID: 7, BookID: 1, Content: "great", Rating: &rating},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Reviews added for books: 1", msg)
	reviewRepo.AssertNumberOfCalls(t, "Insert", 1)
}

func TestAddReviewsSkipsUnknownBook(t *testing.T) {
	reviewRepo := new(mockReviewRepository)
	bookRepo := new(mockBookRepository)
	svc := service.NewReviewService(reviewRepo, bookRepo)

	bookRepo.On("Exists", mock.Anything, 99).Return(false, nil)

	msg, err := svc.AddReviews(context.Background(), []model.CreateReviewRequest{
		{UserID: 7, BookID: 99, Content: "ghost"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "No reviews added", msg)
	reviewRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestAddReviewsMixed(t *testing.T) {
	reviewRepo := new(mockReviewRepository)
	bookRepo := new(mockBookRepository)
	svc := service.NewReviewService(reviewRepo, bookRepo)

	bookRepo.On("Exists", mock.Anything, 1).Return(true, nil)
	bookRepo.On("Exists", mock.Anything, 99).Return(false, nil)
	reviewRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	msg, err := svc.AddReviews(context.Background(), []model.CreateReviewRequest{
		{UserID: 7, BookID: 1, Content: "great"},
		{UserID: 7, BookID: 99, Content: "ghost"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Reviews added for books: 1", msg)
	reviewRepo.AssertNumberOfCalls(t, "Insert", 1)
}

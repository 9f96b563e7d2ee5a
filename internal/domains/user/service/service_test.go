package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	bookmodel "github.com/Sravanvenkat03/library/internal/domains/book/model"
	reviewmodel "github.com/Sravanvenkat03/library/internal/domains/review/model"
	"github.com/Sravanvenkat03/library/internal/domains/user/model"
	"github.com/Sravanvenkat03/library/internal/domains/user/service"
)

// =====================================================
// MOCKS
// =====================================================

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) Insert(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) SetReadingProgress(ctx context.Context, id int, entries []model.ReadingProgress) error {
	args := m.Called(ctx, id, entries)
	return args.Error(0)
}

func (m *mockUserRepository) DeleteProgressByUser(ctx context.Context, userID int) (int64, error) {
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

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) Insert(ctx context.Context, review *reviewmodel.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockReviewRepository) FindByBook(ctx context.Context, bookID int) ([]reviewmodel.Review, error) {
	args := m.Called(ctx, bookID)
	if reviews := args.Get(0); reviews != nil {
		return reviews.([]reviewmodel.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewRepository) DeleteByUser(ctx context.Context, userID int) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func newService() (service.ServiceInterface, *mockUserRepository, *mockBookRepository, *mockReviewRepository) {
	userRepo := new(mockUserRepository)
	bookRepo := new(mockBookRepository)
	reviewRepo := new(mockReviewRepository)
	return service.NewUserService(userRepo, bookRepo, reviewRepo), userRepo, bookRepo, reviewRepo
}

// =====================================================
// ADD USERS
// =====================================================

func TestAddUsersSkipsExisting(t *testing.T) {
	svc, userRepo, _, _ := newService()

	userRepo.On("Exists", mock.Anything, 1).Return(true, nil)
	userRepo.On("Exists", mock.Anything, 2).Return(false, nil)
	userRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	msg, err := svc.AddUsers(context.Background(), []model.CreateUserRequest{
		{ID: 1, Name: "Ana"},
		{ID: 2, Name: "Ben"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Users added: Ben", msg)
	userRepo.AssertNumberOfCalls(t, "Insert", 1)
}

func TestAddUsersAllExisting(t *testing.T) {
	svc, userRepo, _, _ := newService()

	userRepo.On("Exists", mock.Anything, 1).Return(true, nil)

	msg, err := svc.AddUsers(context.Background(), []model.CreateUserRequest{{ID: 1, Name: "Ana"}})

	assert.NoError(t, err)
	assert.Equal(t, "No new users added", msg)
}

// =====================================================
// DELETE USERS
// =====================================================

func TestDeleteUsersCascades(t *testing.T) {
	svc, userRepo, _, reviewRepo := newService()

	userRepo.On("Delete", mock.Anything, 1).Return(true, nil)
	reviewRepo.On("DeleteByUser", mock.Anything, 1).Return(int64(3), nil)
	userRepo.On("DeleteProgressByUser", mock.Anything, 1).Return(int64(2), nil)

	msg, err := svc.DeleteUsers(context.Background(), []int{1})

	assert.NoError(t, err)
	assert.Equal(t, "Users deleted: 1", msg)
	reviewRepo.AssertCalled(t, "DeleteByUser", mock.Anything, 1)
	userRepo.AssertCalled(t, "DeleteProgressByUser", mock.Anything, 1)
}

func TestDeleteUsersAbsentUserNoCascade(t *testing.T) {
	svc, userRepo, _, reviewRepo := newService()

	userRepo.On("Delete", mock.Anything, 9).Return(false, nil)

	msg, err := svc.DeleteUsers(context.Background(), []int{9})

	assert.NoError(t, err)
	assert.Equal(t, "No users deleted", msg)
	reviewRepo.AssertNotCalled(t, "DeleteByUser", mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "DeleteProgressByUser", mock.Anything, mock.Anything)
}

// =====================================================
// TRACK READING PROGRESS
// =====================================================

func TestTrackReadingProgressMergesEntries(t *testing.T) {
	svc, userRepo, _, _ := newService()

	userRepo.On("FindByID", mock.Anything, 1).Return(&model.User{
		ID:              1,
		Name:            "Ana",
		ReadingProgress: []model.ReadingProgress{{BookID: 10, PercentageRead: 20}},
	}, nil)
	userRepo.On("SetReadingProgress", mock.Anything, 1, []model.ReadingProgress{
		{BookID: 10, PercentageRead: 75},
		{BookID: 11, PercentageRead: 5},
	}).Return(nil)

	msg, err := svc.TrackReadingProgress(context.Background(), 1, []model.TrackProgressRequest{
		{BookID: 10, PercentageRead: 75},
		{BookID: 11, PercentageRead: 5},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Reading progress updated for user 1", msg)
	userRepo.AssertExpectations(t)
}

func TestTrackReadingProgressUserNotFound(t *testing.T) {
	svc, userRepo, _, _ := newService()

	userRepo.On("FindByID", mock.Anything, 42).Return(nil, model.ErrUserNotFound)

	msg, err := svc.TrackReadingProgress(context.Background(), 42, []model.TrackProgressRequest{
		{BookID: 10, PercentageRead: 75},
	})

	assert.ErrorIs(t, err, model.ErrUserNotFound)
	assert.Empty(t, msg)
	userRepo.AssertNotCalled(t, "SetReadingProgress", mock.Anything, mock.Anything, mock.Anything)
}

// =====================================================
// RECOMMEND BOOKS
// =====================================================

func TestRecommendBooksExcludesFavorites(t *testing.T) {
	svc, userRepo, bookRepo, reviewRepo := newService()

	userRepo.On("FindByID", mock.Anything, 1).Return(&model.User{
		ID: 1, Name: "Ana", FavoriteBooks: []int{1, 2},
	}, nil)
	bookRepo.On("FindNotIn", mock.Anything, []int{1, 2}, int64(5)).Return([]bookmodel.Book{
		{ID: 3, Title: "Hyperion"},
	}, nil)
	reviewRepo.On("FindByBook", mock.Anything, 3).Return([]reviewmodel.Review{}, nil)

	books, err := svc.RecommendBooks(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, books, 1)
	assert.Equal(t, 3, books[0].ID)
	bookRepo.AssertExpectations(t)
}

func TestRecommendBooksNoneLeft(t *testing.T) {
	svc, userRepo, bookRepo, _ := newService()

	userRepo.On("FindByID", mock.Anything, 1).Return(&model.User{ID: 1, Name: "Ana"}, nil)
	bookRepo.On("FindNotIn", mock.Anything, mock.Anything, int64(5)).Return([]bookmodel.Book{}, nil)

	books, err := svc.RecommendBooks(context.Background(), 1)

	assert.NoError(t, err)
	assert.Empty(t, books)
}

func TestRecommendBooksUserNotFound(t *testing.T) {
	svc, userRepo, bookRepo, _ := newService()

	userRepo.On("FindByID", mock.Anything, 42).Return(nil, model.ErrUserNotFound)

	books, err := svc.RecommendBooks(context.Background(), 42)

	assert.ErrorIs(t, err, model.ErrUserNotFound)
	assert.Nil(t, books)
	bookRepo.AssertNotCalled(t, "FindNotIn", mock.Anything, mock.Anything, mock.Anything)
}

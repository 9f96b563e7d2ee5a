package service

import (
	"context"

	"github.com/Sravanvenkat03/library/internal/domains/book/model"
)

// ServiceInterface is the book business logic contract. Bulk
// operations evaluate items independently and return one aggregate
// message; GetBookByID is the single hard-failure read.
type ServiceInterface interface {
	AddBooks(ctx context.Context, reqs []model.CreateBookRequest) (string, error)
	UpdateBooks(ctx context.Context, reqs []model.UpdateBookRequest) (string, error)
	DeleteBooks(ctx context.Context, ids []int) (string, error)
	SearchBooks(ctx context.Context, titles []string) ([]model.FormattedBook, error)
	RateBooks(ctx context.Context, reqs []model.RatingRequest) (string, error)
	GetBookByID(ctx context.Context, id int) (*model.FormattedBook, error)
}

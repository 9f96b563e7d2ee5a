package service

import (
	"context"

	bookmodel "github.com/Sravanvenkat03/library/internal/domains/book/model"
	"github.com/Sravanvenkat03/library/internal/domains/user/model"
)

// ServiceInterface is the user business logic contract.
// TrackReadingProgress and RecommendBooks fail hard when the user is
// absent; the bulk operations skip per item.
type ServiceInterface interface {
	AddUsers(ctx context.Context, reqs []model.CreateUserRequest) (string, error)
	DeleteUsers(ctx context.Context, ids []int) (string, error)
	TrackReadingProgress(ctx context.Context, userID int, reqs []model.TrackProgressRequest) (string, error)
	RecommendBooks(ctx context.Context, userID int) ([]bookmodel.FormattedBook, error)
}

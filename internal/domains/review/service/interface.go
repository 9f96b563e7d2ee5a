package service

import (
	"context"

	"github.com/Sravanvenkat03/library/internal/domains/review/model"
)

// ServiceInterface is the review business logic contract.
type ServiceInterface interface {
	AddReviews(ctx context.Context, reqs []model.CreateReviewRequest) (string, error)
}

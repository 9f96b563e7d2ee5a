package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Sravanvenkat03/library/internal/domains/review/model"
	"github.com/Sravanvenkat03/library/internal/domains/review/service"
	"github.com/Sravanvenkat03/library/internal/shared/response"
)

// =====================================================
// REVIEW HANDLER
// =====================================================

type ReviewHandler struct {
	reviewService service.ServiceInterface
}

func NewReviewHandler(reviewService service.ServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// AddReviews adds reviews for existing books
// POST /reviews/
func (h *ReviewHandler) AddReviews(c *gin.Context) {
	var reqs []model.CreateReviewRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	for _, req := range reqs {
		if err := req.Validate(); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	msg, err := h.reviewService.AddReviews(c.Request.Context(), reqs)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Message(c, msg)
}

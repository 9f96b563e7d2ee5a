package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sravanvenkat03/library/internal/domains/user/model"
	"github.com/Sravanvenkat03/library/internal/domains/user/service"
	"github.com/Sravanvenkat03/library/internal/shared/response"
)

// =====================================================
// USER HANDLER
// =====================================================

type UserHandler struct {
	userService service.ServiceInterface
}

func NewUserHandler(userService service.ServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// AddUsers adds a list of users
// POST /users/
func (h *UserHandler) AddUsers(c *gin.Context) {
	var reqs []model.CreateUserRequest
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

	msg, err := h.userService.AddUsers(c.Request.Context(), reqs)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Message(c, msg)
}

// DeleteUsers deletes users by id, cascading to their reviews and
// reading-progress records
// DELETE /users/
func (h *UserHandler) DeleteUsers(c *gin.Context) {
	var ids []int
	if err := c.ShouldBindJSON(&ids); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	msg, err := h.userService.DeleteUsers(c.Request.Context(), ids)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Message(c, msg)
}

// TrackProgress upserts per-book progress entries for one user
// PUT /users/progress/?user_id=
func (h *UserHandler) TrackProgress(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var reqs []model.TrackProgressRequest
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

	msg, err := h.userService.TrackReadingProgress(c.Request.Context(), userID, reqs)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	response.Message(c, msg)
}

// Recommend returns up to 5 formatted books outside the user's favorites
// GET /users/recommend/?user_id=
func (h *UserHandler) Recommend(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	books, err := h.userService.RecommendBooks(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	if len(books) == 0 {
		response.Message(c, "No recommendations found")
		return
	}
	response.Data(c, http.StatusOK, books)
}

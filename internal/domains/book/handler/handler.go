package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sravanvenkat03/library/internal/domains/book/model"
	"github.com/Sravanvenkat03/library/internal/domains/book/service"
	"github.com/Sravanvenkat03/library/internal/shared/response"
)

// =====================================================
// BOOK HANDLER
// =====================================================

type BookHandler struct {
	bookService service.ServiceInterface
}

func NewBookHandler(bookService service.ServiceInterface) *BookHandler {
	return &BookHandler{
		bookService: bookService,
	}
}

// AddBooks adds a list of books
// POST /books/
func (h *BookHandler) AddBooks(c *gin.Context) {
	// Step 1: Bind request body
	var reqs []model.CreateBookRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 2: Validate each item
	for _, req := range reqs {
		if err := req.Validate(); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	// Step 3: Call service
	msg, err := h.bookService.AddBooks(c.Request.Context(), reqs)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Message(c, msg)
}

// UpdateBooks applies a list of field patches
// PUT /books/
func (h *BookHandler) UpdateBooks(c *gin.Context) {
	var reqs []model.UpdateBookRequest
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

	msg, err := h.bookService.UpdateBooks(c.Request.Context(), reqs)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Message(c, msg)
}

// DeleteBooks deletes books by id
// DELETE /books/
func (h *BookHandler) DeleteBooks(c *gin.Context) {
	var ids []int
	if err := c.ShouldBindJSON(&ids); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	msg, err := h.bookService.DeleteBooks(c.Request.Context(), ids)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Message(c, msg)
}

// SearchBooks finds books whose title is in the given set
// GET /books/search/?titles=...&titles=...
func (h *BookHandler) SearchBooks(c *gin.Context) {
	titles := c.QueryArray("titles")
	if len(titles) == 0 {
		response.BadRequest(c, "titles query parameter is required")
		return
	}

	books, err := h.bookService.SearchBooks(c.Request.Context(), titles)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	if len(books) == 0 {
		response.Message(c, "No books found")
		return
	}
	response.Data(c, http.StatusOK, books)
}

// RateBooks folds rating values into the stored running averages
// POST /books/rate/
func (h *BookHandler) RateBooks(c *gin.Context) {
	var reqs []model.RatingRequest
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

	msg, err := h.bookService.RateBooks(c.Request.Context(), reqs)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Message(c, msg)
}

// GetBook returns one formatted book or 404
// GET /books/:book_id
func (h *BookHandler) GetBook(c *gin.Context) {
	bookID, err := strconv.Atoi(c.Param("book_id"))
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	book, err := h.bookService.GetBookByID(c.Request.Context(), bookID)
	if err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			response.NotFound(c, "Book not found")
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	response.Data(c, http.StatusOK, book)
}

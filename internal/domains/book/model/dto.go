package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateBookRequest is one element of the POST /books/ body.
type CreateBookRequest struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	ISBN   string `json:"isbn"`
}

// Validate validates CreateBookRequest
func (req CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.ID, validation.Required),
		validation.Field(&req.Title, validation.Required),
		validation.Field(&req.Author, validation.Required),
		validation.Field(&req.Year, validation.Required),
		validation.Field(&req.ISBN, validation.Required),
	)
}

func (req CreateBookRequest) ToEntity() *Book {
	return &Book{
		ID:            req.ID,
		Title:         req.Title,
		Author:        req.Author,
		Year:          req.Year,
		ISBN:          req.ISBN,
		AverageRating: 0,
		RatingCount:   0,
	}
}

// UpdateBookRequest is a field patch for one book. Pointer fields
// distinguish "absent" from a supplied zero value; only non-nil
// fields are applied.
type UpdateBookRequest struct {
	ID     int     `json:"id"`
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Year   *int    `json:"year"`
	ISBN   *string `json:"isbn"`
}

// Validate validates UpdateBookRequest
func (req UpdateBookRequest) Validate() error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.ID, validation.Required),
	); err != nil {
		return err
	}
	if len(req.SetFields()) == 0 {
		return validation.NewError("validation_no_fields", "no update fields supplied")
	}
	return nil
}

// SetFields returns the partial update to apply, keyed by stored
// field name. Absent fields are omitted.
func (req UpdateBookRequest) SetFields() map[string]interface{} {
	fields := make(map[string]interface{})
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Author != nil {
		fields["author"] = *req.Author
	}
	if req.Year != nil {
		fields["year"] = *req.Year
	}
	if req.ISBN != nil {
		fields["isbn"] = *req.ISBN
	}
	return fields
}

// RatingRequest is one element of the POST /books/rate/ body. The
// rating itself is ephemeral input; it folds into the book's stored
// running average and is never persisted as its own record.
type RatingRequest struct {
	BookID int `json:"book_id"`
	Value  int `json:"value"`
}

// Validate validates RatingRequest
func (req RatingRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.BookID, validation.Required),
	)
}

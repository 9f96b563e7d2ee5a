package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateReviewRequest is one element of the POST /reviews/ body.
type CreateReviewRequest struct {
	UserID  int    `json:"user_id"`
	BookID  int    `json:"book_id"`
	Content string `json:"content"`
	Rating  *int   `json:"rating,omitempty"`
}

// Validate validates CreateReviewRequest
func (req CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.BookID, validation.Required),
		validation.Field(&req.Content, validation.Required),
		validation.Field(&req.Rating, validation.Min(1), validation.Max(5)),
	)
}

func (req CreateReviewRequest) ToEntity() *Review {
	return &Review{
		UserID:  req.UserID,
		BookID:  req.BookID,
		Content: req.Content,
		Rating:  req.Rating,
	}
}

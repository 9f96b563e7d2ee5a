package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateUserRequest is one element of the POST /users/ body.
type CreateUserRequest struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	FavoriteBooks []int  `json:"favorite_books"`
}

// Validate validates CreateUserRequest
func (req CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.ID, validation.Required),
		validation.Field(&req.Name, validation.Required),
	)
}

func (req CreateUserRequest) ToEntity() *User {
	favorites := req.FavoriteBooks
	if favorites == nil {
		favorites = []int{}
	}
	return &User{
		ID:              req.ID,
		Name:            req.Name,
		FavoriteBooks:   favorites,
		ReadingProgress: []ReadingProgress{},
	}
}

// TrackProgressRequest is one element of the PUT /users/progress/ body.
type TrackProgressRequest struct {
	BookID         int `json:"book_id"`
	PercentageRead int `json:"percentage_read"`
}

// Validate validates TrackProgressRequest
func (req TrackProgressRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.BookID, validation.Required),
		validation.Field(&req.PercentageRead, validation.Min(0), validation.Max(100)),
	)
}

func (req TrackProgressRequest) ToEntry() ReadingProgress {
	return ReadingProgress{
		BookID:         req.BookID,
		PercentageRead: req.PercentageRead,
	}
}

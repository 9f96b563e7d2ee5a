package model

// Review links a user to a book with free-form content. There is no
// uniqueness constraint: a user may review the same book many times.
// Rating is optional; when absent it renders as null in responses.
type Review struct {
	UserID  int    `json:"user_id" bson:"user_id"`
	BookID  int    `json:"book_id" bson:"book_id"`
	Content string `json:"content" bson:"content"`
	Rating  *int   `json:"rating,omitempty" bson:"rating,omitempty"`
}

// Response is the review shape embedded in formatted book responses.
// The field names follow the external contract.
type Response struct {
	UserID  int    `json:"User ID"`
	Content string `json:"Content"`
	Rating  *int   `json:"Rating"`
}

func (r *Review) ToResponse() Response {
	return Response{
		UserID:  r.UserID,
		Content: r.Content,
		Rating:  r.Rating,
	}
}

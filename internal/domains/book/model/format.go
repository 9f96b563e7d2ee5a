package model

import (
	reviewmodel "github.com/Sravanvenkat03/library/internal/domains/review/model"
)

// FormattedBook is the external read shape of a book. The field names
// follow the external contract; Reviews is always present, empty when
// the book has none.
type FormattedBook struct {
	ID            int                    `json:"ID"`
	Title         string                 `json:"Title"`
	Author        string                 `json:"Author"`
	Year          int                    `json:"Year"`
	ISBN          string                 `json:"ISBN"`
	AverageRating float64                `json:"Average Rating"`
	Reviews       []reviewmodel.Response `json:"Reviews"`
}

// FormatBook maps a stored book plus its reviews into the response
// shape. Pure mapping, no computation beyond the stored average.
func FormatBook(b Book, reviews []reviewmodel.Review) FormattedBook {
	responses := make([]reviewmodel.Response, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, reviews[i].ToResponse())
	}

	return FormattedBook{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Year:          b.Year,
		ISBN:          b.ISBN,
		AverageRating: b.AverageRating,
		Reviews:       responses,
	}
}

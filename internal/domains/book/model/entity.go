package model

// Book is a library book document. IDs are caller-supplied integers,
// not store-generated identifiers.
type Book struct {
	ID            int     `json:"id" bson:"id"`
	Title         string  `json:"title" bson:"title"`
	Author        string  `json:"author" bson:"author"`
	Year          int     `json:"year" bson:"year"`
	ISBN          string  `json:"isbn" bson:"isbn"`
	AverageRating float64 `json:"average_rating" bson:"average_rating"`
	RatingCount   int     `json:"rating_count" bson:"rating_count"`
}

// NextAverage folds one rating value into a running mean:
// (avg*count + value) / (count + 1). The store-side rating update
// applies the same formula atomically per document; this helper keeps
// the formula testable in isolation.
func NextAverage(avg float64, count, value int) float64 {
	return (avg*float64(count) + float64(value)) / float64(count+1)
}

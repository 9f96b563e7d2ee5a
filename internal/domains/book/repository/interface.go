package repository

import (
	"context"

	"github.com/Sravanvenkat03/library/internal/domains/book/model"
)

// BookRepository is the document-store access contract for books.
// Every call is independently atomic against the store; nothing here
// spans documents or collections.
type BookRepository interface {
	FindByID(ctx context.Context, id int) (*model.Book, error)
	Exists(ctx context.Context, id int) (bool, error)
	FindByTitles(ctx context.Context, titles []string) ([]model.Book, error)
	// FindNotIn returns up to limit books whose id is not in excludedIDs.
	FindNotIn(ctx context.Context, excludedIDs []int, limit int64) ([]model.Book, error)
	Insert(ctx context.Context, book *model.Book) error
	// UpdateFields applies a partial update; reports whether a document matched.
	UpdateFields(ctx context.Context, id int, fields map[string]interface{}) (bool, error)
	// Delete removes one book; reports whether a document was deleted.
	Delete(ctx context.Context, id int) (bool, error)
	// ApplyRating folds value into the book's running average and
	// increments rating_count, atomically on the store side; reports
	// whether the book existed.
	ApplyRating(ctx context.Context, id, value int) (bool, error)
}

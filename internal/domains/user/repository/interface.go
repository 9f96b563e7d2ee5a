package repository

import (
	"context"

	"github.com/Sravanvenkat03/library/internal/domains/user/model"
)

// UserRepository is the document-store access contract for users and
// the standalone reading_progress collection.
type UserRepository interface {
	FindByID(ctx context.Context, id int) (*model.User, error)
	Exists(ctx context.Context, id int) (bool, error)
	Insert(ctx context.Context, user *model.User) error
	// Delete removes one user document; reports whether it existed.
	Delete(ctx context.Context, id int) (bool, error)
	// SetReadingProgress replaces a user's whole progress list.
	SetReadingProgress(ctx context.Context, id int, entries []model.ReadingProgress) error
	// DeleteProgressByUser purges the reading_progress collection for
	// a user; returns the count.
	DeleteProgressByUser(ctx context.Context, userID int) (int64, error)
}

package model

// User is a library member document. The reading_progress list holds
// at most one entry per book_id; MergeProgress maintains that.
type User struct {
	ID              int               `json:"id" bson:"id"`
	Name            string            `json:"name" bson:"name"`
	FavoriteBooks   []int             `json:"favorite_books" bson:"favorite_books"`
	ReadingProgress []ReadingProgress `json:"reading_progress" bson:"reading_progress"`
}

// ReadingProgress is one per-book progress entry. As input it is
// ephemeral: it merges into the owning user's list rather than being
// persisted as its own record.
type ReadingProgress struct {
	BookID         int `json:"book_id" bson:"book_id"`
	PercentageRead int `json:"percentage_read" bson:"percentage_read"`
}

// MergeProgress folds the given entries into the user's list: an
// entry with a known book_id replaces that book's percentage, a new
// book_id appends. Existing entries are otherwise untouched.
func (u *User) MergeProgress(entries []ReadingProgress) {
	for _, entry := range entries {
		updated := false
		for i := range u.ReadingProgress {
			if u.ReadingProgress[i].BookID == entry.BookID {
				u.ReadingProgress[i].PercentageRead = entry.PercentageRead
				updated = true
				break
			}
		}
		if !updated {
			u.ReadingProgress = append(u.ReadingProgress, entry)
		}
	}
}

package entity

import "time"

// Post is a published blog entry. AuthorID is immutable after creation;
// only the author may update the remaining fields.
type Post struct {
	ID       string
	Title    string
	Summary  string
	Content  string
	Cover    string // stored file path of the uploaded cover image
	AuthorID string

	// AuthorName carries the author's username when the post was read with
	// the author joined in. Not persisted on the posts table.
	AuthorName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

package entities

import "time"

// Post represents a blog post entity in the database
type Post struct {
	ID        string    `json:"id"` // UUID
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"` // Defaults to false (draft)
	AuthorID  string    `json:"author_id"` // UUID, immutable once set
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

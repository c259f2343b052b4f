package domain

import "time"

// ArticleStatus represents the moderation state of an article.
type ArticleStatus string

const (
	StatusPending  ArticleStatus = "pending"
	StatusApproved ArticleStatus = "approved"
)

// Valid reports whether s is one of the known statuses.
func (s ArticleStatus) Valid() bool {
	return s == StatusPending || s == StatusApproved
}

// Article is a publisher submission. ID and Timestamp are assigned by the
// server at creation and never change afterwards.
type Article struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Author    string        `json:"author"`
	Category  string        `json:"category"`
	ImageURL  *string       `json:"image_url"`
	Status    ArticleStatus `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
}

// AuthorCount is the number of approved articles attributed to one author.
type AuthorCount struct {
	Author string
	Count  int64
}

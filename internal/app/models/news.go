package models

import "time"

// NewsArticle represents a published news item.
// PublishedAt is assigned by the server on create and never changes.
type NewsArticle struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	IsImportant bool      `json:"isImportant"`
	PublishedAt time.Time `json:"publishedAt"`
}

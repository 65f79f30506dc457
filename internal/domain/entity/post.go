package entity

import "time"

// Post aviso del tablón interno del personal.
type Post struct {
	ID         string
	Title      string
	Content    string
	Pinned     bool
	AuthorID   string
	AuthorName string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

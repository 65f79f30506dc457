package dto

import "time"

// CreatePostRequest nuevo aviso del tablón.
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Pinned  bool   `json:"pinned"`
}

// UpdatePostRequest campos opcionales; nil = sin cambio.
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Pinned  *bool   `json:"pinned"`
}

// PostResponse salida de un aviso.
type PostResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Pinned     bool      `json:"pinned"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PostListResponse página del tablón.
type PostListResponse struct {
	Items []PostResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

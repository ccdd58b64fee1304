package domain

import "time"

type Note struct {
	ID         int64     `json:"id"`
	OwnerEmail string    `json:"-"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// NoteRequest is the body for both create and update; a note's owner and id
// are never writable. Oversized content is rejected, not truncated.
type NoteRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required,max=2000"`
}

package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Note represents a single user-authored note.
type Note struct {
	// ID is the unique identifier for the note
	ID string `json:"id"`

	// Title is the note title, non-empty after trimming
	Title string `json:"title"`

	// Content is the note body, may be empty
	Content string `json:"content"`

	// CreatedAt is set once when the note is created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on every successful edit; equal to
	// CreatedAt while the note has never been edited
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewNote builds a note with a fresh UUID and both timestamps set to now.
// Title and content are stored trimmed.
func NewNote(title, content string, now time.Time) Note {
	return Note{
		ID:        uuid.New().String(),
		Title:     strings.TrimSpace(title),
		Content:   strings.TrimSpace(content),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Edited reports whether the note has been modified since creation.
func (n Note) Edited() bool {
	return !n.UpdatedAt.Equal(n.CreatedAt)
}

// Matches reports whether the query occurs in the title or content,
// case-insensitively. A blank query matches every note.
func (n Note) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Content), q)
}

// Excerpt returns the content truncated to limit runes with a trailing
// ellipsis. Truncation is display-only; the stored content is untouched.
func (n Note) Excerpt(limit int) string {
	if limit <= 0 {
		return n.Content
	}

	runes := []rune(n.Content)
	if len(runes) <= limit {
		return n.Content
	}

	return string(runes[:limit]) + "…"
}

// Package note implements the personal knowledge base: free-text notes
// with tags, persisted as a single JSON document.
//
// The public API mirrors the shell commands:
//   - Add, Edit, Delete for the note lifecycle
//   - List, Get, Search, FilterByTag for querying
//
// Every operation loads the full collection from storage and, when it
// mutates, writes the full collection back. There is no cache across
// operations.
package note

// Note is a single knowledge-base entry.
type Note struct {
	// ID is a positive integer, unique within the notes collection.
	ID int `json:"id"`

	// Title is the short summary of the note.
	Title string `json:"title"`

	// Content is the free-text body, possibly multi-line.
	Content string `json:"content"`

	// Tags are trimmed non-empty labels in insertion order. Duplicates
	// are permitted.
	Tags []string `json:"tags"`

	// CreatedAt is when the note was created, fixed at creation.
	CreatedAt string `json:"created_at"`

	// UpdatedAt is refreshed on every mutation, even a no-op edit.
	UpdatedAt string `json:"updated_at"`
}

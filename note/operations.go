package note

import (
	"strings"

	internalstrings "github.com/amckenna/artgrow/internal/strings"
	"github.com/amckenna/artgrow/internal/stamp"
	"github.com/amckenna/artgrow/internal/storage"
)

// Add creates a new note. Title and content are trimmed; tags are trimmed
// and empty entries dropped, preserving order. Add never rejects input.
func (s *Store) Add(title, content string, tags []string) (*Note, error) {
	notes, err := s.load()
	if err != nil {
		return nil, err
	}

	now := stamp.Now()
	created := Note{
		ID:        storage.NextID(noteIDs(notes)),
		Title:     strings.TrimSpace(title),
		Content:   strings.TrimSpace(content),
		Tags:      cleanTags(tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	notes = append(notes, created)
	if err := s.save(notes); err != nil {
		return nil, err
	}

	return &created, nil
}

// List returns all notes in storage order.
func (s *Store) List() ([]Note, error) {
	return s.load()
}

// Get returns the note with the given id, or ErrNoteNotFound.
func (s *Store) Get(id int) (*Note, error) {
	notes, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range notes {
		if notes[i].ID == id {
			return &notes[i], nil
		}
	}
	return nil, ErrNoteNotFound
}

// Search returns notes whose title, content, or any tag contains query,
// case-insensitively, in storage order. An empty query matches every note.
func (s *Store) Search(query string) ([]Note, error) {
	notes, err := s.load()
	if err != nil {
		return nil, err
	}

	query = internalstrings.NormalizeLowerTrimSpace(query)
	var matches []Note
	for _, n := range notes {
		if noteMatches(n, query) {
			matches = append(matches, n)
		}
	}
	return matches, nil
}

func noteMatches(n Note, query string) bool {
	if strings.Contains(strings.ToLower(n.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(n.Content), query) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// FilterByTag returns notes carrying the exact tag, compared
// case-insensitively. Unlike Search this is not a substring match.
func (s *Store) FilterByTag(tag string) ([]Note, error) {
	notes, err := s.load()
	if err != nil {
		return nil, err
	}

	tag = internalstrings.NormalizeLowerTrimSpace(tag)
	var matches []Note
	for _, n := range notes {
		for _, candidate := range n.Tags {
			if strings.ToLower(candidate) == tag {
				matches = append(matches, n)
				break
			}
		}
	}
	return matches, nil
}

// EditOptions carries replacement values for Edit. A field left blank
// (empty after trimming) keeps the existing value; there is no way to
// clear a field through Edit.
type EditOptions struct {
	Title   string
	Content string
	Tags    []string
}

// Edit applies the non-blank fields of opts to the note with the given id.
// UpdatedAt is refreshed even when every field is blank.
func (s *Store) Edit(id int, opts EditOptions) (*Note, error) {
	notes, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range notes {
		if notes[i].ID != id {
			continue
		}

		if title := strings.TrimSpace(opts.Title); title != "" {
			notes[i].Title = title
		}
		if content := strings.TrimSpace(opts.Content); content != "" {
			notes[i].Content = content
		}
		if tags := cleanTags(opts.Tags); len(tags) > 0 {
			notes[i].Tags = tags
		}
		notes[i].UpdatedAt = stamp.Now()

		if err := s.save(notes); err != nil {
			return nil, err
		}
		return &notes[i], nil
	}

	return nil, ErrNoteNotFound
}

// Delete removes the note with the given id, or returns ErrNoteNotFound.
func (s *Store) Delete(id int) error {
	notes, err := s.load()
	if err != nil {
		return err
	}

	remaining := notes[:0:0]
	for _, n := range notes {
		if n.ID != id {
			remaining = append(remaining, n)
		}
	}
	if len(remaining) == len(notes) {
		return ErrNoteNotFound
	}

	return s.save(remaining)
}

func cleanTags(tags []string) []string {
	var cleaned []string
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		cleaned = append(cleaned, tag)
	}
	return cleaned
}

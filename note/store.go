package note

import (
	"fmt"

	"github.com/amckenna/artgrow/internal/storage"
)

// Store provides access to the notes collection.
type Store struct {
	db *storage.Store
}

// NewStore returns a store backed by db.
func NewStore(db *storage.Store) *Store {
	return &Store{db: db}
}

func (s *Store) load() ([]Note, error) {
	notes, err := storage.LoadAll[Note](s.db, storage.KindNotes)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}
	return notes, nil
}

func (s *Store) save(notes []Note) error {
	if err := storage.SaveAll(s.db, storage.KindNotes, notes); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}
	return nil
}

func noteIDs(notes []Note) []int {
	ids := make([]int, len(notes))
	for i := range notes {
		ids[i] = notes[i].ID
	}
	return ids
}

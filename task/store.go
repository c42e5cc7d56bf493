package task

import (
	"fmt"
	"strings"

	internalstrings "github.com/amckenna/artgrow/internal/strings"
	"github.com/amckenna/artgrow/internal/storage"
)

// Store provides access to the tasks collection.
type Store struct {
	db *storage.Store
}

// NewStore returns a store backed by db.
func NewStore(db *storage.Store) *Store {
	return &Store{db: db}
}

func (s *Store) load() ([]Task, error) {
	tasks, err := storage.LoadAll[Task](s.db, storage.KindTasks)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return tasks, nil
}

func (s *Store) save(tasks []Task) error {
	if err := storage.SaveAll(s.db, storage.KindTasks, tasks); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

func taskIDs(tasks []Task) []int {
	ids := make([]int, len(tasks))
	for i := range tasks {
		ids[i] = tasks[i].ID
	}
	return ids
}

func normalizeLower(value string) string {
	return internalstrings.NormalizeLowerTrimSpace(value)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

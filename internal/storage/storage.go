// Package storage persists entity collections as single JSON documents.
//
// Each kind of record (notes, tasks) lives in its own file named
// <kind>.json, shaped as {"<kind>": [ <record>, ... ]}. Every load reads
// the whole document and every save rewrites it; callers must reload
// before trusting state, since there is no in-memory cache across
// commands.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes JSON documents under a data directory.
type Store struct {
	dir string
}

// Kinds of collections the store knows about.
const (
	KindNotes = "notes"
	KindTasks = "tasks"
)

// NewStore returns a store rooted at dir. The directory is created lazily
// on first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory the store writes to.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(kind string) string {
	return filepath.Join(s.dir, kind+".json")
}

// LoadAll reads the full collection for kind, in document order.
//
// An absent file, malformed JSON, or a document whose named field is not an
// array all yield an empty collection and no error. Only genuine I/O
// failures (for example permission errors) are reported.
func LoadAll[T any](s *Store, kind string) ([]T, error) {
	data, err := os.ReadFile(s.path(kind))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s file: %w", kind, err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil
	}

	raw, ok := doc[kind]
	if !ok {
		return nil, nil
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, nil
	}

	return records, nil
}

// SaveAll overwrites the document for kind with the full collection.
// The parent directory is created if missing, and the document is written
// via a temp file and rename so a failed write never truncates the store.
func SaveAll[T any](s *Store, kind string, records []T) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	if records == nil {
		records = []T{}
	}
	doc := map[string][]T{kind: records}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", kind, err)
	}
	data = append(data, '\n')

	tmpFile, err := os.CreateTemp(s.dir, kind+".json.tmp")
	if err != nil {
		return fmt.Errorf("create temp %s file: %w", kind, err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp %s file: %w", kind, err)
	}

	if err := os.Rename(name, s.path(kind)); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename %s file: %w", kind, err)
	}

	return nil
}

// NextID returns max(ids)+1, or 1 when ids is empty.
//
// The counter is derived from the live collection rather than persisted, so
// deleting the highest-numbered record makes its id available again.
func NextID(ids []int) int {
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

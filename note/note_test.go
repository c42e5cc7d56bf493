package note_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/amckenna/artgrow/internal/storage"
	"github.com/amckenna/artgrow/note"
)

func newStore(t *testing.T) (*note.Store, string) {
	t.Helper()
	dir := t.TempDir()
	return note.NewStore(storage.NewStore(dir)), dir
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	store, _ := newStore(t)

	first, err := store.Add("First", "content", nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("first id = %d, want 1", first.ID)
	}

	second, err := store.Add("Second", "", nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if second.ID != 2 {
		t.Errorf("second id = %d, want 2", second.ID)
	}
}

func TestAddTrimsAndCleansTags(t *testing.T) {
	store, _ := newStore(t)

	created, err := store.Add("  Padded title  ", "  body  ", []string{" gesture ", "", "  ", "anatomy"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if created.Title != "Padded title" {
		t.Errorf("title = %q", created.Title)
	}
	if created.Content != "body" {
		t.Errorf("content = %q", created.Content)
	}
	if len(created.Tags) != 2 || created.Tags[0] != "gesture" || created.Tags[1] != "anatomy" {
		t.Errorf("tags = %v", created.Tags)
	}
	if created.CreatedAt == "" || created.CreatedAt != created.UpdatedAt {
		t.Errorf("timestamps: created %q, updated %q", created.CreatedAt, created.UpdatedAt)
	}
}

func TestAddAcceptsEmptyEverything(t *testing.T) {
	store, _ := newStore(t)

	created, err := store.Add("", "", nil)
	if err != nil {
		t.Fatalf("add should never reject input: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("id = %d", created.ID)
	}
}

func TestGetNotFound(t *testing.T) {
	store, _ := newStore(t)

	if _, err := store.Get(5); !errors.Is(err, note.ErrNoteNotFound) {
		t.Errorf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestSearchMatchesTitleContentAndTags(t *testing.T) {
	store, _ := newStore(t)

	mustAdd(t, store, "Gesture study", "loose lines", []string{"warmup"})
	mustAdd(t, store, "Color notes", "GESTURE mentioned here", nil)
	mustAdd(t, store, "Anatomy", "bones", []string{"gesture"})
	mustAdd(t, store, "Unrelated", "perspective", nil)

	matches, err := store.Search("gesture")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d: %+v", len(matches), matches)
	}
}

func TestSearchEmptyQueryMatchesAll(t *testing.T) {
	store, _ := newStore(t)
	mustAdd(t, store, "One", "", nil)
	mustAdd(t, store, "Two", "", nil)

	matches, err := store.Search("")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("expected every note, got %d", len(matches))
	}
}

func TestFilterByTagExactMatch(t *testing.T) {
	store, _ := newStore(t)
	mustAdd(t, store, "A", "", []string{"gesture"})
	mustAdd(t, store, "B", "", []string{"Gesture"})
	mustAdd(t, store, "C", "", []string{"gesture drawing"})

	matches, err := store.FilterByTag("GESTURE")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected case-insensitive exact matches only, got %d: %+v", len(matches), matches)
	}
	for _, n := range matches {
		if n.Title == "C" {
			t.Error("substring tag should not match")
		}
	}
}

func TestEditBlankKeepsFieldsButRefreshesUpdatedAt(t *testing.T) {
	dir := t.TempDir()
	seed := `{
  "notes": [
    {
      "id": 1,
      "title": "Old title",
      "content": "Old content",
      "tags": ["old"],
      "created_at": "2020-01-01T00:00:00",
      "updated_at": "2020-01-01T00:00:00"
    }
  ]
}
`
	if err := os.WriteFile(filepath.Join(dir, "notes.json"), []byte(seed), 0o644); err != nil {
		t.Fatal(err)
	}
	store := note.NewStore(storage.NewStore(dir))

	edited, err := store.Edit(1, note.EditOptions{})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}

	if edited.Title != "Old title" || edited.Content != "Old content" {
		t.Errorf("blank edit changed fields: %+v", edited)
	}
	if len(edited.Tags) != 1 || edited.Tags[0] != "old" {
		t.Errorf("blank edit changed tags: %v", edited.Tags)
	}
	if edited.UpdatedAt == "2020-01-01T00:00:00" {
		t.Error("updated_at should be refreshed even on a blank edit")
	}
	if edited.CreatedAt != "2020-01-01T00:00:00" {
		t.Errorf("created_at should never change, got %q", edited.CreatedAt)
	}
}

func TestEditReplacesNonBlankFields(t *testing.T) {
	store, _ := newStore(t)
	mustAdd(t, store, "Old", "old content", []string{"old"})

	edited, err := store.Edit(1, note.EditOptions{Title: "New", Tags: []string{"new", "tags"}})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if edited.Title != "New" {
		t.Errorf("title = %q", edited.Title)
	}
	if edited.Content != "old content" {
		t.Errorf("content should be kept, got %q", edited.Content)
	}
	if len(edited.Tags) != 2 || edited.Tags[0] != "new" {
		t.Errorf("tags = %v", edited.Tags)
	}
}

func TestEditNotFound(t *testing.T) {
	store, _ := newStore(t)
	if _, err := store.Edit(9, note.EditOptions{Title: "x"}); !errors.Is(err, note.ErrNoteNotFound) {
		t.Errorf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	store, _ := newStore(t)
	mustAdd(t, store, "Keep", "", nil)
	mustAdd(t, store, "Drop", "", nil)

	if err := store.Delete(2); err != nil {
		t.Fatalf("delete: %v", err)
	}

	remaining, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Title != "Keep" {
		t.Errorf("remaining = %+v", remaining)
	}

	if err := store.Delete(2); !errors.Is(err, note.ErrNoteNotFound) {
		t.Errorf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestIDReuseAfterDeletingMax(t *testing.T) {
	store, _ := newStore(t)
	mustAdd(t, store, "One", "", nil)
	mustAdd(t, store, "Two", "", nil)

	if err := store.Delete(2); err != nil {
		t.Fatalf("delete: %v", err)
	}

	created, err := store.Add("Reborn", "", nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.ID != 2 {
		t.Errorf("id = %d, want the freed id 2", created.ID)
	}
}

func TestLoadMalformedFileYieldsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.json"), []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := note.NewStore(storage.NewStore(dir))

	notes, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("expected empty collection, got %+v", notes)
	}
}

func mustAdd(t *testing.T, store *note.Store, title, content string, tags []string) *note.Note {
	t.Helper()
	created, err := store.Add(title, content, tags)
	if err != nil {
		t.Fatalf("add %q: %v", title, err)
	}
	return created
}

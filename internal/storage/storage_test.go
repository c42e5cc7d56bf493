package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type record struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	want := []record{{ID: 1, Title: "first"}, {ID: 2, Title: "second"}}
	if err := SaveAll(store, KindNotes, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := LoadAll[record](store, KindNotes)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("round trip mismatch: got %+v", got)
	}
}

func TestLoadAllMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())

	got, err := LoadAll[record](store, KindTasks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty collection, got %+v", got)
	}
}

func TestLoadAllSoftFails(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"notes": [`},
		{"not an object", `[1, 2, 3]`},
		{"missing field", `{"tasks": []}`},
		{"field not an array", `{"notes": {"id": 1}}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := t.TempDir()
			store := NewStore(dir)
			if err := os.WriteFile(filepath.Join(dir, "notes.json"), []byte(test.content), 0o644); err != nil {
				t.Fatal(err)
			}

			got, err := LoadAll[record](store, KindNotes)
			if err != nil {
				t.Fatalf("expected soft failure, got error: %v", err)
			}
			if len(got) != 0 {
				t.Errorf("expected empty collection, got %+v", got)
			}
		})
	}
}

func TestSaveAllDocumentShape(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if err := SaveAll(store, KindTasks, []record{{ID: 1, Title: "study"}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "tasks.json"))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, `"tasks": [`) {
		t.Errorf("expected named collection field, got:\n%s", content)
	}
	if !strings.HasSuffix(content, "\n") {
		t.Error("expected trailing newline")
	}
}

func TestSaveAllEmptyWritesArray(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if err := SaveAll[record](store, KindNotes, nil); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "notes.json"))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if !strings.Contains(string(data), "[]") {
		t.Errorf("expected empty array, got:\n%s", data)
	}
}

func TestSaveAllCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewStore(dir)

	if err := SaveAll(store, KindNotes, []record{{ID: 1}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "notes.json")); err != nil {
		t.Errorf("expected saved file: %v", err)
	}
}

func TestSaveAllLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if err := SaveAll(store, KindNotes, []record{{ID: 1}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestNextID(t *testing.T) {
	tests := []struct {
		name string
		ids  []int
		want int
	}{
		{"empty", nil, 1},
		{"sequential", []int{1, 2, 3}, 4},
		{"gap reuses nothing below max", []int{1, 3}, 4},
		{"max deleted frees its id", []int{1, 2}, 3},
		{"unordered", []int{5, 2, 9, 1}, 10},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := NextID(test.ids); got != test.want {
				t.Errorf("NextID(%v) = %d, want %d", test.ids, got, test.want)
			}
		})
	}
}

package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRecordAppendsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "commands.log")
	log := NewLog(path)

	if err := log.Record("list-notes"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := log.Record("bogus command"); err != nil {
		t.Fatalf("record: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 entries, got %d: %q", len(lines), lines)
	}
	if !strings.HasSuffix(lines[0], "] list-notes") {
		t.Errorf("unexpected first entry: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "[") || !strings.HasSuffix(lines[1], "] bogus command") {
		t.Errorf("unexpected second entry: %q", lines[1])
	}
}

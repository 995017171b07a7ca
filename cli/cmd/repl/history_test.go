package repl

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHistoryWriteAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)

	for _, line := range []string{
		"global x = 10;",
		"x 2 *",
		":list",
	} {
		if _, err := h.Write(line); err != nil {
			t.Fatalf("Write(%q) error = %v", line, err)
		}
	}

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}

	// A fresh instance reads the same entries back from disk.
	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"global x = 10;", "x 2 *", ":list"}
	got := reloaded.Entries()

	if len(got) != len(want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entries()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHistoryDeduplication(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)

	_, _ = h.Write("first")
	_, _ = h.Write("second")
	_, _ = h.Write("first") // moves to most-recent position

	got := h.Entries()
	want := []string{"second", "first"}

	if len(got) != len(want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entries()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Consecutive duplicates are not appended at all.
	_, _ = h.Write("first")

	if h.Len() != 2 {
		t.Errorf("Len() = %d after consecutive duplicate, want 2", h.Len())
	}
}

func TestHistoryMissingFile(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "absent"))

	if err := h.Load(); err != nil {
		t.Fatalf("Load() error = %v, want nil for missing file", err)
	}

	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestHistoryGetLineBounds(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), baseHistory))

	_, _ = h.Write("only")

	if _, err := h.GetLine(-1); err == nil {
		t.Error("GetLine(-1) expected error")
	}

	if _, err := h.GetLine(1); err == nil {
		t.Error("GetLine(1) expected error")
	}

	line, err := h.GetLine(0)
	if err != nil || line != "only" {
		t.Errorf("GetLine(0) = (%q, %v), want (%q, nil)", line, err, "only")
	}
}

func TestHistorySkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	if err := os.WriteFile(
		path, []byte("one\n\n  \ntwo\n"), 0o600,
	); err != nil {
		t.Fatal(err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}
}

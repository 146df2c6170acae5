package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestWalker_Walk(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"b.txt",
		"a.txt",
		"notes.md",
		"sub/c.txt",
		".git/objects/d.txt",
	)

	w := NewWalker([]string{"**/*.txt"}, []string{"**/.git/**", ".git/**"})
	files, err := w.Walk(root)
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"a.txt", "b.txt", "sub/c.txt"}
	if len(files) != len(expected) {
		t.Fatalf("expected %d files, got %d: %+v", len(expected), len(files), files)
	}
	for i, f := range files {
		if f.RelPath != expected[i] {
			t.Errorf("file %d: expected %s, got %s", i, expected[i], f.RelPath)
		}
		if !filepath.IsAbs(f.Path) {
			t.Errorf("expected absolute path, got %s", f.Path)
		}
	}
}

func TestWalker_DefaultIncludesEverything(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.txt", "b.md")

	files, err := NewWalker(nil, nil).Walk(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Errorf("expected 2 files, got %d", len(files))
	}
}

func TestWalker_MissingRoot(t *testing.T) {
	_, err := NewWalker(nil, nil).Walk(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("expected error for missing root")
	}
}

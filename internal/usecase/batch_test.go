package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"textclean/internal/adapter/analyzer"
	"textclean/internal/adapter/fs"
	"textclean/internal/domain"
)

func TestBatch_Run(t *testing.T) {
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")

	files := map[string]string{
		"a.txt":        "The Quick, Brown Fox3 jumps!! over 42 lazy dogs.",
		"nested/b.txt": "The, the! THE??",
		"skip.md":      "not selected",
	}
	for name, content := range files {
		path := filepath.Join(inDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	var calls []string
	batch := NewBatchUseCase(newTestCleaner(false), fs.NewWalker([]string{"**/*.txt"}, nil), zerolog.Nop())
	result, err := batch.Run(context.Background(), inDir, outDir, 5, func(processed, total int, current string) {
		if total != 2 {
			t.Errorf("expected total 2, got %d", total)
		}
		calls = append(calls, current)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.FilesProcessed != 2 || result.FilesFailed != 0 {
		t.Errorf("unexpected result: %+v", result)
	}
	if result.Words != 5 {
		t.Errorf("expected 5 words in total, got %d", result.Words)
	}
	if len(calls) != 2 || calls[0] != "a.txt" || calls[1] != "nested/b.txt" {
		t.Errorf("unexpected progress calls: %v", calls)
	}

	got := readOutput(t, filepath.Join(outDir, "a.txt"))
	if got != "quick brown fox jumps lazy" {
		t.Errorf("unexpected a.txt output: %q", got)
	}
	if got := readOutput(t, filepath.Join(outDir, "nested", "b.txt")); got != "" {
		t.Errorf("expected empty b.txt output, got %q", got)
	}
	if _, err := os.Stat(filepath.Join(outDir, "skip.md")); !os.IsNotExist(err) {
		t.Error("excluded file should not be written")
	}
}

func TestBatch_CollectsFailures(t *testing.T) {
	inDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(inDir, "good.txt"), []byte("fine words"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(inDir, "bad.txt"), []byte{0xff, 0xfe, 0xfd}, 0644); err != nil {
		t.Fatal(err)
	}

	outDir := t.TempDir()
	batch := NewBatchUseCase(newTestCleaner(false), fs.NewWalker(nil, nil), zerolog.Nop())
	result, err := batch.Run(context.Background(), inDir, outDir, 10, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.FilesProcessed != 1 || result.FilesFailed != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
	if _, err := os.Stat(filepath.Join(outDir, "bad.txt")); !os.IsNotExist(err) {
		t.Error("failed file should not produce output")
	}
}

func TestBatch_MissingInputDir(t *testing.T) {
	batch := NewBatchUseCase(newTestCleaner(false), fs.NewWalker(nil, nil), zerolog.Nop())
	_, err := batch.Run(context.Background(), filepath.Join(t.TempDir(), "nope"), t.TempDir(), 5, nil)
	if domain.KindOf(err) != domain.InputNotFound {
		t.Errorf("expected InputNotFound, got %v", err)
	}
}

func TestBatch_ResourceFailure(t *testing.T) {
	inDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(inDir, "a.txt"), []byte("words"), 0644); err != nil {
		t.Fatal(err)
	}

	cleaner := NewCleanUseCase(analyzer.NewWordTokenizer(), failingStopwords{}, nil, zerolog.Nop())
	batch := NewBatchUseCase(cleaner, fs.NewWalker(nil, nil), zerolog.Nop())
	if _, err := batch.Run(context.Background(), inDir, t.TempDir(), 5, nil); domain.KindOf(err) != domain.InternalFailure {
		t.Errorf("expected InternalFailure, got %v", err)
	}
}

func TestBatch_Cancelled(t *testing.T) {
	inDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(inDir, "a.txt"), []byte("words"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch := NewBatchUseCase(newTestCleaner(false), fs.NewWalker(nil, nil), zerolog.Nop())
	if _, err := batch.Run(ctx, inDir, t.TempDir(), 5, nil); err == nil {
		t.Error("expected error for cancelled context")
	}
}

package fileutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testData := []byte("hello world")

	if err := WriteFileAtomic(testFile, testData, 0644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	data, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != string(testData) {
		t.Errorf("File content mismatch: got %q, want %q", string(data), string(testData))
	}

	info, err := os.Stat(testFile)
	if err != nil {
		t.Fatalf("Failed to stat file: %v", err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("File permissions mismatch: got %o, want %o", info.Mode().Perm(), 0644)
	}

	assertOnly(t, tmpDir, "test.txt")
}

func TestWriteFileAtomicOverwrite(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")

	if err := WriteFileAtomic(testFile, []byte("initial"), 0644); err != nil {
		t.Fatalf("Initial write failed: %v", err)
	}
	newData := []byte("updated content")
	if err := WriteFileAtomic(testFile, newData, 0644); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}

	data, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != string(newData) {
		t.Errorf("File content mismatch: got %q, want %q", string(data), string(newData))
	}
}

func TestWriteAtomicFailedWriteKeepsOldFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "hands.phhs")
	if err := WriteFileAtomic(testFile, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("encoder failed")
	err := WriteAtomic(testFile, 0644, func(w io.Writer) error {
		if _, err := io.WriteString(w, "partial"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Expected the write error, got %v", err)
	}

	data, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "old" {
		t.Errorf("Old content replaced by %q", data)
	}
	assertOnly(t, tmpDir, "hands.phhs")
}

func TestWriteAtomicCreatesDirectories(t *testing.T) {
	t.Parallel()

	testFile := filepath.Join(t.TempDir(), "nested", "dir", "out.txt")
	if err := WriteFileAtomic(testFile, []byte("data"), 0600); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}
	if _, err := os.Stat(testFile); err != nil {
		t.Errorf("File not written: %v", err)
	}
}

func TestWriteAtomicParentIsFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFileAtomic(filepath.Join(blocker, "test.txt"), []byte("data"), 0644); err == nil {
		t.Error("Expected error when the parent path is a regular file")
	}
}

func assertOnly(t *testing.T, dir, name string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	for _, entry := range entries {
		if entry.Name() != name {
			t.Errorf("Unexpected file in directory: %s", entry.Name())
		}
	}
}

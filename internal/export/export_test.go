package export

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveWritesVerbatim(t *testing.T) {
	dir := t.TempDir()
	text := "line one\n- line two\n"

	path, err := Save(dir, "cyphernote.txt", text)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if path != filepath.Join(dir, "cyphernote.txt") {
		t.Errorf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != text {
		t.Errorf("saved %q, want %q", data, text)
	}
}

func TestSaveEnforcesTxtExtension(t *testing.T) {
	dir := t.TempDir()
	path, err := Save(dir, "notes", "x")
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if filepath.Ext(path) != ".txt" {
		t.Errorf("path = %q, want .txt extension", path)
	}
}

func TestSaveDefaultsFilename(t *testing.T) {
	dir := t.TempDir()
	path, err := Save(dir, "", "x")
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if filepath.Base(path) != "cyphernote.txt" {
		t.Errorf("path = %q, want cyphernote.txt", path)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deeper")
	if _, err := Save(dir, "cyphernote.txt", "x"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "cyphernote.txt")); err != nil {
		t.Errorf("file not created: %v", err)
	}
}

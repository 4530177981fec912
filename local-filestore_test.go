package main

import (
	"context"
	"path/filepath"
	"testing"
)

func TestLocalFileStore_SaveLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "in.csv")

	s := &LocalFileStore{}
	if err := s.Save(context.Background(), path, []byte("x,y\n1,2\n")); err != nil {
		t.Fatalf("Unexpected error saving: %s", err)
	}

	content, err := s.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Unexpected error loading: %s", err)
	}
	if string(content) != "x,y\n1,2\n" {
		t.Errorf("Expected saved content back, got '%s'", content)
	}
}

func TestLocalFileStore_Load_Missing(t *testing.T) {
	t.Parallel()

	s := &LocalFileStore{}
	_, err := s.Load(context.Background(), filepath.Join(t.TempDir(), "in.csv"))
	if err == nil {
		t.Error("Expected an error loading a missing file, got nil")
	}
}

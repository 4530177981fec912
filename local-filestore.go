package main

import (
	"context"
	"github.com/pkg/errors"
	"os"
	"path/filepath"
)

// LocalFileStore resolves paths against the working directory.
type LocalFileStore struct{}

func (_ *LocalFileStore) Load(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "local store couldn't read file")
	}
	return content, nil
}

func (_ *LocalFileStore) Save(ctx context.Context, path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "local store couldn't create directory")
		}
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return errors.Wrap(err, "local store couldn't write file")
	}
	return nil
}

package tables

import (
	"context"
	"testing"
)

type testFileStore struct {
	LoadFunc func(ctx context.Context, path string) ([]byte, error)
}

func newTestFileStore(t *testing.T) *testFileStore {
	return &testFileStore{
		LoadFunc: func(ctx context.Context, path string) ([]byte, error) {
			t.Error("Load should not be called")
			return nil, nil
		},
	}
}

func (fs *testFileStore) Load(ctx context.Context, path string) ([]byte, error) {
	return fs.LoadFunc(ctx, path)
}

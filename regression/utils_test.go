package regression

import (
	"context"
	"testing"
)

type testFileStore struct {
	SaveFunc func(ctx context.Context, path string, content []byte) error
}

func newTestFileStore(t *testing.T) *testFileStore {
	return &testFileStore{
		SaveFunc: func(ctx context.Context, path string, content []byte) error {
			t.Error("Save should not be called")
			return nil
		},
	}
}

func (fs *testFileStore) Save(ctx context.Context, path string, content []byte) error {
	return fs.SaveFunc(ctx, path, content)
}

package main

import (
	"context"
	"github.com/pkg/errors"
	"net/url"
	"strings"
)

type FileStore interface {
	Load(ctx context.Context, path string) ([]byte, error)
	Save(ctx context.Context, path string, content []byte) error
}

// SchemeFileStore picks a store by the path's URL scheme. Paths without a
// scheme go to Default.
type SchemeFileStore struct {
	Default FileStore
	Stores  map[string]FileStore
}

func (s *SchemeFileStore) Load(ctx context.Context, path string) ([]byte, error) {
	store, err := s.storeFor(path)
	if err != nil {
		return nil, err
	}
	return store.Load(ctx, path)
}

func (s *SchemeFileStore) Save(ctx context.Context, path string, content []byte) error {
	store, err := s.storeFor(path)
	if err != nil {
		return err
	}
	return store.Save(ctx, path, content)
}

func (s *SchemeFileStore) storeFor(path string) (FileStore, error) {
	i := strings.Index(path, "://")
	if i <= 0 {
		return s.Default, nil
	}

	scheme := strings.ToLower(path[:i])
	store, ok := s.Stores[scheme]
	if !ok {
		return nil, errors.Errorf("no store for scheme %q in %s", scheme, path)
	}
	return store, nil
}

// splitBucketPath splits scheme://bucket/key into bucket and key.
func splitBucketPath(path string) (bucket, key string, err error) {
	u, err := url.Parse(path)
	if err != nil {
		return "", "", errors.Wrapf(err, "couldn't parse %s", path)
	}

	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", errors.Errorf("%s should look like %s://bucket/key", path, u.Scheme)
	}
	return bucket, key, nil
}

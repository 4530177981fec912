package main

import (
	"cloud.google.com/go/storage"
	"context"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
	"io"
	"mime"
	"path"
)

// GCSFileStore reads and writes gs://bucket/key objects, with a new client
// per call.
type GCSFileStore struct {
	Options []option.ClientOption
}

func (s *GCSFileStore) Load(ctx context.Context, p string) ([]byte, error) {
	bucket, key, err := splitBucketPath(p)
	if err != nil {
		return nil, err
	}

	client, err := storage.NewClient(ctx, s.Options...)
	if err != nil {
		return nil, errors.Wrap(err, "gcs store couldn't create client")
	}
	defer client.Close()

	r, err := client.Bucket(bucket).Object(key).NewReader(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "gcs store couldn't open %s", p)
	}
	defer r.Close()

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "gcs store couldn't read %s", p)
	}
	return content, nil
}

func (s *GCSFileStore) Save(ctx context.Context, p string, content []byte) error {
	bucket, key, err := splitBucketPath(p)
	if err != nil {
		return err
	}

	client, err := storage.NewClient(ctx, s.Options...)
	if err != nil {
		return errors.Wrap(err, "gcs store couldn't create client")
	}
	defer client.Close()

	w := client.Bucket(bucket).Object(key).NewWriter(ctx)
	w.ContentType = mime.TypeByExtension(path.Ext(key))
	if _, err := w.Write(content); err != nil {
		_ = w.Close()
		return errors.Wrapf(err, "gcs store couldn't write %s", p)
	}
	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "gcs store couldn't finish writing %s", p)
	}
	return nil
}

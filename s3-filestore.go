package main

import (
	"bytes"
	"context"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"io"
	"mime"
	"os"
	"path"
)

type S3FileStore struct {
	Client *s3.Client
}

// NewS3FileStoreFromEnv configures a client from the usual AWS_* variables.
// Without an access key, requests are sent unsigned, which suits public
// buckets. AWS_ENDPOINT_URL selects an S3-compatible service with path-style
// addressing.
func NewS3FileStoreFromEnv() *S3FileStore {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}

	opts := s3.Options{Region: region}
	if keyID := os.Getenv("AWS_ACCESS_KEY_ID"); keyID != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(
			keyID, os.Getenv("AWS_SECRET_ACCESS_KEY"), os.Getenv("AWS_SESSION_TOKEN"),
		)
	} else {
		opts.Credentials = aws.AnonymousCredentials{}
	}
	if endpoint := os.Getenv("AWS_ENDPOINT_URL"); endpoint != "" {
		opts.BaseEndpoint = aws.String(endpoint)
		opts.UsePathStyle = true
	}

	return &S3FileStore{Client: s3.New(opts)}
}

func (s *S3FileStore) Load(ctx context.Context, p string) ([]byte, error) {
	bucket, key, err := splitBucketPath(p)
	if err != nil {
		return nil, err
	}

	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "s3 store couldn't get %s", p)
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "s3 store couldn't read %s", p)
	}
	return content, nil
}

func (s *S3FileStore) Save(ctx context.Context, p string, content []byte) error {
	bucket, key, err := splitBucketPath(p)
	if err != nil {
		return err
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(content),
	}
	if contentType := mime.TypeByExtension(path.Ext(key)); contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.Client.PutObject(ctx, input); err != nil {
		return errors.Wrapf(err, "s3 store couldn't put %s", p)
	}
	return nil
}

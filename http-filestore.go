package main

import (
	"cloud.google.com/go/storage"
	"context"
	"github.com/pkg/errors"
	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	"io"
	"net/http"
	"time"
)

type HttpClientMaker interface {
	MakeClient(ctx context.Context) (*http.Client, error)
}

type DefaultHttpClientMaker struct {
	Timeout time.Duration
}

func (cm *DefaultHttpClientMaker) MakeClient(ctx context.Context) (*http.Client, error) {
	return &http.Client{Timeout: cm.Timeout}, nil
}

// GoogleHttpClientMaker authenticates with application default credentials,
// for fetching non-public objects over storage.googleapis.com.
type GoogleHttpClientMaker struct{}

func (_ *GoogleHttpClientMaker) MakeClient(ctx context.Context) (*http.Client, error) {
	client, err := google.DefaultClient(ctx, storage.ScopeReadOnly)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't create google client")
	}
	return client, nil
}

// HTTPFileStore fetches whole files with GET. It can't save.
type HTTPFileStore struct {
	ClientMaker HttpClientMaker
	Limiter     *rate.Limiter
}

func (s *HTTPFileStore) Load(ctx context.Context, path string) ([]byte, error) {
	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, "http store couldn't wait for rate limiter")
		}
	}

	client, err := s.ClientMaker.MakeClient(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "http store couldn't create request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "http store couldn't run request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("http store couldn't fetch %s, status code: %d", path, resp.StatusCode)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "http store couldn't read response")
	}
	return content, nil
}

func (s *HTTPFileStore) Save(ctx context.Context, path string, content []byte) error {
	return errors.Errorf("http store can't save %s: read only", path)
}

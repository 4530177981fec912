package main

import (
	"context"
	"google.golang.org/api/option"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestGCSStore(t *testing.T, handler http.HandlerFunc) *GCSFileStore {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &GCSFileStore{Options: []option.ClientOption{
		option.WithEndpoint(srv.URL + "/storage/v1/"),
		option.WithoutAuthentication(),
	}}
}

func TestGCSFileStore_Load(t *testing.T) {
	t.Parallel()

	requested := make(chan string, 1)
	s := newTestGCSStore(t, func(w http.ResponseWriter, r *http.Request) {
		requested <- r.Method + " " + r.URL.Path
		w.Write([]byte("x,y\n1,2\n"))
	})

	content, err := s.Load(context.Background(), "gs://models/runs/in.csv")
	if err != nil {
		t.Fatalf("Unexpected error loading: %s", err)
	}
	if string(content) != "x,y\n1,2\n" {
		t.Errorf("Expected served content, got '%s'", content)
	}
	if got := <-requested; got != "GET /models/runs/in.csv" {
		t.Errorf("Expected GET /models/runs/in.csv, got '%s'", got)
	}
}

func TestGCSFileStore_Load_Missing(t *testing.T) {
	t.Parallel()

	s := newTestGCSStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	if _, err := s.Load(context.Background(), "gs://models/in.csv"); err == nil {
		t.Error("Expected an error for a missing object, got nil")
	}
}

func TestGCSFileStore_BadPath(t *testing.T) {
	t.Parallel()

	s := &GCSFileStore{}
	if _, err := s.Load(context.Background(), "gs://models"); err == nil {
		t.Error("Expected an error loading a path without a key, got nil")
	}
	if err := s.Save(context.Background(), "gs:///in.csv", nil); err == nil {
		t.Error("Expected an error saving a path without a bucket, got nil")
	}
}

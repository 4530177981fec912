package main

import (
	"context"
	"golang.org/x/time/rate"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPFileStore_Load(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/runs/out.csv" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("x,y^\n0,0\n"))
	}))
	defer srv.Close()

	s := &HTTPFileStore{
		ClientMaker: &DefaultHttpClientMaker{Timeout: 5 * time.Second},
		Limiter:     rate.NewLimiter(rate.Inf, 1),
	}

	content, err := s.Load(context.Background(), srv.URL+"/runs/out.csv")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if string(content) != "x,y^\n0,0\n" {
		t.Errorf("Expected served content, got '%s'", content)
	}

	_, err = s.Load(context.Background(), srv.URL+"/missing.csv")
	if err == nil {
		t.Error("Expected an error for a 404, got nil")
	}
}

func TestHTTPFileStore_Save(t *testing.T) {
	t.Parallel()

	s := &HTTPFileStore{ClientMaker: &DefaultHttpClientMaker{}}
	if err := s.Save(context.Background(), "http://example.com/out.csv", nil); err == nil {
		t.Error("Expected an error saving over http, got nil")
	}
}

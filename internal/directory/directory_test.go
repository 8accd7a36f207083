package directory

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPDirectoryLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("missing bearer token, got %q", got)
		}
		switch r.URL.Path {
		case "/doctors/DOC001":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"name":"Smith","specialty":"General Physician"}`))
		case "/doctors/NOPE":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	dir := NewHTTPDirectory(srv.URL, "secret", 2*time.Second)

	doc, err := dir.LookupByCode(context.Background(), "DOC001")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if doc.Name != "Smith" || doc.Code != "DOC001" {
		t.Fatalf("unexpected doctor: %+v", doc)
	}

	if _, err := dir.LookupByCode(context.Background(), "NOPE"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := dir.LookupByCode(context.Background(), "BOOM"); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected transient error, got %v", err)
	}
}

func TestStaticDirectory(t *testing.T) {
	dir := NewStaticDirectory()

	doc, err := dir.LookupByCode(context.Background(), "DOC002")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if doc.Name != "Johnson" {
		t.Fatalf("unexpected doctor: %+v", doc)
	}

	if _, err := dir.LookupByCode(context.Background(), "DOC999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

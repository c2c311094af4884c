package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultAPIBase {
		t.Fatalf("host = %q, want %q", u.Host, defaultAPIBase)
	}

	u, err = parseBaseURL("http://example.com:1234/api/?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "/api" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_VerbsAndPayloads(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath, gotUserAgent string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotUserAgent = r.Header.Get("User-Agent")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")

		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode([]Book{{ID: 1, Title: "Dune"}})
		case http.MethodPost:
			_ = json.NewEncoder(w).Encode(Book{ID: 7, Title: "Hyperion", Author: "Simmons"})
		case http.MethodPut:
			_ = json.NewEncoder(w).Encode(Book{ID: 3, Title: "Solaris", IsFavorite: true})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	books, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(books) != 1 || books[0].Title != "Dune" {
		t.Fatalf("List payload = %#v, want single Dune record", books)
	}
	if gotMethod != http.MethodGet || gotPath != "/books" {
		t.Fatalf("List issued %s %s, want GET /books", gotMethod, gotPath)
	}
	if gotUserAgent != defaultUserAgent {
		t.Fatalf("User-Agent = %q, want %q", gotUserAgent, defaultUserAgent)
	}

	created, err := c.Create(ctx, NewBook{Title: "Hyperion", Author: "Simmons"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("Create id = %d, want server-assigned 7", created.ID)
	}
	if gotMethod != http.MethodPost || gotPath != "/books" {
		t.Fatalf("Create issued %s %s, want POST /books", gotMethod, gotPath)
	}
	var sent map[string]any
	if err := json.Unmarshal(gotBody, &sent); err != nil {
		t.Fatalf("Create body not JSON: %v", err)
	}
	if _, hasID := sent["id"]; hasID {
		t.Fatalf("Create body includes id field: %s", gotBody)
	}

	replaced, err := c.Replace(ctx, 3, Book{ID: 3, Title: "Solaris", IsFavorite: true})
	if err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if !replaced.IsFavorite {
		t.Fatalf("Replace payload = %#v, want favorite record", replaced)
	}
	if gotMethod != http.MethodPut || gotPath != "/books/3" {
		t.Fatalf("Replace issued %s %s, want PUT /books/3", gotMethod, gotPath)
	}

	if err := c.Remove(ctx, 9); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/books/9" {
		t.Fatalf("Remove issued %s %s, want DELETE /books/9", gotMethod, gotPath)
	}
}

func TestClient_NonSuccessStatusBecomesTransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	_, err = c.List(ctx)
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("List error = %v, want *TransportError", err)
	}
	if terr.Status != http.StatusInternalServerError || terr.Op != "list" {
		t.Fatalf("TransportError = %#v, want status 500 op list", terr)
	}

	_, err = c.Create(ctx, NewBook{Title: "X"})
	if !errors.As(err, &terr) {
		t.Fatalf("Create error = %v, want *TransportError", err)
	}
	if err := c.Remove(ctx, 1); !errors.As(err, &terr) {
		t.Fatalf("Remove error = %v, want *TransportError", err)
	}
}

func TestClient_NetworkFailureBecomesTransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	_, err = c.List(ctx)
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("List error = %v, want *TransportError", err)
	}
	if terr.Status != 0 || terr.Err == nil {
		t.Fatalf("TransportError = %#v, want wrapped network cause", terr)
	}
}

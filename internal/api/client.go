package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// BookService defines the operations the remote collection supports.
// This interface is implemented by *Client and can be used for testing.
type BookService interface {
	List(ctx context.Context) ([]Book, error)
	Create(ctx context.Context, draft NewBook) (Book, error)
	Replace(ctx context.Context, id int64, record Book) (Book, error)
	Remove(ctx context.Context, id int64) error
}

// Ensure Client implements BookService at compile time.
var _ BookService = (*Client)(nil)

// TransportError reports a failed exchange with the remote collection. Every
// non-2xx status, network failure, and malformed response collapses into this
// one kind; callers are expected to surface it, not branch on detail.
type TransportError struct {
	Op     string // e.g. "list", "create"
	Status int    // HTTP status, 0 when the request never completed
	Err    error  // underlying cause, nil when Status is set
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s books: server returned status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s books: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client talks to the remote book collection over HTTP.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBase        = "127.0.0.1:4000"
	defaultUserAgent      = "shelf/0.1"
	defaultRequestTimeout = 5 * time.Second

	booksPath = "/books"
)

// NewClient builds a Client for the provided base address. The address may be
// a bare host:port or a full URL; the scheme defaults to http. A zero timeout
// selects the default.
func NewClient(apiBase string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// List retrieves every record in the collection.
func (c *Client) List(ctx context.Context) ([]Book, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Book
	if err := c.do(ctx, "list", http.MethodGet, booksPath, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Create submits a new record. The server assigns the id and returns the
// stored record.
func (c *Client) Create(ctx context.Context, draft NewBook) (Book, error) {
	if c == nil {
		return Book{}, fmt.Errorf("client is nil")
	}
	var payload Book
	if err := c.do(ctx, "create", http.MethodPost, booksPath, draft, &payload); err != nil {
		return Book{}, err
	}
	return payload, nil
}

// Replace overwrites the record with the given id. These are full-record
// semantics, not a partial patch: callers must send the complete desired
// record including fields they did not change.
func (c *Client) Replace(ctx context.Context, id int64, record Book) (Book, error) {
	if c == nil {
		return Book{}, fmt.Errorf("client is nil")
	}
	var payload Book
	if err := c.do(ctx, "replace", http.MethodPut, bookPath(id), record, &payload); err != nil {
		return Book{}, err
	}
	return payload, nil
}

// Remove deletes the record with the given id.
func (c *Client) Remove(ctx context.Context, id int64) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, "remove", http.MethodDelete, bookPath(id), nil, nil)
}

func bookPath(id int64) string {
	return booksPath + "/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, op, method, path string, body, dest any) error {
	// The base URL may carry a path prefix, so join rather than resolve.
	reqURL := *c.baseURL
	reqURL.Path = c.baseURL.Path + path

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &TransportError{Op: op, Status: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = defaultAPIBase
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", apiBase, err)
	}
	u.RawQuery = ""
	u.Fragment = ""
	u.Path = strings.TrimSuffix(u.Path, "/")
	return u, nil
}

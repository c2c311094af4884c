package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/aferrand/shelf/internal/api"
	"github.com/aferrand/shelf/internal/store"
)

// NoticeKind classifies a notification for the display sink.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
	NoticeInfo
)

// Outcome is the terminal result of one operation. Err is nil exactly when
// the operation was applied to the store; Notice and Kind always carry the
// message for the notification sink.
type Outcome struct {
	Notice string
	Kind   NoticeKind
	Book   api.Book
	Err    error
}

// failure builds an error outcome. The store is guaranteed untouched
// whenever this is returned.
func failure(err error) Outcome {
	return Outcome{Notice: err.Error(), Kind: NoticeError, Err: err}
}

// Commander implements the user-initiated operations against the remote
// collection. Each operation is an independent sequence: validate, call the
// remote resource, reconcile the store with the confirmed response, and
// produce a notification. Nothing lands in the store before the remote call
// resolves, and a failed call leaves the store exactly as it was.
type Commander struct {
	svc              api.BookService
	store            *store.Store
	placeholderCover string
}

// NewCommander wires the command layer. An empty placeholderCover selects the
// built-in placeholder URL.
func NewCommander(svc api.BookService, st *store.Store, placeholderCover string) *Commander {
	if strings.TrimSpace(placeholderCover) == "" {
		placeholderCover = api.PlaceholderCover
	}
	return &Commander{svc: svc, store: st, placeholderCover: placeholderCover}
}

// Reload fetches the full collection and replaces the store contents. On
// failure the store is untouched; the caller decides whether to keep showing
// stale data (startup passes an empty store, so a failed initial load simply
// yields an empty collection plus the error notice).
func (c *Commander) Reload(ctx context.Context) Outcome {
	books, err := c.svc.List(ctx)
	if err != nil {
		return failure(fmt.Errorf("load books: %w", err))
	}
	c.store.Load(books)
	return Outcome{
		Notice: fmt.Sprintf("Loaded %d books", len(books)),
		Kind:   NoticeInfo,
	}
}

// Create validates the draft, submits it, and inserts the server-confirmed
// record. New records are never favorites; only ToggleFavorite changes that
// flag.
func (c *Commander) Create(ctx context.Context, draft Draft) Outcome {
	if err := validateDraft(draft); err != nil {
		return failure(err)
	}
	normalized := normalizeDraft(draft, c.placeholderCover)

	created, err := c.svc.Create(ctx, api.NewBook{
		Title:       normalized.Title,
		Author:      normalized.Author,
		CoverImage:  normalized.CoverImage,
		Description: normalized.Description,
		Rating:      normalized.Rating,
		IsFavorite:  false,
	})
	if err != nil {
		return failure(err)
	}

	c.store.Upsert(created)
	return Outcome{
		Notice: fmt.Sprintf("Added %q", created.Title),
		Kind:   NoticeSuccess,
		Book:   created,
	}
}

// Update validates the draft, merges it onto the existing record's superset
// (keeping id and the current favorite flag, which the form never exposes),
// and replaces the remote record.
func (c *Commander) Update(ctx context.Context, id int64, draft Draft) Outcome {
	if err := validateDraft(draft); err != nil {
		return failure(err)
	}
	existing, ok := c.store.Get(id)
	if !ok {
		return failure(fmt.Errorf("book %d is no longer in the collection", id))
	}
	normalized := normalizeDraft(draft, c.placeholderCover)

	merged := existing
	merged.Title = normalized.Title
	merged.Author = normalized.Author
	merged.CoverImage = normalized.CoverImage
	merged.Description = normalized.Description
	merged.Rating = normalized.Rating

	updated, err := c.svc.Replace(ctx, id, merged)
	if err != nil {
		return failure(err)
	}

	c.store.Upsert(updated)
	return Outcome{
		Notice: fmt.Sprintf("Updated %q", updated.Title),
		Kind:   NoticeSuccess,
		Book:   updated,
	}
}

// ToggleFavorite flips the favorite flag on the target record, leaving every
// other field unchanged. The success message depends on the new state.
func (c *Commander) ToggleFavorite(ctx context.Context, id int64) Outcome {
	existing, ok := c.store.Get(id)
	if !ok {
		return failure(fmt.Errorf("book %d is no longer in the collection", id))
	}

	flipped := existing
	flipped.IsFavorite = !existing.IsFavorite

	updated, err := c.svc.Replace(ctx, id, flipped)
	if err != nil {
		return failure(err)
	}

	c.store.Upsert(updated)
	notice := fmt.Sprintf("Removed %q from favorites", updated.Title)
	if updated.IsFavorite {
		notice = fmt.Sprintf("Added %q to favorites", updated.Title)
	}
	return Outcome{Notice: notice, Kind: NoticeSuccess, Book: updated}
}

// Delete removes the record from the remote collection and then from the
// store. Callers are expected to have collected an explicit confirmation
// before invoking this.
func (c *Commander) Delete(ctx context.Context, id int64) Outcome {
	existing, _ := c.store.Get(id)

	if err := c.svc.Remove(ctx, id); err != nil {
		return failure(err)
	}

	c.store.Delete(id)
	notice := "Deleted book"
	if existing.Title != "" {
		notice = fmt.Sprintf("Deleted %q", existing.Title)
	}
	return Outcome{Notice: notice, Kind: NoticeSuccess, Book: existing}
}
